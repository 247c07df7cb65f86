package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated tutoring business.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Student represents a tutored student. Students are soft-deleted by
// clearing IsActive; rows are never removed.
type Student struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TenantID    uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	Grade       string    `db:"grade" json:"grade"`
	Subject     string    `db:"subject" json:"subject"`
	ParentName  string    `db:"parent_name" json:"parent_name"`
	ParentPhone string    `db:"parent_phone" json:"parent_phone"`
	Address     string    `db:"address" json:"address"`
	Notes       string    `db:"notes" json:"notes"`
	AvatarURL   string    `db:"avatar_url" json:"avatar_url"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Payment represents a recorded tuition payment. Amounts count toward
// revenue only while Status is paid.
type Payment struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	TenantID    uuid.UUID     `db:"tenant_id" json:"tenant_id"`
	StudentID   *uuid.UUID    `db:"student_id" json:"student_id"`
	Amount      float64       `db:"amount" json:"amount"`
	PaymentDate time.Time     `db:"payment_date" json:"payment_date"`
	DueDate     *time.Time    `db:"due_date" json:"due_date"`
	Status      PaymentStatus `db:"status" json:"status"`
	Method      string        `db:"payment_method" json:"payment_method"`
	Notes       string        `db:"notes" json:"notes"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// Schedule represents a single tutoring session.
type Schedule struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	TenantID    uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	StudentID   *uuid.UUID     `db:"student_id" json:"student_id"`
	Subject     string         `db:"subject" json:"subject"`
	StartTime   time.Time      `db:"start_time" json:"start_time"`
	EndTime     time.Time      `db:"end_time" json:"end_time"`
	Status      ScheduleStatus `db:"status" json:"status"`
	MeetingType MeetingType    `db:"meeting_type" json:"meeting_type"`
	MeetingURL  string         `db:"meeting_url" json:"meeting_url"`
	Location    string         `db:"location" json:"location"`
	Notes       string         `db:"notes" json:"notes"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// LessonNote records what was covered in a session.
type LessonNote struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	TenantID        uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	StudentID       *uuid.UUID      `db:"student_id" json:"student_id"`
	Topic           string          `db:"topic" json:"topic"`
	Content         string          `db:"content" json:"content"`
	LessonDate      time.Time       `db:"lesson_date" json:"lesson_date"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	NextTopic       string          `db:"next_topic" json:"next_topic"`
	Homework        string          `db:"homework" json:"homework"`
	StudentProgress StudentProgress `db:"student_progress" json:"student_progress"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// Material represents a learning material with its file in object storage.
type Material struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TenantID      uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	Subject       string    `db:"subject" json:"subject"`
	GradeLevel    string    `db:"grade_level" json:"grade_level"`
	FileType      string    `db:"file_type" json:"file_type"`
	FileSize      int64     `db:"file_size" json:"file_size"`
	S3Bucket      string    `db:"s3_bucket" json:"-"`
	S3Key         string    `db:"s3_key" json:"-"`
	IsPublic      bool      `db:"is_public" json:"is_public"`
	DownloadCount int       `db:"download_count" json:"download_count"`
	UploadedBy    uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// PaymentRecord is a payment joined with its student, as consumed by list
// views and export writers. Student columns fall back to sentinel labels when
// the linked row or its subject is missing, so a broken join never drops a
// payment from a report.
type PaymentRecord struct {
	Payment
	StudentName    string `db:"student_name" json:"student_name"`
	StudentSubject string `db:"student_subject" json:"student_subject"`
}

// LessonNoteRecord is a lesson note joined with its student.
type LessonNoteRecord struct {
	LessonNote
	StudentName    string `db:"student_name" json:"student_name"`
	StudentSubject string `db:"student_subject" json:"student_subject"`
}
