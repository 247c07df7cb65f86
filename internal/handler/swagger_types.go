package handler

import (
	"time"

	"github.com/google/uuid"

	"leskita/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@lespintar.id"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateTenantRequest represents the create tenant request body.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required" example:"Les Pintar"`
	Slug string `json:"slug" binding:"required" example:"les-pintar"`
}

// UpdateTenantRequest represents the update tenant request body.
type UpdateTenantRequest struct {
	Name     *string `json:"name" example:"Bimbel Pintar"`
	Slug     *string `json:"slug" example:"bimbel-pintar"`
	IsActive *bool   `json:"is_active" example:"false"`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"guru@lespintar.id"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" binding:"required" example:"Dewi Lestari"`
	Role     domain.UserRole `json:"role" binding:"required" example:"member"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    *string          `json:"email" example:"guru@lespintar.id"`
	FullName *string          `json:"full_name" example:"Dewi Lestari"`
	Role     *domain.UserRole `json:"role" example:"admin"`
	IsActive *bool            `json:"is_active" example:"true"`
}

// CreateStudentRequest represents the create student request body.
type CreateStudentRequest struct {
	Name        string `json:"name" binding:"required" example:"Budi Santoso"`
	Email       string `json:"email" example:"budi@example.com"`
	Phone       string `json:"phone" example:"+62812345678"`
	Grade       string `json:"grade" example:"Kelas 9"`
	Subject     string `json:"subject" example:"Matematika"`
	ParentName  string `json:"parent_name" example:"Slamet Santoso"`
	ParentPhone string `json:"parent_phone" example:"+62812345679"`
	Address     string `json:"address" example:"Jl. Merdeka 10, Jakarta"`
	Notes       string `json:"notes" example:"Persiapan ujian nasional"`
}

// UpdateStudentRequest represents the update student request body.
type UpdateStudentRequest struct {
	Name     *string `json:"name" example:"Budi Santoso"`
	Subject  *string `json:"subject" example:"Fisika"`
	IsActive *bool   `json:"is_active" example:"true"`
}

// CreatePaymentRequest represents the create payment request body.
type CreatePaymentRequest struct {
	StudentID   *uuid.UUID           `json:"student_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Amount      float64              `json:"amount" binding:"required" example:"500000"`
	PaymentDate time.Time            `json:"payment_date" binding:"required" example:"2025-03-15T00:00:00Z"`
	DueDate     *time.Time           `json:"due_date" example:"2025-03-31T00:00:00Z"`
	Status      domain.PaymentStatus `json:"status" example:"paid"`
	Method      string               `json:"payment_method" example:"transfer"`
	Notes       string               `json:"notes" example:"Pembayaran bulan Maret"`
}

// UpdatePaymentRequest represents the update payment request body.
type UpdatePaymentRequest struct {
	Amount *float64              `json:"amount" example:"500000"`
	Status *domain.PaymentStatus `json:"status" example:"paid"`
	Method *string               `json:"payment_method" example:"tunai"`
}

// CreateScheduleRequest represents the create schedule request body.
type CreateScheduleRequest struct {
	StudentID   *uuid.UUID            `json:"student_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Subject     string                `json:"subject" binding:"required" example:"Matematika"`
	StartTime   time.Time             `json:"start_time" binding:"required" example:"2025-03-15T14:00:00+07:00"`
	EndTime     time.Time             `json:"end_time" binding:"required" example:"2025-03-15T15:30:00+07:00"`
	Status      domain.ScheduleStatus `json:"status" example:"upcoming"`
	MeetingType domain.MeetingType    `json:"meeting_type" example:"online"`
	MeetingURL  string                `json:"meeting_url" example:"https://meet.example.com/abc"`
	Location    string                `json:"location" example:"Ruang 2"`
}

// UpdateScheduleRequest represents the update schedule request body.
type UpdateScheduleRequest struct {
	StartTime *time.Time             `json:"start_time" example:"2025-03-15T15:00:00+07:00"`
	EndTime   *time.Time             `json:"end_time" example:"2025-03-15T16:30:00+07:00"`
	Status    *domain.ScheduleStatus `json:"status" example:"completed"`
}

// CreateLessonNoteRequest represents the create lesson note request body.
type CreateLessonNoteRequest struct {
	StudentID       *uuid.UUID             `json:"student_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Topic           string                 `json:"topic" binding:"required" example:"Persamaan kuadrat"`
	Content         string                 `json:"content" example:"Latihan faktorisasi dan rumus abc"`
	LessonDate      time.Time              `json:"lesson_date" binding:"required" example:"2025-03-15T00:00:00Z"`
	DurationMinutes int                    `json:"duration_minutes" binding:"required" example:"90"`
	NextTopic       string                 `json:"next_topic" example:"Fungsi kuadrat"`
	Homework        string                 `json:"homework" example:"Soal 1-10 halaman 42"`
	StudentProgress domain.StudentProgress `json:"student_progress" example:"good"`
}

// UpdateLessonNoteRequest represents the update lesson note request body.
type UpdateLessonNoteRequest struct {
	Topic           *string                 `json:"topic" example:"Persamaan kuadrat lanjutan"`
	StudentProgress *domain.StudentProgress `json:"student_progress" example:"excellent"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-03-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// MaterialDownload represents a presigned material download URL.
type MaterialDownload struct {
	DownloadURL string `json:"download_url" example:"https://s3.ap-southeast-1.amazonaws.com/leskita-materials/...?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
