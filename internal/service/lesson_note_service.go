package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"leskita/internal/domain"
	"leskita/internal/port"
)

// CreateLessonNoteInput is the DTO for creating a lesson note.
type CreateLessonNoteInput struct {
	StudentID       *uuid.UUID             `json:"student_id"`
	Topic           string                 `json:"topic" binding:"required"`
	Content         string                 `json:"content"`
	LessonDate      time.Time              `json:"lesson_date" binding:"required"`
	DurationMinutes int                    `json:"duration_minutes" binding:"required,gt=0"`
	NextTopic       string                 `json:"next_topic"`
	Homework        string                 `json:"homework"`
	StudentProgress domain.StudentProgress `json:"student_progress"`
}

// UpdateLessonNoteInput is the DTO for updating a lesson note.
type UpdateLessonNoteInput struct {
	StudentID       *uuid.UUID              `json:"student_id"`
	Topic           *string                 `json:"topic"`
	Content         *string                 `json:"content"`
	LessonDate      *time.Time              `json:"lesson_date"`
	DurationMinutes *int                    `json:"duration_minutes"`
	NextTopic       *string                 `json:"next_topic"`
	Homework        *string                 `json:"homework"`
	StudentProgress *domain.StudentProgress `json:"student_progress"`
}

// LessonNoteService defines the lesson note management contract.
type LessonNoteService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateLessonNoteInput) (*domain.LessonNote, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.LessonNote, error)
	List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.LessonNoteRecord, int, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateLessonNoteInput) (*domain.LessonNote, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type lessonNoteService struct {
	repo port.LessonNoteRepository
}

// NewLessonNoteService creates a new LessonNoteService implementation.
func NewLessonNoteService(repo port.LessonNoteRepository) LessonNoteService {
	return &lessonNoteService{repo: repo}
}

func (s *lessonNoteService) Create(ctx context.Context, tenantID uuid.UUID, input CreateLessonNoteInput) (*domain.LessonNote, error) {
	progress := input.StudentProgress
	if progress == "" {
		progress = domain.ProgressAverage
	}
	if !domain.ValidStudentProgress[progress] {
		return nil, domain.ErrInvalidStatus
	}

	note := &domain.LessonNote{
		TenantID:        tenantID,
		StudentID:       input.StudentID,
		Topic:           input.Topic,
		Content:         input.Content,
		LessonDate:      input.LessonDate,
		DurationMinutes: input.DurationMinutes,
		NextTopic:       input.NextTopic,
		Homework:        input.Homework,
		StudentProgress: progress,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *lessonNoteService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.LessonNote, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *lessonNoteService) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.LessonNoteRecord, int, error) {
	return s.repo.List(ctx, tenantID, filter)
}

func (s *lessonNoteService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateLessonNoteInput) (*domain.LessonNote, error) {
	note, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.StudentID != nil {
		note.StudentID = input.StudentID
	}
	if input.Topic != nil {
		note.Topic = *input.Topic
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.LessonDate != nil {
		note.LessonDate = *input.LessonDate
	}
	if input.DurationMinutes != nil {
		note.DurationMinutes = *input.DurationMinutes
	}
	if input.NextTopic != nil {
		note.NextTopic = *input.NextTopic
	}
	if input.Homework != nil {
		note.Homework = *input.Homework
	}
	if input.StudentProgress != nil {
		if !domain.ValidStudentProgress[*input.StudentProgress] {
			return nil, domain.ErrInvalidStatus
		}
		note.StudentProgress = *input.StudentProgress
	}

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *lessonNoteService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, id)
}
