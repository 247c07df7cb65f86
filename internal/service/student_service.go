package service

import (
	"context"

	"github.com/google/uuid"

	"leskita/internal/domain"
	"leskita/internal/port"
)

// CreateStudentInput is the DTO for creating a student.
type CreateStudentInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Grade       string `json:"grade"`
	Subject     string `json:"subject"`
	ParentName  string `json:"parent_name"`
	ParentPhone string `json:"parent_phone"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
	AvatarURL   string `json:"avatar_url"`
}

// UpdateStudentInput is the DTO for updating a student.
type UpdateStudentInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Grade       *string `json:"grade"`
	Subject     *string `json:"subject"`
	ParentName  *string `json:"parent_name"`
	ParentPhone *string `json:"parent_phone"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
	AvatarURL   *string `json:"avatar_url"`
	IsActive    *bool   `json:"is_active"`
}

// StudentService defines the student management contract.
type StudentService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateStudentInput) (*domain.Student, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Student, error)
	List(ctx context.Context, tenantID uuid.UUID, query string, activeOnly bool, offset, limit int) ([]domain.Student, int, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateStudentInput) (*domain.Student, error)
	// Delete soft-deletes the student. History rows keep their student_id
	// and continue to feed reports.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type studentService struct {
	repo port.StudentRepository
}

// NewStudentService creates a new StudentService implementation.
func NewStudentService(repo port.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) Create(ctx context.Context, tenantID uuid.UUID, input CreateStudentInput) (*domain.Student, error) {
	student := &domain.Student{
		TenantID:    tenantID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Grade:       input.Grade,
		Subject:     input.Subject,
		ParentName:  input.ParentName,
		ParentPhone: input.ParentPhone,
		Address:     input.Address,
		Notes:       input.Notes,
		AvatarURL:   input.AvatarURL,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Student, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *studentService) List(ctx context.Context, tenantID uuid.UUID, query string, activeOnly bool, offset, limit int) ([]domain.Student, int, error) {
	return s.repo.List(ctx, tenantID, query, activeOnly, offset, limit)
}

func (s *studentService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateStudentInput) (*domain.Student, error) {
	student, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		student.Name = *input.Name
	}
	if input.Email != nil {
		student.Email = *input.Email
	}
	if input.Phone != nil {
		student.Phone = *input.Phone
	}
	if input.Grade != nil {
		student.Grade = *input.Grade
	}
	if input.Subject != nil {
		student.Subject = *input.Subject
	}
	if input.ParentName != nil {
		student.ParentName = *input.ParentName
	}
	if input.ParentPhone != nil {
		student.ParentPhone = *input.ParentPhone
	}
	if input.Address != nil {
		student.Address = *input.Address
	}
	if input.Notes != nil {
		student.Notes = *input.Notes
	}
	if input.AvatarURL != nil {
		student.AvatarURL = *input.AvatarURL
	}
	if input.IsActive != nil {
		student.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, tenantID, id)
}
