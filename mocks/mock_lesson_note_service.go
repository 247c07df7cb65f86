package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/service"
)

// MockLessonNoteService is a mock implementation of service.LessonNoteService.
type MockLessonNoteService struct {
	mock.Mock
}

func (m *MockLessonNoteService) Create(ctx context.Context, tenantID uuid.UUID, input service.CreateLessonNoteInput) (*domain.LessonNote, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LessonNote), args.Error(1)
}

func (m *MockLessonNoteService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.LessonNote, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LessonNote), args.Error(1)
}

func (m *MockLessonNoteService) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.LessonNoteRecord, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.LessonNoteRecord), args.Int(1), args.Error(2)
}

func (m *MockLessonNoteService) Update(ctx context.Context, tenantID, id uuid.UUID, input service.UpdateLessonNoteInput) (*domain.LessonNote, error) {
	args := m.Called(ctx, tenantID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LessonNote), args.Error(1)
}

func (m *MockLessonNoteService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
