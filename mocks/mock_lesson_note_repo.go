package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
)

// MockLessonNoteRepo is a mock implementation of port.LessonNoteRepository.
type MockLessonNoteRepo struct {
	mock.Mock
}

func (m *MockLessonNoteRepo) Create(ctx context.Context, note *domain.LessonNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockLessonNoteRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.LessonNote, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LessonNote), args.Error(1)
}

func (m *MockLessonNoteRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.LessonNoteRecord, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.LessonNoteRecord), args.Int(1), args.Error(2)
}

func (m *MockLessonNoteRepo) Update(ctx context.Context, note *domain.LessonNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockLessonNoteRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
