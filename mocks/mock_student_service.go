package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/service"
)

// MockStudentService is a mock implementation of service.StudentService.
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Create(ctx context.Context, tenantID uuid.UUID, input service.CreateStudentInput) (*domain.Student, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Student, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentService) List(ctx context.Context, tenantID uuid.UUID, query string, activeOnly bool, offset, limit int) ([]domain.Student, int, error) {
	args := m.Called(ctx, tenantID, query, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Student), args.Int(1), args.Error(2)
}

func (m *MockStudentService) Update(ctx context.Context, tenantID, id uuid.UUID, input service.UpdateStudentInput) (*domain.Student, error) {
	args := m.Called(ctx, tenantID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
