package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/service"
)

// MockScheduleService is a mock implementation of service.ScheduleService.
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) Create(ctx context.Context, tenantID uuid.UUID, input service.CreateScheduleInput) (*domain.Schedule, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockScheduleService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Schedule, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockScheduleService) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.Schedule, int, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Schedule), args.Int(1), args.Error(2)
}

func (m *MockScheduleService) Update(ctx context.Context, tenantID, id uuid.UUID, input service.UpdateScheduleInput) (*domain.Schedule, error) {
	args := m.Called(ctx, tenantID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockScheduleService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
