package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
)

// MockMaterialRepo is a mock implementation of port.MaterialRepository.
type MockMaterialRepo struct {
	mock.Mock
}

func (m *MockMaterialRepo) Create(ctx context.Context, material *domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Material, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepo) List(ctx context.Context, tenantID uuid.UUID, subject string, offset, limit int) ([]domain.Material, int, error) {
	args := m.Called(ctx, tenantID, subject, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Material), args.Int(1), args.Error(2)
}

func (m *MockMaterialRepo) IncrementDownloads(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockMaterialRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
