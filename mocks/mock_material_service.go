package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
	"leskita/internal/service"
)

// MockMaterialService is a mock implementation of service.MaterialService.
type MockMaterialService struct {
	mock.Mock
}

func (m *MockMaterialService) Upload(ctx context.Context, input service.MaterialUploadInput) (*domain.Material, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Material, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialService) List(ctx context.Context, tenantID uuid.UUID, subject string, offset, limit int) ([]domain.Material, int, error) {
	args := m.Called(ctx, tenantID, subject, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Material), args.Int(1), args.Error(2)
}

func (m *MockMaterialService) GetDownloadURL(ctx context.Context, tenantID, id uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID, id)
	return args.String(0), args.Error(1)
}

func (m *MockMaterialService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
