package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leskita/internal/domain"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Overview(ctx context.Context, tenantID uuid.UUID) (*domain.ReportOverview, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportOverview), args.Error(1)
}

func (m *MockReportService) TopSubjects(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.SubjectStat, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubjectStat), args.Error(1)
}

func (m *MockReportService) MonthlyTrend(ctx context.Context, tenantID uuid.UUID, months int) ([]domain.MonthlyBucket, error) {
	args := m.Called(ctx, tenantID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyBucket), args.Error(1)
}

func (m *MockReportService) Dashboard(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
