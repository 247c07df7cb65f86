package port

import (
	"context"

	"github.com/google/uuid"

	"leskita/internal/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Schedule, error)
	// List filters on start_time; From/Until form a half-open range.
	List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.Schedule, int, error)
	Update(ctx context.Context, schedule *domain.Schedule) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
