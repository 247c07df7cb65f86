package port

import (
	"context"

	"github.com/google/uuid"

	"leskita/internal/domain"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *domain.Material) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Material, error)
	List(ctx context.Context, tenantID uuid.UUID, subject string, offset, limit int) ([]domain.Material, int, error)
	IncrementDownloads(ctx context.Context, tenantID, id uuid.UUID) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
