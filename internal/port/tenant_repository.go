package port

import (
	"context"

	"github.com/google/uuid"

	"leskita/internal/domain"
)

// TenantRepository manages tenants and tenant membership.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ResolveForUser maps a user to the tenant it belongs to via the
	// membership table. Returns domain.ErrNotFound when no membership row
	// exists; callers render an empty state rather than failing.
	ResolveForUser(ctx context.Context, userID uuid.UUID) (*domain.Tenant, error)
}
