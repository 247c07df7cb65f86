package port

import (
	"context"

	"github.com/google/uuid"

	"leskita/internal/domain"
)

// UserRepository manages user accounts. A user row is always paired with a
// membership row, so reads return users hydrated with tenant and role.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
