package port

import (
	"context"

	"github.com/google/uuid"

	"leskita/internal/domain"
)

type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Student, error)
	// List returns students in the tenant, optionally filtered by a name or
	// subject search term. activeOnly hides deactivated students.
	List(ctx context.Context, tenantID uuid.UUID, query string, activeOnly bool, offset, limit int) ([]domain.Student, int, error)
	ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.Student, error)
	CountActive(ctx context.Context, tenantID uuid.UUID) (int, error)
	Update(ctx context.Context, student *domain.Student) error
	// Deactivate soft-deletes the student; payment and schedule history is
	// kept and continues to feed reports.
	Deactivate(ctx context.Context, tenantID, id uuid.UUID) error
}
