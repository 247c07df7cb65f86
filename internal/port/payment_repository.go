package port

import (
	"context"

	"github.com/google/uuid"

	"leskita/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Payment, error)
	// GetRecordByID returns the payment joined with its student's name and
	// subject, falling back to sentinel labels when the student is missing.
	GetRecordByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentRecord, error)
	// List returns joined payment records matching the filter. A zero
	// filter.Limit means no pagination; the full tenant history is returned.
	List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.PaymentRecord, int, error)
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
