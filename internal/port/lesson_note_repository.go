package port

import (
	"context"

	"github.com/google/uuid"

	"leskita/internal/domain"
)

type LessonNoteRepository interface {
	Create(ctx context.Context, note *domain.LessonNote) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.LessonNote, error)
	// List returns notes joined with student names, newest lesson first
	// unless the filter asks for ascending order.
	List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.LessonNoteRecord, int, error)
	Update(ctx context.Context, note *domain.LessonNote) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
