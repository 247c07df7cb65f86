package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"leskita/internal/domain"
	"leskita/internal/port"
)

type lessonNoteRepo struct {
	db *sqlx.DB
}

// NewLessonNoteRepo creates a new PostgreSQL-backed LessonNoteRepository.
func NewLessonNoteRepo(db *sqlx.DB) port.LessonNoteRepository {
	return &lessonNoteRepo{db: db}
}

func (r *lessonNoteRepo) Create(ctx context.Context, note *domain.LessonNote) error {
	note.ID = uuid.New()
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	query := `INSERT INTO lesson_notes (id, tenant_id, student_id, topic, content, lesson_date,
		duration_minutes, next_topic, homework, student_progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.TenantID, note.StudentID, note.Topic, note.Content,
		note.LessonDate, note.DurationMinutes, note.NextTopic, note.Homework,
		note.StudentProgress, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("lessonNoteRepo.Create: %w", err)
	}
	return nil
}

func (r *lessonNoteRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.LessonNote, error) {
	var note domain.LessonNote
	err := r.db.GetContext(ctx, &note,
		"SELECT * FROM lesson_notes WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lessonNoteRepo.GetByID: %w", err)
	}
	return &note, nil
}

func (r *lessonNoteRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.LessonNoteRecord, int, error) {
	where := "WHERE n.tenant_id = $1"
	args := []interface{}{tenantID}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		where += fmt.Sprintf(" AND n.student_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND n.lesson_date >= $%d", len(args))
	}
	if filter.Until != nil {
		args = append(args, *filter.Until)
		where += fmt.Sprintf(" AND n.lesson_date < $%d", len(args))
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM lesson_notes n "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("lessonNoteRepo.List count: %w", err)
	}

	order := "DESC"
	if !filter.OrderDesc {
		order = "ASC"
	}
	query := fmt.Sprintf(`SELECT n.*, COALESCE(s.name, '') AS student_name,
		COALESCE(s.subject, '') AS student_subject
		FROM lesson_notes n
		LEFT JOIN students s ON s.id = n.student_id
		%s ORDER BY n.lesson_date %s`, where, order)
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	var recs []domain.LessonNoteRecord
	err = r.db.SelectContext(ctx, &recs, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("lessonNoteRepo.List: %w", err)
	}
	for i := range recs {
		if recs[i].StudentName == "" {
			recs[i].StudentName = domain.UnknownStudentLabel
		}
		if recs[i].StudentSubject == "" {
			recs[i].StudentSubject = domain.UnknownSubjectLabel
		}
	}
	return recs, total, nil
}

func (r *lessonNoteRepo) Update(ctx context.Context, note *domain.LessonNote) error {
	note.UpdatedAt = time.Now().UTC()
	query := `UPDATE lesson_notes SET student_id = $1, topic = $2, content = $3, lesson_date = $4,
		duration_minutes = $5, next_topic = $6, homework = $7, student_progress = $8, updated_at = $9
		WHERE id = $10 AND tenant_id = $11`
	result, err := r.db.ExecContext(ctx, query,
		note.StudentID, note.Topic, note.Content, note.LessonDate, note.DurationMinutes,
		note.NextTopic, note.Homework, note.StudentProgress, note.UpdatedAt,
		note.ID, note.TenantID)
	if err != nil {
		return fmt.Errorf("lessonNoteRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *lessonNoteRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM lesson_notes WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("lessonNoteRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
