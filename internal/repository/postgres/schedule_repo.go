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

type scheduleRepo struct {
	db *sqlx.DB
}

// NewScheduleRepo creates a new PostgreSQL-backed ScheduleRepository.
func NewScheduleRepo(db *sqlx.DB) port.ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *domain.Schedule) error {
	schedule.ID = uuid.New()
	now := time.Now().UTC()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	query := `INSERT INTO schedules (id, tenant_id, student_id, subject, start_time, end_time,
		status, meeting_type, meeting_url, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		schedule.ID, schedule.TenantID, schedule.StudentID, schedule.Subject,
		schedule.StartTime, schedule.EndTime, schedule.Status, schedule.MeetingType,
		schedule.MeetingURL, schedule.Location, schedule.Notes,
		schedule.CreatedAt, schedule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("scheduleRepo.Create: %w", err)
	}
	return nil
}

func (r *scheduleRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := r.db.GetContext(ctx, &schedule,
		"SELECT * FROM schedules WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scheduleRepo.GetByID: %w", err)
	}
	return &schedule, nil
}

func (r *scheduleRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.Schedule, int, error) {
	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		where += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	if filter.Until != nil {
		args = append(args, *filter.Until)
		where += fmt.Sprintf(" AND start_time < $%d", len(args))
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM schedules "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("scheduleRepo.List count: %w", err)
	}

	order := "ASC"
	if filter.OrderDesc {
		order = "DESC"
	}
	query := fmt.Sprintf("SELECT * FROM schedules %s ORDER BY start_time %s", where, order)
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	var schedules []domain.Schedule
	err = r.db.SelectContext(ctx, &schedules, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("scheduleRepo.List: %w", err)
	}
	return schedules, total, nil
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *domain.Schedule) error {
	schedule.UpdatedAt = time.Now().UTC()
	query := `UPDATE schedules SET student_id = $1, subject = $2, start_time = $3, end_time = $4,
		status = $5, meeting_type = $6, meeting_url = $7, location = $8, notes = $9, updated_at = $10
		WHERE id = $11 AND tenant_id = $12`
	result, err := r.db.ExecContext(ctx, query,
		schedule.StudentID, schedule.Subject, schedule.StartTime, schedule.EndTime,
		schedule.Status, schedule.MeetingType, schedule.MeetingURL, schedule.Location,
		schedule.Notes, schedule.UpdatedAt, schedule.ID, schedule.TenantID)
	if err != nil {
		return fmt.Errorf("scheduleRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *scheduleRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM schedules WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("scheduleRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
