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

type studentRepo struct {
	db *sqlx.DB
}

// NewStudentRepo creates a new PostgreSQL-backed StudentRepository.
func NewStudentRepo(db *sqlx.DB) port.StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *domain.Student) error {
	student.ID = uuid.New()
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	query := `INSERT INTO students (id, tenant_id, name, email, phone, grade, subject,
		parent_name, parent_phone, address, notes, avatar_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		student.ID, student.TenantID, student.Name, student.Email, student.Phone,
		student.Grade, student.Subject, student.ParentName, student.ParentPhone,
		student.Address, student.Notes, student.AvatarURL, student.IsActive,
		student.CreatedAt, student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("studentRepo.Create: %w", err)
	}
	return nil
}

func (r *studentRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Student, error) {
	var student domain.Student
	err := r.db.GetContext(ctx, &student,
		"SELECT * FROM students WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("studentRepo.GetByID: %w", err)
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, tenantID uuid.UUID, query string, activeOnly bool, offset, limit int) ([]domain.Student, int, error) {
	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if activeOnly {
		where += " AND is_active = true"
	}
	if query != "" {
		args = append(args, "%"+query+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR subject ILIKE $%d)", len(args), len(args))
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("studentRepo.List count: %w", err)
	}

	args = append(args, limit, offset)
	var students []domain.Student
	err = r.db.SelectContext(ctx, &students,
		fmt.Sprintf("SELECT * FROM students %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
			where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("studentRepo.List: %w", err)
	}
	return students, total, nil
}

func (r *studentRepo) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.Student, error) {
	var students []domain.Student
	err := r.db.SelectContext(ctx, &students,
		`SELECT * FROM students WHERE tenant_id = $1 AND is_active = true
		 ORDER BY created_at DESC LIMIT $2`,
		tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("studentRepo.ListRecent: %w", err)
	}
	return students, nil
}

func (r *studentRepo) CountActive(ctx context.Context, tenantID uuid.UUID) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM students WHERE tenant_id = $1 AND is_active = true", tenantID)
	if err != nil {
		return 0, fmt.Errorf("studentRepo.CountActive: %w", err)
	}
	return total, nil
}

func (r *studentRepo) Update(ctx context.Context, student *domain.Student) error {
	student.UpdatedAt = time.Now().UTC()
	query := `UPDATE students SET name = $1, email = $2, phone = $3, grade = $4, subject = $5,
		parent_name = $6, parent_phone = $7, address = $8, notes = $9, avatar_url = $10,
		is_active = $11, updated_at = $12
		WHERE id = $13 AND tenant_id = $14`
	result, err := r.db.ExecContext(ctx, query,
		student.Name, student.Email, student.Phone, student.Grade, student.Subject,
		student.ParentName, student.ParentPhone, student.Address, student.Notes,
		student.AvatarURL, student.IsActive, student.UpdatedAt, student.ID, student.TenantID)
	if err != nil {
		return fmt.Errorf("studentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *studentRepo) Deactivate(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE students SET is_active = false, updated_at = NOW() WHERE id = $1 AND tenant_id = $2",
		id, tenantID)
	if err != nil {
		return fmt.Errorf("studentRepo.Deactivate: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}
