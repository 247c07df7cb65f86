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

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

// recordColumns joins each payment with its student. The LEFT JOIN keeps
// payments whose student row was deleted; the empty strings are replaced
// with sentinel labels after the scan.
const recordColumns = `p.*, COALESCE(s.name, '') AS student_name,
	COALESCE(s.subject, '') AS student_subject`

func applyRecordSentinels(rec *domain.PaymentRecord) {
	if rec.StudentName == "" {
		rec.StudentName = domain.UnknownStudentLabel
	}
	if rec.StudentSubject == "" {
		rec.StudentSubject = domain.UnknownSubjectLabel
	}
	if rec.Method == "" {
		rec.Method = domain.UnknownMethodLabel
	}
}

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	payment.ID = uuid.New()
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	query := `INSERT INTO payments (id, tenant_id, student_id, amount, payment_date, due_date,
		status, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID, payment.TenantID, payment.StudentID, payment.Amount,
		payment.PaymentDate, payment.DueDate, payment.Status, payment.Method,
		payment.Notes, payment.CreatedAt, payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.GetContext(ctx, &payment,
		"SELECT * FROM payments WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentRepo.GetByID: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepo) GetRecordByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentRecord, error) {
	var rec domain.PaymentRecord
	err := r.db.GetContext(ctx, &rec,
		`SELECT `+recordColumns+` FROM payments p
		 LEFT JOIN students s ON s.id = p.student_id
		 WHERE p.id = $1 AND p.tenant_id = $2`,
		id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentRepo.GetRecordByID: %w", err)
	}
	applyRecordSentinels(&rec)
	return &rec, nil
}

func (r *paymentRepo) List(ctx context.Context, tenantID uuid.UUID, filter domain.RowFilter) ([]domain.PaymentRecord, int, error) {
	where := "WHERE p.tenant_id = $1"
	args := []interface{}{tenantID}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		where += fmt.Sprintf(" AND p.student_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND p.payment_date >= $%d", len(args))
	}
	if filter.Until != nil {
		args = append(args, *filter.Until)
		where += fmt.Sprintf(" AND p.payment_date < $%d", len(args))
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM payments p "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("paymentRepo.List count: %w", err)
	}

	order := "ASC"
	if filter.OrderDesc {
		order = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM payments p
		LEFT JOIN students s ON s.id = p.student_id
		%s ORDER BY p.payment_date %s`, recordColumns, where, order)
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	var recs []domain.PaymentRecord
	err = r.db.SelectContext(ctx, &recs, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("paymentRepo.List: %w", err)
	}
	for i := range recs {
		applyRecordSentinels(&recs[i])
	}
	return recs, total, nil
}

func (r *paymentRepo) Update(ctx context.Context, payment *domain.Payment) error {
	payment.UpdatedAt = time.Now().UTC()
	query := `UPDATE payments SET student_id = $1, amount = $2, payment_date = $3, due_date = $4,
		status = $5, payment_method = $6, notes = $7, updated_at = $8
		WHERE id = $9 AND tenant_id = $10`
	result, err := r.db.ExecContext(ctx, query,
		payment.StudentID, payment.Amount, payment.PaymentDate, payment.DueDate,
		payment.Status, payment.Method, payment.Notes, payment.UpdatedAt,
		payment.ID, payment.TenantID)
	if err != nil {
		return fmt.Errorf("paymentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *paymentRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM payments WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("paymentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
