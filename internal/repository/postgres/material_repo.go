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

type materialRepo struct {
	db *sqlx.DB
}

// NewMaterialRepo creates a new PostgreSQL-backed MaterialRepository.
func NewMaterialRepo(db *sqlx.DB) port.MaterialRepository {
	return &materialRepo{db: db}
}

func (r *materialRepo) Create(ctx context.Context, material *domain.Material) error {
	material.ID = uuid.New()
	now := time.Now().UTC()
	material.CreatedAt = now
	material.UpdatedAt = now

	query := `INSERT INTO learning_materials (id, tenant_id, title, description, subject,
		grade_level, file_type, file_size, s3_bucket, s3_key, is_public, download_count,
		uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		material.ID, material.TenantID, material.Title, material.Description,
		material.Subject, material.GradeLevel, material.FileType, material.FileSize,
		material.S3Bucket, material.S3Key, material.IsPublic, material.DownloadCount,
		material.UploadedBy, material.CreatedAt, material.UpdatedAt)
	if err != nil {
		return fmt.Errorf("materialRepo.Create: %w", err)
	}
	return nil
}

func (r *materialRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Material, error) {
	var material domain.Material
	err := r.db.GetContext(ctx, &material,
		"SELECT * FROM learning_materials WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("materialRepo.GetByID: %w", err)
	}
	return &material, nil
}

func (r *materialRepo) List(ctx context.Context, tenantID uuid.UUID, subject string, offset, limit int) ([]domain.Material, int, error) {
	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	if subject != "" {
		args = append(args, subject)
		where += fmt.Sprintf(" AND subject = $%d", len(args))
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM learning_materials "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("materialRepo.List count: %w", err)
	}

	args = append(args, limit, offset)
	var materials []domain.Material
	err = r.db.SelectContext(ctx, &materials,
		fmt.Sprintf("SELECT * FROM learning_materials %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
			where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("materialRepo.List: %w", err)
	}
	return materials, total, nil
}

func (r *materialRepo) IncrementDownloads(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE learning_materials SET download_count = download_count + 1, updated_at = NOW()
		 WHERE id = $1 AND tenant_id = $2`,
		id, tenantID)
	if err != nil {
		return fmt.Errorf("materialRepo.IncrementDownloads: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *materialRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM learning_materials WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("materialRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
