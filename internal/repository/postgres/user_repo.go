package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"leskita/internal/domain"
	"leskita/internal/port"
)

type userRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new PostgreSQL-backed UserRepository.
func NewUserRepo(db *sqlx.DB) port.UserRepository {
	return &userRepo{db: db}
}

// userColumns joins each user with its membership row so reads come back
// hydrated with tenant_id and role.
const userColumns = `u.id, tu.tenant_id, u.email, u.password_hash, u.full_name,
	tu.role, u.is_active, u.created_at, u.updated_at`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = uuid.New()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("userRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, full_name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.IsActive,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("userRepo.Create user: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tenant_users (id, tenant_id, user_id, role, is_active, created_at)
		 VALUES ($1, $2, $3, $4, true, $5)`,
		uuid.New(), user.TenantID, user.ID, user.Role, now)
	if err != nil {
		return fmt.Errorf("userRepo.Create membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("userRepo.Create commit: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT `+userColumns+` FROM users u
		 JOIN tenant_users tu ON tu.user_id = u.id
		 WHERE u.id = $1 AND tu.tenant_id = $2`,
		userID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("userRepo.GetByID: %w", err)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT `+userColumns+` FROM users u
		 JOIN tenant_users tu ON tu.user_id = u.id
		 WHERE u.email = $1
		 ORDER BY tu.created_at ASC
		 LIMIT 1`,
		email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("userRepo.GetByEmail: %w", err)
	}
	return &user, nil
}

func (r *userRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM tenant_users WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("userRepo.ListByTenant count: %w", err)
	}

	var users []domain.User
	err = r.db.SelectContext(ctx, &users,
		`SELECT `+userColumns+` FROM users u
		 JOIN tenant_users tu ON tu.user_id = u.id
		 WHERE tu.tenant_id = $1
		 ORDER BY u.created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("userRepo.ListByTenant: %w", err)
	}
	return users, total, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("userRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE users u SET email = $1, full_name = $2, is_active = $3, updated_at = $4
		 FROM tenant_users tu
		 WHERE u.id = $5 AND tu.user_id = u.id AND tu.tenant_id = $6`,
		user.Email, user.FullName, user.IsActive, user.UpdatedAt, user.ID, user.TenantID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("userRepo.Update user: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE tenant_users SET role = $1 WHERE user_id = $2 AND tenant_id = $3",
		user.Role, user.ID, user.TenantID)
	if err != nil {
		return fmt.Errorf("userRepo.Update membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("userRepo.Update commit: %w", err)
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, tenantID, userID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("userRepo.Delete begin: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"DELETE FROM tenant_users WHERE user_id = $1 AND tenant_id = $2", userID, tenantID)
	if err != nil {
		return fmt.Errorf("userRepo.Delete membership: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	// Remove the account itself once its last membership is gone.
	_, err = tx.ExecContext(ctx,
		`DELETE FROM users WHERE id = $1
		 AND NOT EXISTS (SELECT 1 FROM tenant_users WHERE user_id = $1)`,
		userID)
	if err != nil {
		return fmt.Errorf("userRepo.Delete user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("userRepo.Delete commit: %w", err)
	}
	return nil
}
