package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	"github.com/swapsdesk/tradebook/internal/models"
	"github.com/swapsdesk/tradebook/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new repository for application users.
func NewPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// SaveUser inserts a user row.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.ApplicationUser) error {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, login_id, first_name, last_name, role, password_hash, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.LoginID,
		modelUser.FirstName,
		modelUser.LastName,
		modelUser.Role,
		modelUser.PasswordHash,
		modelUser.Active,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on login_id
			return fmt.Errorf("%w: user with login id %s already exists", apperrors.ErrDuplicate, modelUser.LoginID)
		}
		return apperrors.NewAppError(500, "failed to save user "+modelUser.LoginID, err)
	}
	return nil
}

// FindUserByLoginID resolves a user by login id, case-insensitively.
func (r *PgxUserRepository) FindUserByLoginID(ctx context.Context, loginID string) (*domain.ApplicationUser, error) {
	query := `
		SELECT user_id, login_id, first_name, last_name, role, password_hash, active, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE LOWER(login_id) = LOWER($1);
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, loginID).Scan(
		&m.UserID,
		&m.LoginID,
		&m.FirstName,
		&m.LastName,
		&m.Role,
		&m.PasswordHash,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by login id "+loginID, err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// ListUsers retrieves all users ordered by login id.
func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.ApplicationUser, error) {
	query := `
		SELECT user_id, login_id, first_name, last_name, role, password_hash, active, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		ORDER BY login_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	users := []domain.ApplicationUser{}
	for rows.Next() {
		var m models.User
		if err := rows.Scan(
			&m.UserID,
			&m.LoginID,
			&m.FirstName,
			&m.LastName,
			&m.Role,
			&m.PasswordHash,
			&m.Active,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		users = append(users, mapping.ToDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}
	return users, nil
}

// DeactivateUser marks a user inactive.
func (r *PgxUserRepository) DeactivateUser(ctx context.Context, loginID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE users
		SET active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE LOWER(login_id) = LOWER($3);
	`
	tag, err := r.Pool.Exec(ctx, query, updatedAt, updatedBy, loginID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate user "+loginID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
