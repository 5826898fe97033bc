package repositories

import (
	"context"
	"time"

	"github.com/swapsdesk/tradebook/internal/core/domain"
)

// UserRepository defines operations over application users.
type UserRepository interface {
	// SaveUser inserts a user. Returns apperrors.ErrDuplicate when the
	// login id is already taken.
	SaveUser(ctx context.Context, user domain.ApplicationUser) error

	// FindUserByLoginID resolves a user by login id (case-insensitive).
	// Returns apperrors.ErrNotFound when no such user exists.
	FindUserByLoginID(ctx context.Context, loginID string) (*domain.ApplicationUser, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.ApplicationUser, error)

	// DeactivateUser marks a user inactive.
	DeactivateUser(ctx context.Context, loginID string, updatedBy string, updatedAt time.Time) error
}
