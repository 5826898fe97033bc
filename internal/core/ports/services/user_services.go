package services

import (
	"context"

	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/dto"
)

// UserSvcFacade exposes application-user management and authentication.
type UserSvcFacade interface {
	// CreateUser provisions a user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.ApplicationUser, error)

	// GetUserByLoginID resolves a user by login id.
	GetUserByLoginID(ctx context.Context, loginID string) (*domain.ApplicationUser, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.ApplicationUser, error)

	// DeactivateUser marks a user inactive.
	DeactivateUser(ctx context.Context, loginID string, requestingUserID string) error

	// Authenticate verifies credentials and returns the active user.
	// Returns apperrors.ErrForbidden for bad credentials or inactive users.
	Authenticate(ctx context.Context, loginID string, password string) (*domain.ApplicationUser, error)
}

// RefDataSvcFacade exposes book and counterparty reference data.
type RefDataSvcFacade interface {
	// ListBooks retrieves all trading books.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// ListCounterparties retrieves all counterparties.
	ListCounterparties(ctx context.Context) ([]domain.Counterparty, error)
}
