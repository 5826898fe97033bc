package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/middleware"
	"github.com/swapsdesk/tradebook/internal/utils"
)

// userService manages application users. Only superusers may provision or
// deactivate users.
type userService struct {
	userRepo portsrepo.UserRepository
	now      func() time.Time
}

// NewUserService creates a user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, now: time.Now}
}

// CreateUser provisions a user with a bcrypt-hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.ApplicationUser, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.requireSuperuser(ctx, creatorUserID); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.now()
	user := domain.ApplicationUser{
		UserID:       uuid.NewString(),
		LoginID:      req.LoginID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         domain.UserRole(strings.ToUpper(req.Role)),
		PasswordHash: hash,
		Active:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("login id %s: %w", req.LoginID, apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save user", slog.String("login_id", req.LoginID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("saving user %s: %w", req.LoginID, err)
	}

	logger.Info("User created", slog.String("login_id", user.LoginID), slog.String("role", string(user.Role)))
	return &user, nil
}

// GetUserByLoginID resolves a user by login id.
func (s *userService) GetUserByLoginID(ctx context.Context, loginID string) (*domain.ApplicationUser, error) {
	user, err := s.userRepo.FindUserByLoginID(ctx, loginID)
	if err != nil {
		return nil, fmt.Errorf("finding user %s: %w", loginID, err)
	}
	return user, nil
}

// ListUsers retrieves all users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.ApplicationUser, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// DeactivateUser marks a user inactive. Users cannot deactivate themselves.
func (s *userService) DeactivateUser(ctx context.Context, loginID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.requireSuperuser(ctx, requestingUserID); err != nil {
		return err
	}
	if strings.EqualFold(loginID, requestingUserID) {
		return fmt.Errorf("user %s cannot deactivate their own account: %w", requestingUserID, apperrors.ErrConflict)
	}

	if err := s.userRepo.DeactivateUser(ctx, loginID, requestingUserID, s.now()); err != nil {
		logger.Error("Failed to deactivate user", slog.String("login_id", loginID), slog.String("error", err.Error()))
		return fmt.Errorf("deactivating user %s: %w", loginID, err)
	}

	logger.Info("User deactivated", slog.String("login_id", loginID))
	return nil
}

// Authenticate verifies credentials. Bad credentials and inactive users
// are reported identically so login probing learns nothing.
func (s *userService) Authenticate(ctx context.Context, loginID string, password string) (*domain.ApplicationUser, error) {
	user, err := s.userRepo.FindUserByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("finding user %s: %w", loginID, err)
	}

	if !user.Active || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
	}

	return user, nil
}

func (s *userService) requireSuperuser(ctx context.Context, userID string) error {
	caller, err := s.userRepo.FindUserByLoginID(ctx, userID)
	if err != nil {
		return fmt.Errorf("finding user %s: %w", userID, err)
	}
	if !caller.Active || !strings.EqualFold(string(caller.Role), string(domain.RoleSuperuser)) {
		return fmt.Errorf("user %s lacks administration privileges: %w", userID, apperrors.ErrForbidden)
	}
	return nil
}
