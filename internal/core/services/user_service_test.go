package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/core/services"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/utils"
)

func storedUser(loginID string, role domain.UserRole, active bool) *domain.ApplicationUser {
	return &domain.ApplicationUser{
		UserID:  "u-" + loginID,
		LoginID: loginID,
		Role:    role,
		Active:  active,
	}
}

func TestCreateUser_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindUserByLoginID", mock.Anything, "admin").
		Return(storedUser("admin", domain.RoleSuperuser, true), nil)
	userRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.ApplicationUser) bool {
		return u.LoginID == "tgrady" && u.Role == domain.RoleTraderSales && u.Active
	})).Return(nil)
	svc := services.NewUserService(userRepo)

	user, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		LoginID:   "tgrady",
		FirstName: "Toni",
		LastName:  "Grady",
		Role:      "trader_sales",
		Password:  "correct horse battery",
	}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleTraderSales, user.Role)
	assert.NotEmpty(t, user.UserID)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("correct horse battery", user.PasswordHash))
	userRepo.AssertExpectations(t)
}

func TestCreateUser_NonSuperuserForbidden(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindUserByLoginID", mock.Anything, "tgrady").
		Return(storedUser("tgrady", domain.RoleTraderSales, true), nil)
	svc := services.NewUserService(userRepo)

	user, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		LoginID:  "newhire",
		Role:     "SUPPORT",
		Password: "some password",
	}, "tgrady")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	userRepo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestCreateUser_DuplicateLoginID(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindUserByLoginID", mock.Anything, "admin").
		Return(storedUser("admin", domain.RoleSuperuser, true), nil)
	userRepo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)
	svc := services.NewUserService(userRepo)

	user, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		LoginID:  "tgrady",
		Role:     "TRADER_SALES",
		Password: "some password",
	}, "admin")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestDeactivateUser_SelfDeactivationRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindUserByLoginID", mock.Anything, "admin").
		Return(storedUser("admin", domain.RoleSuperuser, true), nil)
	svc := services.NewUserService(userRepo)

	err := svc.DeactivateUser(context.Background(), "ADMIN", "admin")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	userRepo.AssertNotCalled(t, "DeactivateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeactivateUser_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindUserByLoginID", mock.Anything, "admin").
		Return(storedUser("admin", domain.RoleSuperuser, true), nil)
	userRepo.On("DeactivateUser", mock.Anything, "tgrady", "admin", mock.AnythingOfType("time.Time")).Return(nil)
	svc := services.NewUserService(userRepo)

	err := svc.DeactivateUser(context.Background(), "tgrady", "admin")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthenticate_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery")
	assert.NoError(t, err)

	user := storedUser("tgrady", domain.RoleTraderSales, true)
	user.PasswordHash = hash

	userRepo := new(MockUserRepository)
	userRepo.On("FindUserByLoginID", mock.Anything, "tgrady").Return(user, nil)
	svc := services.NewUserService(userRepo)

	got, err := svc.Authenticate(context.Background(), "tgrady", "correct horse battery")

	assert.NoError(t, err)
	assert.Equal(t, "tgrady", got.LoginID)
}

func TestAuthenticate_BadCredentialsIndistinguishable(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery")
	assert.NoError(t, err)

	activeUser := storedUser("tgrady", domain.RoleTraderSales, true)
	activeUser.PasswordHash = hash
	inactiveUser := storedUser("former", domain.RoleTraderSales, false)
	inactiveUser.PasswordHash = hash

	userRepo := new(MockUserRepository)
	userRepo.On("FindUserByLoginID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
	userRepo.On("FindUserByLoginID", mock.Anything, "tgrady").Return(activeUser, nil)
	userRepo.On("FindUserByLoginID", mock.Anything, "former").Return(inactiveUser, nil)
	svc := services.NewUserService(userRepo)

	_, unknownErr := svc.Authenticate(context.Background(), "ghost", "whatever")
	_, wrongPassErr := svc.Authenticate(context.Background(), "tgrady", "wrong password")
	_, inactiveErr := svc.Authenticate(context.Background(), "former", "correct horse battery")

	assert.ErrorIs(t, unknownErr, apperrors.ErrForbidden)
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrForbidden)
	assert.ErrorIs(t, inactiveErr, apperrors.ErrForbidden)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	assert.Equal(t, wrongPassErr.Error(), inactiveErr.Error())
}
