package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/core/validation"
)

type MockUserLookup struct {
	mock.Mock
}

var _ validation.UserLookup = (*MockUserLookup)(nil)

func (m *MockUserLookup) FindUserByLoginID(ctx context.Context, loginID string) (*domain.ApplicationUser, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationUser), args.Error(1)
}

func activeUser(loginID string, role domain.UserRole) *domain.ApplicationUser {
	return &domain.ApplicationUser{
		UserID:  "u-" + loginID,
		LoginID: loginID,
		Role:    role,
		Active:  true,
	}
}

func tradeOwnedBy(trader string) *domain.Trade {
	return &domain.Trade{TradeID: 1001, TraderUserName: trader}
}

func TestValidateUserPrivileges_RoleMatrix(t *testing.T) {
	allOps := []domain.Operation{
		domain.OperationCreate,
		domain.OperationAmend,
		domain.OperationView,
		domain.OperationDelete,
	}

	tests := []struct {
		name    string
		user    *domain.ApplicationUser
		trade   *domain.Trade
		allowed map[domain.Operation]bool
	}{
		{
			name:  "superuser may do anything on anyone's trade",
			user:  activeUser("admin", domain.RoleSuperuser),
			trade: tradeOwnedBy("someoneelse"),
			allowed: map[domain.Operation]bool{
				domain.OperationCreate: true,
				domain.OperationAmend:  true,
				domain.OperationView:   true,
				domain.OperationDelete: true,
			},
		},
		{
			name:  "trader has full access to own trades",
			user:  activeUser("tgrady", domain.RoleTraderSales),
			trade: tradeOwnedBy("tgrady"),
			allowed: map[domain.Operation]bool{
				domain.OperationCreate: true,
				domain.OperationAmend:  true,
				domain.OperationView:   true,
				domain.OperationDelete: true,
			},
		},
		{
			name:  "trader ownership match is case-insensitive",
			user:  activeUser("tgrady", domain.RoleTraderSales),
			trade: tradeOwnedBy("TGrady"),
			allowed: map[domain.Operation]bool{
				domain.OperationCreate: true,
				domain.OperationAmend:  true,
				domain.OperationView:   true,
				domain.OperationDelete: true,
			},
		},
		{
			name:    "trader has no access to another trader's trades",
			user:    activeUser("tgrady", domain.RoleTraderSales),
			trade:   tradeOwnedBy("mkhan"),
			allowed: map[domain.Operation]bool{},
		},
		{
			name:  "middle office may amend and view any trade",
			user:  activeUser("ops1", domain.RoleMiddleOffice),
			trade: tradeOwnedBy("tgrady"),
			allowed: map[domain.Operation]bool{
				domain.OperationAmend: true,
				domain.OperationView:  true,
			},
		},
		{
			name:  "support is read-only",
			user:  activeUser("helpdesk", domain.RoleSupport),
			trade: tradeOwnedBy("tgrady"),
			allowed: map[domain.Operation]bool{
				domain.OperationView: true,
			},
		},
		{
			name:    "unrecognised role denies everything",
			user:    activeUser("contractor", "AUDITOR"),
			trade:   tradeOwnedBy("tgrady"),
			allowed: map[domain.Operation]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserLookup)
			users.On("FindUserByLoginID", mock.Anything, tt.user.LoginID).Return(tt.user, nil)
			v := validation.NewUserPrivilegeValidator(users)

			for _, op := range allOps {
				got := v.ValidateUserPrivileges(context.Background(), tt.user.LoginID, op, tt.trade)
				assert.Equal(t, tt.allowed[op], got, "operation %s", op)
			}
		})
	}
}

func TestValidateUserPrivileges_LowercaseRoleStillRecognised(t *testing.T) {
	users := new(MockUserLookup)
	user := activeUser("admin", "superuser")
	users.On("FindUserByLoginID", mock.Anything, "admin").Return(user, nil)
	v := validation.NewUserPrivilegeValidator(users)

	assert.True(t, v.ValidateUserPrivileges(context.Background(), "admin", domain.OperationDelete, tradeOwnedBy("tgrady")))
}

func TestValidateUserPrivileges_MissingInputsDenyWithoutLookup(t *testing.T) {
	users := new(MockUserLookup)
	v := validation.NewUserPrivilegeValidator(users)
	trade := tradeOwnedBy("tgrady")

	assert.False(t, v.ValidateUserPrivileges(context.Background(), "", domain.OperationView, trade))
	assert.False(t, v.ValidateUserPrivileges(context.Background(), "tgrady", "", trade))
	assert.False(t, v.ValidateUserPrivileges(context.Background(), "tgrady", domain.OperationView, nil))

	users.AssertNotCalled(t, "FindUserByLoginID", mock.Anything, mock.Anything)
}

func TestValidateUserPrivileges_UnknownUserDenies(t *testing.T) {
	users := new(MockUserLookup)
	users.On("FindUserByLoginID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
	v := validation.NewUserPrivilegeValidator(users)

	assert.False(t, v.ValidateUserPrivileges(context.Background(), "ghost", domain.OperationView, tradeOwnedBy("tgrady")))
}

func TestValidateUserPrivileges_InactiveUserDenies(t *testing.T) {
	users := new(MockUserLookup)
	user := activeUser("tgrady", domain.RoleSuperuser)
	user.Active = false
	users.On("FindUserByLoginID", mock.Anything, "tgrady").Return(user, nil)
	v := validation.NewUserPrivilegeValidator(users)

	assert.False(t, v.ValidateUserPrivileges(context.Background(), "tgrady", domain.OperationView, tradeOwnedBy("tgrady")))
}

func TestValidateUserPrivileges_EmptyRoleDenies(t *testing.T) {
	users := new(MockUserLookup)
	user := activeUser("tgrady", "")
	users.On("FindUserByLoginID", mock.Anything, "tgrady").Return(user, nil)
	v := validation.NewUserPrivilegeValidator(users)

	assert.False(t, v.ValidateUserPrivileges(context.Background(), "tgrady", domain.OperationView, tradeOwnedBy("tgrady")))
}
