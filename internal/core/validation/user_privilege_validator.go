package validation

import (
	"context"
	"strings"

	"github.com/swapsdesk/tradebook/internal/core/domain"
)

// UserLookup resolves an application user by login id.
type UserLookup interface {
	FindUserByLoginID(ctx context.Context, loginID string) (*domain.ApplicationUser, error)
}

// UserPrivilegeValidator decides whether a caller's role and trade
// ownership permit a requested operation.
type UserPrivilegeValidator struct {
	users UserLookup
}

// NewUserPrivilegeValidator creates a UserPrivilegeValidator with its user
// lookup injected.
func NewUserPrivilegeValidator(users UserLookup) *UserPrivilegeValidator {
	return &UserPrivilegeValidator{users: users}
}

// ValidateUserPrivileges reports whether the user may perform the
// operation on the trade. Ownership is determined solely by the trade's
// designated trader, never the inputting user. Missing inputs deny
// immediately without a repository lookup; unknown users, missing roles
// and inactive users deny. Role, operation and owner comparisons are
// case-insensitive.
func (v *UserPrivilegeValidator) ValidateUserPrivileges(ctx context.Context, userID string, operation domain.Operation, trade *domain.Trade) bool {
	if userID == "" || operation == "" || trade == nil {
		return false
	}

	user, err := v.users.FindUserByLoginID(ctx, userID)
	if err != nil || user == nil || user.Role == "" || !user.Active {
		return false
	}

	switch strings.ToUpper(string(user.Role)) {
	case string(domain.RoleSuperuser):
		return true
	case string(domain.RoleTraderSales):
		// Full access, but only to trades the user is responsible for.
		return strings.EqualFold(trade.TraderUserName, userID)
	case string(domain.RoleMiddleOffice):
		return operationIs(operation, domain.OperationAmend) || operationIs(operation, domain.OperationView)
	case string(domain.RoleSupport):
		return operationIs(operation, domain.OperationView)
	default:
		return false
	}
}

func operationIs(op domain.Operation, want domain.Operation) bool {
	return strings.EqualFold(string(op), string(want))
}
