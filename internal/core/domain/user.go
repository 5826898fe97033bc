package domain

// UserRole is the trading-desk role an application user holds. Role
// comparisons are case-insensitive throughout.
type UserRole string

const (
	RoleSuperuser    UserRole = "SUPERUSER"
	RoleTraderSales  UserRole = "TRADER_SALES"
	RoleMiddleOffice UserRole = "MO"
	RoleSupport      UserRole = "SUPPORT"
)

// ApplicationUser is a user of the trading system, identified by LoginID.
type ApplicationUser struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	LoginID      string   `json:"loginID"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	Active       bool     `json:"active"`
	AuditFields
}
