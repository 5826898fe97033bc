package models

// User represents an application user of the trading system.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	LoginID      string `json:"loginID"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
	Active       bool   `json:"active"`
	AuditFields
}
