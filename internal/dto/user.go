package dto

import (
	"time"

	"github.com/swapsdesk/tradebook/internal/core/domain"
)

// CreateUserRequest is the payload for provisioning an application user.
type CreateUserRequest struct {
	LoginID   string `json:"loginID" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" binding:"required,oneof=SUPERUSER TRADER_SALES MO SUPPORT"`
	Password  string `json:"password" binding:"required,min=8"`
}

// UserResponse is the API representation of an application user.
// The password hash is never exposed.
type UserResponse struct {
	UserID    string    `json:"userID"`
	LoginID   string    `json:"loginID"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(u *domain.ApplicationUser) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		LoginID:   u.LoginID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.ApplicationUser) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
