package mapping

import (
	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/models"
)

// ToModelUser converts a domain ApplicationUser to a model User
func ToModelUser(d domain.ApplicationUser) models.User {
	return models.User{
		UserID:       d.UserID,
		LoginID:      d.LoginID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Role:         string(d.Role),
		PasswordHash: d.PasswordHash,
		Active:       d.Active,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain ApplicationUser
func ToDomainUser(m models.User) domain.ApplicationUser {
	return domain.ApplicationUser{
		UserID:       m.UserID,
		LoginID:      m.LoginID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         domain.UserRole(m.Role),
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
