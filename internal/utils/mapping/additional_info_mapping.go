package mapping

import (
	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/models"
)

// ToModelAdditionalInfo converts a domain AdditionalInfo to a model AdditionalInfo
func ToModelAdditionalInfo(d domain.AdditionalInfo) models.AdditionalInfo {
	return models.AdditionalInfo{
		ID:              d.ID,
		EntityType:      string(d.EntityType),
		EntityID:        d.EntityID,
		FieldName:       d.FieldName,
		FieldValue:      d.FieldValue,
		FieldType:       string(d.FieldType),
		Version:         d.Version,
		Active:          d.Active,
		DeactivatedDate: d.DeactivatedDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdditionalInfo converts a model AdditionalInfo to a domain AdditionalInfo
func ToDomainAdditionalInfo(m models.AdditionalInfo) domain.AdditionalInfo {
	return domain.AdditionalInfo{
		ID:              m.ID,
		EntityType:      domain.EntityType(m.EntityType),
		EntityID:        m.EntityID,
		FieldName:       m.FieldName,
		FieldValue:      m.FieldValue,
		FieldType:       domain.FieldType(m.FieldType),
		Version:         m.Version,
		Active:          m.Active,
		DeactivatedDate: m.DeactivatedDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
