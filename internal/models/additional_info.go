package models

import "time"

// AdditionalInfo represents a versioned key/value extension record
// attached to an entity by type+id.
type AdditionalInfo struct {
	ID              string     `json:"id"` // Primary Key (UUID)
	EntityType      string     `json:"entityType"`
	EntityID        int64      `json:"entityID"`
	FieldName       string     `json:"fieldName"`
	FieldValue      string     `json:"fieldValue"`
	FieldType       string     `json:"fieldType"`
	Version         int        `json:"version"`
	Active          bool       `json:"active"`
	DeactivatedDate *time.Time `json:"deactivatedDate"` // Nullable
	AuditFields
}
