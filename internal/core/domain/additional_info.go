package domain

import "time"

// EntityType identifies which aggregate an AdditionalInfo record extends.
type EntityType string

const (
	EntityTrade        EntityType = "TRADE"
	EntityBook         EntityType = "BOOK"
	EntityCounterparty EntityType = "COUNTERPARTY"
)

// FieldType constrains the value representation of an AdditionalInfo record.
type FieldType string

const (
	FieldString  FieldType = "STRING"
	FieldNumber  FieldType = "NUMBER"
	FieldDate    FieldType = "DATE"
	FieldBoolean FieldType = "BOOLEAN"
)

// FieldSettlementInstructions is the AdditionalInfo field name under which
// a trade's settlement instructions are stored.
const FieldSettlementInstructions = "settlementInstructions"

// AdditionalInfo is a generic key/value extension record attached to an
// entity by type+id. Updates are versioned: the prior row is deactivated
// and a new row inserted with version+1.
type AdditionalInfo struct {
	ID              string     `json:"id"` // Primary key (UUID)
	EntityType      EntityType `json:"entityType"`
	EntityID        int64      `json:"entityID"`
	FieldName       string     `json:"fieldName"`
	FieldValue      string     `json:"fieldValue"`
	FieldType       FieldType  `json:"fieldType"`
	Version         int        `json:"version"`
	Active          bool       `json:"active"`
	DeactivatedDate *time.Time `json:"deactivatedDate,omitempty"`
	AuditFields
}
