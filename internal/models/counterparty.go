package models

// Counterparty represents an external trading counterparty.
type Counterparty struct {
	CounterpartyID string `json:"counterpartyID"` // Primary Key (UUID)
	Name           string `json:"name"`
	Active         bool   `json:"active"`
	AuditFields
}
