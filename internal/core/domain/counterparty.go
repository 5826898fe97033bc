package domain

// Counterparty is the external party on the other side of a trade.
type Counterparty struct {
	CounterpartyID string `json:"counterpartyID"` // Primary key (UUID)
	Name           string `json:"name"`
	Active         bool   `json:"active"`
	AuditFields
}
