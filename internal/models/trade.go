package models

import "time"

// TradeStatus indicates the lifecycle state of a trade version row.
type TradeStatus string

const (
	New        TradeStatus = "NEW"
	Live       TradeStatus = "LIVE"
	Amended    TradeStatus = "AMENDED"
	Terminated TradeStatus = "TERMINATED"
	Cancelled  TradeStatus = "CANCELLED"
)

// Trade represents one version row of a booked trade. The business key
// TradeID repeats across versions; (TradeID, Version) is unique and at
// most one row per TradeID has Active set.
type Trade struct {
	ID               string      `json:"id"`      // Primary Key (UUID)
	TradeID          int64       `json:"tradeID"` // Business key, from sequence
	Version          int         `json:"version"`
	Active           bool        `json:"active"`
	Status           TradeStatus `json:"status"`
	TradeType        string      `json:"tradeType"` // Nullable
	TradeDate        time.Time   `json:"tradeDate"`
	StartDate        time.Time   `json:"startDate"`
	MaturityDate     time.Time   `json:"maturityDate"`
	BookID           string      `json:"bookID"`         // FK -> Book
	CounterpartyID   string      `json:"counterpartyID"` // FK -> Counterparty
	TraderUserName   string      `json:"traderUserName"`
	InputterUserName string      `json:"inputterUserName"`
	// Relationships - legs loaded separately
	AuditFields
}
