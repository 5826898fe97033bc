package domain

import "time"

// TradeStatus indicates the lifecycle state of a trade version.
type TradeStatus string

const (
	StatusNew        TradeStatus = "NEW"
	StatusLive       TradeStatus = "LIVE"
	StatusAmended    TradeStatus = "AMENDED"
	StatusTerminated TradeStatus = "TERMINATED"
	StatusCancelled  TradeStatus = "CANCELLED"
)

// IsTerminal reports whether no further lifecycle transitions are allowed.
func (s TradeStatus) IsTerminal() bool {
	return s == StatusTerminated || s == StatusCancelled
}

// Operation is a lifecycle action a user can attempt on a trade.
type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationAmend  Operation = "AMEND"
	OperationView   Operation = "VIEW"
	OperationDelete Operation = "DELETE"
)

// Trade is one immutable version of a booked swap trade. The business key
// TradeID is shared across versions; ID is unique per version row. At most
// one version per TradeID is active at a time.
type Trade struct {
	ID               string      `json:"id"`      // Primary key of this version row (UUID)
	TradeID          int64       `json:"tradeID"` // Business key, stable across versions
	Version          int         `json:"version"` // Starts at 1, +1 per amendment
	Active           bool        `json:"active"`
	Status           TradeStatus `json:"status"`
	TradeType        string      `json:"tradeType"` // e.g. SWAP, FX_SWAP
	TradeDate        time.Time   `json:"tradeDate"`
	StartDate        time.Time   `json:"startDate"`
	MaturityDate     time.Time   `json:"maturityDate"`
	BookID           string      `json:"bookID"`
	BookName         string      `json:"bookName"`
	CounterpartyID   string      `json:"counterpartyID"`
	CounterpartyName string      `json:"counterpartyName"`
	TraderUserName   string      `json:"traderUserName"`   // Owning trader login ID
	InputterUserName string      `json:"inputterUserName"` // User who keyed the trade
	Legs             []TradeLeg  `json:"legs,omitempty"`   // Exactly two
	AuditFields
}
