package domain

import "github.com/shopspring/decimal"

// LegType distinguishes fixed-rate legs from floating-index legs.
type LegType string

const (
	LegTypeFixed    LegType = "Fixed"
	LegTypeFloating LegType = "Floating"
)

// PayReceive is the direction of a leg from the book's perspective.
type PayReceive string

const (
	Pay     PayReceive = "Pay"
	Receive PayReceive = "Receive"
)

// TradeLeg is one side of a two-sided swap, belonging to exactly one trade
// version. Rate is meaningful only for fixed legs; IndexName only for
// floating legs.
type TradeLeg struct {
	LegID          string          `json:"legID"` // Primary key (UUID)
	TradeRowID     string          `json:"-"`     // FK -> Trade.ID (version row)
	Notional       decimal.Decimal `json:"notional"`
	Rate           decimal.Decimal `json:"rate"`
	LegType        LegType         `json:"legType"`
	PayReceiveFlag PayReceive      `json:"payReceiveFlag"`
	IndexName      string          `json:"indexName,omitempty"`
	Currency       string          `json:"currency"`
	Schedule       string          `json:"calculationSchedule"` // Frequency token, e.g. "1M", "3M"
	Cashflows      []Cashflow      `json:"cashflows,omitempty"`
}
