package models

import "github.com/shopspring/decimal"

// TradeLeg represents one side of a swap, belonging to a trade version row.
type TradeLeg struct {
	LegID          string          `json:"legID"`      // Primary Key (UUID)
	TradeRowID     string          `json:"tradeRowID"` // FK -> Trade.ID
	Notional       decimal.Decimal `json:"notional"`
	Rate           decimal.Decimal `json:"rate"` // Zero for floating legs
	LegType        string          `json:"legType"`
	PayReceiveFlag string          `json:"payReceiveFlag"`
	IndexName      string          `json:"indexName"` // Nullable
	Currency       string          `json:"currency"`
	Schedule       string          `json:"calculationSchedule"`
}
