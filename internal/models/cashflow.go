package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashflow represents one generated schedule period of a trade leg.
type Cashflow struct {
	CashflowID  string          `json:"cashflowID"` // Primary Key (UUID)
	LegID       string          `json:"legID"`      // FK -> TradeLeg
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	RateFixed   bool            `json:"rateFixed"`
}
