package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashflow is a scheduled, valued payment obligation derived from a leg's
// calculation schedule. Generated deterministically; never user-edited.
// Floating-leg cashflows carry a zero value with RateFixed=false until a
// fixing source resolves the index for the period.
type Cashflow struct {
	CashflowID  string          `json:"cashflowID"` // Primary key (UUID)
	LegID       string          `json:"-"`          // FK -> TradeLeg.LegID
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	RateFixed   bool            `json:"rateFixed"` // False while a floating fixing is pending
}
