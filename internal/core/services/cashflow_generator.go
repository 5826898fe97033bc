package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swapsdesk/tradebook/internal/core/domain"
)

// monthsPerYear is the denominator of the accrual fraction.
var monthsPerYear = decimal.NewFromInt(12)

// oneHundred converts a percentage rate to a fraction.
var oneHundred = decimal.NewFromInt(100)

// CashflowGenerator produces the deterministic cashflow schedule for a
// trade leg. It is pure and synchronous; safe to call from any goroutine.
type CashflowGenerator struct{}

// NewCashflowGenerator creates a CashflowGenerator.
func NewCashflowGenerator() *CashflowGenerator {
	return &CashflowGenerator{}
}

// ParseScheduleFrequency converts a calculation-schedule token into its
// interval in months. Tokens of the form "<n>M" and "<n>Y" are accepted,
// along with the frequency words used in reference data.
func ParseScheduleFrequency(schedule string) (int, error) {
	token := strings.ToUpper(strings.TrimSpace(schedule))
	switch token {
	case "MONTHLY":
		return 1, nil
	case "QUARTERLY":
		return 3, nil
	case "SEMI-ANNUAL", "SEMI-ANNUALLY", "SEMIANNUAL":
		return 6, nil
	case "ANNUAL", "ANNUALLY", "YEARLY":
		return 12, nil
	}

	if n := len(token); n >= 2 {
		count, err := strconv.Atoi(token[:n-1])
		if err == nil && count > 0 {
			switch token[n-1] {
			case 'M':
				return count, nil
			case 'Y':
				return count * 12, nil
			}
		}
	}

	return 0, fmt.Errorf("unknown calculation schedule %q", schedule)
}

// GenerateCashflows produces one cashflow per schedule period, stepping
// from periodStart to periodEnd inclusive of the final boundary. Period
// boundaries are computed from periodStart in interval multiples so month
// stepping does not compound drift; a short final stub is clamped to
// periodEnd. A 1M schedule over exactly one year yields 12 cashflows.
func (g *CashflowGenerator) GenerateCashflows(leg domain.TradeLeg, periodStart, periodEnd time.Time) ([]domain.Cashflow, error) {
	intervalMonths, err := ParseScheduleFrequency(leg.Schedule)
	if err != nil {
		return nil, err
	}
	if !periodEnd.After(periodStart) {
		return nil, fmt.Errorf("period end %s must be after period start %s", periodEnd.Format("2006-01-02"), periodStart.Format("2006-01-02"))
	}

	value := g.CalculateCashflowValue(leg, intervalMonths)
	rateFixed := leg.LegType == domain.LegTypeFixed

	var cashflows []domain.Cashflow
	for i := 0; ; i++ {
		start := periodStart.AddDate(0, i*intervalMonths, 0)
		if !start.Before(periodEnd) {
			break
		}
		end := periodStart.AddDate(0, (i+1)*intervalMonths, 0)
		if end.After(periodEnd) {
			end = periodEnd
		}
		cashflows = append(cashflows, domain.Cashflow{
			CashflowID:  uuid.NewString(),
			LegID:       leg.LegID,
			PeriodStart: start,
			PeriodEnd:   end,
			Value:       value,
			Currency:    leg.Currency,
			RateFixed:   rateFixed,
		})
	}

	return cashflows, nil
}

// CalculateCashflowValue computes the value of one schedule period.
// Fixed legs accrue notional * (rate/100) * (intervalMonths/12), rounded
// half-up to two decimal places (currency minor units). Floating legs have
// no computable value until the index is fixed; they carry zero and are
// marked pending via Cashflow.RateFixed.
func (g *CashflowGenerator) CalculateCashflowValue(leg domain.TradeLeg, intervalMonths int) decimal.Decimal {
	if leg.LegType != domain.LegTypeFixed {
		return decimal.Zero
	}
	accrual := decimal.NewFromInt(int64(intervalMonths)).Div(monthsPerYear)
	return leg.Notional.Mul(leg.Rate).Div(oneHundred).Mul(accrual).Round(2)
}
