package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/core/services"
)

func scheduleLeg(legType domain.LegType, schedule string, notional, rate int64) domain.TradeLeg {
	return domain.TradeLeg{
		LegID:          "leg-1",
		Notional:       decimal.NewFromInt(notional),
		Rate:           decimal.NewFromInt(rate),
		LegType:        legType,
		PayReceiveFlag: domain.Pay,
		Currency:       "USD",
		Schedule:       schedule,
	}
}

func TestParseScheduleFrequency(t *testing.T) {
	tests := []struct {
		schedule string
		months   int
	}{
		{"1M", 1},
		{"3M", 3},
		{"6M", 6},
		{"12M", 12},
		{"1Y", 12},
		{"2Y", 24},
		{"Monthly", 1},
		{"quarterly", 3},
		{"SEMI-ANNUAL", 6},
		{"Annually", 12},
		{" 3m ", 3},
	}
	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			months, err := services.ParseScheduleFrequency(tt.schedule)
			assert.NoError(t, err)
			assert.Equal(t, tt.months, months)
		})
	}
}

func TestParseScheduleFrequency_Unknown(t *testing.T) {
	for _, schedule := range []string{"", "weekly", "0M", "-3M", "3D", "M"} {
		t.Run(schedule, func(t *testing.T) {
			_, err := services.ParseScheduleFrequency(schedule)
			assert.Error(t, err)
		})
	}
}

func TestGenerateCashflows_MonthlyOverOneYear(t *testing.T) {
	g := services.NewCashflowGenerator()
	leg := scheduleLeg(domain.LegTypeFixed, "1M", 1000000, 3)
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	cashflows, err := g.GenerateCashflows(leg, start, end)

	assert.NoError(t, err)
	assert.Len(t, cashflows, 12)
	assert.Equal(t, start, cashflows[0].PeriodStart)
	assert.Equal(t, start.AddDate(0, 1, 0), cashflows[0].PeriodEnd)
	assert.Equal(t, end, cashflows[11].PeriodEnd)
	for i := 1; i < len(cashflows); i++ {
		assert.Equal(t, cashflows[i-1].PeriodEnd, cashflows[i].PeriodStart, "period %d must abut period %d", i, i-1)
	}
}

func TestGenerateCashflows_QuarterlyFixedValue(t *testing.T) {
	g := services.NewCashflowGenerator()
	leg := domain.TradeLeg{
		LegID:          "leg-1",
		Notional:       decimal.NewFromInt(10000000),
		Rate:           decimal.NewFromFloat(3.5),
		LegType:        domain.LegTypeFixed,
		PayReceiveFlag: domain.Receive,
		Currency:       "USD",
		Schedule:       "3M",
	}
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	cashflows, err := g.GenerateCashflows(leg, start, end)

	assert.NoError(t, err)
	assert.Len(t, cashflows, 4)
	// 10,000,000 * 3.5% * 3/12
	want := decimal.NewFromInt(87500)
	for _, cf := range cashflows {
		assert.True(t, want.Equal(cf.Value), "got %s", cf.Value)
		assert.True(t, cf.RateFixed)
		assert.Equal(t, "USD", cf.Currency)
		assert.Equal(t, "leg-1", cf.LegID)
		assert.NotEmpty(t, cf.CashflowID)
	}
}

func TestGenerateCashflows_FloatingLegPendingFixing(t *testing.T) {
	g := services.NewCashflowGenerator()
	leg := scheduleLeg(domain.LegTypeFloating, "6M", 5000000, 0)
	leg.IndexName = "SOFR"
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	cashflows, err := g.GenerateCashflows(leg, start, end)

	assert.NoError(t, err)
	assert.Len(t, cashflows, 2)
	for _, cf := range cashflows {
		assert.True(t, cf.Value.IsZero())
		assert.False(t, cf.RateFixed)
	}
}

func TestGenerateCashflows_FinalStubClamped(t *testing.T) {
	g := services.NewCashflowGenerator()
	leg := scheduleLeg(domain.LegTypeFixed, "3M", 1000000, 4)
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 7, 0) // two full quarters plus a one-month stub

	cashflows, err := g.GenerateCashflows(leg, start, end)

	assert.NoError(t, err)
	assert.Len(t, cashflows, 3)
	assert.Equal(t, start.AddDate(0, 6, 0), cashflows[2].PeriodStart)
	assert.Equal(t, end, cashflows[2].PeriodEnd)
}

func TestGenerateCashflows_EndNotAfterStart(t *testing.T) {
	g := services.NewCashflowGenerator()
	leg := scheduleLeg(domain.LegTypeFixed, "1M", 1000000, 3)
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := g.GenerateCashflows(leg, start, start)
	assert.Error(t, err)

	_, err = g.GenerateCashflows(leg, start, start.AddDate(0, -1, 0))
	assert.Error(t, err)
}

func TestGenerateCashflows_UnknownSchedule(t *testing.T) {
	g := services.NewCashflowGenerator()
	leg := scheduleLeg(domain.LegTypeFixed, "weekly", 1000000, 3)
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := g.GenerateCashflows(leg, start, start.AddDate(1, 0, 0))
	assert.Error(t, err)
}

func TestCalculateCashflowValue_RoundsToMinorUnits(t *testing.T) {
	g := services.NewCashflowGenerator()
	leg := domain.TradeLeg{
		Notional: decimal.NewFromInt(1000001),
		Rate:     decimal.NewFromFloat(3.33),
		LegType:  domain.LegTypeFixed,
	}

	// 1,000,001 * 3.33% * 1/12 = 2775.002775, rounded to 2775.00
	value := g.CalculateCashflowValue(leg, 1)
	assert.True(t, decimal.NewFromFloat(2775.00).Equal(value), "got %s", value)
}
