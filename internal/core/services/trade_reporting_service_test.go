package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/core/services"
)

func reportingTrade(status domain.TradeStatus, tradeType, counterparty string, notionals map[string]int64) domain.Trade {
	trade := domain.Trade{
		TradeID:          1001,
		Version:          1,
		Active:           true,
		Status:           status,
		TradeType:        tradeType,
		CounterpartyName: counterparty,
		TraderUserName:   "tgrady",
	}
	for currency, notional := range notionals {
		trade.Legs = append(trade.Legs, domain.TradeLeg{
			Notional: decimal.NewFromInt(notional),
			Currency: currency,
		})
	}
	return trade
}

func TestSummarize_AggregatesPortfolio(t *testing.T) {
	tradeRepo := new(MockTradeRepository)
	tradeRepo.On("FindActiveByTrader", mock.Anything, "tgrady").Return([]domain.Trade{
		reportingTrade(domain.StatusLive, "SWAP", "Global Markets Ltd", map[string]int64{"USD": 1000000, "EUR": 500000}),
		reportingTrade(domain.StatusLive, "SWAP", "Global Markets Ltd", map[string]int64{"USD": 2000000}),
		reportingTrade(domain.StatusAmended, "FX_SWAP", "Northbridge Capital", map[string]int64{"USD": 750000}),
	}, nil)
	svc := services.NewTradeReportingService(tradeRepo)

	summary, err := svc.Summarize(context.Background(), "tgrady")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalTradesByStatus["LIVE"])
	assert.Equal(t, int64(1), summary.TotalTradesByStatus["AMENDED"])
	assert.True(t, decimal.NewFromInt(3750000).Equal(summary.TotalNotionalByCurrency["USD"]))
	assert.True(t, decimal.NewFromInt(500000).Equal(summary.TotalNotionalByCurrency["EUR"]))
	assert.Equal(t, int64(2), summary.TradesByTypeCounterparty["SWAP"]["Global Markets Ltd"])
	assert.Equal(t, int64(1), summary.TradesByTypeCounterparty["FX_SWAP"]["Northbridge Capital"])
}

func TestSummarize_EmptyPortfolio(t *testing.T) {
	tradeRepo := new(MockTradeRepository)
	tradeRepo.On("FindActiveByTrader", mock.Anything, "tgrady").Return([]domain.Trade{}, nil)
	svc := services.NewTradeReportingService(tradeRepo)

	summary, err := svc.Summarize(context.Background(), "tgrady")

	assert.NoError(t, err)
	assert.Empty(t, summary.TotalTradesByStatus)
	assert.Empty(t, summary.TotalNotionalByCurrency)
	assert.Empty(t, summary.TradesByTypeCounterparty)
}

func TestDailySummary(t *testing.T) {
	year, month, day := time.Now().UTC().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	bookedToday := reportingTrade(domain.StatusLive, "SWAP", "Global Markets Ltd", nil)
	bookedToday.Legs = []domain.TradeLeg{
		{Notional: decimal.NewFromInt(1000000), Currency: "USD"},
		{Notional: decimal.NewFromInt(1000000), Currency: "USD"},
	}
	bookedToday.TradeDate = today
	bookedEarlier := reportingTrade(domain.StatusLive, "SWAP", "Global Markets Ltd", map[string]int64{"USD": 9000000})
	bookedEarlier.TradeDate = yesterday

	tradeRepo := new(MockTradeRepository)
	tradeRepo.On("CountByTraderAndTradeDate", mock.Anything, "tgrady", today).Return(int64(1), nil)
	tradeRepo.On("CountByTraderAndTradeDate", mock.Anything, "tgrady", yesterday).Return(int64(3), nil)
	tradeRepo.On("FindActiveByTrader", mock.Anything, "tgrady").
		Return([]domain.Trade{bookedToday, bookedEarlier}, nil)
	svc := services.NewTradeReportingService(tradeRepo)

	summary, err := svc.DailySummary(context.Background(), "tgrady")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), summary.TradeCountToday)
	assert.Equal(t, int64(3), summary.TradeCountYesterday)
	// Yesterday's notional must not leak into today's total.
	assert.True(t, decimal.NewFromInt(2000000).Equal(summary.NotionalToday), "got %s", summary.NotionalToday)
}

func TestGetTradesByBookID(t *testing.T) {
	tradeRepo := new(MockTradeRepository)
	want := []domain.Trade{reportingTrade(domain.StatusLive, "SWAP", "Global Markets Ltd", map[string]int64{"USD": 1000000})}
	tradeRepo.On("FindActiveByBookID", mock.Anything, "b1").Return(want, nil)
	svc := services.NewTradeReportingService(tradeRepo)

	trades, err := svc.GetTradesByBookID(context.Background(), "b1")

	assert.NoError(t, err)
	assert.Equal(t, want, trades)
}
