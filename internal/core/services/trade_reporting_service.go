package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/dto"
)

// tradeReportingService provides read-side portfolio views. Aggregations
// run in memory over the trader's active trades; no privilege checks are
// applied because every view is scoped to the caller's own portfolio.
type tradeReportingService struct {
	tradeRepo portsrepo.TradeReader
	now       func() time.Time
}

// NewTradeReportingService creates a trade reporting service.
func NewTradeReportingService(tradeRepo portsrepo.TradeReader) portssvc.TradeReportingSvcFacade {
	return &tradeReportingService{tradeRepo: tradeRepo, now: time.Now}
}

// GetTradesByTrader retrieves the active trades a trader owns.
func (s *tradeReportingService) GetTradesByTrader(ctx context.Context, traderUserName string) ([]domain.Trade, error) {
	trades, err := s.tradeRepo.FindActiveByTrader(ctx, traderUserName)
	if err != nil {
		return nil, fmt.Errorf("finding trades for trader %s: %w", traderUserName, err)
	}
	return trades, nil
}

// GetTradesByBookID retrieves the active trades allocated to a book.
func (s *tradeReportingService) GetTradesByBookID(ctx context.Context, bookID string) ([]domain.Trade, error) {
	trades, err := s.tradeRepo.FindActiveByBookID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("finding trades for book %s: %w", bookID, err)
	}
	return trades, nil
}

// Summarize aggregates a trader's active portfolio by status, by leg
// currency and by trade type per counterparty.
func (s *tradeReportingService) Summarize(ctx context.Context, traderUserName string) (*dto.TradeSummaryResponse, error) {
	trades, err := s.tradeRepo.FindActiveByTrader(ctx, traderUserName)
	if err != nil {
		return nil, fmt.Errorf("summarizing trades for trader %s: %w", traderUserName, err)
	}

	summary := &dto.TradeSummaryResponse{
		TotalTradesByStatus:      make(map[string]int64),
		TotalNotionalByCurrency:  make(map[string]decimal.Decimal),
		TradesByTypeCounterparty: make(map[string]map[string]int64),
	}

	for i := range trades {
		trade := &trades[i]
		summary.TotalTradesByStatus[string(trade.Status)]++

		for _, leg := range trade.Legs {
			total, ok := summary.TotalNotionalByCurrency[leg.Currency]
			if !ok {
				total = decimal.Zero
			}
			summary.TotalNotionalByCurrency[leg.Currency] = total.Add(leg.Notional)
		}

		byCpty := summary.TradesByTypeCounterparty[trade.TradeType]
		if byCpty == nil {
			byCpty = make(map[string]int64)
			summary.TradesByTypeCounterparty[trade.TradeType] = byCpty
		}
		byCpty[trade.CounterpartyName]++
	}

	return summary, nil
}

// DailySummary reports booking counts for today and yesterday plus
// today's total booked notional across all legs.
func (s *tradeReportingService) DailySummary(ctx context.Context, traderUserName string) (*dto.DailySummaryResponse, error) {
	today := dateOnly(s.now())
	yesterday := today.AddDate(0, 0, -1)

	countToday, err := s.tradeRepo.CountByTraderAndTradeDate(ctx, traderUserName, today)
	if err != nil {
		return nil, fmt.Errorf("counting today's trades for %s: %w", traderUserName, err)
	}
	countYesterday, err := s.tradeRepo.CountByTraderAndTradeDate(ctx, traderUserName, yesterday)
	if err != nil {
		return nil, fmt.Errorf("counting yesterday's trades for %s: %w", traderUserName, err)
	}

	trades, err := s.tradeRepo.FindActiveByTrader(ctx, traderUserName)
	if err != nil {
		return nil, fmt.Errorf("loading trades for %s: %w", traderUserName, err)
	}

	notionalToday := decimal.Zero
	for i := range trades {
		if !dateOnly(trades[i].TradeDate).Equal(today) {
			continue
		}
		for _, leg := range trades[i].Legs {
			notionalToday = notionalToday.Add(leg.Notional)
		}
	}

	return &dto.DailySummaryResponse{
		TradeCountToday:     countToday,
		TradeCountYesterday: countYesterday,
		NotionalToday:       notionalToday,
	}, nil
}
