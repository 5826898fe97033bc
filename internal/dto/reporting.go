package dto

import "github.com/shopspring/decimal"

// TradeSummaryResponse aggregates the authenticated trader's portfolio.
type TradeSummaryResponse struct {
	TotalTradesByStatus      map[string]int64            `json:"totalTradesByStatus"`
	TotalNotionalByCurrency  map[string]decimal.Decimal  `json:"totalNotionalByCurrency"`
	TradesByTypeCounterparty map[string]map[string]int64 `json:"tradesByTypeByCounterparty"`
}

// DailySummaryResponse reports booked-trade activity for today and yesterday.
type DailySummaryResponse struct {
	TradeCountToday     int64           `json:"tradeCountToday"`
	TradeCountYesterday int64           `json:"tradeCountYesterday"`
	NotionalToday       decimal.Decimal `json:"notionalToday"`
}
