package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/swapsdesk/tradebook/internal/core/domain"
)

// TradeLegRequest is one leg of a trade submission. Business-rule checks
// (leg type vocabulary, rate positivity, index presence) are performed by
// the validators so that all violations are reported together; binding
// only enforces shape.
type TradeLegRequest struct {
	Notional       decimal.Decimal  `json:"notional" binding:"required"`
	Rate           *decimal.Decimal `json:"rate,omitempty"`
	LegType        string           `json:"legType" binding:"required"`
	PayReceiveFlag string           `json:"payReceiveFlag" binding:"required"`
	IndexName      string           `json:"indexName,omitempty"`
	Currency       string           `json:"currency" binding:"required"`
	Schedule       string           `json:"calculationSchedule" binding:"required"`
}

// CreateTradeRequest is the payload for booking a new trade. The same shape
// is used for amendments (the business key comes from the URL).
type CreateTradeRequest struct {
	TradeID          *int64            `json:"tradeID,omitempty"` // Optional; allocated when absent
	TradeType        string            `json:"tradeType,omitempty"`
	TradeDate        time.Time         `json:"tradeDate" binding:"required"`
	StartDate        time.Time         `json:"startDate" binding:"required"`
	MaturityDate     time.Time         `json:"maturityDate" binding:"required"`
	BookName         string            `json:"bookName" binding:"required"`
	CounterpartyName string            `json:"counterpartyName" binding:"required"`
	TraderUserName   string            `json:"traderUserName" binding:"required"`
	Legs             []TradeLegRequest `json:"tradeLegs" binding:"required"`
}

// CashflowResponse is a single generated cashflow in API responses.
type CashflowResponse struct {
	CashflowID  string          `json:"cashflowID"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	RateFixed   bool            `json:"rateFixed"`
}

// TradeLegResponse is one leg of a trade in API responses.
type TradeLegResponse struct {
	LegID          string             `json:"legID"`
	Notional       decimal.Decimal    `json:"notional"`
	Rate           decimal.Decimal    `json:"rate"`
	LegType        string             `json:"legType"`
	PayReceiveFlag string             `json:"payReceiveFlag"`
	IndexName      string             `json:"indexName,omitempty"`
	Currency       string             `json:"currency"`
	Schedule       string             `json:"calculationSchedule"`
	Cashflows      []CashflowResponse `json:"cashflows,omitempty"`
}

// TradeResponse is the full representation of a trade version.
type TradeResponse struct {
	TradeID          int64              `json:"tradeID"`
	Version          int                `json:"version"`
	Active           bool               `json:"active"`
	Status           string             `json:"status"`
	TradeType        string             `json:"tradeType,omitempty"`
	TradeDate        time.Time          `json:"tradeDate"`
	StartDate        time.Time          `json:"startDate"`
	MaturityDate     time.Time          `json:"maturityDate"`
	BookName         string             `json:"bookName"`
	CounterpartyName string             `json:"counterpartyName"`
	TraderUserName   string             `json:"traderUserName"`
	InputterUserName string             `json:"inputterUserName"`
	Legs             []TradeLegResponse `json:"tradeLegs"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// TradeFilter carries the optional search criteria for trade queries.
// All supplied criteria are combined with AND; name matches are
// case-insensitive.
type TradeFilter struct {
	CounterpartyName string     `form:"counterpartyName"`
	BookName         string     `form:"bookName"`
	Trader           string     `form:"trader"`
	Status           string     `form:"status"`
	TradeDateStart   *time.Time `form:"tradeDateStart" time_format:"2006-01-02"`
	TradeDateEnd     *time.Time `form:"tradeDateEnd" time_format:"2006-01-02"`
}

// ListTradesParams holds pagination parameters for trade listing.
type ListTradesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTradesResponse is a page of trades plus the token for the next page.
type ListTradesResponse struct {
	Trades    []TradeResponse `json:"trades"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToTradeResponse converts a domain trade (with legs and cashflows) to its
// API representation.
func ToTradeResponse(t *domain.Trade) TradeResponse {
	legs := make([]TradeLegResponse, len(t.Legs))
	for i, leg := range t.Legs {
		cashflows := make([]CashflowResponse, len(leg.Cashflows))
		for j, cf := range leg.Cashflows {
			cashflows[j] = CashflowResponse{
				CashflowID:  cf.CashflowID,
				PeriodStart: cf.PeriodStart,
				PeriodEnd:   cf.PeriodEnd,
				Value:       cf.Value,
				Currency:    cf.Currency,
				RateFixed:   cf.RateFixed,
			}
		}
		legs[i] = TradeLegResponse{
			LegID:          leg.LegID,
			Notional:       leg.Notional,
			Rate:           leg.Rate,
			LegType:        string(leg.LegType),
			PayReceiveFlag: string(leg.PayReceiveFlag),
			IndexName:      leg.IndexName,
			Currency:       leg.Currency,
			Schedule:       leg.Schedule,
			Cashflows:      cashflows,
		}
	}
	return TradeResponse{
		TradeID:          t.TradeID,
		Version:          t.Version,
		Active:           t.Active,
		Status:           string(t.Status),
		TradeType:        t.TradeType,
		TradeDate:        t.TradeDate,
		StartDate:        t.StartDate,
		MaturityDate:     t.MaturityDate,
		BookName:         t.BookName,
		CounterpartyName: t.CounterpartyName,
		TraderUserName:   t.TraderUserName,
		InputterUserName: t.InputterUserName,
		Legs:             legs,
		CreatedAt:        t.CreatedAt,
	}
}

// ToTradeResponses converts a slice of domain trades.
func ToTradeResponses(trades []domain.Trade) []TradeResponse {
	out := make([]TradeResponse, len(trades))
	for i := range trades {
		out[i] = ToTradeResponse(&trades[i])
	}
	return out
}
