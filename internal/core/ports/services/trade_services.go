package services

import (
	"context"

	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/dto"
)

// TradeSvcFacade exposes the trade lifecycle operations to the transport
// layer. Implementations report privilege failures as apperrors.ErrForbidden,
// business-rule failures as *apperrors.ValidationError, missing active
// versions as apperrors.ErrNotFound and invalid state transitions as
// apperrors.ErrConflict.
type TradeSvcFacade interface {
	// CreateTrade books a new trade at version 1.
	CreateTrade(ctx context.Context, req dto.CreateTradeRequest, inputterUserID string) (*domain.Trade, error)

	// AmendTrade supersedes the active version with a new one (version+1).
	AmendTrade(ctx context.Context, tradeID int64, req dto.CreateTradeRequest, userID string) (*domain.Trade, error)

	// CancelTrade transitions the active version to CANCELLED.
	CancelTrade(ctx context.Context, tradeID int64, userID string) error

	// TerminateTrade transitions the active version to TERMINATED before
	// natural maturity.
	TerminateTrade(ctx context.Context, tradeID int64, userID string) (*domain.Trade, error)

	// GetTrade retrieves the active version for a business key.
	GetTrade(ctx context.Context, tradeID int64, userID string) (*domain.Trade, error)

	// ListTrades retrieves a paginated list of active trades.
	ListTrades(ctx context.Context, params dto.ListTradesParams) (*dto.ListTradesResponse, error)

	// SearchTrades retrieves active trades matching the filter.
	SearchTrades(ctx context.Context, filter dto.TradeFilter) ([]domain.Trade, error)
}

// TradeReportingSvcFacade exposes read-side portfolio views.
type TradeReportingSvcFacade interface {
	// GetTradesByTrader retrieves the active trades a trader owns.
	GetTradesByTrader(ctx context.Context, traderUserName string) ([]domain.Trade, error)

	// GetTradesByBookID retrieves the active trades allocated to a book.
	GetTradesByBookID(ctx context.Context, bookID string) ([]domain.Trade, error)

	// Summarize aggregates a trader's active portfolio.
	Summarize(ctx context.Context, traderUserName string) (*dto.TradeSummaryResponse, error)

	// DailySummary reports booking activity for today and yesterday.
	DailySummary(ctx context.Context, traderUserName string) (*dto.DailySummaryResponse, error)
}

// AdditionalInfoSvcFacade manages key/value extension data on trades.
type AdditionalInfoSvcFacade interface {
	// GetSettlementInstructions retrieves the active settlement instructions
	// for a trade.
	GetSettlementInstructions(ctx context.Context, tradeID int64, userID string) (*dto.SettlementInstructionsResponse, error)

	// UpdateSettlementInstructions replaces the settlement instructions for a
	// trade with a new version.
	UpdateSettlementInstructions(ctx context.Context, tradeID int64, req dto.SettlementInstructionsUpdateRequest, userID string) (*dto.SettlementInstructionsResponse, error)
}
