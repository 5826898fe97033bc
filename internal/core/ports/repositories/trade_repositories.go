package repositories

import (
	"context"
	"time"

	"github.com/swapsdesk/tradebook/internal/core/domain"
)

// TradeSearchCriteria holds the optional criteria for trade searches.
// Zero-valued fields are ignored; name matching is case-insensitive.
type TradeSearchCriteria struct {
	CounterpartyName string
	BookName         string
	Trader           string
	Status           string
	TradeDateStart   *time.Time
	TradeDateEnd     *time.Time
}

// TradeReader defines read operations for trade data. Returned trades have
// legs and cashflows populated.
type TradeReader interface {
	// FindActiveByTradeID retrieves the single active version for a business key.
	// Returns apperrors.ErrNotFound when no active version exists.
	FindActiveByTradeID(ctx context.Context, tradeID int64) (*domain.Trade, error)

	// ListActiveTrades retrieves a paginated list of active trade versions
	// using token-based pagination.
	ListActiveTrades(ctx context.Context, limit int, nextToken *string) ([]domain.Trade, *string, error)

	// SearchTrades retrieves active trade versions matching the criteria.
	SearchTrades(ctx context.Context, criteria TradeSearchCriteria) ([]domain.Trade, error)

	// FindActiveByTrader retrieves all active trades owned by a trader.
	FindActiveByTrader(ctx context.Context, traderUserName string) ([]domain.Trade, error)

	// FindActiveByBookID retrieves all active trades allocated to a book.
	FindActiveByBookID(ctx context.Context, bookID string) ([]domain.Trade, error)

	// CountByTraderAndTradeDate counts a trader's active trades dealt on a date.
	CountByTraderAndTradeDate(ctx context.Context, traderUserName string, tradeDate time.Time) (int64, error)
}

// TradeWriter defines write operations for trade data. Each method is
// atomic: all writes for the call happen in one database transaction.
type TradeWriter interface {
	// NextTradeID allocates the next business key.
	NextTradeID(ctx context.Context) (int64, error)

	// SaveNewTrade persists a version row together with its legs and cashflows.
	SaveNewTrade(ctx context.Context, trade domain.Trade) error

	// AmendTrade deactivates the previous version and inserts the amended one
	// (legs and cashflows included). The deactivation is conditional on the
	// previous row still being the active version; if another writer amended
	// first, apperrors.ErrConflict is returned and nothing is persisted.
	AmendTrade(ctx context.Context, previous domain.Trade, amended domain.Trade) error

	// UpdateTradeStatus transitions the status of an active version in place,
	// conditional on (tradeID, version, active). Zero rows matched yields
	// apperrors.ErrConflict.
	UpdateTradeStatus(ctx context.Context, tradeID int64, version int, status domain.TradeStatus, updatedBy string, updatedAt time.Time) error
}

// TradeRepositoryFacade combines all trade repository interfaces.
type TradeRepositoryFacade interface {
	TradeReader
	TradeWriter
}
