package validation

import (
	"context"
	"time"

	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/dto"
)

// BookLookup resolves a trading book by name.
type BookLookup interface {
	FindBookByName(ctx context.Context, name string) (*domain.Book, error)
}

// CounterpartyLookup resolves a counterparty by name.
type CounterpartyLookup interface {
	FindCounterpartyByName(ctx context.Context, name string) (*domain.Counterparty, error)
}

// maxTradeDateAge is how far in the past a trade date may be.
const maxTradeDateAge = 30

// TradeValidator checks a proposed trade against the booking business
// rules, delegating leg-pair consistency to TradeLegValidator and merging
// its errors. All applicable rules are evaluated in one pass; violations
// never surface as Go errors, only as entries in the ValidationResult.
type TradeValidator struct {
	books          BookLookup
	counterparties CounterpartyLookup
	legValidator   *TradeLegValidator
	now            func() time.Time
}

// NewTradeValidator creates a TradeValidator with its lookups injected.
func NewTradeValidator(books BookLookup, counterparties CounterpartyLookup, legValidator *TradeLegValidator) *TradeValidator {
	return &TradeValidator{
		books:          books,
		counterparties: counterparties,
		legValidator:   legValidator,
		now:            time.Now,
	}
}

// ValidateTradeBusinessRules returns a result aggregating every rule
// violation for the submission. Reference-data lookups that miss are
// treated as not applicable, never as a failure of the caller.
func (v *TradeValidator) ValidateTradeBusinessRules(ctx context.Context, req dto.CreateTradeRequest) *ValidationResult {
	result := NewValidationResult()

	tradeDate := dateOnly(req.TradeDate)
	startDate := dateOnly(req.StartDate)
	maturityDate := dateOnly(req.MaturityDate)

	if !tradeDate.IsZero() && !startDate.IsZero() && !maturityDate.IsZero() {
		if maturityDate.Before(startDate) {
			result.AddError("tradeMaturityDate", "Maturity date cannot be before start date")
		}
		if maturityDate.Before(tradeDate) {
			result.AddError("tradeMaturityDate", "Maturity date cannot be before trade date")
		}
		if startDate.Before(tradeDate) {
			result.AddError("tradeStartDate", "Start date cannot be before trade date")
		}
		// Exactly 30 days in the past is still acceptable.
		if tradeDate.Before(dateOnly(v.now()).AddDate(0, 0, -maxTradeDateAge)) {
			result.AddError("tradeDate", "Trade date cannot be more than 30 days in the past")
		}
	}

	if len(req.Legs) != 2 {
		result.AddError("tradeLegs", "Trade legs must have exactly 2 legs")
	} else {
		legResult := v.legValidator.ValidateTradeLegConsistency(req.Legs)
		result.AddMultipleErrors(legResult.Errors())
	}

	if req.BookName != "" {
		if book, err := v.books.FindBookByName(ctx, req.BookName); err == nil && book != nil && !book.Active {
			result.AddError("book", "Book must be active")
		}
	}

	if req.CounterpartyName != "" {
		if cp, err := v.counterparties.FindCounterpartyByName(ctx, req.CounterpartyName); err == nil && cp != nil && !cp.Active {
			result.AddError("counterparty", "Counterparty must be active")
		}
	}

	return result
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
