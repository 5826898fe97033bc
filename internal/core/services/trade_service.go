package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/core/validation"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/middleware"
)

const defaultListLimit = 20

// tradeService orchestrates the trade lifecycle: privilege check first,
// then business-rule validation, then reference-data resolution and
// persistence. It never mutates an existing version row except to flip
// its active flag or transition its status.
type tradeService struct {
	tradeRepo      portsrepo.TradeRepositoryFacade
	bookRepo       portsrepo.BookRepository
	cptyRepo       portsrepo.CounterpartyRepository
	tradeValidator *validation.TradeValidator
	privileges     *validation.UserPrivilegeValidator
	cashflowGen    *CashflowGenerator
	now            func() time.Time
}

// NewTradeService creates a trade lifecycle service.
func NewTradeService(
	tradeRepo portsrepo.TradeRepositoryFacade,
	bookRepo portsrepo.BookRepository,
	cptyRepo portsrepo.CounterpartyRepository,
	tradeValidator *validation.TradeValidator,
	privileges *validation.UserPrivilegeValidator,
	cashflowGen *CashflowGenerator,
) portssvc.TradeSvcFacade {
	return &tradeService{
		tradeRepo:      tradeRepo,
		bookRepo:       bookRepo,
		cptyRepo:       cptyRepo,
		tradeValidator: tradeValidator,
		privileges:     privileges,
		cashflowGen:    cashflowGen,
		now:            time.Now,
	}
}

// CreateTrade books a new trade at version 1. The privilege check runs
// against the proposed trade before any validation so that an ineligible
// caller learns nothing about the payload's validity.
func (s *tradeService) CreateTrade(ctx context.Context, req dto.CreateTradeRequest, inputterUserID string) (*domain.Trade, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	proposed := &domain.Trade{TraderUserName: req.TraderUserName}
	if !s.privileges.ValidateUserPrivileges(ctx, inputterUserID, domain.OperationCreate, proposed) {
		logger.Warn("Trade creation denied", slog.String("inputter", inputterUserID))
		return nil, fmt.Errorf("user %s cannot create trades for %s: %w", inputterUserID, req.TraderUserName, apperrors.ErrForbidden)
	}

	if result := s.tradeValidator.ValidateTradeBusinessRules(ctx, req); !result.IsValid() {
		logger.Warn("Trade failed business-rule validation", slog.Int("violations", len(result.Errors())))
		return nil, apperrors.NewValidationError(result.Errors())
	}

	book, cpty, err := s.resolveRefData(ctx, req)
	if err != nil {
		return nil, err
	}

	tradeID, err := s.allocateTradeID(ctx, req.TradeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rowID := uuid.NewString()
	legs, err := s.buildLegs(req, rowID)
	if err != nil {
		return nil, err
	}

	trade := domain.Trade{
		ID:               rowID,
		TradeID:          tradeID,
		Version:          1,
		Active:           true,
		Status:           initialStatus(req.TradeDate, now),
		TradeType:        req.TradeType,
		TradeDate:        req.TradeDate,
		StartDate:        req.StartDate,
		MaturityDate:     req.MaturityDate,
		BookID:           book.BookID,
		BookName:         book.BookName,
		CounterpartyID:   cpty.CounterpartyID,
		CounterpartyName: cpty.Name,
		TraderUserName:   req.TraderUserName,
		InputterUserName: inputterUserID,
		Legs:             legs,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     inputterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: inputterUserID,
		},
	}

	if err := s.tradeRepo.SaveNewTrade(ctx, trade); err != nil {
		logger.Error("Failed to save new trade", slog.Int64("trade_id", tradeID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("saving trade %d: %w", tradeID, err)
	}

	logger.Info("Trade booked",
		slog.Int64("trade_id", trade.TradeID),
		slog.String("status", string(trade.Status)),
		slog.String("trader", trade.TraderUserName),
	)
	return &trade, nil
}

// AmendTrade supersedes the active version with a full replacement at
// version+1. The previous row survives deactivated for audit.
func (s *tradeService) AmendTrade(ctx context.Context, tradeID int64, req dto.CreateTradeRequest, userID string) (*domain.Trade, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.tradeRepo.FindActiveByTradeID(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf("finding trade %d: %w", tradeID, err)
	}

	if !s.privileges.ValidateUserPrivileges(ctx, userID, domain.OperationAmend, existing) {
		logger.Warn("Trade amendment denied", slog.Int64("trade_id", tradeID), slog.String("user", userID))
		return nil, fmt.Errorf("user %s cannot amend trade %d: %w", userID, tradeID, apperrors.ErrForbidden)
	}

	if existing.Status.IsTerminal() {
		return nil, fmt.Errorf("trade %d is %s and cannot be amended: %w", tradeID, existing.Status, apperrors.ErrConflict)
	}

	if result := s.tradeValidator.ValidateTradeBusinessRules(ctx, req); !result.IsValid() {
		logger.Warn("Amendment failed business-rule validation", slog.Int64("trade_id", tradeID))
		return nil, apperrors.NewValidationError(result.Errors())
	}

	book, cpty, err := s.resolveRefData(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rowID := uuid.NewString()
	legs, err := s.buildLegs(req, rowID)
	if err != nil {
		return nil, err
	}

	amended := domain.Trade{
		ID:               rowID,
		TradeID:          tradeID,
		Version:          existing.Version + 1,
		Active:           true,
		Status:           domain.StatusAmended,
		TradeType:        req.TradeType,
		TradeDate:        req.TradeDate,
		StartDate:        req.StartDate,
		MaturityDate:     req.MaturityDate,
		BookID:           book.BookID,
		BookName:         book.BookName,
		CounterpartyID:   cpty.CounterpartyID,
		CounterpartyName: cpty.Name,
		TraderUserName:   req.TraderUserName,
		InputterUserName: userID,
		Legs:             legs,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.tradeRepo.AmendTrade(ctx, *existing, amended); err != nil {
		logger.Error("Failed to amend trade", slog.Int64("trade_id", tradeID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("amending trade %d: %w", tradeID, err)
	}

	logger.Info("Trade amended",
		slog.Int64("trade_id", tradeID),
		slog.Int("version", amended.Version),
	)
	return &amended, nil
}

// CancelTrade transitions the active version to CANCELLED in place.
func (s *tradeService) CancelTrade(ctx context.Context, tradeID int64, userID string) error {
	_, err := s.transitionStatus(ctx, tradeID, userID, domain.StatusCancelled)
	return err
}

// TerminateTrade transitions the active version to TERMINATED before its
// natural maturity and returns the updated trade.
func (s *tradeService) TerminateTrade(ctx context.Context, tradeID int64, userID string) (*domain.Trade, error) {
	return s.transitionStatus(ctx, tradeID, userID, domain.StatusTerminated)
}

func (s *tradeService) transitionStatus(ctx context.Context, tradeID int64, userID string, target domain.TradeStatus) (*domain.Trade, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.tradeRepo.FindActiveByTradeID(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf("finding trade %d: %w", tradeID, err)
	}

	if !s.privileges.ValidateUserPrivileges(ctx, userID, domain.OperationDelete, existing) {
		logger.Warn("Trade status transition denied",
			slog.Int64("trade_id", tradeID),
			slog.String("user", userID),
			slog.String("target_status", string(target)),
		)
		return nil, fmt.Errorf("user %s cannot %s trade %d: %w", userID, strings.ToLower(string(target)), tradeID, apperrors.ErrForbidden)
	}

	if existing.Status.IsTerminal() {
		return nil, fmt.Errorf("trade %d is already %s: %w", tradeID, existing.Status, apperrors.ErrConflict)
	}

	now := s.now()
	if err := s.tradeRepo.UpdateTradeStatus(ctx, tradeID, existing.Version, target, userID, now); err != nil {
		logger.Error("Failed to transition trade status", slog.Int64("trade_id", tradeID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("updating trade %d status: %w", tradeID, err)
	}

	existing.Status = target
	existing.LastUpdatedAt = now
	existing.LastUpdatedBy = userID

	logger.Info("Trade status transitioned",
		slog.Int64("trade_id", tradeID),
		slog.String("status", string(target)),
	)
	return existing, nil
}

// GetTrade retrieves the active version, enforcing VIEW privileges.
func (s *tradeService) GetTrade(ctx context.Context, tradeID int64, userID string) (*domain.Trade, error) {
	trade, err := s.tradeRepo.FindActiveByTradeID(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf("finding trade %d: %w", tradeID, err)
	}
	if !s.privileges.ValidateUserPrivileges(ctx, userID, domain.OperationView, trade) {
		return nil, fmt.Errorf("user %s cannot view trade %d: %w", userID, tradeID, apperrors.ErrForbidden)
	}
	return trade, nil
}

// ListTrades retrieves a page of active trades.
func (s *tradeService) ListTrades(ctx context.Context, params dto.ListTradesParams) (*dto.ListTradesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	trades, nextToken, err := s.tradeRepo.ListActiveTrades(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("listing trades: %w", err)
	}
	return &dto.ListTradesResponse{
		Trades:    dto.ToTradeResponses(trades),
		NextToken: nextToken,
	}, nil
}

// SearchTrades retrieves active trades matching the filter; all supplied
// criteria are combined with AND.
func (s *tradeService) SearchTrades(ctx context.Context, filter dto.TradeFilter) ([]domain.Trade, error) {
	criteria := portsrepo.TradeSearchCriteria{
		CounterpartyName: filter.CounterpartyName,
		BookName:         filter.BookName,
		Trader:           filter.Trader,
		Status:           filter.Status,
		TradeDateStart:   filter.TradeDateStart,
		TradeDateEnd:     filter.TradeDateEnd,
	}
	trades, err := s.tradeRepo.SearchTrades(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("searching trades: %w", err)
	}
	return trades, nil
}

// resolveRefData resolves the book and counterparty named in the request.
// Lookup misses are reported as field-level validation failures; the
// business-rule validators have already rejected inactive entries.
func (s *tradeService) resolveRefData(ctx context.Context, req dto.CreateTradeRequest) (*domain.Book, *domain.Counterparty, error) {
	book, err := s.bookRepo.FindBookByName(ctx, req.BookName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewValidationError(map[string][]string{
				"book": {"Book not found"},
			})
		}
		return nil, nil, fmt.Errorf("resolving book %q: %w", req.BookName, err)
	}

	cpty, err := s.cptyRepo.FindCounterpartyByName(ctx, req.CounterpartyName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewValidationError(map[string][]string{
				"counterparty": {"Counterparty not found"},
			})
		}
		return nil, nil, fmt.Errorf("resolving counterparty %q: %w", req.CounterpartyName, err)
	}

	return book, cpty, nil
}

// allocateTradeID returns the caller-supplied business key after a
// uniqueness check, or draws the next key from the sequence.
func (s *tradeService) allocateTradeID(ctx context.Context, requested *int64) (int64, error) {
	if requested == nil {
		id, err := s.tradeRepo.NextTradeID(ctx)
		if err != nil {
			return 0, fmt.Errorf("allocating trade id: %w", err)
		}
		return id, nil
	}

	_, err := s.tradeRepo.FindActiveByTradeID(ctx, *requested)
	if err == nil {
		return 0, fmt.Errorf("trade %d already exists: %w", *requested, apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return 0, fmt.Errorf("checking trade id %d: %w", *requested, err)
	}
	return *requested, nil
}

// buildLegs materializes the leg requests into domain legs with their
// cashflow schedules generated over [StartDate, MaturityDate). Schedule
// tokens that cannot be parsed surface as a field-level validation failure.
func (s *tradeService) buildLegs(req dto.CreateTradeRequest, tradeRowID string) ([]domain.TradeLeg, error) {
	legs := make([]domain.TradeLeg, 0, len(req.Legs))
	for _, legReq := range req.Legs {
		rate := decimal.Zero
		if legReq.Rate != nil {
			rate = *legReq.Rate
		}
		leg := domain.TradeLeg{
			LegID:          uuid.NewString(),
			TradeRowID:     tradeRowID,
			Notional:       legReq.Notional,
			Rate:           rate,
			LegType:        normalizeLegType(legReq.LegType),
			PayReceiveFlag: normalizePayReceive(legReq.PayReceiveFlag),
			IndexName:      legReq.IndexName,
			Currency:       legReq.Currency,
			Schedule:       legReq.Schedule,
		}

		cashflows, err := s.cashflowGen.GenerateCashflows(leg, req.StartDate, req.MaturityDate)
		if err != nil {
			return nil, apperrors.NewValidationError(map[string][]string{
				"tradeLegs": {err.Error()},
			})
		}
		leg.Cashflows = cashflows
		legs = append(legs, leg)
	}
	return legs, nil
}

// initialStatus is LIVE when the trade date has been reached, NEW for
// forward-dated bookings.
func initialStatus(tradeDate, now time.Time) domain.TradeStatus {
	if dateOnly(tradeDate).After(dateOnly(now)) {
		return domain.StatusNew
	}
	return domain.StatusLive
}

func normalizeLegType(raw string) domain.LegType {
	switch {
	case strings.EqualFold(raw, string(domain.LegTypeFixed)):
		return domain.LegTypeFixed
	case strings.EqualFold(raw, string(domain.LegTypeFloating)):
		return domain.LegTypeFloating
	default:
		return domain.LegType(raw)
	}
}

func normalizePayReceive(raw string) domain.PayReceive {
	switch {
	case strings.EqualFold(raw, string(domain.Pay)):
		return domain.Pay
	case strings.EqualFold(raw, string(domain.Receive)):
		return domain.Receive
	default:
		return domain.PayReceive(raw)
	}
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
