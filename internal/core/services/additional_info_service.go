package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/core/validation"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/middleware"
)

// additionalInfoService manages the versioned key/value extension records
// attached to trades. Settlement instructions are the only field exposed
// over the API today; updates follow the same deactivate-then-insert
// pattern as trade amendments.
type additionalInfoService struct {
	infoRepo   portsrepo.AdditionalInfoRepository
	tradeRepo  portsrepo.TradeReader
	privileges *validation.UserPrivilegeValidator
	now        func() time.Time
}

// NewAdditionalInfoService creates an additional-info service.
func NewAdditionalInfoService(
	infoRepo portsrepo.AdditionalInfoRepository,
	tradeRepo portsrepo.TradeReader,
	privileges *validation.UserPrivilegeValidator,
) portssvc.AdditionalInfoSvcFacade {
	return &additionalInfoService{
		infoRepo:   infoRepo,
		tradeRepo:  tradeRepo,
		privileges: privileges,
		now:        time.Now,
	}
}

// GetSettlementInstructions retrieves the active settlement instructions
// for a trade, enforcing VIEW privileges on the trade itself.
func (s *additionalInfoService) GetSettlementInstructions(ctx context.Context, tradeID int64, userID string) (*dto.SettlementInstructionsResponse, error) {
	trade, err := s.tradeRepo.FindActiveByTradeID(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf("finding trade %d: %w", tradeID, err)
	}
	if !s.privileges.ValidateUserPrivileges(ctx, userID, domain.OperationView, trade) {
		return nil, fmt.Errorf("user %s cannot view trade %d: %w", userID, tradeID, apperrors.ErrForbidden)
	}

	info, err := s.infoRepo.FindActiveByEntityField(ctx, domain.EntityTrade, tradeID, domain.FieldSettlementInstructions)
	if err != nil {
		return nil, fmt.Errorf("finding settlement instructions for trade %d: %w", tradeID, err)
	}

	return &dto.SettlementInstructionsResponse{
		TradeID:    tradeID,
		FieldValue: info.FieldValue,
		Version:    info.Version,
	}, nil
}

// UpdateSettlementInstructions replaces the settlement instructions with a
// new version, deactivating the previous record when one exists. Requires
// AMEND privileges on the trade.
func (s *additionalInfoService) UpdateSettlementInstructions(ctx context.Context, tradeID int64, req dto.SettlementInstructionsUpdateRequest, userID string) (*dto.SettlementInstructionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trade, err := s.tradeRepo.FindActiveByTradeID(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf("finding trade %d: %w", tradeID, err)
	}
	if !s.privileges.ValidateUserPrivileges(ctx, userID, domain.OperationAmend, trade) {
		logger.Warn("Settlement instructions update denied", slog.Int64("trade_id", tradeID), slog.String("user", userID))
		return nil, fmt.Errorf("user %s cannot amend trade %d: %w", userID, tradeID, apperrors.ErrForbidden)
	}

	previous, err := s.infoRepo.FindActiveByEntityField(ctx, domain.EntityTrade, tradeID, domain.FieldSettlementInstructions)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("finding settlement instructions for trade %d: %w", tradeID, err)
	}

	version := 1
	if previous != nil {
		version = previous.Version + 1
	}

	now := s.now()
	next := domain.AdditionalInfo{
		ID:         uuid.NewString(),
		EntityType: domain.EntityTrade,
		EntityID:   tradeID,
		FieldName:  domain.FieldSettlementInstructions,
		FieldValue: req.FieldValue,
		FieldType:  domain.FieldString,
		Version:    version,
		Active:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.infoRepo.ReplaceFieldValue(ctx, previous, next); err != nil {
		logger.Error("Failed to update settlement instructions", slog.Int64("trade_id", tradeID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("updating settlement instructions for trade %d: %w", tradeID, err)
	}

	logger.Info("Settlement instructions updated", slog.Int64("trade_id", tradeID), slog.Int("version", version))
	return &dto.SettlementInstructionsResponse{
		TradeID:    tradeID,
		FieldValue: next.FieldValue,
		Version:    next.Version,
	}, nil
}
