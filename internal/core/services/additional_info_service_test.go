package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	"github.com/swapsdesk/tradebook/internal/core/services"
	"github.com/swapsdesk/tradebook/internal/core/validation"
	"github.com/swapsdesk/tradebook/internal/dto"
)

type MockAdditionalInfoRepository struct {
	mock.Mock
}

var _ portsrepo.AdditionalInfoRepository = (*MockAdditionalInfoRepository)(nil)

func (m *MockAdditionalInfoRepository) FindActiveByEntityField(ctx context.Context, entityType domain.EntityType, entityID int64, fieldName string) (*domain.AdditionalInfo, error) {
	args := m.Called(ctx, entityType, entityID, fieldName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdditionalInfo), args.Error(1)
}

func (m *MockAdditionalInfoRepository) ReplaceFieldValue(ctx context.Context, previous *domain.AdditionalInfo, next domain.AdditionalInfo) error {
	args := m.Called(ctx, previous, next)
	return args.Error(0)
}

func settlementFixture() (*MockAdditionalInfoRepository, *MockTradeRepository, *MockUserRepository) {
	return new(MockAdditionalInfoRepository), new(MockTradeRepository), new(MockUserRepository)
}

func TestUpdateSettlementInstructions_FirstVersion(t *testing.T) {
	infoRepo, tradeRepo, userRepo := settlementFixture()
	userRepo.On("FindUserByLoginID", mock.Anything, "ops1").Return(&domain.ApplicationUser{
		LoginID: "ops1", Role: domain.RoleMiddleOffice, Active: true,
	}, nil)
	tradeRepo.On("FindActiveByTradeID", mock.Anything, int64(1001)).
		Return(existingTrade(1001, 1, domain.StatusLive, "tgrady"), nil)
	infoRepo.On("FindActiveByEntityField", mock.Anything, domain.EntityTrade, int64(1001), domain.FieldSettlementInstructions).
		Return(nil, apperrors.ErrNotFound)
	infoRepo.On("ReplaceFieldValue", mock.Anything, (*domain.AdditionalInfo)(nil), mock.MatchedBy(func(next domain.AdditionalInfo) bool {
		return next.Version == 1 && next.Active && next.FieldValue == "Settle via DTC account 998877"
	})).Return(nil)

	svc := services.NewAdditionalInfoService(infoRepo, tradeRepo, validation.NewUserPrivilegeValidator(userRepo))

	resp, err := svc.UpdateSettlementInstructions(context.Background(), 1001, dto.SettlementInstructionsUpdateRequest{
		FieldValue: "Settle via DTC account 998877",
	}, "ops1")

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Version)
	assert.Equal(t, "Settle via DTC account 998877", resp.FieldValue)
	infoRepo.AssertExpectations(t)
}

func TestUpdateSettlementInstructions_SupersedesPrevious(t *testing.T) {
	infoRepo, tradeRepo, userRepo := settlementFixture()
	userRepo.On("FindUserByLoginID", mock.Anything, "ops1").Return(&domain.ApplicationUser{
		LoginID: "ops1", Role: domain.RoleMiddleOffice, Active: true,
	}, nil)
	tradeRepo.On("FindActiveByTradeID", mock.Anything, int64(1001)).
		Return(existingTrade(1001, 1, domain.StatusLive, "tgrady"), nil)
	previous := &domain.AdditionalInfo{
		ID:         "info-1",
		EntityType: domain.EntityTrade,
		EntityID:   1001,
		FieldName:  domain.FieldSettlementInstructions,
		FieldValue: "Settle via DTC account 998877",
		Version:    2,
		Active:     true,
	}
	infoRepo.On("FindActiveByEntityField", mock.Anything, domain.EntityTrade, int64(1001), domain.FieldSettlementInstructions).
		Return(previous, nil)
	infoRepo.On("ReplaceFieldValue", mock.Anything, previous, mock.MatchedBy(func(next domain.AdditionalInfo) bool {
		return next.Version == 3 && next.ID != previous.ID
	})).Return(nil)

	svc := services.NewAdditionalInfoService(infoRepo, tradeRepo, validation.NewUserPrivilegeValidator(userRepo))

	resp, err := svc.UpdateSettlementInstructions(context.Background(), 1001, dto.SettlementInstructionsUpdateRequest{
		FieldValue: "Settle via Euroclear account 112233",
	}, "ops1")

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Version)
	infoRepo.AssertExpectations(t)
}

func TestUpdateSettlementInstructions_SupportForbidden(t *testing.T) {
	infoRepo, tradeRepo, userRepo := settlementFixture()
	userRepo.On("FindUserByLoginID", mock.Anything, "helpdesk").Return(&domain.ApplicationUser{
		LoginID: "helpdesk", Role: domain.RoleSupport, Active: true,
	}, nil)
	tradeRepo.On("FindActiveByTradeID", mock.Anything, int64(1001)).
		Return(existingTrade(1001, 1, domain.StatusLive, "tgrady"), nil)

	svc := services.NewAdditionalInfoService(infoRepo, tradeRepo, validation.NewUserPrivilegeValidator(userRepo))

	resp, err := svc.UpdateSettlementInstructions(context.Background(), 1001, dto.SettlementInstructionsUpdateRequest{
		FieldValue: "Settle via DTC account 998877",
	}, "helpdesk")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	infoRepo.AssertNotCalled(t, "ReplaceFieldValue", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSettlementInstructions_NotFoundPassthrough(t *testing.T) {
	infoRepo, tradeRepo, userRepo := settlementFixture()
	userRepo.On("FindUserByLoginID", mock.Anything, "helpdesk").Return(&domain.ApplicationUser{
		LoginID: "helpdesk", Role: domain.RoleSupport, Active: true,
	}, nil)
	tradeRepo.On("FindActiveByTradeID", mock.Anything, int64(1001)).
		Return(existingTrade(1001, 1, domain.StatusLive, "tgrady"), nil)
	infoRepo.On("FindActiveByEntityField", mock.Anything, domain.EntityTrade, int64(1001), domain.FieldSettlementInstructions).
		Return(nil, apperrors.ErrNotFound)

	svc := services.NewAdditionalInfoService(infoRepo, tradeRepo, validation.NewUserPrivilegeValidator(userRepo))

	resp, err := svc.GetSettlementInstructions(context.Background(), 1001, "helpdesk")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
