package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/handlers"
	"github.com/swapsdesk/tradebook/internal/middleware"
	"github.com/swapsdesk/tradebook/internal/utils"
)

// --- Mock TradeService ---

type MockTradeService struct {
	mock.Mock
}

var _ portssvc.TradeSvcFacade = (*MockTradeService)(nil)

func (m *MockTradeService) CreateTrade(ctx context.Context, req dto.CreateTradeRequest, inputterUserID string) (*domain.Trade, error) {
	args := m.Called(ctx, req, inputterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) AmendTrade(ctx context.Context, tradeID int64, req dto.CreateTradeRequest, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) CancelTrade(ctx context.Context, tradeID int64, userID string) error {
	args := m.Called(ctx, tradeID, userID)
	return args.Error(0)
}

func (m *MockTradeService) TerminateTrade(ctx context.Context, tradeID int64, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) GetTrade(ctx context.Context, tradeID int64, userID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) ListTrades(ctx context.Context, params dto.ListTradesParams) (*dto.ListTradesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTradesResponse), args.Error(1)
}

func (m *MockTradeService) SearchTrades(ctx context.Context, filter dto.TradeFilter) ([]domain.Trade, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

// --- Test Suite ---

type TradeHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockTradeService *MockTradeService
	jwtSecret        string
}

func (suite *TradeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTradeService = new(MockTradeService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTradeRoutes(v1, suite.mockTradeService)
}

func TestTradeHandler(t *testing.T) {
	suite.Run(t, new(TradeHandlerTestSuite))
}

func (suite *TradeHandlerTestSuite) generateTestToken(userID string) string {
	token, _, err := utils.GenerateJWT(userID, suite.jwtSecret, "tradebook-test", time.Hour)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TradeHandlerTestSuite) postTrade(userID string, body dto.CreateTradeRequest) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/trades", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func bookingPayload() dto.CreateTradeRequest {
	today := time.Now().UTC()
	rate := decimal.NewFromFloat(3.5)
	return dto.CreateTradeRequest{
		TradeType:        "SWAP",
		TradeDate:        today,
		StartDate:        today,
		MaturityDate:     today.AddDate(1, 0, 0),
		BookName:         "RATES_DESK_1",
		CounterpartyName: "Global Markets Ltd",
		TraderUserName:   "tgrady",
		Legs: []dto.TradeLegRequest{
			{
				Notional:       decimal.NewFromInt(1000000),
				Rate:           &rate,
				LegType:        "Fixed",
				PayReceiveFlag: "Pay",
				Currency:       "USD",
				Schedule:       "3M",
			},
			{
				Notional:       decimal.NewFromInt(1000000),
				LegType:        "Floating",
				PayReceiveFlag: "Receive",
				IndexName:      "SOFR",
				Currency:       "USD",
				Schedule:       "3M",
			},
		},
	}
}

// --- Test Cases ---

func (suite *TradeHandlerTestSuite) TestCreateTrade_Success() {
	booked := &domain.Trade{
		ID:             "row-1",
		TradeID:        4242,
		Version:        1,
		Active:         true,
		Status:         domain.StatusLive,
		TraderUserName: "tgrady",
	}
	suite.mockTradeService.On("CreateTrade",
		mock.Anything,
		mock.AnythingOfType("dto.CreateTradeRequest"),
		"tgrady",
	).Return(booked, nil).Once()

	w := suite.postTrade("tgrady", bookingPayload())

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.TradeResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(int64(4242), responseBody.TradeID)
	suite.Equal(1, responseBody.Version)
	suite.mockTradeService.AssertExpectations(suite.T())
}

func (suite *TradeHandlerTestSuite) TestCreateTrade_ValidationFailureReturnsFieldMap() {
	suite.mockTradeService.On("CreateTrade", mock.Anything, mock.Anything, "tgrady").
		Return(nil, apperrors.NewValidationError(map[string][]string{
			"tradeLegs":         {"Legs must have opposite pay/receive flags"},
			"tradeMaturityDate": {"Maturity date cannot be before start date"},
		})).Once()

	w := suite.postTrade("tgrady", bookingPayload())

	suite.Equal(http.StatusBadRequest, w.Code)

	var responseBody struct {
		Error  string              `json:"error"`
		Fields map[string][]string `json:"fields"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal("Validation failed", responseBody.Error)
	suite.Equal([]string{"Legs must have opposite pay/receive flags"}, responseBody.Fields["tradeLegs"])
	suite.Equal([]string{"Maturity date cannot be before start date"}, responseBody.Fields["tradeMaturityDate"])
}

func (suite *TradeHandlerTestSuite) TestCreateTrade_Forbidden() {
	suite.mockTradeService.On("CreateTrade", mock.Anything, mock.Anything, "helpdesk").
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.postTrade("helpdesk", bookingPayload())

	suite.Equal(http.StatusForbidden, w.Code)

	var responseBody map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal("Operation not permitted", responseBody["error"])
}

func (suite *TradeHandlerTestSuite) TestCreateTrade_MalformedBodyRejectedBeforeService() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/trades", bytes.NewReader([]byte(`{"tradeType":`)))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("tgrady"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTradeService.AssertNotCalled(suite.T(), "CreateTrade", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TradeHandlerTestSuite) TestCreateTrade_MissingTokenUnauthorized() {
	payload, err := json.Marshal(bookingPayload())
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/trades", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTradeService.AssertNotCalled(suite.T(), "CreateTrade", mock.Anything, mock.Anything, mock.Anything)
}
