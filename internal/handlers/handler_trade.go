package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/middleware"
)

// tradeHandler handles HTTP requests for the trade lifecycle.
type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

// newTradeHandler creates a new tradeHandler.
func newTradeHandler(tradeService portssvc.TradeSvcFacade) *tradeHandler {
	return &tradeHandler{tradeService: tradeService}
}

// createTrade godoc
// @Summary Book a new trade
// @Description Validates and books a new swap trade at version 1, generating its cashflow schedule
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   trade body dto.CreateTradeRequest true "Trade to book"
// @Success 201 {object} dto.TradeResponse "The booked trade"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Router /trades [post]
func (h *tradeHandler) createTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trade, err := h.tradeService.CreateTrade(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to book trade")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTradeResponse(trade))
}

// getTrade godoc
// @Summary Get the active version of a trade
// @Tags trades
// @Produce  json
// @Param   tradeID path int true "Trade business key"
// @Success 200 {object} dto.TradeResponse
// @Failure 404 {object} map[string]string "Trade not found"
// @Router /trades/{tradeID} [get]
func (h *tradeHandler) getTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tradeID, ok := parseTradeID(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trade, err := h.tradeService.GetTrade(c.Request.Context(), tradeID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve trade")
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeResponse(trade))
}

// listTrades godoc
// @Summary List active trades
// @Tags trades
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTradesResponse
// @Router /trades [get]
func (h *tradeHandler) listTrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTradesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.tradeService.ListTrades(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list trades")
		return
	}

	c.JSON(http.StatusOK, page)
}

// searchTrades godoc
// @Summary Search active trades
// @Description Filters active trades by counterparty, book, trader, status and trade date range; criteria are ANDed
// @Tags trades
// @Produce  json
// @Param   counterpartyName query string false "Counterparty name"
// @Param   bookName query string false "Book name"
// @Param   trader query string false "Trader login id"
// @Param   status query string false "Trade status"
// @Param   tradeDateStart query string false "Earliest trade date (YYYY-MM-DD)"
// @Param   tradeDateEnd query string false "Latest trade date (YYYY-MM-DD)"
// @Success 200 {array} dto.TradeResponse
// @Router /trades/search [get]
func (h *tradeHandler) searchTrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter dto.TradeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	trades, err := h.tradeService.SearchTrades(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to search trades")
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeResponses(trades))
}

// amendTrade godoc
// @Summary Amend a trade
// @Description Supersedes the active version with a full replacement at version+1
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   tradeID path int true "Trade business key"
// @Param   trade body dto.CreateTradeRequest true "Replacement trade economics"
// @Success 200 {object} dto.TradeResponse "The amended trade"
// @Failure 404 {object} map[string]string "Trade not found"
// @Failure 409 {object} map[string]string "Trade is terminal or was amended concurrently"
// @Router /trades/{tradeID} [put]
func (h *tradeHandler) amendTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tradeID, ok := parseTradeID(c)
	if !ok {
		return
	}

	var req dto.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for amendTrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trade, err := h.tradeService.AmendTrade(c.Request.Context(), tradeID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to amend trade")
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeResponse(trade))
}

// cancelTrade godoc
// @Summary Cancel a trade
// @Description Transitions the active version to CANCELLED
// @Tags trades
// @Produce  json
// @Param   tradeID path int true "Trade business key"
// @Success 204 "Cancelled"
// @Failure 404 {object} map[string]string "Trade not found"
// @Failure 409 {object} map[string]string "Trade already terminal"
// @Router /trades/{tradeID} [delete]
func (h *tradeHandler) cancelTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tradeID, ok := parseTradeID(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.tradeService.CancelTrade(c.Request.Context(), tradeID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel trade")
		return
	}

	c.Status(http.StatusNoContent)
}

// terminateTrade godoc
// @Summary Terminate a trade before maturity
// @Description Transitions the active version to TERMINATED
// @Tags trades
// @Produce  json
// @Param   tradeID path int true "Trade business key"
// @Success 200 {object} dto.TradeResponse "The terminated trade"
// @Failure 404 {object} map[string]string "Trade not found"
// @Failure 409 {object} map[string]string "Trade already terminal"
// @Router /trades/{tradeID}/terminate [post]
func (h *tradeHandler) terminateTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tradeID, ok := parseTradeID(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trade, err := h.tradeService.TerminateTrade(c.Request.Context(), tradeID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to terminate trade")
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeResponse(trade))
}

// parseTradeID reads the numeric business key from the path, responding
// with 400 itself when the value is malformed.
func parseTradeID(c *gin.Context) (int64, bool) {
	tradeID, err := strconv.ParseInt(c.Param("tradeID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trade ID"})
		return 0, false
	}
	return tradeID, true
}

// RegisterTradeRoutes registers trade lifecycle routes
func RegisterTradeRoutes(group *gin.RouterGroup, tradeService portssvc.TradeSvcFacade) {
	h := newTradeHandler(tradeService)

	trades := group.Group("/trades")
	{
		trades.POST("", h.createTrade)
		trades.GET("", h.listTrades)
		trades.GET("/search", h.searchTrades)
		trades.GET("/:tradeID", h.getTrade)
		trades.PUT("/:tradeID", h.amendTrade)
		trades.DELETE("/:tradeID", h.cancelTrade)
		trades.POST("/:tradeID/terminate", h.terminateTrade)
	}
}
