package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/middleware"
)

// reportingHandler handles HTTP requests for portfolio views.
type reportingHandler struct {
	reportingService portssvc.TradeReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.TradeReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// getMyTrades godoc
// @Summary List the caller's active trades
// @Tags reporting
// @Produce  json
// @Success 200 {array} dto.TradeResponse
// @Router /trades/my [get]
func (h *reportingHandler) getMyTrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trades, err := h.reportingService.GetTradesByTrader(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve trades")
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeResponses(trades))
}

// getBookTrades godoc
// @Summary List the active trades allocated to a book
// @Tags reporting
// @Produce  json
// @Param   bookID path string true "Book ID"
// @Success 200 {array} dto.TradeResponse
// @Router /books/{bookID}/trades [get]
func (h *reportingHandler) getBookTrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Param("bookID")

	trades, err := h.reportingService.GetTradesByBookID(c.Request.Context(), bookID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve trades for book")
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeResponses(trades))
}

// getSummary godoc
// @Summary Summarize the caller's active portfolio
// @Description Aggregates trade counts by status, notionals by currency and trade types by counterparty
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.TradeSummaryResponse
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.Summarize(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to summarize trades")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getDailySummary godoc
// @Summary Report the caller's booking activity for today and yesterday
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.DailySummaryResponse
// @Router /reports/daily [get]
func (h *reportingHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.DailySummary(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build daily summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// registerReportingRoutes registers portfolio view routes
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.TradeReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	group.GET("/trades/my", h.getMyTrades)
	group.GET("/books/:bookID/trades", h.getBookTrades)

	reports := group.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/daily", h.getDailySummary)
	}
}
