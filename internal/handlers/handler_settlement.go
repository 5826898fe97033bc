package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/middleware"
)

// settlementHandler handles HTTP requests for settlement instructions.
type settlementHandler struct {
	infoService portssvc.AdditionalInfoSvcFacade
}

// newSettlementHandler creates a new settlementHandler.
func newSettlementHandler(infoService portssvc.AdditionalInfoSvcFacade) *settlementHandler {
	return &settlementHandler{infoService: infoService}
}

// getSettlementInstructions godoc
// @Summary Get the active settlement instructions for a trade
// @Tags settlement
// @Produce  json
// @Param   tradeID path int true "Trade business key"
// @Success 200 {object} dto.SettlementInstructionsResponse
// @Failure 404 {object} map[string]string "Trade or instructions not found"
// @Router /trades/{tradeID}/settlement-instructions [get]
func (h *settlementHandler) getSettlementInstructions(c *gin.Context) {
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

	instructions, err := h.infoService.GetSettlementInstructions(c.Request.Context(), tradeID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve settlement instructions")
		return
	}

	c.JSON(http.StatusOK, instructions)
}

// updateSettlementInstructions godoc
// @Summary Replace the settlement instructions for a trade
// @Description Deactivates the previous instructions and stores a new version
// @Tags settlement
// @Accept  json
// @Produce  json
// @Param   tradeID path int true "Trade business key"
// @Param   instructions body dto.SettlementInstructionsUpdateRequest true "New instructions"
// @Success 200 {object} dto.SettlementInstructionsResponse
// @Failure 404 {object} map[string]string "Trade not found"
// @Router /trades/{tradeID}/settlement-instructions [put]
func (h *settlementHandler) updateSettlementInstructions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tradeID, ok := parseTradeID(c)
	if !ok {
		return
	}

	var req dto.SettlementInstructionsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateSettlementInstructions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Settlement instructions must be between 10 and 500 characters"})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	instructions, err := h.infoService.UpdateSettlementInstructions(c.Request.Context(), tradeID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update settlement instructions")
		return
	}

	c.JSON(http.StatusOK, instructions)
}

// registerSettlementRoutes registers settlement instruction routes
func registerSettlementRoutes(group *gin.RouterGroup, infoService portssvc.AdditionalInfoSvcFacade) {
	h := newSettlementHandler(infoService)

	group.GET("/trades/:tradeID/settlement-instructions", h.getSettlementInstructions)
	group.PUT("/trades/:tradeID/settlement-instructions", h.updateSettlementInstructions)
}
