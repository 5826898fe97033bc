package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
	"github.com/swapsdesk/tradebook/internal/dto"
	"github.com/swapsdesk/tradebook/internal/middleware"
)

// refDataHandler handles HTTP requests for reference data.
type refDataHandler struct {
	refDataService portssvc.RefDataSvcFacade
}

// newRefDataHandler creates a new refDataHandler.
func newRefDataHandler(refDataService portssvc.RefDataSvcFacade) *refDataHandler {
	return &refDataHandler{refDataService: refDataService}
}

// listBooks godoc
// @Summary List trading books
// @Tags refdata
// @Produce  json
// @Success 200 {array} dto.BookResponse
// @Router /books [get]
func (h *refDataHandler) listBooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	books, err := h.refDataService.ListBooks(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list books")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponses(books))
}

// listCounterparties godoc
// @Summary List counterparties
// @Tags refdata
// @Produce  json
// @Success 200 {array} dto.CounterpartyResponse
// @Router /counterparties [get]
func (h *refDataHandler) listCounterparties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cptys, err := h.refDataService.ListCounterparties(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list counterparties")
		return
	}

	c.JSON(http.StatusOK, dto.ToCounterpartyResponses(cptys))
}

// registerRefDataRoutes registers reference-data routes
func registerRefDataRoutes(group *gin.RouterGroup, refDataService portssvc.RefDataSvcFacade) {
	h := newRefDataHandler(refDataService)

	group.GET("/books", h.listBooks)
	group.GET("/counterparties", h.listCounterparties)
}
