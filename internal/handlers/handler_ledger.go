package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
	"github.com/smartstore/smartstore_backend/internal/middleware"
)

// ledgerHandler serves the derived party-balance reports.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the ledger routes under a store group.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/customers", h.customerLedger)
		ledger.GET("/suppliers", h.supplierLedger)
	}
}

// customerLedger godoc
// @Summary Customer ledger
// @Description Folds the full sale and receipt history into per-customer balances, highest outstanding first
// @Tags ledger
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Success 200 {object} dto.LedgerResponse
// @Security BearerAuth
// @Router /stores/{store_id}/ledger/customers [get]
func (h *ledgerHandler) customerLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	entries, err := h.ledgerService.CustomerLedger(c.Request.Context(), storeID)
	if err != nil {
		logger.Error("Failed to build customer ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build customer ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(entries))
}

// supplierLedger godoc
// @Summary Supplier ledger
// @Description Folds the full purchase and payment history into per-supplier balances, highest outstanding first
// @Tags ledger
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Success 200 {object} dto.LedgerResponse
// @Security BearerAuth
// @Router /stores/{store_id}/ledger/suppliers [get]
func (h *ledgerHandler) supplierLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	entries, err := h.ledgerService.SupplierLedger(c.Request.Context(), storeID)
	if err != nil {
		logger.Error("Failed to build supplier ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build supplier ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(entries))
}
