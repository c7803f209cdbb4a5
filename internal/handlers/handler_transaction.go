package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
	"github.com/smartstore/smartstore_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for sale and purchase invoices.
// The invoice kind comes from the route group, never from the body.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	kind               domain.TransactionKind
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, kind domain.TransactionKind) *transactionHandler {
	return &transactionHandler{transactionService: ts, kind: kind}
}

// registerTransactionRoutes registers /sales and /purchases under a store group.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	for path, kind := range map[string]domain.TransactionKind{
		"/sales":     domain.KindSale,
		"/purchases": domain.KindPurchase,
	} {
		h := newTransactionHandler(transactionService, kind)
		group := rg.Group(path)
		{
			group.POST("", h.createTransaction)
			group.GET("", h.listTransactions)
			group.GET("/:transaction_id", h.getTransaction)
			group.PUT("/:transaction_id", h.updateTransaction)
			group.DELETE("/:transaction_id", h.deleteTransaction)
		}
	}
}

// createTransaction godoc
// @Summary Commit an invoice
// @Description Commits a sale or purchase: prices the lines, derives the totals and payment status, issues the next invoice number and applies stock changes atomically. A sale exceeding on-hand stock is rejected whole.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   transaction body dto.CreateTransactionRequest true "Invoice details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Insufficient stock"
// @Security BearerAuth
// @Router /stores/{store_id}/sales [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CommitTransaction(c.Request.Context(), storeID, h.kind, req, actorFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientStock):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to commit transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List invoices
// @Description Retrieves a page of invoices of this kind, newest first
// @Tags transactions
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   limit query int false "Page size (default 25)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid cursor"
// @Security BearerAuth
// @Router /stores/{store_id}/sales [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	txns, token, err := h.transactionService.ListTransactions(c.Request.Context(), storeID, h.kind, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, token))
}

// getTransaction godoc
// @Summary Get an invoice
// @Description Retrieves one invoice with its lines
// @Tags transactions
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   transaction_id path string true "Invoice ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /stores/{store_id}/sales/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")
	transactionID := c.Param("transaction_id")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), storeID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update an invoice
// @Description Replaces the invoice's mutable fields and recomputes totals and payment status. The invoice number never changes and stock is not re-adjusted.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   transaction_id path string true "Invoice ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Replacement fields"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /stores/{store_id}/sales/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")
	transactionID := c.Param("transaction_id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), storeID, transactionID, req, actorFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete an invoice
// @Description Removes an invoice. Stock effects from the original commit are not reversed.
// @Tags transactions
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   transaction_id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /stores/{store_id}/sales/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")
	transactionID := c.Param("transaction_id")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), storeID, transactionID, h.kind); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}
