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

// movementHandler handles HTTP requests for standalone receipts and payments.
// The movement kind comes from the route group.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
	kind            domain.MovementKind
}

func newMovementHandler(ms portssvc.MovementSvcFacade, kind domain.MovementKind) *movementHandler {
	return &movementHandler{movementService: ms, kind: kind}
}

// registerMovementRoutes registers /receipts and /payments under a store group.
func registerMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	for path, kind := range map[string]domain.MovementKind{
		"/receipts": domain.KindReceipt,
		"/payments": domain.KindPayment,
	} {
		h := newMovementHandler(movementService, kind)
		group := rg.Group(path)
		{
			group.POST("", h.createMovement)
			group.GET("", h.listMovements)
			group.DELETE("/:movement_id", h.deleteMovement)
		}
	}
}

// createMovement godoc
// @Summary Record a movement
// @Description Records a standalone receipt (money in) or payment (money out) against a party
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   movement body dto.CreateMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /stores/{store_id}/receipts [post]
func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.movementService.CreateMovement(c.Request.Context(), storeID, h.kind, req, actorFromContext(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record movement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record movement"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements
// @Description Retrieves a page of movements of this kind, newest first
// @Tags movements
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   limit query int false "Page size (default 25)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} map[string]string "Invalid cursor"
// @Security BearerAuth
// @Router /stores/{store_id}/receipts [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	movements, token, err := h.movementService.ListMovements(c.Request.Context(), storeID, h.kind, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list movements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements, token))
}

// deleteMovement godoc
// @Summary Delete a movement
// @Description Removes a receipt or payment; the party's derived balance shifts accordingly
// @Tags movements
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   movement_id path string true "Movement ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /stores/{store_id}/receipts/{movement_id} [delete]
func (h *movementHandler) deleteMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")
	movementID := c.Param("movement_id")

	if err := h.movementService.DeleteMovement(c.Request.Context(), storeID, movementID, h.kind); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
			return
		}
		logger.Error("Failed to delete movement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movement"})
		return
	}

	c.Status(http.StatusNoContent)
}
