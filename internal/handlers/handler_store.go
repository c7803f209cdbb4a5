package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
	"github.com/smartstore/smartstore_backend/internal/middleware"
)

// storeHandler handles the admin-only tenant registry endpoints.
type storeHandler struct {
	storeService portssvc.StoreSvcFacade
}

func newStoreHandler(ss portssvc.StoreSvcFacade) *storeHandler {
	return &storeHandler{storeService: ss}
}

// registerStoreAdminRoutes registers the registry routes under the admin group.
func registerStoreAdminRoutes(rg *gin.RouterGroup, storeService portssvc.StoreSvcFacade) {
	h := newStoreHandler(storeService)

	stores := rg.Group("/stores")
	{
		stores.POST("", h.registerStore)
		stores.GET("", h.listStores)
		stores.GET("/:store_id", h.getStore)
		stores.PUT("/:store_id", h.updateStore)
		stores.DELETE("/:store_id", h.deleteStore)
	}
}

// registerStore godoc
// @Summary Register a store
// @Description Creates a new tenant with a generated four-digit login ID and eight-character password. The plaintext password appears in this response only.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   store body dto.CreateStoreRequest true "Store details"
// @Success 201 {object} dto.CreateStoreResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /admin/stores [post]
func (h *storeHandler) registerStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterStore", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	store, password, err := h.storeService.RegisterStore(c.Request.Context(), req, actorFromContext(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to register store", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register store"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateStoreResponse{
		Store:    dto.ToStoreResponse(store),
		Password: password,
	})
}

// listStores godoc
// @Summary List stores
// @Description Retrieves every registered tenant
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ListStoresResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /admin/stores [get]
func (h *storeHandler) listStores(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stores, err := h.storeService.ListStores(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list stores", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stores"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStoresResponse(stores))
}

// getStore godoc
// @Summary Get a store
// @Description Retrieves one tenant registration
// @Tags admin
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} map[string]string "Store not found"
// @Security BearerAuth
// @Router /admin/stores/{store_id} [get]
func (h *storeHandler) getStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	store, err := h.storeService.GetStoreByID(c.Request.Context(), storeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		logger.Error("Failed to get store", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve store"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// updateStore godoc
// @Summary Update a store
// @Description Edits a registration. Supplying a password rotates the credential; supplying a status suspends or reactivates the store.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Param   store body dto.UpdateStoreRequest true "Fields to update"
// @Success 200 {object} dto.StoreResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Store not found"
// @Security BearerAuth
// @Router /admin/stores/{store_id} [put]
func (h *storeHandler) updateStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStore", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), storeID, req, actorFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update store", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// deleteStore godoc
// @Summary Delete a store
// @Description Removes a tenant; the schema cascades across its products, invoices, movements, suppliers and settings
// @Tags admin
// @Produce  json
// @Param   store_id path string true "Store ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Store not found"
// @Security BearerAuth
// @Router /admin/stores/{store_id} [delete]
func (h *storeHandler) deleteStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("store_id")

	if err := h.storeService.DeleteStore(c.Request.Context(), storeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		logger.Error("Failed to delete store", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete store"})
		return
	}

	c.Status(http.StatusNoContent)
}
