package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/smartstore_backend/internal/middleware"
	"github.com/smartstore/smartstore_backend/internal/utils"
)

// actorFromContext returns the audit identity of the authenticated caller:
// the store ID for store tokens, "admin" for admin tokens.
func actorFromContext(c *gin.Context) string {
	if storeID, ok := middleware.GetStoreIDFromContext(c); ok {
		return storeID
	}
	if role, ok := middleware.GetRoleFromContext(c); ok && role == utils.RoleAdmin {
		return utils.RoleAdmin
	}
	return "unknown"
}

// registerHealthRoutes registers the liveness probe.
func registerHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
