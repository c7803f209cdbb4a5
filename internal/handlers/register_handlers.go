package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/smartstore/smartstore_backend/cmd/docs"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/middleware"
	"github.com/smartstore/smartstore_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginRateLimit gin.HandlerFunc,
) {
	registerHealthRoutes(r)

	// Public login routes, rate limited by client IP.
	registerAuthRoutes(r, services.Auth, loginRateLimit)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group: tenant-scoped
// store routes and the admin-only registry.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Every route below /stores/:store_id requires the token's store claim to
	// match the path parameter (admin tokens pass).
	store := v1.Group("/stores/:store_id", middleware.RequireStoreScope())
	registerProductRoutes(store, services.Product)
	registerTransactionRoutes(store, services.Transaction)
	registerMovementRoutes(store, services.Movement)
	registerLedgerRoutes(store, services.Ledger)
	registerSupplierRoutes(store, services.Supplier)
	registerSettingsRoutes(store, services.Settings)
	registerReportingRoutes(store, services.Reporting)

	admin := v1.Group("/admin", middleware.RequireAdmin())
	registerStoreAdminRoutes(admin, services.Store)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
