package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/smartstore/smartstore_backend/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// tokens and stores the principal (store ID or admin) in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" {
			logger.Error("Subject missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), roleKey, claims.Role)
		enrichedLogger := logger.With(slog.String("role", claims.Role))
		if claims.Role == utils.RoleStore {
			ctx = context.WithValue(ctx, storeIDKey, claims.Subject)
			enrichedLogger = enrichedLogger.With(slog.String("store_id", claims.Subject))
		}
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireStoreScope asserts that the authenticated store matches the
// :store_id path parameter. Admin tokens pass through, which lets the
// back office inspect any tenant.
func RequireStoreScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		role, _ := GetRoleFromContext(c)
		if role == utils.RoleAdmin {
			c.Next()
			return
		}

		pathStoreID := c.Param("store_id")
		tokenStoreID, ok := GetStoreIDFromContext(c)
		if !ok || pathStoreID == "" || tokenStoreID != pathStoreID {
			logger.Warn("Store scope mismatch",
				slog.String("path_store_id", pathStoreID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Next()
	}
}

// RequireAdmin asserts the token carries the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := GetRoleFromContext(c)
		if role != utils.RoleAdmin {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin role required")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
