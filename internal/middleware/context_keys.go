package middleware

import "github.com/gin-gonic/gin"

// storeIDKey and roleKey carry the authenticated principal through the
// request context.
const (
	storeIDKey = contextKey("storeID")
	roleKey    = contextKey("role")
)

// GetStoreIDFromContext retrieves the authenticated store ID from the request
// context. It returns the ID and a boolean indicating if it was found. Admin
// tokens carry no store ID.
func GetStoreIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(storeIDKey)
	if val == nil {
		return "", false
	}
	storeID, ok := val.(string)
	return storeID, ok
}

// GetRoleFromContext retrieves the authenticated role ("store" or "admin").
func GetRoleFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(roleKey)
	if val == nil {
		return "", false
	}
	role, ok := val.(string)
	return role, ok
}
