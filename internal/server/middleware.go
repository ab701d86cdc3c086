package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lifepath/internal/logging"
	"lifepath/internal/session/statestore"
)

const identityKey = "lifepath.identity"

// IdentityMiddleware resolves the caller's identity from request headers.
// Authenticated clients send X-User-ID; guests send their device ID in
// X-Device-ID. Requests carrying neither are rejected.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id statestore.Identity
		switch {
		case c.GetHeader("X-User-ID") != "":
			id = statestore.Identity{UserID: c.GetHeader("X-User-ID")}
		case c.GetHeader("X-Device-ID") != "":
			id = statestore.Identity{UserID: c.GetHeader("X-Device-ID"), Guest: true}
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest, APIResponse{
				Success: false,
				Error:   "missing X-User-ID or X-Device-ID header",
			})
			return
		}
		if _, err := id.Key(); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, APIResponse{
				Success: false,
				Error:   "invalid identity: " + err.Error(),
			})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// identity reads the resolved identity set by IdentityMiddleware.
func identity(c *gin.Context) statestore.Identity {
	return c.MustGet(identityKey).(statestore.Identity)
}

// RequestLogMiddleware logs each request with method, path, status, and
// latency.
func RequestLogMiddleware(logger logging.Logger) gin.HandlerFunc {
	logger = logging.OrNop(logger)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
