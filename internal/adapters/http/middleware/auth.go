package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/ports"
)

// ContextKeyUserID is the gin context key carrying the signed-in user id.
const ContextKeyUserID = "user_id"

// RequireUser returns middleware that rejects requests while no user is
// signed in. The signed-in user id is stored on the context for
// handlers.
func RequireUser(identity ports.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := identity.CurrentUserID()
		if userID == "" {
			abortWithUnauthorized(c, "sign in required")
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// UserID retrieves the signed-in user id from the gin context. Empty
// when RequireUser did not run.
func UserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

// abortWithUnauthorized aborts with a 401 response.
func abortWithUnauthorized(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
}
