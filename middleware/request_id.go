package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextRequestIDKey stores the request id inside the Gin context.
const ContextRequestIDKey = "request_id"

// RequestID tags every request with an id for log correlation, honoring one
// supplied by an upstream proxy.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Set(ContextRequestIDKey, rid)
		ctx.Writer.Header().Set("X-Request-ID", rid)
		ctx.Next()
	}
}
