package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/internal/response"
)

// Recovery returns a middleware that recovers from panics and logs them.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"request_id", c.GetString(response.RequestIDKey),
					"stack", string(debug.Stack()),
				)

				response.Write(c, http.StatusInternalServerError, response.CodeInternalError, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
