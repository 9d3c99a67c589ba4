package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deopraglabs/prysme/internal/response"
	"github.com/deopraglabs/prysme/pkg/logger"
)

const maxRequestIDLen = 128

// RequestID propagates the X-Request-ID header, generating a UUID when
// the client sent none. The id is stored on the gin context, on the
// request context for the gorm logger, and echoed in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(response.RequestIDKey)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}

		c.Set(response.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Header(response.RequestIDKey, requestID)

		c.Next()
	}
}
