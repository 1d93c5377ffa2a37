package middleware

import (
	"github.com/flexprice/playbill/internal/types"
	"github.com/gin-gonic/gin"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware stores the incoming or a generated request id on the request context
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUID()
	}

	c.Request = c.Request.WithContext(types.SetRequestID(c.Request.Context(), requestID))
	c.Header(HeaderRequestID, requestID)

	c.Next()
}
