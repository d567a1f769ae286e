package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httpctx "github.com/scic-labs/taskboard-server/internal/api/http/context"
	"github.com/scic-labs/taskboard-server/internal/model"
)

const maxRequestIDLength = 128

// RequestID assigns every request an ID, reusing a sane one sent by the client.
type RequestID struct {
	contextManager model.ContextManager
}

// NewRequestID creates a new RequestID middleware.
func NewRequestID(contextManager model.ContextManager) *RequestID {
	return &RequestID{contextManager: contextManager}
}

// Handle stores the request ID in the request context and echoes it back.
func (r *RequestID) Handle(c *gin.Context) {
	requestID := c.GetHeader(httpctx.HeaderRequestID)
	if requestID == "" || len(requestID) > maxRequestIDLength {
		requestID = uuid.NewString()
	}

	c.Request = c.Request.WithContext(r.contextManager.SetRequestIDToContext(c.Request.Context(), requestID))
	c.Header(httpctx.HeaderRequestID, requestID)

	c.Next()
}
