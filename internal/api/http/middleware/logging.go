package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/model"
)

// Logging logs HTTP requests and their results.
type Logging struct {
	logger         *logger.Logger
	contextManager model.ContextManager
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger, contextManager model.ContextManager) *Logging {
	return &Logging{logger: logger, contextManager: contextManager}
}

// Handle logs method, route, duration and status for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	requestID, _ := l.contextManager.GetRequestIDFromContext(c.Request.Context())

	args := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"route", c.FullPath(),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	}

	if status >= http.StatusInternalServerError {
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}
		l.logger.Error("HTTP request failed", args...)
		return
	}

	l.logger.Info("HTTP request completed", args...)
}
