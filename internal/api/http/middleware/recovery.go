package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scic-labs/taskboard-server/internal/logger"
)

// NewRecovery turns handler panics into 500 responses.
func NewRecovery(logger *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("HTTP handler panicked",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	})
}
