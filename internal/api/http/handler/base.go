package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/model"
)

type base struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// fail writes the error response for err and logs it with the request ID.
func (b *base) fail(c *gin.Context, op string, err error, fallback string) {
	status, resp := handleError(err, fallback)

	log := b.requestLogger(c)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		log.Error(op+" failed", "error", err.Error())
	} else {
		log.Debug(op+" rejected", "status", status, "error", err.Error())
	}

	c.AbortWithStatusJSON(status, resp)
}

// requestLogger returns the handler logger bound to the request ID.
func (b *base) requestLogger(c *gin.Context) *logger.Logger {
	requestID, _ := b.contextManager.GetRequestIDFromContext(c.Request.Context())
	return b.logger.With("request_id", requestID)
}

func (b *base) badBody(c *gin.Context, op string, err error) {
	b.requestLogger(c).Debug(op+" rejected", "error", err.Error())
	c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: msgInvalidBody})
}
