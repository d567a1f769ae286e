package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/scic-labs/taskboard-server/internal/model"
)

// Response messages.
const (
	msgInvalidID      = "Invalid task ID format"
	msgInvalidBody    = "Invalid request body"
	msgTaskNotFound   = "Task not found"
	msgTaskDeleted    = "Task deleted successfully"
	msgInternalServer = "Internal server error"
)

type messageResponse struct {
	Message string `json:"message"`
}

// handleError maps err onto a status code and a client-safe message.
// fallback is used for unclassified failures.
func handleError(err error, fallback string) (int, messageResponse) {
	switch {
	case errors.Is(err, model.ErrInvalidIdentifier):
		return http.StatusBadRequest, messageResponse{Message: msgInvalidID}
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, messageResponse{Message: msgTaskNotFound}
	default:
		return http.StatusInternalServerError, messageResponse{Message: fallback}
	}
}

var errBodyNotObject = errors.New("request body is not a JSON object")

// bindBody decodes a JSON object request body into dst. An empty body leaves dst untouched.
func bindBody(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}

	data, err := c.GetRawData()
	if err != nil {
		return err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		return errBodyNotObject
	}

	return binding.JSON.BindBody(data, dst)
}
