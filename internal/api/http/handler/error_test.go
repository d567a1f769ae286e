package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scic-labs/taskboard-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "invalid identifier -> 400",
			in:       fmt.Errorf("%w: %q", model.ErrInvalidIdentifier, "xyz"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid task ID format",
		},
		{
			name:     "wrapped not found -> 404",
			in:       fmt.Errorf("failed to get task by id: %w", model.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "Task not found",
		},
		{
			name:     "other -> 500 with fallback only",
			in:       errors.New("connection refused to 10.0.0.1"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Error fetching tasks",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, resp := handleError(tt.in, "Error fetching tasks")
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}
