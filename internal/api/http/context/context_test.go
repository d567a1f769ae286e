package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestManager_SetAndGetRequestID(t *testing.T) {
	m := NewManager()
	id := uuid.NewString()
	ctx := m.SetRequestIDToContext(stdctx.Background(), id)

	got, ok := m.GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestManager_GetRequestID_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetRequestIDFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetRequestID_Empty(t *testing.T) {
	m := NewManager()
	ctx := m.SetRequestIDToContext(stdctx.Background(), "")
	_, ok := m.GetRequestIDFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetRequestID_Overrides(t *testing.T) {
	m := NewManager()
	ctx := m.SetRequestIDToContext(stdctx.Background(), "first")
	ctx = m.SetRequestIDToContext(ctx, "second")

	got, ok := m.GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}
