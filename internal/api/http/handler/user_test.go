package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	httpctx "github.com/scic-labs/taskboard-server/internal/api/http/context"
	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/mocks"
	"github.com/scic-labs/taskboard-server/internal/model"
)

func TestUser_CreateUser(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		body      string
		mockSetup func(*mocks.UserService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: `{"name":"alice","email":"a@x.com"}`,
			mockSetup: func(svc *mocks.UserService) {
				svc.On("CreateUser", mock.Anything, model.Document{"name": "alice", "email": "a@x.com"}).
					Return(model.InsertResult{Acknowledged: true, InsertedID: id}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"acknowledged":true,"insertedId":"` + id.Hex() + `"}`,
		},
		{
			name: "empty body stores empty document",
			body: "",
			mockSetup: func(svc *mocks.UserService) {
				svc.On("CreateUser", mock.Anything, model.Document{}).
					Return(model.InsertResult{Acknowledged: true, InsertedID: id}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"acknowledged":true,"insertedId":"` + id.Hex() + `"}`,
		},
		{
			name:      "malformed json",
			body:      `{"name":`,
			mockSetup: func(svc *mocks.UserService) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"message":"Invalid request body"}`,
		},
		{
			name:      "array body",
			body:      `[1,2]`,
			mockSetup: func(svc *mocks.UserService) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"message":"Invalid request body"}`,
		},
		{
			name:      "null body",
			body:      `null`,
			mockSetup: func(svc *mocks.UserService) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"message":"Invalid request body"}`,
		},
		{
			name:      "scalar body",
			body:      ` "alice" `,
			mockSetup: func(svc *mocks.UserService) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"message":"Invalid request body"}`,
		},
		{
			name: "store error",
			body: `{"name":"alice"}`,
			mockSetup: func(svc *mocks.UserService) {
				svc.On("CreateUser", mock.Anything, mock.Anything).
					Return(model.InsertResult{}, errors.New("socket closed"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Error storing user"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewUserService(t)
			tt.mockSetup(svc)

			w := do(newTestEngine(svc, nil), http.MethodPost, "/user", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestUser_GetUsers(t *testing.T) {
	t.Parallel()

	t.Run("lists users", func(t *testing.T) {
		t.Parallel()
		id := primitive.NewObjectID()
		svc := mocks.NewUserService(t)
		svc.On("GetUsers", mock.Anything).Return([]model.Document{{model.IDField: id, "name": "alice"}}, nil)

		w := do(newTestEngine(svc, nil), http.MethodGet, "/users", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"_id":"`+id.Hex()+`","name":"alice"}]`, w.Body.String())
	})

	t.Run("empty collection is an empty array", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewUserService(t)
		svc.On("GetUsers", mock.Anything).Return([]model.Document{}, nil)

		w := do(newTestEngine(svc, nil), http.MethodGet, "/users", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store error does not leak details", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewUserService(t)
		svc.On("GetUsers", mock.Anything).Return(nil, errors.New("auth failed for user admin"))

		w := do(newTestEngine(svc, nil), http.MethodGet, "/users", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Error fetching users"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "admin")
	})
}

func TestUser_FailureLoggedWithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cm := httpctx.NewManager()
	svc := mocks.NewUserService(t)
	svc.On("GetUsers", mock.Anything).Return(nil, errors.New("socket closed"))

	h := NewUser(svc, cm, logger.NewWithWriter(&buf, 0))
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(cm.SetRequestIDToContext(c.Request.Context(), "rid-7"))
		c.Next()
	})
	engine.GET("/users", h.GetUsers)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "request_id=rid-7")
	assert.Contains(t, out, `error="socket closed"`)
}

func TestRoot(t *testing.T) {
	t.Parallel()

	w := do(newTestEngine(nil, nil), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server Running", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	w := do(newTestEngine(nil, nil), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Route not found"}`, w.Body.String())
}
