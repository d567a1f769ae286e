package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/model"
)

// UserService defines business operations for users.
type UserService interface {
	CreateUser(ctx context.Context, user model.Document) (model.InsertResult, error)
	GetUsers(ctx context.Context) ([]model.Document, error)
}

// User handles HTTP endpoints for users.
type User struct {
	base
	userService UserService
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		base:        base{contextManager: contextManager, logger: logger},
		userService: userService,
	}
}

// CreateUser stores the request body as a new user.
func (h *User) CreateUser(c *gin.Context) {
	user := model.Document{}
	if err := bindBody(c, &user); err != nil {
		h.badBody(c, "User handler: create user", err)
		return
	}

	result, err := h.userService.CreateUser(c.Request.Context(), user)
	if err != nil {
		h.fail(c, "User handler: create user", err, "Error storing user")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetUsers lists all users.
func (h *User) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers(c.Request.Context())
	if err != nil {
		h.fail(c, "User handler: get users", err, "Error fetching users")
		return
	}

	c.JSON(http.StatusOK, users)
}
