package service

import (
	"context"
	"fmt"

	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/model"
)

// User manages documents of the users collection.
type User struct {
	userStore model.DocumentStore
	logger    *logger.Logger
}

// NewUser creates a new User service.
//
// Parameters:
//   - userStore: The store over the users collection
//   - logger: The logger for service events
func NewUser(userStore model.DocumentStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

// CreateUser stores user as a new document and reports the generated identifier.
func (s *User) CreateUser(ctx context.Context, user model.Document) (model.InsertResult, error) {
	id, err := s.userStore.Insert(ctx, user)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert user: %w", err)
	}

	s.logger.Debug("User service: user stored", "user_id", id.Hex())

	return model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// GetUsers returns every user in insertion order.
func (s *User) GetUsers(ctx context.Context) ([]model.Document, error) {
	users, err := s.userStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
