package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/model"
)

// Task manages documents of the tasks collection.
type Task struct {
	taskStore model.DocumentStore
	logger    *logger.Logger
}

// NewTask creates a new Task service.
//
// Parameters:
//   - taskStore: The store over the tasks collection
//   - logger: The logger for service events
func NewTask(taskStore model.DocumentStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

// CreateTask stores task as a new document and reports the generated identifier.
func (s *Task) CreateTask(ctx context.Context, task model.Document) (model.InsertResult, error) {
	id, err := s.taskStore.Insert(ctx, task)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert task: %w", err)
	}

	s.logger.Debug("Task service: task stored", "task_id", id.Hex())

	return model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// GetTasks returns every task in insertion order.
func (s *Task) GetTasks(ctx context.Context) ([]model.Document, error) {
	tasks, err := s.taskStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// GetTask returns the task with taskID, or model.ErrNotFound.
func (s *Task) GetTask(ctx context.Context, taskID primitive.ObjectID) (model.Document, error) {
	task, err := s.taskStore.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

// GetTasksByEmail returns the tasks whose email field equals email.
func (s *Task) GetTasksByEmail(ctx context.Context, email string) ([]model.Document, error) {
	tasks, err := s.taskStore.FindByField(ctx, model.TaskFieldEmail, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by email: %w", err)
	}

	return tasks, nil
}

// DeleteTask removes the task with taskID, or returns model.ErrNotFound.
func (s *Task) DeleteTask(ctx context.Context, taskID primitive.ObjectID) error {
	if err := s.taskStore.DeleteByID(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("Task service: task deleted", "task_id", taskID.Hex())

	return nil
}

// UpdateTask replaces title, description and category and returns the stored task.
func (s *Task) UpdateTask(ctx context.Context, taskID primitive.ObjectID, update model.TaskUpdate) (model.Document, error) {
	return s.update(ctx, taskID, update.Fields())
}

// UpdateCategory replaces the category and returns the stored task.
func (s *Task) UpdateCategory(ctx context.Context, taskID primitive.ObjectID, update model.CategoryUpdate) (model.Document, error) {
	return s.update(ctx, taskID, update.Fields())
}

func (s *Task) update(ctx context.Context, taskID primitive.ObjectID, fields model.Document) (model.Document, error) {
	if err := s.taskStore.UpdateByID(ctx, taskID, fields); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	// A delete between the two calls surfaces as ErrNotFound.
	task, err := s.taskStore.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	return task, nil
}
