package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/model"
	"github.com/scic-labs/taskboard-server/internal/objectid"
)

// TaskService defines business operations for tasks.
type TaskService interface {
	CreateTask(ctx context.Context, task model.Document) (model.InsertResult, error)
	GetTasks(ctx context.Context) ([]model.Document, error)
	GetTask(ctx context.Context, taskID primitive.ObjectID) (model.Document, error)
	GetTasksByEmail(ctx context.Context, email string) ([]model.Document, error)
	DeleteTask(ctx context.Context, taskID primitive.ObjectID) error
	UpdateTask(ctx context.Context, taskID primitive.ObjectID, update model.TaskUpdate) (model.Document, error)
	UpdateCategory(ctx context.Context, taskID primitive.ObjectID, update model.CategoryUpdate) (model.Document, error)
}

// Task handles HTTP endpoints for tasks.
type Task struct {
	base
	taskService TaskService
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		base:        base{contextManager: contextManager, logger: logger},
		taskService: taskService,
	}
}

func (h *Task) CreateTask(c *gin.Context) {
	task := model.Document{}
	if err := bindBody(c, &task); err != nil {
		h.badBody(c, "Task handler: create task", err)
		return
	}

	result, err := h.taskService.CreateTask(c.Request.Context(), task)
	if err != nil {
		h.fail(c, "Task handler: create task", err, "Error storing task")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Task) GetTasks(c *gin.Context) {
	tasks, err := h.taskService.GetTasks(c.Request.Context())
	if err != nil {
		h.fail(c, "Task handler: get tasks", err, "Error fetching tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Task) GetTask(c *gin.Context) {
	taskID, err := objectid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, "Task handler: get task", err, "Server error")
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		h.fail(c, "Task handler: get task", err, "Server error")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Task) GetTasksByEmail(c *gin.Context) {
	tasks, err := h.taskService.GetTasksByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, "Task handler: get tasks by email", err, "Error fetching tasks by email")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Task) DeleteTask(c *gin.Context) {
	taskID, err := objectid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, "Task handler: delete task", err, "Error deleting task")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		h.fail(c, "Task handler: delete task", err, "Error deleting task")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: msgTaskDeleted})
}

// UpdateTask replaces title, description and category.
func (h *Task) UpdateTask(c *gin.Context) {
	taskID, err := objectid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, "Task handler: update task", err, "Failed to update task")
		return
	}

	var update model.TaskUpdate
	if err := bindBody(c, &update); err != nil {
		h.badBody(c, "Task handler: update task", err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, update)
	if err != nil {
		h.fail(c, "Task handler: update task", err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateCategory replaces only the category.
func (h *Task) UpdateCategory(c *gin.Context) {
	taskID, err := objectid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, "Task handler: update category", err, msgInternalServer)
		return
	}

	var update model.CategoryUpdate
	if err := bindBody(c, &update); err != nil {
		h.badBody(c, "Task handler: update category", err)
		return
	}

	task, err := h.taskService.UpdateCategory(c.Request.Context(), taskID, update)
	if err != nil {
		h.fail(c, "Task handler: update category", err, msgInternalServer)
		return
	}

	c.JSON(http.StatusOK, task)
}
