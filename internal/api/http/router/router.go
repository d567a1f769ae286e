package router

import (
	"github.com/gin-gonic/gin"

	"github.com/scic-labs/taskboard-server/internal/api/http/handler"
	"github.com/scic-labs/taskboard-server/internal/api/http/middleware"
	"github.com/scic-labs/taskboard-server/internal/logger"
	"github.com/scic-labs/taskboard-server/internal/model"
)

// Router represents the HTTP router of the task board API.
// It wires middleware and maps routes to handlers.
type Router struct {
	userService    handler.UserService
	taskService    handler.TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
	allowedOrigins []string
}

// New creates new Router instance.
//
// Parameters:
//   - userService: The user service
//   - taskService: The task service
//   - contextManager: Stores request IDs in request contexts
//   - allowedOrigins: Origins permitted to make credentialed cross-origin requests
//   - logger: The logger for request logging
func New(
	userService handler.UserService,
	taskService handler.TaskService,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:    userService,
		taskService:    taskService,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the gin engine with middleware and all routes.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()

	engine.Use(
		middleware.NewRequestID(r.contextManager).Handle,
		middleware.NewLogging(r.logger, r.contextManager).Handle,
		middleware.NewRecovery(r.logger),
		middleware.NewCORS(r.allowedOrigins),
	)

	engine.GET("/", handler.Root)
	engine.NoRoute(handler.NotFound)

	r.registerUserRoutes(engine)
	r.registerTaskRoutes(engine)

	return engine
}

func (r *Router) registerUserRoutes(engine *gin.Engine) {
	h := handler.NewUser(r.userService, r.contextManager, r.logger)

	engine.POST("/user", h.CreateUser)
	engine.GET("/users", h.GetUsers)
}

func (r *Router) registerTaskRoutes(engine *gin.Engine) {
	h := handler.NewTask(r.taskService, r.contextManager, r.logger)

	engine.POST("/task", h.CreateTask)
	engine.GET("/tasks", h.GetTasks)
	engine.GET("/tasks/:id", h.GetTask)
	engine.GET("/tasks/user/:email", h.GetTasksByEmail)
	engine.DELETE("/tasks/delete/:id", h.DeleteTask)
	engine.PATCH("/tasks/update/:id", h.UpdateTask)
	engine.PUT("/tasks/category/:id", h.UpdateCategory)
}
