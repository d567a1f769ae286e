package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root answers liveness probes.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Server Running")
}

// NotFound answers requests for unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, messageResponse{Message: "Route not found"})
}
