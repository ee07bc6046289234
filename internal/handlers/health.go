package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"package-tracker/pkg/database"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports service liveness and whether the store is reachable
func (h *HealthHandler) Health(c *gin.Context) {
	dbOK := database.DB != nil && database.DB.Ping() == nil

	c.JSON(http.StatusOK, gin.H{
		"message":   "backend running",
		"database":  dbOK,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
