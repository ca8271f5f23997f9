package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kosmanager/backend/internal/interfaces/http/dto"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// HealthHandler handles liveness and readiness checks
type HealthHandler struct {
	BaseHandler
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports service and database health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	database := "up"

	if err := h.db.Ping(); err != nil {
		status = "degraded"
		database = "down"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, dto.NewSuccessResponse(gin.H{
		"status":   status,
		"database": database,
	}))
}
