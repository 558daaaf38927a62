package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/auth-service/pkg/response"
)

type HealthHandler struct {
	Pool    *pgxpool.Pool
	Service string
	Version string
}

func NewHealthHandler(pool *pgxpool.Pool, service, version string) *HealthHandler {
	return &HealthHandler{Pool: pool, Service: service, Version: version}
}

// Health handles GET /health. No auth; reports database reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "connected"
	status := "healthy"
	if h.Pool != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.Pool.Ping(ctx); err != nil {
			database = "unreachable"
			status = "degraded"
		}
	}
	response.Success(c, http.StatusOK, gin.H{
		"status":   status,
		"service":  h.Service,
		"version":  h.Version,
		"database": database,
	})
}
