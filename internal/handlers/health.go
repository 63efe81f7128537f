package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/turath-search-api/internal/repository"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	repo repository.PassageSearchRepository
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(repo repository.PassageSearchRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// HealthResponse is the response for basic health check
type HealthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// ElasticsearchHealth handles GET /health/elasticsearch
func (h *HealthHandler) ElasticsearchHealth(c echo.Context) error {
	if err := h.repo.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "connected",
		"engine": "elasticsearch",
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/health/elasticsearch", h.ElasticsearchHealth)
}
