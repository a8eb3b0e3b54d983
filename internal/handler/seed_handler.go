package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"schoolportal/internal/service"
)

// SeedHandler handles the sample-data endpoint.
type SeedHandler struct {
	svc service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(svc service.SeedService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

// SeedResponse represents the seed result payload.
type SeedResponse struct {
	Message string `json:"message"`
}

// Seed godoc
// @Summary Insert sample announcements and quizzes
// @Tags seed
// @Produce json
// @Success 201 {object} SeedResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	if err := h.svc.Seed(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, SeedResponse{Message: "Sample data created successfully!"})
}
