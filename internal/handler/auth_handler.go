package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles the placeholder authentication endpoints. No
// credential check happens anywhere; every call succeeds.
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginResponse represents the static login payload.
type LoginResponse struct {
	Message         string `json:"message"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Token           string `json:"token,omitempty"`
}

// StatusResponse represents the auth status payload.
type StatusResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Login godoc
// @Summary Log in (always succeeds)
// @Tags auth
// @Produce json
// @Success 201 {object} LoginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusCreated, LoginResponse{
		Message:         "Login successful",
		IsAuthenticated: true,
		Token:           "simple-token",
	})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 201 {object} LoginResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusCreated, LoginResponse{
		Message:         "Logout successful",
		IsAuthenticated: false,
	})
}

// Status godoc
// @Summary Get auth status
// @Tags auth
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{IsAuthenticated: true})
}
