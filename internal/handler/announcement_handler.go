package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
)

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(repo repository.AnnouncementRepository) *AnnouncementHandler {
	return &AnnouncementHandler{repo: repo}
}

// CreateAnnouncementRequest represents an announcement creation request.
type CreateAnnouncementRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	CreatedBy string `json:"createdBy" validate:"omitempty"`
}

// UpdateAnnouncementRequest represents a partial announcement update.
// Absent fields are left unchanged.
type UpdateAnnouncementRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Content   *string `json:"content" validate:"omitempty,min=1"`
	CreatedBy *string `json:"createdBy" validate:"omitempty"`
}

// Create godoc
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body CreateAnnouncementRequest true "Announcement payload"
// @Success 201 {object} model.Announcement
// @Failure 400 {object} errors.ValidationErrorResponse
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.repo.Create(c.Request().Context(), &model.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// FindAll godoc
// @Summary List announcements, newest postedAt first
// @Tags announcements
// @Produce json
// @Success 200 {array} model.Announcement
// @Router /announcements [get]
func (h *AnnouncementHandler) FindAll(c echo.Context) error {
	announcements, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}

// FindOne godoc
// @Summary Get an announcement by id
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} model.Announcement
// @Failure 404 {object} errors.ErrorResponse
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) FindOne(c echo.Context) error {
	a, err := h.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Update godoc
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} model.Announcement
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req UpdateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.repo.Update(c.Request().Context(), c.Param("id"), &model.AnnouncementPatch{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Remove godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} model.Announcement
// @Failure 404 {object} errors.ErrorResponse
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Remove(c echo.Context) error {
	deleted, err := h.repo.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleted)
}
