package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
	"schoolportal/internal/validation"
)

// QuizHandler handles quiz endpoints.
type QuizHandler struct {
	repo repository.QuizRepository
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(repo repository.QuizRepository) *QuizHandler {
	return &QuizHandler{repo: repo}
}

// QuestionRequest represents a single quiz question in a request body.
type QuestionRequest struct {
	Title         string   `json:"title" validate:"required"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// CreateQuizRequest represents a quiz creation request.
type CreateQuizRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description" validate:"omitempty"`
	Questions   []QuestionRequest `json:"questions" validate:"omitempty,dive"`
	CreatedBy   string            `json:"createdBy" validate:"omitempty"`
}

// UpdateQuizRequest represents a partial quiz update. Absent fields are
// left unchanged.
type UpdateQuizRequest struct {
	Title       *string            `json:"title" validate:"omitempty,min=1"`
	Description *string            `json:"description" validate:"omitempty"`
	Questions   *[]QuestionRequest `json:"questions" validate:"omitempty,dive"`
	CreatedBy   *string            `json:"createdBy" validate:"omitempty"`
}

// RegisterRules attaches handler-level validation rules that plain tags
// cannot express.
func RegisterRules(v *validation.Validator) {
	v.RegisterTranslation(correctAnswerTag, "correctAnswer must be a valid index into options")
	v.RegisterStructRule(questionRule, QuestionRequest{})
}

const correctAnswerTag = "option_index"

// questionRule enforces that correctAnswer indexes an existing option.
func questionRule(sl validator.StructLevel) {
	q := sl.Current().Interface().(QuestionRequest)
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		sl.ReportError(q.CorrectAnswer, "correctAnswer", "CorrectAnswer", correctAnswerTag, "")
	}
}

func toQuestions(reqs []QuestionRequest) []model.QuizQuestion {
	questions := make([]model.QuizQuestion, 0, len(reqs))
	for _, q := range reqs {
		questions = append(questions, model.QuizQuestion{
			Title:         q.Title,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return questions
}

// Create godoc
// @Summary Create a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body CreateQuizRequest true "Quiz payload"
// @Success 201 {object} model.Quiz
// @Failure 400 {object} errors.ValidationErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) Create(c echo.Context) error {
	var req CreateQuizRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.repo.Create(c.Request().Context(), &model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Questions:   toQuestions(req.Questions),
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// FindAll godoc
// @Summary List quizzes, newest first
// @Tags quizzes
// @Produce json
// @Success 200 {array} model.Quiz
// @Router /quizzes [get]
func (h *QuizHandler) FindAll(c echo.Context) error {
	quizzes, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quizzes)
}

// FindOne godoc
// @Summary Get a quiz by id
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} errors.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) FindOne(c echo.Context) error {
	q, err := h.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, q)
}

// Update godoc
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body UpdateQuizRequest true "Fields to update"
// @Success 200 {object} model.Quiz
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /quizzes/{id} [put]
func (h *QuizHandler) Update(c echo.Context) error {
	var req UpdateQuizRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := &model.QuizPatch{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	}
	if req.Questions != nil {
		questions := toQuestions(*req.Questions)
		patch.Questions = &questions
	}

	updated, err := h.repo.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Remove godoc
// @Summary Delete a quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} errors.ErrorResponse
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) Remove(c echo.Context) error {
	deleted, err := h.repo.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleted)
}
