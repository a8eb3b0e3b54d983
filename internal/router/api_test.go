package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"schoolportal/internal/config"
	"schoolportal/internal/errors"
	"schoolportal/internal/handler"
	"schoolportal/internal/model"
	"schoolportal/internal/service"
)

type testEnv struct {
	e             *echo.Echo
	announcements *MockAnnouncementRepository
	quizzes       *MockQuizRepository
	users         *MockUserRepository
}

func newTestEnv() *testEnv {
	announcements := new(MockAnnouncementRepository)
	quizzes := new(MockQuizRepository)
	users := new(MockUserRepository)

	userService := service.NewUserService(users)
	seedService := service.NewSeedService(announcements, quizzes, userService)

	e := echo.New()
	Register(
		e,
		&config.Config{CORSOrigin: "http://localhost:5173"},
		handler.NewAnnouncementHandler(announcements),
		handler.NewQuizHandler(quizzes),
		handler.NewUserHandler(userService),
		handler.NewAuthHandler(),
		handler.NewSeedHandler(seedService),
	)
	return &testEnv{e: e, announcements: announcements, quizzes: quizzes, users: users}
}

func (env *testEnv) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAnnouncement(t *testing.T) {
	env := newTestEnv()

	id := primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)
	env.announcements.On("Create", mock.Anything, mock.AnythingOfType("*model.Announcement")).
		Return(&model.Announcement{
			ID:        id,
			Title:     "T",
			Content:   "C",
			PostedAt:  now,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

	rec := env.request(http.MethodPost, "/api/announcements", `{"title":"T","content":"C"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got model.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "C", got.Content)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	env.announcements.AssertExpectations(t)
}

func TestCreateAnnouncementValidation(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedField string
	}{
		{name: "missing title", body: `{"content":"C"}`, expectedField: "title"},
		{name: "missing content", body: `{"title":"T"}`, expectedField: "content"},
		{name: "empty title", body: `{"title":"","content":"C"}`, expectedField: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			rec := env.request(http.MethodPost, "/api/announcements", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var got errors.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, http.StatusBadRequest, got.StatusCode)
			assert.Equal(t, "Validation failed", got.Message)
			assert.Contains(t, got.Errors, tt.expectedField)
		})
	}
}

func TestCreateAnnouncementRejectsUnknownFields(t *testing.T) {
	env := newTestEnv()
	rec := env.request(http.MethodPost, "/api/announcements", `{"title":"T","content":"C","sneaky":true}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var got errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Contains(t, got.Message, "unknown field")
}

func TestGetAnnouncementNotFound(t *testing.T) {
	env := newTestEnv()
	env.announcements.On("FindByID", mock.Anything, "missing").
		Return(nil, errors.NotFound("Announcement not found."))

	rec := env.request(http.MethodGet, "/api/announcements/missing", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var got errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, http.StatusNotFound, got.StatusCode)
	assert.Equal(t, "Announcement not found.", got.Message)
}

func TestListAnnouncements(t *testing.T) {
	env := newTestEnv()
	newer := model.Announcement{ID: primitive.NewObjectID(), Title: "newer"}
	older := model.Announcement{ID: primitive.NewObjectID(), Title: "older"}
	env.announcements.On("FindAll", mock.Anything).Return([]model.Announcement{newer, older}, nil)

	rec := env.request(http.MethodGet, "/api/announcements", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Title)
}

func TestUpdateAnnouncementPartialPatch(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()
	env.announcements.On("Update", mock.Anything, id.Hex(), mock.AnythingOfType("*model.AnnouncementPatch")).
		Return(&model.Announcement{ID: id, Title: "New", Content: "old content"}, nil)

	rec := env.request(http.MethodPut, "/api/announcements/"+id.Hex(), `{"title":"New"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	patch := env.announcements.Calls[0].Arguments.Get(2).(*model.AnnouncementPatch)
	require.NotNil(t, patch.Title)
	assert.Equal(t, "New", *patch.Title)
	assert.Nil(t, patch.Content, "absent fields must not be patched")
}

func TestDeleteAnnouncement(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()
	env.announcements.On("Delete", mock.Anything, id.Hex()).
		Return(&model.Announcement{ID: id, Title: "gone"}, nil)

	rec := env.request(http.MethodDelete, "/api/announcements/"+id.Hex(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "gone", got.Title)
}

func TestCreateQuizCorrectAnswerOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "index past the options",
			body: `{"title":"Q","questions":[{"title":"pick one","options":["a","b"],"correctAnswer":2}]}`,
		},
		{
			name: "negative index",
			body: `{"title":"Q","questions":[{"title":"pick one","options":["a","b"],"correctAnswer":-1}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			rec := env.request(http.MethodPost, "/api/quizzes", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var got errors.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "Validation failed", got.Message)
			assert.Contains(t, got.Errors, "questions[0].correctAnswer")
		})
	}
}

func TestCreateQuiz(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()
	env.quizzes.On("Create", mock.Anything, mock.AnythingOfType("*model.Quiz")).
		Return(&model.Quiz{ID: id, Title: "Q"}, nil)

	body := `{"title":"Q","description":"d","questions":[{"title":"pick one","options":["a","b"],"correctAnswer":1}]}`
	rec := env.request(http.MethodPost, "/api/quizzes", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := env.quizzes.Calls[0].Arguments.Get(1).(*model.Quiz)
	require.Len(t, created.Questions, 1)
	assert.Equal(t, 1, created.Questions[0].CorrectAnswer)
	assert.Equal(t, []string{"a", "b"}, created.Questions[0].Options)
}

func TestUpdateQuizKeepsQuestionsWhenAbsent(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()
	env.quizzes.On("Update", mock.Anything, id.Hex(), mock.AnythingOfType("*model.QuizPatch")).
		Return(&model.Quiz{ID: id, Title: "New"}, nil)

	rec := env.request(http.MethodPut, "/api/quizzes/"+id.Hex(), `{"title":"New"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	patch := env.quizzes.Calls[0].Arguments.Get(2).(*model.QuizPatch)
	require.NotNil(t, patch.Title)
	assert.Equal(t, "New", *patch.Title)
	assert.Nil(t, patch.Questions, "absent questions must not be patched")
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()
	env.users.On("FindByEmail", mock.Anything, "jane@school.com").
		Return(nil, errors.NotFound("User not found"))
	env.users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(&model.User{
			ID:        id,
			Email:     "jane@school.com",
			Password:  "$2a$10$secret-hash",
			FirstName: "Jane",
			LastName:  "Doe",
			Role:      model.RoleStudent,
			IsActive:  true,
		}, nil)

	body := `{"email":"jane@school.com","password":"secret123","firstName":"Jane","lastName":"Doe"}`
	rec := env.request(http.MethodPost, "/api/users", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "student", got["role"])
	assert.Equal(t, true, got["isActive"])
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.users.On("FindByEmail", mock.Anything, "existing@school.com").
		Return(&model.User{Email: "existing@school.com"}, nil)

	body := `{"email":"existing@school.com","password":"secret123","firstName":"Ex","lastName":"Isting"}`
	rec := env.request(http.MethodPost, "/api/users", body)

	require.Equal(t, http.StatusConflict, rec.Code)
	var got errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, http.StatusConflict, got.StatusCode)
	assert.Equal(t, "User with this email already exists", got.Message)
}

func TestAuthEndpoints(t *testing.T) {
	env := newTestEnv()

	rec := env.request(http.MethodPost, "/api/auth/login", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var login handler.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, "Login successful", login.Message)
	assert.True(t, login.IsAuthenticated)
	assert.Equal(t, "simple-token", login.Token)

	rec = env.request(http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var logout handler.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logout))
	assert.Equal(t, "Logout successful", logout.Message)
	assert.False(t, logout.IsAuthenticated)

	rec = env.request(http.MethodGet, "/api/auth/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAuthenticated":true}`, rec.Body.String())
}

func TestSeedEndpoint(t *testing.T) {
	env := newTestEnv()
	defaultUser := &model.User{ID: primitive.NewObjectID(), Email: "default@school.com"}
	env.users.On("FindByEmail", mock.Anything, "default@school.com").Return(defaultUser, nil)
	env.announcements.On("Create", mock.Anything, mock.AnythingOfType("*model.Announcement")).
		Return(&model.Announcement{}, nil).Times(3)
	env.quizzes.On("Create", mock.Anything, mock.AnythingOfType("*model.Quiz")).
		Return(&model.Quiz{}, nil).Times(2)

	rec := env.request(http.MethodPost, "/api/seed", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Sample data created successfully!"}`, rec.Body.String())
	env.announcements.AssertExpectations(t)
	env.quizzes.AssertExpectations(t)
}
