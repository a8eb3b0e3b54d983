package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"schoolportal/internal/config"
	"schoolportal/internal/handler"
	"schoolportal/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	announcementHandler *handler.AnnouncementHandler,
	quizHandler *handler.QuizHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	v := validation.New()
	handler.RegisterRules(v)
	e.Validator = v
	e.Binder = strictJSONBinder{}
	e.HTTPErrorHandler = newHTTPErrorHandler(v)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/announcements", announcementHandler.FindAll)
	api.GET("/announcements/:id", announcementHandler.FindOne)
	api.POST("/announcements", announcementHandler.Create)
	api.PUT("/announcements/:id", announcementHandler.Update)
	api.PATCH("/announcements/:id", announcementHandler.Update)
	api.DELETE("/announcements/:id", announcementHandler.Remove)

	api.GET("/quizzes", quizHandler.FindAll)
	api.GET("/quizzes/:id", quizHandler.FindOne)
	api.POST("/quizzes", quizHandler.Create)
	api.PUT("/quizzes/:id", quizHandler.Update)
	api.PATCH("/quizzes/:id", quizHandler.Update)
	api.DELETE("/quizzes/:id", quizHandler.Remove)

	api.GET("/users", userHandler.FindAll)
	api.GET("/users/:id", userHandler.FindOne)
	api.POST("/users", userHandler.Create)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/status", authHandler.Status)

	api.POST("/seed", seedHandler.Seed)
}
