package main

import (
	"context"
	"log"
	"net/http"

	_ "schoolportal/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"schoolportal/internal/config"
	"schoolportal/internal/db"
	"schoolportal/internal/handler"
	"schoolportal/internal/repository"
	"schoolportal/internal/router"
	"schoolportal/internal/service"
)

// @title School Portal API
// @version 1.0
// @description REST API for the school portal: announcements, quizzes, users, and a placeholder auth stub.
// @host localhost:3000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	database, err := db.NewMongo(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Initialize repositories
	announcementRepo := repository.NewAnnouncementRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	userRepo := repository.NewUserRepository(database)

	// Initialize services
	userService := service.NewUserService(userRepo)
	seedService := service.NewSeedService(announcementRepo, quizRepo, userService)

	// Initialize handlers
	announcementHandler := handler.NewAnnouncementHandler(announcementRepo)
	quizHandler := handler.NewQuizHandler(quizRepo)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler()
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	e := echo.New()
	router.Register(
		e,
		cfg,
		announcementHandler,
		quizHandler,
		userHandler,
		authHandler,
		seedHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/api-docs/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
