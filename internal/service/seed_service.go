package service

import (
	"context"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
)

// SeedService inserts the fixed sample data set.
type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	announcements repository.AnnouncementRepository
	quizzes       repository.QuizRepository
	users         UserService
}

// NewSeedService builds a SeedService.
func NewSeedService(
	announcements repository.AnnouncementRepository,
	quizzes repository.QuizRepository,
	users UserService,
) SeedService {
	return &seedService{
		announcements: announcements,
		quizzes:       quizzes,
		users:         users,
	}
}

// Seed creates the sample announcements and quizzes, attributed to the
// default portal user.
func (s *seedService) Seed(ctx context.Context) error {
	user, err := s.users.GetOrCreateDefault(ctx)
	if err != nil {
		return err
	}
	creator := user.ID.Hex()

	for _, a := range sampleAnnouncements() {
		a.CreatedBy = creator
		if _, err := s.announcements.Create(ctx, &a); err != nil {
			return err
		}
	}

	for _, q := range sampleQuizzes() {
		q.CreatedBy = creator
		if _, err := s.quizzes.Create(ctx, &q); err != nil {
			return err
		}
	}
	return nil
}

func sampleAnnouncements() []model.Announcement {
	return []model.Announcement{
		{
			Title:   "Welcome to the New Semester!",
			Content: "We are excited to start this new semester with you. Please check your schedules and assignments.",
		},
		{
			Title:   "Assignment Deadline Reminder",
			Content: "Don't forget about the upcoming assignment deadline next week. Submit your work on time.",
		},
		{
			Title:   "Virtual Office Hours",
			Content: "Office hours will be held virtually every Tuesday and Thursday from 2-4 PM.",
		},
	}
}

func sampleQuizzes() []model.Quiz {
	return []model.Quiz{
		{
			Title:       "JavaScript Fundamentals",
			Description: "Test your knowledge of JavaScript basics",
			Questions: []model.QuizQuestion{
				{
					Title:         "What is the correct way to declare a variable in JavaScript?",
					Options:       []string{"var x = 5;", "variable x = 5;", "v x = 5;", "declare x = 5;"},
					CorrectAnswer: 0,
				},
				{
					Title:         "Which method is used to add an element to the end of an array?",
					Options:       []string{"push()", "add()", "append()", "insert()"},
					CorrectAnswer: 0,
				},
			},
		},
		{
			Title:       "React Components",
			Description: "Understanding React component lifecycle",
			Questions: []model.QuizQuestion{
				{
					Title:         "What is JSX?",
					Options:       []string{"A JavaScript extension", "A CSS framework", "A database", "A server"},
					CorrectAnswer: 0,
				},
			},
		},
	}
}
