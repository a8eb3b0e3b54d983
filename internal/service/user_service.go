package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"schoolportal/internal/errors"
	"schoolportal/internal/model"
	"schoolportal/internal/repository"
)

// Default user created on demand for seeded content.
const (
	defaultUserEmail    = "default@school.com"
	defaultUserPassword = "default123"
)

// CreateUserParams carries validated input for user creation. Password is
// the plaintext password; it is hashed before it ever reaches the store.
type CreateUserParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// UserService exposes user domain operations.
type UserService interface {
	Create(ctx context.Context, p CreateUserParams) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	GetOrCreateDefault(ctx context.Context) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService on top of a user repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create registers a new user. Email uniqueness is enforced here; the
// password is bcrypt-hashed and never stored or returned in plaintext.
func (s *userService) Create(ctx context.Context, p CreateUserParams) (*model.User, error) {
	_, err := s.repo.FindByEmail(ctx, p.Email)
	if err == nil {
		return nil, errors.ErrEmailTaken
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := p.Role
	if role == "" {
		role = model.RoleStudent
	}

	user := &model.User{
		Email:     p.Email,
		Password:  string(hash),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      role,
		IsActive:  true,
	}
	return s.repo.Create(ctx, user)
}

// GetByID returns a user by id.
func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

// GetOrCreateDefault returns the default portal user, creating it on first use.
func (s *userService) GetOrCreateDefault(ctx context.Context) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, defaultUserEmail)
	if err == nil {
		return user, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}
	return s.Create(ctx, CreateUserParams{
		Email:     defaultUserEmail,
		Password:  defaultUserPassword,
		FirstName: "Default",
		LastName:  "Student",
		Role:      model.RoleStudent,
	})
}
