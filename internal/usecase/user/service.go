// Package user provides use cases for managing registered users.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	"github.com/rasel-stacklearner/blogger/internal/repository"
)

// CreateInput represents the input parameters for registering a new user.
type CreateInput struct {
	Name  string
	Email string
}

// Service provides user management use cases.
type Service struct {
	Repo repository.UserRepository
}

// List retrieves all users, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create validates the input and persists a new user.
// Returns entity.ValidationErrors when the input is invalid and
// entity.ErrDuplicateEmail when the email is already registered. The
// uniqueness check is left entirely to the store's constraint so
// concurrent registrations of the same email cannot both succeed.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	if err := entity.ValidateUser(in.Name, in.Email); err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:  in.Name,
		Email: in.Email,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
