package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

type userService struct {
	users repository.UserRepository
}

func newUserService(users repository.UserRepository) *userService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, username)
}
