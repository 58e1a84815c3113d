package service

import (
	"context"

	"github.com/news-api/internal/repository"
)

type statsService struct {
	repos *repository.Repositories
}

func newStatsService(repos *repository.Repositories) *statsService {
	return &statsService{repos: repos}
}

// Counts returns the row count of every table
func (s *statsService) Counts(ctx context.Context) (map[string]int, error) {
	topics, err := s.repos.Topic.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repos.User.Count(ctx)
	if err != nil {
		return nil, err
	}
	articles, err := s.repos.Article.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	comments, err := s.repos.Comment.Count(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"topics":   topics,
		"users":    users,
		"articles": articles,
		"comments": comments,
	}, nil
}
