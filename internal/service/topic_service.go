package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) *topicService {
	return &topicService{
		topics: topics,
		log:    log.With().Str("service", "topic").Logger(),
	}
}

func (s *topicService) List(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

func (s *topicService) Create(ctx context.Context, in validation.NewTopic) (*models.Topic, error) {
	topic, err := s.topics.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", topic.Slug).Msg("Topic created")
	return topic, nil
}
