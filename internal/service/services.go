package service

import (
	"context"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
	Create(ctx context.Context, in validation.NewTopic) (*models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, q validation.ArticleQuery) (*models.ArticlePage, error)
	Get(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, in validation.NewArticle) (*models.Article, error)
	Vote(ctx context.Context, id int, delta int) (*models.Article, error)
	Delete(ctx context.Context, id int) error
	Limits() validation.Limits
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int, page *validation.Page) ([]models.Comment, error)
	Create(ctx context.Context, articleID int, in validation.NewComment) (*models.Comment, error)
	Vote(ctx context.Context, id int, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// StatsService reports table sizes for the health endpoint
type StatsService interface {
	Counts(ctx context.Context) (map[string]int, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
	Stats   StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	limits := validation.Limits{
		DefaultLimit: cfg.Listing.DefaultLimit,
	}

	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		User:    newUserService(repos.User),
		Article: newArticleService(repos.Article, limits, log),
		Comment: newCommentService(repos.Comment, repos.Article, log),
		Stats:   newStatsService(repos),
	}
}
