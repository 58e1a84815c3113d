package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/validation"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Create(ctx context.Context, in validation.NewTopic) (*models.Topic, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, q validation.ArticleQuery) (*models.ArticlePage, error)
	Count(ctx context.Context, topic string) (int, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, in validation.NewArticle) (*models.Article, error)
	IncrementVotes(ctx context.Context, id int, delta int) (*models.Article, error)
	Delete(ctx context.Context, id int) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int, page *validation.Page) ([]models.Comment, error)
	Create(ctx context.Context, articleID int, in validation.NewComment) (*models.Comment, error)
	IncrementVotes(ctx context.Context, id int, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories over the given persistence gateway
func New(db database.Querier) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
	}
}
