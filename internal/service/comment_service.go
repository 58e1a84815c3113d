package service

import (
	"context"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/metrics"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		articles: articles,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListForArticle returns an article's comments newest first. A missing
// article is not found; an article without comments yields an empty list.
func (s *commentService) ListForArticle(ctx context.Context, articleID int, page *validation.Page) ([]models.Comment, error) {
	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound()
	}

	return s.comments.ListByArticle(ctx, articleID, page)
}

func (s *commentService) Create(ctx context.Context, articleID int, in validation.NewComment) (*models.Comment, error) {
	comment, err := s.comments.Create(ctx, articleID, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("comment_id", comment.CommentID).
		Int("article_id", articleID).
		Str("author", comment.Author).
		Msg("Comment created")

	return comment, nil
}

// Vote applies a relative vote change
func (s *commentService) Vote(ctx context.Context, id int, delta int) (*models.Comment, error) {
	comment, err := s.comments.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	metrics.RecordVote("comment")
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id int) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}
