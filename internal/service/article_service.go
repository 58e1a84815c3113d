package service

import (
	"context"

	"github.com/news-api/internal/metrics"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	limits   validation.Limits
	log      zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, limits validation.Limits, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		limits:   limits,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// Limits returns the page size bounds applied to listing requests
func (s *articleService) Limits() validation.Limits {
	return s.limits
}

// List returns one page of articles plus the total matching the topic filter
func (s *articleService) List(ctx context.Context, q validation.ArticleQuery) (*models.ArticlePage, error) {
	page, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, err
	}

	metrics.RecordListing(q.SortBy, q.Order)
	s.log.Debug().
		Str("topic", q.Topic).
		Str("sort_by", q.SortBy).
		Str("order", q.Order).
		Int("limit", q.Limit).
		Int("page", q.Page).
		Int("returned", len(page.Articles)).
		Int("total_count", page.TotalCount).
		Msg("Articles listed")

	return page, nil
}

func (s *articleService) Get(ctx context.Context, id int) (*models.Article, error) {
	return s.articles.GetByID(ctx, id)
}

func (s *articleService) Create(ctx context.Context, in validation.NewArticle) (*models.Article, error) {
	article, err := s.articles.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("article_id", article.ArticleID).
		Str("author", article.Author).
		Str("topic", article.Topic).
		Msg("Article created")

	return article, nil
}

// Vote applies a relative vote change
func (s *articleService) Vote(ctx context.Context, id int, delta int) (*models.Article, error) {
	article, err := s.articles.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	metrics.RecordVote("article")
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id int) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("article_id", id).Msg("Article deleted")
	return nil
}
