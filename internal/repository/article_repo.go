package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/validation"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db database.Querier
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db database.Querier) ArticleRepository {
	return &articleRepo{db: db}
}

// List runs the count statement and then the page statement. The two are not
// wrapped in a transaction, so a concurrent write may make total_count
// momentarily disagree with the page.
func (r *articleRepo) List(ctx context.Context, q validation.ArticleQuery) (*models.ArticlePage, error) {
	query, args, err := BuildArticleListQuery(q)
	if err != nil {
		return nil, err
	}

	total, err := r.Count(ctx, q.Topic)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		if err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
		); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.ArticlePage{Articles: articles, TotalCount: total}, nil
}

// Count returns the number of articles, optionally restricted to a topic
func (r *articleRepo) Count(ctx context.Context, topic string) (int, error) {
	query, args := BuildArticleCountQuery(topic)

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// GetByID retrieves an article and its comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author, articles.body,
			articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`
	return scanArticle(r.db.QueryRowContext(ctx, query, id))
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}

// Create inserts a new article. Unknown author or topic surface as a
// foreign key violation.
func (r *articleRepo) Create(ctx context.Context, in validation.NewArticle) (*models.Article, error) {
	imgURL := in.ArticleImgURL
	if imgURL == "" {
		imgURL = models.DefaultArticleImgURL
	}

	query := `
		INSERT INTO articles (author, title, body, topic, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url, 0
	`
	return scanArticle(r.db.QueryRowContext(ctx, query, in.Author, in.Title, in.Body, in.Topic, imgURL))
}

// IncrementVotes adds delta to the article's votes in a single statement
func (r *articleRepo) IncrementVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	query := `
		WITH updated AS (
			UPDATE articles SET votes = votes + $1 WHERE article_id = $2
			RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
		)
		SELECT updated.article_id, updated.title, updated.topic, updated.author, updated.body,
			updated.created_at, updated.votes, updated.article_img_url,
			(SELECT COUNT(*) FROM comments WHERE comments.article_id = updated.article_id)
		FROM updated
	`
	return scanArticle(r.db.QueryRowContext(ctx, query, delta, id))
}

// Delete removes an article; its comments go with it via ON DELETE CASCADE
func (r *articleRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE article_id = $1", id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func scanArticle(row *sql.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound()
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// expectAffected maps a statement that touched no rows to not found
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound()
	}
	return nil
}
