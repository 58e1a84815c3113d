package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/validation"
)

const commentColumns = `comment_id, body, article_id, author, votes, created_at`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db database.Querier
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db database.Querier) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle returns an article's comments, newest first. A nil page
// returns every comment.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int, page *validation.Page) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC`
	args := []any{articleID}

	if page != nil {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, page.Limit, page.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Create inserts a comment on an article. votes starts at 0.
func (r *commentRepo) Create(ctx context.Context, articleID int, in validation.NewComment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (body, article_id, author)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns
	return scanComment(r.db.QueryRowContext(ctx, query, in.Body, articleID, in.Username))
}

// IncrementVotes adds delta to the comment's votes in a single statement
func (r *commentRepo) IncrementVotes(ctx context.Context, id int, delta int) (*models.Comment, error) {
	query := `
		UPDATE comments SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING ` + commentColumns
	return scanComment(r.db.QueryRowContext(ctx, query, delta, id))
}

// Delete removes a comment by ID
func (r *commentRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}

func scanComment(row *sql.Row) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("scan comment: %w", err)
	}
	return &c, nil
}
