package database

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/news-api/internal/models"
)

//go:embed data/sample.json
var sampleJSON []byte

// SeedData is a complete dataset for the four tables
type SeedData struct {
	Topics   []SeedTopic   `json:"topics"`
	Users    []SeedUser    `json:"users"`
	Articles []SeedArticle `json:"articles"`
	Comments []SeedComment `json:"comments"`
}

type SeedTopic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type SeedUser struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type SeedArticle struct {
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
}

// SeedComment references its article by 1-based position in Articles,
// which equals article_id after a reseed.
type SeedComment struct {
	Body      string    `json:"body"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// SampleData returns the embedded sample dataset
func SampleData() (*SeedData, error) {
	var data SeedData
	if err := json.Unmarshal(sampleJSON, &data); err != nil {
		return nil, fmt.Errorf("failed to decode sample data: %w", err)
	}
	return &data, nil
}

// Seed replaces the contents of every table with data. Identity sequences
// restart so article and comment ids follow insertion order.
func (db *DB) Seed(ctx context.Context, data *SeedData) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	topics := make([][]any, 0, len(data.Topics))
	for _, t := range data.Topics {
		topics = append(topics, []any{t.Slug, t.Description})
	}
	if err := copyRows(ctx, tx, "topics", []string{"slug", "description"}, topics); err != nil {
		return err
	}

	users := make([][]any, 0, len(data.Users))
	for _, u := range data.Users {
		users = append(users, []any{u.Username, u.Name, u.AvatarURL})
	}
	if err := copyRows(ctx, tx, "users", []string{"username", "name", "avatar_url"}, users); err != nil {
		return err
	}

	articles := make([][]any, 0, len(data.Articles))
	for _, a := range data.Articles {
		imgURL := a.ArticleImgURL
		if imgURL == "" {
			imgURL = models.DefaultArticleImgURL
		}
		articles = append(articles, []any{a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, imgURL})
	}
	if err := copyRows(ctx, tx, "articles",
		[]string{"title", "topic", "author", "body", "created_at", "votes", "article_img_url"}, articles); err != nil {
		return err
	}

	comments := make([][]any, 0, len(data.Comments))
	for _, c := range data.Comments {
		comments = append(comments, []any{c.Body, c.ArticleID, c.Author, c.Votes, c.CreatedAt})
	}
	if err := copyRows(ctx, tx, "comments",
		[]string{"body", "article_id", "author", "votes", "created_at"}, comments); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	db.log.Info().
		Int("topics", len(data.Topics)).
		Int("users", len(data.Users)).
		Int("articles", len(data.Articles)).
		Int("comments", len(data.Comments)).
		Msg("Database seeded")

	return nil
}

// copyRows bulk loads rows into table with COPY FROM STDIN
func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]any) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return fmt.Errorf("failed to prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to copy %s row %d: %w", table, i+1, err)
		}
	}

	// Flush the COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to copy into %s: %w", table, err)
	}
	return nil
}
