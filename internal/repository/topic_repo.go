package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/validation"
)

type topicRepo struct {
	db database.Querier
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db database.Querier) TopicRepository {
	return &topicRepo{db: db}
}

func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slug, description FROM topics ORDER BY slug")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := make([]models.Topic, 0)
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// Create inserts a topic; a duplicate slug is a unique violation
func (r *topicRepo) Create(ctx context.Context, in validation.NewTopic) (*models.Topic, error) {
	var t models.Topic
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO topics (slug, description) VALUES ($1, $2) RETURNING slug, description",
		in.Slug, in.Description,
	).Scan(&t.Slug, &t.Description)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *topicRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM topics").Scan(&count)
	return count, err
}
