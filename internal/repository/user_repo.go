package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db database.Querier
}

// NewUserRepo creates a new user repository
func NewUserRepo(db database.Querier) UserRepository {
	return &userRepo{db: db}
}

// List returns every user ordered by username
func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT username, name, avatar_url FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		var avatar sql.NullString
		if err := rows.Scan(&u.Username, &u.Name, &avatar); err != nil {
			return nil, err
		}
		u.AvatarURL = avatar.String
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByUsername retrieves a user by username
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	var avatar sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT username, name, avatar_url FROM users WHERE username = $1", username,
	).Scan(&u.Username, &u.Name, &avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound()
	}
	if err != nil {
		return nil, err
	}
	u.AvatarURL = avatar.String
	return &u, nil
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
