package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	Body      string    `json:"body" db:"body"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
