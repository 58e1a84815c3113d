package models

import (
	"time"
)

// DefaultArticleImgURL is stored when an article is created without an image
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article represents an article with its derived comment count
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int64     `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is the listing shape of an article; it omits the body
type ArticleSummary struct {
	Author        string    `json:"author" db:"author"`
	Title         string    `json:"title" db:"title"`
	ArticleID     int       `json:"article_id" db:"article_id"`
	Topic         string    `json:"topic" db:"topic"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int64     `json:"comment_count" db:"comment_count"`
}

// ArticlePage is one page of a filtered article listing
type ArticlePage struct {
	Articles   []ArticleSummary `json:"articles"`
	TotalCount int              `json:"total_count"`
}
