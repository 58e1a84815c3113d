package mocks

import (
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// LoadSeed fills the store with a dataset the same way database.Seed fills
// Postgres, so article and comment IDs follow insertion order.
func (s *MockStore) LoadSeed(data *database.SeedData) {
	for _, t := range data.Topics {
		s.AddTopic(t.Slug, t.Description)
	}
	for _, u := range data.Users {
		s.AddUser(u.Username, u.Name)
	}
	for _, a := range data.Articles {
		imgURL := a.ArticleImgURL
		if imgURL == "" {
			imgURL = models.DefaultArticleImgURL
		}
		s.AddArticle(models.Article{
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			Body:          a.Body,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: imgURL,
		})
	}
	for _, c := range data.Comments {
		s.AddComment(models.Comment{
			Body:      c.Body,
			ArticleID: c.ArticleID,
			Author:    c.Author,
			Votes:     c.Votes,
			CreatedAt: c.CreatedAt,
		})
	}
}
