package repository

import (
	"fmt"
	"strings"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/validation"
)

// sortColumns resolves an allow-listed sort key to the SQL expression it
// orders by. Only values from this map ever reach the ORDER BY clause.
var sortColumns = map[string]string{
	"author":          "articles.author",
	"title":           "articles.title",
	"article_id":      "articles.article_id",
	"topic":           "articles.topic",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

var orderDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

const articleSummarySelect = `SELECT articles.author, articles.title, articles.article_id, articles.topic,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`

// BuildArticleCountQuery returns the total-count statement for an optional topic filter
func BuildArticleCountQuery(topic string) (string, []any) {
	if topic == "" {
		return `SELECT COUNT(article_id) FROM articles`, nil
	}
	return `SELECT COUNT(article_id) FROM articles WHERE topic = $1`, []any{topic}
}

// BuildArticleListQuery returns the page statement and its bound arguments.
// Ties in the sort column have no secondary key, so their relative order is
// unspecified.
func BuildArticleListQuery(q validation.ArticleQuery) (string, []any, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		return "", nil, apperror.BadRequest(apperror.MsgInvalidSort)
	}
	direction, ok := orderDirections[q.Order]
	if !ok {
		return "", nil, apperror.BadRequest(apperror.MsgInvalidOrder)
	}
	if q.Limit < 1 || q.Page < 1 {
		return "", nil, apperror.BadRequest(apperror.MsgBadRequest)
	}

	var sb strings.Builder
	var args []any

	sb.WriteString(articleSummarySelect)
	if q.Topic != "" {
		args = append(args, q.Topic)
		fmt.Fprintf(&sb, "\nWHERE articles.topic = $%d", len(args))
	}
	sb.WriteString("\nGROUP BY articles.article_id")
	fmt.Fprintf(&sb, "\nORDER BY %s %s", column, direction)

	args = append(args, q.Limit, q.Offset())
	fmt.Fprintf(&sb, "\nLIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return sb.String(), args, nil
}
