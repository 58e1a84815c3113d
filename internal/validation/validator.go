package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/news-api/internal/apperror"
)

// SortColumns is the allow-list of article listing sort keys
var SortColumns = []string{
	"author",
	"title",
	"article_id",
	"topic",
	"created_at",
	"votes",
	"article_img_url",
	"comment_count",
}

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultPage   = 1
)

var (
	validate = validator.New()

	sortTag  = "oneof=" + strings.Join(SortColumns, " ")
	orderTag = "oneof=asc desc"
)

// Limits holds the page size applied when a client sends none
type Limits struct {
	DefaultLimit int
}

// ArticleQuery is a validated article listing request
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
	Limit  int
	Page   int
}

// Offset returns the number of rows skipped before this page
func (q ArticleQuery) Offset() int {
	return q.Limit * (q.Page - 1)
}

// Page is a validated limit/page pair
type Page struct {
	Limit int
	Page  int
}

// Offset returns the number of rows skipped before this page
func (p Page) Offset() int {
	return p.Limit * (p.Page - 1)
}

// ParseArticleQuery validates the topic, sort_by, order, limit and p query
// parameters. Every check runs before any SQL is built; the first failure wins.
func ParseArticleQuery(values url.Values, limits Limits) (ArticleQuery, error) {
	q := ArticleQuery{
		Topic:  values.Get("topic"),
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
	}

	if values.Has("sort_by") {
		q.SortBy = values.Get("sort_by")
		if err := validate.Var(q.SortBy, sortTag); err != nil {
			return ArticleQuery{}, apperror.BadRequest(apperror.MsgInvalidSort)
		}
	}

	if values.Has("order") {
		q.Order = values.Get("order")
		if err := validate.Var(q.Order, orderTag); err != nil {
			return ArticleQuery{}, apperror.BadRequest(apperror.MsgInvalidOrder)
		}
	}

	page, err := parsePage(values, limits)
	if err != nil {
		return ArticleQuery{}, err
	}
	q.Limit = page.Limit
	q.Page = page.Page

	return q, nil
}

// ParsePage validates optional limit and p parameters. It returns nil when
// neither is present, meaning the caller should not paginate.
func ParsePage(values url.Values, limits Limits) (*Page, error) {
	if !values.Has("limit") && !values.Has("p") {
		return nil, nil
	}
	page, err := parsePage(values, limits)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func parsePage(values url.Values, limits Limits) (Page, error) {
	page := Page{Limit: limits.DefaultLimit, Page: DefaultPage}

	if values.Has("limit") {
		limit, err := parsePositive(values.Get("limit"))
		if err != nil {
			return Page{}, err
		}
		page.Limit = limit
	}

	if values.Has("p") {
		p, err := parsePositive(values.Get("p"))
		if err != nil {
			return Page{}, err
		}
		page.Page = p
	}

	return page, nil
}

func parsePositive(raw string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || n < 1 {
		return 0, apperror.BadRequest(apperror.MsgBadRequest)
	}
	return int(n), nil
}

// ParseID parses a path identifier as a 32-bit integer primary key
func ParseID(raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperror.BadRequest(apperror.MsgBadRequest)
	}
	return int(id), nil
}

// BindError classifies a request binding failure. Missing fields listed in
// notFoundFields (Go struct field names) are reported as not found, provided
// no other field failed; everything else is a malformed request.
func BindError(err error, notFoundFields ...string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(notFoundFields) == 0 {
		return apperror.BadRequest(apperror.MsgBadRequest)
	}

	for _, fe := range verrs {
		if !contains(notFoundFields, fe.StructField()) {
			return apperror.BadRequest(apperror.MsgBadRequest)
		}
	}
	return apperror.NotFound()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
