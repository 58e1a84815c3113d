package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/api"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/mocks"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data, err := database.SampleData()
	if err != nil {
		t.Fatalf("Failed to load sample data: %v", err)
	}

	repos, store := mocks.NewMockRepositories()
	store.LoadSeed(data)

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "9090"},
		Listing: config.ListingConfig{DefaultLimit: 10},
	}

	services := service.NewServices(repos, cfg, zerolog.Nop())
	router := api.NewRouter(services, zerolog.Nop())
	gin.SetMode(gin.TestMode)

	return router, store
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			json.NewEncoder(&buf).Encode(b)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
}

func assertMsg(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("Expected status %d, got %d (%s)", status, w.Code, w.Body.String())
	}
	var resp map[string]string
	decode(t, w, &resp)
	if resp["msg"] != msg {
		t.Errorf("Expected msg %q, got %q", msg, resp["msg"])
	}
}

type articlesResponse struct {
	Articles   []map[string]interface{} `json:"articles"`
	TotalCount int                      `json:"total_count"`
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	decode(t, w, &resp)
	if resp["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", resp["status"])
	}
}

func TestHealthEndpoint_StoreDown(t *testing.T) {
	router, store := setupTestRouter(t)
	store.Err = errors.New("connection refused")

	w := doRequest(router, "GET", "/health", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	doRequest(router, "GET", "/api/topics", nil)
	w := doRequest(router, "GET", "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "newsapi_http_requests_total") {
		t.Error("Expected request counter in metrics output")
	}
}

func TestListEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/api", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp struct {
		Endpoints map[string]interface{} `json:"endpoints"`
	}
	decode(t, w, &resp)
	for _, key := range []string{"GET /api/topics", "GET /api/articles", "PATCH /api/comments/:comment_id"} {
		if _, ok := resp.Endpoints[key]; !ok {
			t.Errorf("Expected endpoint %q to be documented", key)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupTestRouter(t)

	assertMsg(t, doRequest(router, "GET", "/api/not-a-route", nil), http.StatusNotFound, "Not found")
	assertMsg(t, doRequest(router, "GET", "/nope", nil), http.StatusNotFound, "Not found")
}

func TestInternalErrorHasEmptyBody(t *testing.T) {
	router, store := setupTestRouter(t)
	store.Err = errors.New("connection reset by peer")

	w := doRequest(router, "GET", "/api/topics", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "OPTIONS", "/api/articles", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header to be set")
	}
}

func TestRequestIDPropagation(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/topics", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("Expected request ID 'abc-123', got %q", got)
	}

	w = doRequest(router, "GET", "/api/topics", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated request ID")
	}
}

func TestTopics(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/api/topics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp struct {
		Topics []models.Topic `json:"topics"`
	}
	decode(t, w, &resp)
	if len(resp.Topics) != 3 {
		t.Fatalf("Expected 3 topics, got %d", len(resp.Topics))
	}
	for _, topic := range resp.Topics {
		if topic.Slug == "" || topic.Description == "" {
			t.Errorf("Expected slug and description, got %+v", topic)
		}
	}
}

func TestCreateTopic(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "POST", "/api/topics", map[string]string{"slug": "dogs", "description": "Not cats"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}
	var resp struct {
		Topic models.Topic `json:"topic"`
	}
	decode(t, w, &resp)
	if resp.Topic.Slug != "dogs" {
		t.Errorf("Expected slug 'dogs', got %q", resp.Topic.Slug)
	}

	assertMsg(t, doRequest(router, "POST", "/api/topics", map[string]string{"slug": "dogs", "description": "again"}), http.StatusBadRequest, "Bad request")
	assertMsg(t, doRequest(router, "POST", "/api/topics", map[string]string{"slug": "birds"}), http.StatusBadRequest, "Bad request")
}

func TestGetArticle(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/api/articles/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp struct {
		Article models.Article `json:"article"`
	}
	decode(t, w, &resp)
	if resp.Article.ArticleID != 1 {
		t.Errorf("Expected article_id 1, got %d", resp.Article.ArticleID)
	}
	if resp.Article.CommentCount != 11 {
		t.Errorf("Expected comment_count 11, got %d", resp.Article.CommentCount)
	}
	if resp.Article.Body == "" {
		t.Error("Expected article body to be present")
	}

	// comment_count is a JSON number
	var raw map[string]map[string]interface{}
	decode(t, w, &raw)
	if _, ok := raw["article"]["comment_count"].(float64); !ok {
		t.Errorf("Expected numeric comment_count, got %T", raw["article"]["comment_count"])
	}
}

func TestGetArticle_Errors(t *testing.T) {
	router, _ := setupTestRouter(t)

	assertMsg(t, doRequest(router, "GET", "/api/articles/9999", nil), http.StatusNotFound, "Resource not found")
	assertMsg(t, doRequest(router, "GET", "/api/articles/banana", nil), http.StatusBadRequest, "Bad request")
	assertMsg(t, doRequest(router, "GET", "/api/articles/99999999999", nil), http.StatusBadRequest, "Bad request")
}

func TestListArticles_Defaults(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/api/articles", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp articlesResponse
	decode(t, w, &resp)

	if resp.TotalCount != 13 {
		t.Errorf("Expected total_count 13, got %d", resp.TotalCount)
	}
	if len(resp.Articles) != 10 {
		t.Fatalf("Expected 10 articles, got %d", len(resp.Articles))
	}
	for _, a := range resp.Articles {
		if _, ok := a["body"]; ok {
			t.Errorf("Expected no body in listing, got article %v", a["article_id"])
		}
		if _, ok := a["comment_count"]; !ok {
			t.Errorf("Expected comment_count on article %v", a["article_id"])
		}
	}

	dates := make([]string, len(resp.Articles))
	for i, a := range resp.Articles {
		dates[i] = a["created_at"].(string)
	}
	if !sort.SliceIsSorted(dates, func(i, j int) bool { return dates[i] > dates[j] }) {
		t.Errorf("Expected articles sorted by created_at descending, got %v", dates)
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	router, _ := setupTestRouter(t)

	var resp articlesResponse
	decode(t, doRequest(router, "GET", "/api/articles?topic=cats", nil), &resp)
	if resp.TotalCount != 1 || len(resp.Articles) != 1 {
		t.Fatalf("Expected 1 cats article, got %d (total %d)", len(resp.Articles), resp.TotalCount)
	}
	if resp.Articles[0]["topic"] != "cats" {
		t.Errorf("Expected topic 'cats', got %v", resp.Articles[0]["topic"])
	}

	w := doRequest(router, "GET", "/api/articles?topic=unknown", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for unknown topic, got %d", w.Code)
	}
	decode(t, w, &resp)
	if len(resp.Articles) != 0 || resp.TotalCount != 0 {
		t.Errorf("Expected empty listing, got %d articles", len(resp.Articles))
	}
}

func TestListArticles_SortAndPaging(t *testing.T) {
	router, _ := setupTestRouter(t)

	var resp articlesResponse
	decode(t, doRequest(router, "GET", "/api/articles?sort_by=votes&order=desc&limit=1", nil), &resp)
	if len(resp.Articles) != 1 || resp.Articles[0]["article_id"].(float64) != 1 {
		t.Fatalf("Expected article 1 to have the most votes, got %v", resp.Articles)
	}

	decode(t, doRequest(router, "GET", "/api/articles?limit=5&p=3", nil), &resp)
	if len(resp.Articles) != 3 {
		t.Errorf("Expected 3 articles on the last page, got %d", len(resp.Articles))
	}
	if resp.TotalCount != 13 {
		t.Errorf("Expected total_count 13, got %d", resp.TotalCount)
	}

	decode(t, doRequest(router, "GET", "/api/articles?p=50", nil), &resp)
	if len(resp.Articles) != 0 || resp.TotalCount != 13 {
		t.Errorf("Expected empty page with total 13, got %d (total %d)", len(resp.Articles), resp.TotalCount)
	}
}

func TestListArticles_InvalidQueries(t *testing.T) {
	router, store := setupTestRouter(t)

	tests := []struct {
		query string
		msg   string
	}{
		{"sort_by=body", "Invalid sort query"},
		{"sort_by=votes%3B%20DROP%20TABLE%20articles", "Invalid sort query"},
		{"order=sideways", "Invalid order query"},
		{"limit=0", "Bad request"},
		{"limit=abc", "Bad request"},
		{"p=-1", "Bad request"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assertMsg(t, doRequest(router, "GET", "/api/articles?"+tt.query, nil), http.StatusBadRequest, tt.msg)
		})
	}

	if store.ListCalls != 0 {
		t.Errorf("Expected invalid queries to be rejected before reaching the store, got %d calls", store.ListCalls)
	}
}

func TestCreateArticle(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "POST", "/api/articles", map[string]string{
		"author": "lurker",
		"title":  "On lurking",
		"body":   "Quietly",
		"topic":  "paper",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Article models.Article `json:"article"`
	}
	decode(t, w, &resp)
	if resp.Article.ArticleID != 14 {
		t.Errorf("Expected article_id 14, got %d", resp.Article.ArticleID)
	}
	if resp.Article.ArticleImgURL != models.DefaultArticleImgURL {
		t.Errorf("Expected default image, got %q", resp.Article.ArticleImgURL)
	}
	if resp.Article.CommentCount != 0 || resp.Article.Votes != 0 {
		t.Errorf("Expected zero votes and comments, got %+v", resp.Article)
	}

	assertMsg(t, doRequest(router, "POST", "/api/articles", map[string]string{"title": "x"}), http.StatusBadRequest, "Bad request")
	assertMsg(t, doRequest(router, "POST", "/api/articles", map[string]string{
		"author": "nobody", "title": "x", "body": "y", "topic": "paper",
	}), http.StatusNotFound, "Resource not found")
}

func TestPatchArticle(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "PATCH", "/api/articles/1", map[string]int{"inc_votes": -100})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp struct {
		Article models.Article `json:"article"`
	}
	decode(t, w, &resp)
	if resp.Article.Votes != 0 {
		t.Errorf("Expected votes 0, got %d", resp.Article.Votes)
	}

	assertMsg(t, doRequest(router, "PATCH", "/api/articles/1", map[string]string{"inc_votes": "cat"}), http.StatusBadRequest, "Bad request")
	assertMsg(t, doRequest(router, "PATCH", "/api/articles/1", map[string]string{}), http.StatusBadRequest, "Bad request")
	assertMsg(t, doRequest(router, "PATCH", "/api/articles/9999", map[string]int{"inc_votes": 1}), http.StatusNotFound, "Resource not found")
	assertMsg(t, doRequest(router, "PATCH", "/api/articles/one", map[string]int{"inc_votes": 1}), http.StatusBadRequest, "Bad request")
}

func TestDeleteArticle(t *testing.T) {
	router, store := setupTestRouter(t)

	w := doRequest(router, "DELETE", "/api/articles/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
	for _, c := range store.Comments {
		if c.ArticleID == 1 {
			t.Fatalf("Expected comments of article 1 to be deleted, found comment %d", c.CommentID)
		}
	}

	assertMsg(t, doRequest(router, "DELETE", "/api/articles/1", nil), http.StatusNotFound, "Resource not found")
	assertMsg(t, doRequest(router, "GET", "/api/articles/1/comments", nil), http.StatusNotFound, "Resource not found")
}

func TestListComments(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/api/articles/1/comments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	decode(t, w, &resp)
	if len(resp.Comments) != 11 {
		t.Fatalf("Expected 11 comments, got %d", len(resp.Comments))
	}
	for i := 1; i < len(resp.Comments); i++ {
		if resp.Comments[i].CreatedAt.After(resp.Comments[i-1].CreatedAt) {
			t.Errorf("Expected comments newest first at index %d", i)
		}
	}

	decode(t, doRequest(router, "GET", "/api/articles/1/comments?limit=5&p=3", nil), &resp)
	if len(resp.Comments) != 1 {
		t.Errorf("Expected 1 comment on page 3, got %d", len(resp.Comments))
	}
}

func TestListComments_EmptyAndMissing(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/api/articles/2/comments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `{"comments":[]}` {
		t.Errorf("Expected empty comments array, got %s", w.Body.String())
	}

	assertMsg(t, doRequest(router, "GET", "/api/articles/9999/comments", nil), http.StatusNotFound, "Resource not found")
	assertMsg(t, doRequest(router, "GET", "/api/articles/x/comments", nil), http.StatusBadRequest, "Bad request")
	assertMsg(t, doRequest(router, "GET", "/api/articles/1/comments?limit=0", nil), http.StatusBadRequest, "Bad request")
}

func TestCreateComment(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "POST", "/api/articles/2/comments", map[string]string{
		"username": "butter_bridge",
		"body":     "First!",
		"ignored":  "extra",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Comment models.Comment `json:"comment"`
	}
	decode(t, w, &resp)
	if resp.Comment.ArticleID != 2 || resp.Comment.Author != "butter_bridge" || resp.Comment.Votes != 0 {
		t.Errorf("Unexpected comment %+v", resp.Comment)
	}

	var article struct {
		Article models.Article `json:"article"`
	}
	decode(t, doRequest(router, "GET", "/api/articles/2", nil), &article)
	if article.Article.CommentCount != 1 {
		t.Errorf("Expected comment_count 1, got %d", article.Article.CommentCount)
	}
}

func TestCreateComment_Errors(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
		msg    string
	}{
		{"empty payload", "/api/articles/1/comments", map[string]string{}, http.StatusBadRequest, "Bad request"},
		{"missing body", "/api/articles/1/comments", map[string]string{"username": "lurker"}, http.StatusBadRequest, "Bad request"},
		{"missing username", "/api/articles/1/comments", map[string]string{"body": "hi"}, http.StatusNotFound, "Resource not found"},
		{"unknown user", "/api/articles/1/comments", map[string]string{"username": "ghost", "body": "hi"}, http.StatusNotFound, "Resource not found"},
		{"unknown article", "/api/articles/9999/comments", map[string]string{"username": "lurker", "body": "hi"}, http.StatusNotFound, "Resource not found"},
		{"invalid article id", "/api/articles/abc/comments", map[string]string{"username": "lurker", "body": "hi"}, http.StatusBadRequest, "Bad request"},
		{"malformed json", "/api/articles/1/comments", "{not json", http.StatusBadRequest, "Bad request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMsg(t, doRequest(router, "POST", tt.path, tt.body), tt.status, tt.msg)
		})
	}
}

func TestPatchComment(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "PATCH", "/api/comments/1", map[string]int{"inc_votes": 4})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp struct {
		Comment models.Comment `json:"comment"`
	}
	decode(t, w, &resp)
	if resp.Comment.Votes != 20 {
		t.Errorf("Expected votes 20, got %d", resp.Comment.Votes)
	}

	assertMsg(t, doRequest(router, "PATCH", "/api/comments/9999", map[string]int{"inc_votes": 1}), http.StatusNotFound, "Resource not found")
	assertMsg(t, doRequest(router, "PATCH", "/api/comments/1", map[string]bool{"inc_votes": true}), http.StatusBadRequest, "Bad request")
}

func TestDeleteComment(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "DELETE", "/api/comments/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}

	assertMsg(t, doRequest(router, "DELETE", "/api/comments/1", nil), http.StatusNotFound, "Resource not found")
	assertMsg(t, doRequest(router, "DELETE", "/api/comments/abc", nil), http.StatusBadRequest, "Bad request")
}

func TestUsers(t *testing.T) {
	router, _ := setupTestRouter(t)

	var resp struct {
		Users []models.User `json:"users"`
	}
	decode(t, doRequest(router, "GET", "/api/users", nil), &resp)
	if len(resp.Users) != 4 {
		t.Errorf("Expected 4 users, got %d", len(resp.Users))
	}

	var one struct {
		User models.User `json:"user"`
	}
	w := doRequest(router, "GET", "/api/users/butter_bridge", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	decode(t, w, &one)
	if one.User.Username != "butter_bridge" {
		t.Errorf("Expected butter_bridge, got %q", one.User.Username)
	}

	assertMsg(t, doRequest(router, "GET", "/api/users/ghost", nil), http.StatusNotFound, "Resource not found")
}

func TestListArticles_PageSizes(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, limit := range []int{1, 3, 5, 13, 20} {
		for p := 1; p <= 4; p++ {
			var resp articlesResponse
			path := "/api/articles?limit=" + strconv.Itoa(limit) + "&p=" + strconv.Itoa(p)
			decode(t, doRequest(router, "GET", path, nil), &resp)

			want := resp.TotalCount - limit*(p-1)
			if want < 0 {
				want = 0
			}
			if want > limit {
				want = limit
			}
			if len(resp.Articles) != want {
				t.Errorf("%s: expected %d articles, got %d", path, want, len(resp.Articles))
			}
			if resp.TotalCount != 13 {
				t.Errorf("%s: expected total_count 13, got %d", path, resp.TotalCount)
			}
		}
	}
}

func TestListArticles_LargeLimit(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, limit := range []string{"101", "1000"} {
		w := doRequest(router, "GET", "/api/articles?limit="+limit, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("limit=%s: expected status 200, got %d (%s)", limit, w.Code, w.Body.String())
		}
		var resp articlesResponse
		decode(t, w, &resp)
		if len(resp.Articles) != 13 || resp.TotalCount != 13 {
			t.Errorf("limit=%s: expected all 13 articles, got %d (total %d)", limit, len(resp.Articles), resp.TotalCount)
		}
	}

	w := doRequest(router, "GET", "/api/articles/1/comments?limit=500", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var comments struct {
		Comments []models.Comment `json:"comments"`
	}
	decode(t, w, &comments)
	if len(comments.Comments) != 11 {
		t.Errorf("Expected 11 comments, got %d", len(comments.Comments))
	}
}

func articleIDs(t *testing.T, router *gin.Engine, path string) []int {
	t.Helper()
	w := doRequest(router, "GET", path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("%s: expected status 200, got %d", path, w.Code)
	}
	var resp articlesResponse
	decode(t, w, &resp)
	ids := make([]int, len(resp.Articles))
	for i, a := range resp.Articles {
		ids[i] = int(a["article_id"].(float64))
	}
	return ids
}

func reversed(ids []int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}

func TestListArticles_OrderReverses(t *testing.T) {
	router, _ := setupTestRouter(t)

	desc := articleIDs(t, router, "/api/articles?sort_by=article_id&order=desc&limit=13")
	asc := articleIDs(t, router, "/api/articles?sort_by=article_id&order=asc&limit=13")
	if len(desc) != 13 {
		t.Fatalf("Expected 13 articles, got %d", len(desc))
	}
	if !reflect.DeepEqual(asc, reversed(desc)) {
		t.Errorf("Expected asc %v to reverse desc %v", asc, desc)
	}

	// Articles 12 and 13 share created_at; compare the tie-free rest.
	tieFree := func(ids []int) []int {
		out := make([]int, 0, len(ids))
		for _, id := range ids {
			if id != 12 && id != 13 {
				out = append(out, id)
			}
		}
		return out
	}
	desc = tieFree(articleIDs(t, router, "/api/articles?limit=13"))
	asc = tieFree(articleIDs(t, router, "/api/articles?order=asc&limit=13"))
	if len(desc) != 11 {
		t.Fatalf("Expected 11 tie-free articles, got %d", len(desc))
	}
	if desc[0] != 3 {
		t.Errorf("Expected newest article 3 first, got %d", desc[0])
	}
	if !reflect.DeepEqual(asc, reversed(desc)) {
		t.Errorf("Expected asc %v to reverse desc %v", asc, desc)
	}
}
