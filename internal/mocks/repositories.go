package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
)

// MockStore is an in-memory stand-in for the database shared by the mock
// repositories. Foreign keys and ON DELETE CASCADE are enforced the way
// Postgres enforces them, reporting *pq.Error codes.
type MockStore struct {
	mu sync.Mutex

	Topics   map[string]models.Topic
	Users    map[string]models.User
	Articles map[int]*models.Article
	Comments map[int]*models.Comment

	nextArticleID int
	nextCommentID int

	// Err, when set, is returned by every operation
	Err error
	// ListCalls counts article listing queries that reached the store
	ListCalls int
}

// NewMockStore creates an empty store
func NewMockStore() *MockStore {
	return &MockStore{
		Topics:        make(map[string]models.Topic),
		Users:         make(map[string]models.User),
		Articles:      make(map[int]*models.Article),
		Comments:      make(map[int]*models.Comment),
		nextArticleID: 1,
		nextCommentID: 1,
	}
}

// NewMockRepositories creates repositories backed by a fresh store
func NewMockRepositories() (*repository.Repositories, *MockStore) {
	store := NewMockStore()
	return store.Repositories(), store
}

// Repositories returns repositories sharing this store
func (s *MockStore) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Topic:   &MockTopicRepository{store: s},
		User:    &MockUserRepository{store: s},
		Article: &MockArticleRepository{store: s},
		Comment: &MockCommentRepository{store: s},
	}
}

// AddTopic inserts a topic directly
func (s *MockStore) AddTopic(slug, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Topics[slug] = models.Topic{Slug: slug, Description: description}
}

// AddUser inserts a user directly
func (s *MockStore) AddUser(username, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users[username] = models.User{Username: username, Name: name}
}

// AddArticle inserts an article directly and returns its ID
func (s *MockStore) AddArticle(a models.Article) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ArticleID = s.nextArticleID
	s.nextArticleID++
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.Articles[a.ArticleID] = &a
	return a.ArticleID
}

// AddComment inserts a comment directly and returns its ID
func (s *MockStore) AddComment(c models.Comment) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.CommentID = s.nextCommentID
	s.nextCommentID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.Comments[c.CommentID] = &c
	return c.CommentID
}

func (s *MockStore) commentCount(articleID int) int64 {
	var n int64
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

func (s *MockStore) withCount(a *models.Article) *models.Article {
	out := *a
	out.CommentCount = s.commentCount(a.ArticleID)
	return &out
}

func foreignKeyViolation() error {
	return &pq.Error{Code: "23503", Message: "insert or update violates foreign key constraint"}
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	store *MockStore
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	topics := make([]models.Topic, 0, len(s.Topics))
	for _, t := range s.Topics {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Slug < topics[j].Slug })
	return topics, nil
}

func (m *MockTopicRepository) Create(ctx context.Context, in validation.NewTopic) (*models.Topic, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Topics[in.Slug]; exists {
		return nil, &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	}

	t := models.Topic{Slug: in.Slug, Description: in.Description}
	s.Topics[t.Slug] = t
	return &t, nil
}

func (m *MockTopicRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return len(m.store.Topics), m.store.Err
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	store *MockStore
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	users := make([]models.User, 0, len(s.Users))
	for _, u := range s.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	u, ok := s.Users[username]
	if !ok {
		return nil, apperror.NotFound()
	}
	return &u, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return len(m.store.Users), m.store.Err
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	store *MockStore
}

func (m *MockArticleRepository) List(ctx context.Context, q validation.ArticleQuery) (*models.ArticlePage, error) {
	// Same pre-query validation as the SQL engine
	if _, _, err := repository.BuildArticleListQuery(q); err != nil {
		return nil, err
	}

	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.ListCalls++

	matched := make([]models.ArticleSummary, 0)
	for _, a := range s.Articles {
		if q.Topic != "" && a.Topic != q.Topic {
			continue
		}
		matched = append(matched, models.ArticleSummary{
			Author:        a.Author,
			Title:         a.Title,
			ArticleID:     a.ArticleID,
			Topic:         a.Topic,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  s.commentCount(a.ArticleID),
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		c := compareSummaries(matched[i], matched[j], q.SortBy)
		if c == 0 {
			// stable fallback for deterministic fakes
			return matched[i].ArticleID < matched[j].ArticleID
		}
		if q.Order == "asc" {
			return c < 0
		}
		return c > 0
	})

	total := len(matched)
	start := q.Offset()
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	return &models.ArticlePage{Articles: matched[start:end], TotalCount: total}, nil
}

func compareSummaries(a, b models.ArticleSummary, key string) int {
	switch key {
	case "author":
		return strings.Compare(a.Author, b.Author)
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "topic":
		return strings.Compare(a.Topic, b.Topic)
	case "article_img_url":
		return strings.Compare(a.ArticleImgURL, b.ArticleImgURL)
	case "article_id":
		return a.ArticleID - b.ArticleID
	case "votes":
		return a.Votes - b.Votes
	case "comment_count":
		return int(a.CommentCount - b.CommentCount)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func (m *MockArticleRepository) Count(ctx context.Context, topic string) (int, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, a := range s.Articles {
		if topic == "" || a.Topic == topic {
			n++
		}
	}
	return n, s.Err
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	a, ok := s.Articles[id]
	if !ok {
		return nil, apperror.NotFound()
	}
	return s.withCount(a), nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Articles[id]
	return ok, s.Err
}

func (m *MockArticleRepository) Create(ctx context.Context, in validation.NewArticle) (*models.Article, error) {
	s := m.store
	s.mu.Lock()
	if s.Err != nil {
		s.mu.Unlock()
		return nil, s.Err
	}
	_, topicOK := s.Topics[in.Topic]
	_, userOK := s.Users[in.Author]
	s.mu.Unlock()

	if !topicOK || !userOK {
		return nil, foreignKeyViolation()
	}

	imgURL := in.ArticleImgURL
	if imgURL == "" {
		imgURL = models.DefaultArticleImgURL
	}
	id := s.AddArticle(models.Article{
		Title:         in.Title,
		Topic:         in.Topic,
		Author:        in.Author,
		Body:          in.Body,
		ArticleImgURL: imgURL,
	})
	return m.GetByID(ctx, id)
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	a, ok := s.Articles[id]
	if !ok {
		return nil, apperror.NotFound()
	}
	a.Votes += delta
	return s.withCount(a), nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.Articles[id]; !ok {
		return apperror.NotFound()
	}
	delete(s.Articles, id)
	for cid, c := range s.Comments {
		if c.ArticleID == id {
			delete(s.Comments, cid)
		}
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	store *MockStore
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int, page *validation.Page) ([]models.Comment, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	comments := make([]models.Comment, 0)
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CommentID > comments[j].CommentID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	if page == nil {
		return comments, nil
	}
	start := page.Offset()
	if start > len(comments) {
		start = len(comments)
	}
	end := start + page.Limit
	if end > len(comments) {
		end = len(comments)
	}
	return comments[start:end], nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int, in validation.NewComment) (*models.Comment, error) {
	s := m.store
	s.mu.Lock()
	if s.Err != nil {
		s.mu.Unlock()
		return nil, s.Err
	}
	_, articleOK := s.Articles[articleID]
	_, userOK := s.Users[in.Username]
	s.mu.Unlock()

	if !articleOK || !userOK {
		return nil, foreignKeyViolation()
	}

	id := s.AddComment(models.Comment{Body: in.Body, ArticleID: articleID, Author: in.Username})

	s.mu.Lock()
	defer s.mu.Unlock()
	c := *s.Comments[id]
	return &c, nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, id int, delta int) (*models.Comment, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	c, ok := s.Comments[id]
	if !ok {
		return nil, apperror.NotFound()
	}
	c.Votes += delta
	out := *c
	return &out, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.Comments[id]; !ok {
		return apperror.NotFound()
	}
	delete(s.Comments, id)
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return len(m.store.Comments), m.store.Err
}

// Verify interface compliance
var (
	_ repository.TopicRepository   = (*MockTopicRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
)
