package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles?topic=&sort_by=&order=&limit=&p=
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	q, err := validation.ParseArticleQuery(c.Request.URL.Query(), h.services.Article.Limits())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	page, err := h.services.Article.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":    page.Articles,
		"total_count": page.TotalCount,
	})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.services.Article.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req validation.NewArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, validation.BindError(err))
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// PatchArticle handles PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchArticle(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req validation.VotePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, validation.BindError(err))
		return
	}

	article, err := h.services.Article.Vote(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticle handles DELETE /api/articles/:article_id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Article.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
