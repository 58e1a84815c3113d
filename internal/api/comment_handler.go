package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments?limit=&p=
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	page, err := validation.ParsePage(c.Request.URL.Query(), h.services.Article.Limits())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comments, err := h.services.Comment.ListForArticle(c.Request.Context(), articleID, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id/comments.
// A missing username is reported as not found, a missing body as bad request.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req validation.NewComment
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, validation.BindError(err, "Username"))
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), articleID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// PatchComment handles PATCH /api/comments/:comment_id
func (h *CommentHandler) PatchComment(c *gin.Context) {
	id, err := validation.ParseID(c.Param("comment_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req validation.VotePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, validation.BindError(err))
		return
	}

	comment, err := h.services.Comment.Vote(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := validation.ParseID(c.Param("comment_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
