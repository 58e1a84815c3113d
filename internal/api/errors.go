package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperror"
	"github.com/rs/zerolog"
)

// respondError is the single point where errors become HTTP responses.
// Unexpected errors are logged and answered with an empty 500.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status, msg := apperror.Translate(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Unhandled error")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"msg": msg})
}

// notFound answers requests that match no route
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": apperror.MsgNoRoute})
}
