package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	topicHandler := NewTopicHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	userHandler := NewUserHandler(services, log)

	// Operational endpoints
	router.GET("/health", healthCheck(services))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("", listEndpoints)

		topics := api.Group("/topics")
		{
			topics.GET("", topicHandler.ListTopics)
			topics.POST("", topicHandler.CreateTopic)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.PatchArticle)
			articles.DELETE("/:article_id", articleHandler.DeleteArticle)
			articles.GET("/:article_id/comments", commentHandler.ListComments)
			articles.POST("/:article_id/comments", commentHandler.CreateComment)
		}

		comments := api.Group("/comments")
		{
			comments.PATCH("/:comment_id", commentHandler.PatchComment)
			comments.DELETE("/:comment_id", commentHandler.DeleteComment)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:username", userHandler.GetUser)
		}
	}

	router.NoRoute(notFound)

	return router
}

// healthCheck reports service status along with table sizes
func healthCheck(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := services.Stats.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"timestamp": time.Now().Format(time.RFC3339),
				"service":   "news-api",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "news-api",
			"database":  counts,
		})
	}
}
