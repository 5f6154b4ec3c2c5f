package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/community-board-api/internal/auth"
	"github.com/community-board-api/internal/config"
	"github.com/community-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthChecker reports store availability for the health endpoint.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, health HealthChecker, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(timeoutMiddleware(cfg.Server.RequestTimeout))

	// Handlers
	accountHandler := NewAccountHandler(services, log)
	postHandler := NewPostHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	eventHandler := NewEventHandler(services, log)

	// Health check and metrics
	router.GET("/health", healthHandler(health))
	router.GET("/metrics", metricsHandler(services))

	// Account endpoints
	router.POST("/login", accountHandler.Login)
	router.POST("/register", accountHandler.Register)

	// Read endpoints stay open regardless of auth mode
	router.GET("/posts", postHandler.ListPosts)
	router.GET("/comments", commentHandler.ListComments)
	router.GET("/events", eventHandler.ListEvents)

	// Write endpoints; bearer auth applies only when enabled
	writes := router.Group("")
	if cfg.Auth.Required {
		writes.Use(authMiddleware([]byte(cfg.Auth.Secret)))
	}
	{
		writes.POST("/create", postHandler.CreatePost)
		writes.PUT("/posts/:id", postHandler.UpdatePost)
		writes.DELETE("/posts/:id", postHandler.DeletePost)
		writes.POST("/posts/:id/comments", commentHandler.AddComment)
		writes.DELETE("/comments/:commentId", commentHandler.DeleteComment)
		writes.POST("/create_event", eventHandler.CreateEvent)
		writes.POST("/join_event/:postId", eventHandler.JoinEvent)
	}

	return router
}

// healthHandler returns the health status including a store ping
func healthHandler(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if health != nil {
			if err := health.HealthCheck(c.Request.Context()); err != nil {
				status = "unhealthy"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "community-board-api",
		})
	}
}

// metricsHandler returns entity counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usersCount, _ := services.UserCount(ctx)
		postsCount, _ := services.Post.Count(ctx)
		commentsCount, _ := services.Comment.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"users":    usersCount,
				"posts":    postsCount,
				"comments": commentsCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// timeoutMiddleware bounds each request with a deadline so a stalled
// store round-trip cannot hold the handler forever.
func timeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// authMiddleware enforces a bearer token issued at login.
func authMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			fail(c, http.StatusUnauthorized, "Authorization required")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token, secret)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("nickname", claims.Nickname)
		c.Next()
	}
}
