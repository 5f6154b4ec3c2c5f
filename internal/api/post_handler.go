package api

import (
	"net/http"

	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PostHandler handles post CRUD endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// CreatePost handles POST /create
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "title, content, author and category are required")
		return
	}

	if _, err := h.services.Post.Create(c.Request.Context(), &req); err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "Post created successfully", nil)
}

// ListPosts handles GET /posts. The category query parameter filters
// by exact match; empty or "전체" returns everything.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.services.Post.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		failFromError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePost handles PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "title and content are required")
		return
	}

	if err := h.services.Post.Update(c.Request.Context(), c.Param("id"), req.Title, req.Content); err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "Post updated successfully", nil)
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.services.Post.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "Post deleted successfully", nil)
}
