package api

import (
	"net/http"

	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/service"
	"github.com/gin-gonic/gin"
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

// ListComments handles GET /comments?postId=...
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID := c.Query("postId")
	if postID == "" {
		fail(c, http.StatusBadRequest, "postId is required")
		return
	}

	comments, err := h.services.Comment.ListForPost(c.Request.Context(), postID)
	if err != nil {
		failFromError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddComment handles POST /posts/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "author and content are required")
		return
	}

	comment, err := h.services.Comment.Add(c.Request.Context(), c.Param("id"), req.Author, req.Content)
	if err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "Comment added successfully", gin.H{"comment": comment})
}

// DeleteComment handles DELETE /comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), c.Param("commentId")); err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "Comment deleted successfully", nil)
}
