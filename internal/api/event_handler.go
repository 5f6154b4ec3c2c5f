package api

import (
	"net/http"

	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EventHandler handles meetup endpoints
type EventHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(services *service.Services, log zerolog.Logger) *EventHandler {
	return &EventHandler{
		services: services,
		log:      log.With().Str("handler", "event").Logger(),
	}
}

// CreateEvent handles POST /create_event
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "title, description, author and maxParticipants are required")
		return
	}

	if _, err := h.services.Event.Create(c.Request.Context(), &req); err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "Event created successfully", nil)
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.services.Event.List(c.Request.Context())
	if err != nil {
		failFromError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, events)
}

// JoinEvent handles POST /join_event/:postId
func (h *EventHandler) JoinEvent(c *gin.Context) {
	var req models.JoinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "participant is required")
		return
	}

	if err := h.services.Event.Join(c.Request.Context(), c.Param("postId"), req.Participant); err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "Joined event successfully", nil)
}
