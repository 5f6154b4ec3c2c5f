package api

import (
	"errors"
	"net/http"

	"github.com/community-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ok writes the success envelope, merging any extra payload fields.
func ok(c *gin.Context, message string, payload gin.H) {
	body := gin.H{"success": true, "message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// fail writes the failure envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// domainStatus maps a domain error to its HTTP status and client
// message. Unrecognized errors are infrastructure failures.
var domainStatus = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid username or password"},
	{service.ErrUsernameTaken, http.StatusBadRequest, "Username already exists"},
	{service.ErrNicknameTaken, http.StatusBadRequest, "Nickname already exists"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrPostNotFound, http.StatusNotFound, "Post not found"},
	{service.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{service.ErrEventNotFound, http.StatusNotFound, "Event not found"},
	{service.ErrEventFull, http.StatusBadRequest, "Event is full"},
	{service.ErrAlreadyJoined, http.StatusBadRequest, "Already joined the event"},
}

// failFromError translates a service error into a response. Domain
// errors keep their message; everything else is logged and surfaced as
// a generic 500.
func failFromError(c *gin.Context, err error, log zerolog.Logger) {
	for _, d := range domainStatus {
		if errors.Is(err, d.err) {
			fail(c, d.status, d.message)
			return
		}
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	fail(c, http.StatusInternalServerError, "Server error")
}
