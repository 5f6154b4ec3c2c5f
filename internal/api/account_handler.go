package api

import (
	"net/http"

	"github.com/community-board-api/internal/models"
	"github.com/community-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccountHandler handles registration and login endpoints
type AccountHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(services *service.Services, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		services: services,
		log:      log.With().Str("handler", "account").Logger(),
	}
}

// Register handles POST /register
func (h *AccountHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username, password and nickname are required")
		return
	}

	if err := h.services.Account.Register(c.Request.Context(), req.Username, req.Password, req.Nickname); err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "User registered successfully", nil)
}

// Login handles POST /login
func (h *AccountHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.services.Account.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failFromError(c, err, h.log)
		return
	}

	ok(c, "Login successful", gin.H{
		"nickname": result.Nickname,
		"token":    result.Token,
	})
}
