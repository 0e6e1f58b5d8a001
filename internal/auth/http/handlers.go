package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/home-central/backend/internal/api/http"
	"github.com/home-central/backend/internal/auth/domain"
	"github.com/home-central/backend/internal/auth/middleware"
	"github.com/home-central/backend/internal/validation"
)

// Signup registers a new user with the identity provider.
func (h *Handler) Signup(c *gin.Context) {
	creds, ok := h.credentials(c)
	if !ok {
		return
	}

	user, token, err := h.gateway.Register(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	response := gin.H{"user": userPayload{ID: user.ID, Email: user.Email}}
	if token != "" {
		response["session"] = sessionPayload{AccessToken: token}
	} else {
		response["message"] = "Check your email to confirm your account"
	}

	c.JSON(http.StatusOK, response)
}

// Login exchanges credentials for a session token.
func (h *Handler) Login(c *gin.Context) {
	creds, ok := h.credentials(c)
	if !ok {
		return
	}

	user, token, err := h.gateway.Authenticate(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    userPayload{ID: user.ID, Email: user.Email},
		"session": sessionPayload{AccessToken: token},
	})
}

// Me returns the identity behind the presented token.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, userPayload{
		ID:    c.GetString(middleware.ContextUserID),
		Email: c.GetString(middleware.ContextEmail),
	})
}

func (h *Handler) credentials(c *gin.Context) (*domain.Credentials, bool) {
	body, err := c.GetRawData()
	if err != nil {
		httpapi.MalformedBody(c)
		return nil, false
	}

	var creds domain.Credentials
	if err := validation.Decode(body, &creds); err != nil {
		httpapi.MalformedBody(c)
		return nil, false
	}
	if fields := validation.Struct(&creds); len(fields) > 0 {
		httpapi.ValidationFailed(c, fields)
		return nil, false
	}
	return &creds, true
}
