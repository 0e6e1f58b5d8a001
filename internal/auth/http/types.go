package http

import "github.com/home-central/backend/internal/auth/service"

type Handler struct {
	gateway *service.Gateway
}

func New(gateway *service.Gateway) *Handler {
	return &Handler{
		gateway: gateway,
	}
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionPayload struct {
	AccessToken string `json:"access_token"`
}
