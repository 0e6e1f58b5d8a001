package http

import (
	"github.com/gin-gonic/gin"

	"github.com/home-central/backend/internal/auth/middleware"
	"github.com/home-central/backend/internal/projects/repository"
	"github.com/home-central/backend/internal/supabase"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// store builds a repository around the caller's authorized handle, placed in
// the context by the auth middleware.
func (h *Handler) store(c *gin.Context) *repository.Store {
	db := c.MustGet(middleware.ContextDB).(*supabase.Client)
	return repository.New(db)
}
