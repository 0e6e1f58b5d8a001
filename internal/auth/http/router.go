package http

import "github.com/gin-gonic/gin"

// Register attaches the auth routes. Only /me requires a verified token.
func (h *Handler) Register(rg *gin.RouterGroup, requireUser gin.HandlerFunc) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.GET("/me", requireUser, h.Me)
}
