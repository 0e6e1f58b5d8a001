package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/home-central/backend/internal/api/http"
	"github.com/home-central/backend/internal/api/http/middleware"
	authhttp "github.com/home-central/backend/internal/auth/http"
	authmw "github.com/home-central/backend/internal/auth/middleware"
	"github.com/home-central/backend/internal/auth/service"
	projectshttp "github.com/home-central/backend/internal/projects/http"
	"github.com/home-central/backend/internal/supabase"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigin  string
	Supabase    supabase.Config
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{dep.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	gateway := service.NewGateway(dep.Supabase)
	requireUser := authmw.RequireUser(gateway)

	authHandler := authhttp.New(gateway)
	authHandler.Register(r.Group("/auth"), requireUser)

	projectsGroup := r.Group("/projects")
	projectsGroup.Use(requireUser)
	projectsHandler := projectshttp.New()
	projectsHandler.Register(projectsGroup)

	return r
}
