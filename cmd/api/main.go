package main

import (
	"github.com/sirupsen/logrus"

	"github.com/home-central/backend/config"
	"github.com/home-central/backend/internal/bootstrap"
	"github.com/home-central/backend/internal/logger"
	"github.com/home-central/backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load configuration: %v", err)
	}

	logger.Init(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "home-central-api",
		Version:     cfg.App.Version,
		CORSOrigin:  cfg.Server.CORSOrigin,
		Supabase: supabase.Config{
			URL:    cfg.Supabase.URL,
			APIKey: cfg.Supabase.Key,
		},
	})

	logger.Default().Infof("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
