package config

import (
	"fmt"
	"log"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	App      AppConfig
}

type ServerConfig struct {
	Port       string `env:"PORT,default=8080"`
	CORSOrigin string `env:"CORS_ORIGIN,default=http://localhost:3000"`
}

type SupabaseConfig struct {
	URL string `env:"SUPABASE_URL"`
	Key string `env:"SUPABASE_KEY"`
}

type AppConfig struct {
	Environment string `env:"APP_ENV,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	Version     string `env:"APP_VERSION,default=1.0.0"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}

	if c.Supabase.Key == "" {
		return fmt.Errorf("SUPABASE_KEY is required")
	}

	return nil
}
