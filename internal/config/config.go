package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	Env         string
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	JWTExpiry   time.Duration
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "stitchfield")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Railway-style deployments expose the public URL under a different
	// name; prefer it when present.
	uri := v.GetString("MONGO_PUBLIC_URL")
	if uri == "" {
		uri = v.GetString("MONGO_URL")
	}
	if uri == "" {
		uri = v.GetString("MONGO_URI")
	}

	cfg := &Config{
		Env:         v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		MongoURI:    uri,
		MongoDB:     v.GetString("MONGO_DB"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTExpiry:   time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		CORSOrigins: splitOrigins(v.GetString("CORS_ORIGINS")),
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret"
	}
	return cfg, nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
