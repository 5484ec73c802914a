package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cantinota/noleggio-api/internal/domains/auth/adapters/token"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port               string
	PostgresDSN        string
	JWTSecret          string
	JWTTTL             time.Duration
	CORSAllowedOrigins []string
}

// LoadConfig reads a .env file if present, then the environment, applying
// defaults and validating basic constraints.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:        envDefault("PORT", "8080"),
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTTTL:      token.DefaultTTL,
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}
	if raw := strings.TrimSpace(os.Getenv("JWT_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("JWT_TTL_HOURS must be a positive integer")
		}
		cfg.JWTTTL = time.Duration(hours) * time.Hour
	}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
