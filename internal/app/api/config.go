package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries environment-driven settings for the order API process.
type Config struct {
	Port                  string
	PostgresDSN           string
	CustomerServiceURL    string
	ProductServiceURL     string
	ServicePlanServiceURL string
	DownstreamTimeout     time.Duration
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                  envDefault("PORT", "8080"),
		PostgresDSN:           strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		CustomerServiceURL:    envDefault("CUSTOMER_SERVICE_URL", "http://localhost:8081"),
		ProductServiceURL:     envDefault("PRODUCT_SERVICE_URL", "http://localhost:8082"),
		ServicePlanServiceURL: envDefault("SERVICE_PLAN_SERVICE_URL", "http://localhost:8083"),
		DownstreamTimeout:     5 * time.Second,
	}
	if raw := strings.TrimSpace(os.Getenv("DOWNSTREAM_TIMEOUT_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("DOWNSTREAM_TIMEOUT_SECONDS must be a positive integer")
		}
		cfg.DownstreamTimeout = time.Duration(seconds) * time.Second
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
