package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates runtime configuration for the gateway. It is constructed
// once at process start and treated as read-only afterwards.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// VendorBaseURL is the root of the vendor's REST API.
	VendorBaseURL string

	// VendorAPIKey authenticates this backend to the vendor. Required.
	// Never logged.
	VendorAPIKey string

	// VendorUserID is the fixed backend identity tokens are issued for.
	// Required.
	VendorUserID string

	// StaticDir is the directory the demo frontend is served from.
	StaticDir string

	// AllowedOrigins configures CORS for the browser frontend.
	AllowedOrigins []string
}

// FromEnv reads configuration from environment variables, applying defaults
// where possible. The two vendor secrets have no defaults; missing either is
// a startup error.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		VendorBaseURL:  strings.TrimRight(getEnv("VENDOR_BASE_URL", "https://api.integration.app"), "/"),
		VendorAPIKey:   os.Getenv("VENDOR_API_KEY"),
		VendorUserID:   os.Getenv("VENDOR_USER_ID"),
		StaticDir:      getEnv("STATIC_DIR", "./web/static"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	if cfg.VendorAPIKey == "" {
		return nil, fmt.Errorf("VENDOR_API_KEY environment variable is required")
	}
	if cfg.VendorUserID == "" {
		return nil, fmt.Errorf("VENDOR_USER_ID environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
