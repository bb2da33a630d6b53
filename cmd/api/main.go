package main

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"crm-embed-gateway/internal/application"
	"crm-embed-gateway/internal/config"
	apiinfra "crm-embed-gateway/internal/infrastructure/api"
	gatewaymiddleware "crm-embed-gateway/internal/infrastructure/middleware"
	"crm-embed-gateway/internal/infrastructure/platform"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize infrastructure (implementations)
	vendorClient := platform.NewClient(cfg.VendorBaseURL, cfg.VendorAPIKey, cfg.VendorUserID, logger)

	// Initialize application services
	tokenService := application.NewTokenService(vendorClient, logger)
	contactService := application.NewContactService(vendorClient, logger)

	// Initialize HTTP handlers
	tokenHandler := apiinfra.NewTokenHandler(tokenService, logger)
	contactHandler := apiinfra.NewContactHandler(contactService, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(gatewaymiddleware.SecurityHeaders())
	r.Use(gatewaymiddleware.Metrics())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Health check - must be public for monitoring
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // The URL pointing to API definition
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	// Gateway API
	r.Get("/api/get-jwt-token", tokenHandler.HandleGetToken)
	// All verbs route to the handler so it can answer 405 with an Allow header
	r.HandleFunc("/api/contacts", contactHandler.HandleContacts)

	// Demo frontend (static files)
	staticDir, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid static directory")
	}
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	logger.Info().Str("port", cfg.Port).Msg("Starting API server")
	logger.Info().Msg("Demo frontend available at http://localhost:" + cfg.Port + "/")
	logger.Info().Msg("Swagger documentation available at http://localhost:" + cfg.Port + "/swagger/index.html")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
