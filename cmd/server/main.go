package main

import (
	"fmt"
	"log"
	"os"

	"github.com/patriot-thanks/backend/config"
	httpDelivery "github.com/patriot-thanks/backend/internal/delivery/http"
	"github.com/patriot-thanks/backend/internal/infrastructure/cache"
	"github.com/patriot-thanks/backend/internal/infrastructure/directory"
	"github.com/patriot-thanks/backend/internal/infrastructure/places"
	"github.com/patriot-thanks/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Patriot Thanks Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Directory API: %s", cfg.Directory.BaseURL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	directoryClient := directory.NewClient(cfg.Directory.BaseURL)
	placesClient := places.NewClient(cfg.Places.APIKey, cfg.Places.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		directoryClient.SetDebug(true)
		placesClient.SetDebug(true)
		log.Printf("Outbound client debug mode enabled")
	}

	if cfg.Places.APIKey != "" {
		log.Printf("Places API configured: %s", cfg.Places.BaseURL)
	} else {
		log.Printf("WARNING: Places API key not configured - place-details lookups will fail!")
	}

	// Initialize usecase layer
	reconciler := usecase.NewReconciler(
		directoryClient,
		placesClient,
		memoryCache,
		usecase.ReconcilerConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: debug=%v", cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(reconciler)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
