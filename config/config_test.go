package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PATRIOTTHANKS_SERVER_PORT")
		os.Unsetenv("PATRIOTTHANKS_SERVER_ENVIRONMENT")
		os.Unsetenv("PATRIOTTHANKS_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("PATRIOTTHANKS_DIRECTORY_BASE_URL")
		os.Unsetenv("PATRIOTTHANKS_PLACES_API_KEY")
		os.Unsetenv("PATRIOTTHANKS_PLACES_BASE_URL")
		os.Unsetenv("PATRIOTTHANKS_CACHE_TTL")
		os.Unsetenv("PATRIOTTHANKS_MATCHING_DEBUG_LOGGING")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("PATRIOTTHANKS_PLACES_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Directory.BaseURL != "http://localhost:3001/api/business" {
			t.Errorf("Directory.BaseURL = %s, want default", cfg.Directory.BaseURL)
		}
		if cfg.Places.BaseURL != "https://places.googleapis.com" {
			t.Errorf("Places.BaseURL = %s, want https://places.googleapis.com", cfg.Places.BaseURL)
		}
		if cfg.Cache.TTL != 15*time.Minute {
			t.Errorf("Cache.TTL = %v, want 15m", cfg.Cache.TTL)
		}
		if cfg.Matching.EnableDebugLogging {
			t.Error("Matching.EnableDebugLogging = true, want false by default")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PATRIOTTHANKS_SERVER_PORT", "9090")
		os.Setenv("PATRIOTTHANKS_SERVER_ENVIRONMENT", "production")
		os.Setenv("PATRIOTTHANKS_DIRECTORY_BASE_URL", "https://api.patriotthanks.example.com")
		os.Setenv("PATRIOTTHANKS_PLACES_API_KEY", "custom-key")
		os.Setenv("PATRIOTTHANKS_CACHE_TTL", "1h")
		os.Setenv("PATRIOTTHANKS_MATCHING_DEBUG_LOGGING", "true")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Directory.BaseURL != "https://api.patriotthanks.example.com" {
			t.Errorf("Directory.BaseURL = %s, want custom URL", cfg.Directory.BaseURL)
		}
		if cfg.Places.APIKey != "custom-key" {
			t.Errorf("Places.APIKey = %s, want custom-key", cfg.Places.APIKey)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if !cfg.Matching.EnableDebugLogging {
			t.Error("Matching.EnableDebugLogging = false, want true")
		}
	})

	t.Run("fails without places API key", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want missing API key error")
		}
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Directory: DirectoryConfig{BaseURL: "https://api.example.com"},
			Places:    PlacesConfig{APIKey: "key", BaseURL: "https://places.googleapis.com"},
			Cache:     CacheConfig{TTL: 15 * time.Minute},
		}
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		if err := validate(base()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("rejects empty directory base URL", func(t *testing.T) {
		cfg := base()
		cfg.Directory.BaseURL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("rejects empty places API key", func(t *testing.T) {
		cfg := base()
		cfg.Places.APIKey = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("rejects negative cache TTL", func(t *testing.T) {
		cfg := base()
		cfg.Cache.TTL = -time.Minute
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})
}
