package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Directory DirectoryConfig
	Places    PlacesConfig
	Cache     CacheConfig
	Matching  MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DirectoryConfig holds the internal business-search API configuration
type DirectoryConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// PlacesConfig holds mapping-provider API configuration
type PlacesConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds duplicate-matching configuration
type MatchingConfig struct {
	EnableDebugLogging bool `mapstructure:"debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/patriotthanks/")

	v.SetEnvPrefix("PATRIOTTHANKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover deployment
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Directory defaults
	v.SetDefault("directory.base_url", "http://localhost:3001/api/business")

	// Places defaults; the empty api_key default registers the key so the
	// env var binds
	v.SetDefault("places.api_key", "")
	v.SetDefault("places.base_url", "https://places.googleapis.com")

	// Cache defaults
	v.SetDefault("cache.ttl", "15m")

	// Matching defaults
	v.SetDefault("matching.debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Directory.BaseURL == "" {
		return fmt.Errorf("directory base URL is required (set PATRIOTTHANKS_DIRECTORY_BASE_URL)")
	}

	if config.Places.APIKey == "" {
		return fmt.Errorf("places API key is required (set PATRIOTTHANKS_PLACES_API_KEY)")
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}

	return nil
}
