// Package config loads and validates the TOML server configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Traffic  TrafficConfig  `toml:"traffic"`
	Airports AirportsConfig `toml:"airports"`
	AI       AIConfig       `toml:"ai"`
	Logging  LoggingConfig  `toml:"logging"`
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Host               string   `toml:"host"`                 // Interface to bind to
	Port               int      `toml:"port"`                 // HTTP port
	StaticFilesDir     string   `toml:"static_files_dir"`     // Directory holding the UI bundle
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"` // Origins allowed for cross-origin requests
	ReadTimeoutSecs    int      `toml:"read_timeout_secs"`    // HTTP read timeout in seconds
	WriteTimeoutSecs   int      `toml:"write_timeout_secs"`   // HTTP write timeout in seconds
	IdleTimeoutSecs    int      `toml:"idle_timeout_secs"`    // HTTP idle timeout in seconds
}

// TrafficConfig holds the live-traffic feed settings
type TrafficConfig struct {
	Enabled             bool    `toml:"enabled"`              // Poll the live feed and serve /api/v1/traffic
	BaseURL             string  `toml:"base_url"`             // OpenSky-compatible API base URL
	FetchIntervalSecs   int     `toml:"fetch_interval_secs"`  // Seconds between poll cycles
	RequestTimeoutSecs  int     `toml:"request_timeout_secs"` // Per-request timeout in seconds
	CredentialsPath     string  `toml:"credentials_path"`     // Optional OAuth2 credentials JSON file
	BBoxLamin           float64 `toml:"bbox_lamin"`           // Bounding box minimum latitude
	BBoxLomin           float64 `toml:"bbox_lomin"`           // Bounding box minimum longitude
	BBoxLamax           float64 `toml:"bbox_lamax"`           // Bounding box maximum latitude
	BBoxLomax           float64 `toml:"bbox_lomax"`           // Bounding box maximum longitude
}

// AirportsConfig holds the airport directory settings
type AirportsConfig struct {
	CSVPath string `toml:"csv_path"` // Optional CSV override for the built-in airport table
}

// AIConfig holds the eco-plan chat provider settings
type AIConfig struct {
	Enabled     bool    `toml:"enabled"`     // Expose /api/v1/ecoplan
	Provider    string  `toml:"provider"`    // "gemini" or "openai"
	APIKey      string  `toml:"api_key"`     // Provider API key
	BaseURL     string  `toml:"base_url"`    // Optional API base URL override (openai only)
	Model       string  `toml:"model"`       // Model name
	Temperature float64 `toml:"temperature"` // Sampling temperature
	MaxTokens   int     `toml:"max_tokens"`  // Response token cap
}

// LoggingConfig holds the logging settings
type LoggingConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", or "error"
	Format string `toml:"format"` // "console" or "json"
}

// Load loads the configuration from the given path
func Load(path string) (*Config, error) {
	config := Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8080,
			StaticFilesDir:   "www",
			ReadTimeoutSecs:  30,
			WriteTimeoutSecs: 30,
			IdleTimeoutSecs:  60,
		},
		Traffic: TrafficConfig{
			Enabled:            true,
			BaseURL:            "https://opensky-network.org/api",
			FetchIntervalSecs:  60,
			RequestTimeoutSecs: 15,
		},
		AI: AIConfig{
			Provider:    "gemini",
			Temperature: 0.4,
			MaxTokens:   1024,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &config, nil
}

// LoadWithFallback loads the configuration by checking multiple locations in order of preference
func LoadWithFallback(preferredPath string) (*Config, error) {
	searchPaths := []string{
		preferredPath,         // User-specified path (if provided)
		"configs/config.toml", // Standard location in configs/ folder
		"config.toml",         // Root directory
	}

	for _, path := range searchPaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return nil, fmt.Errorf("no configuration file found (searched: configs/config.toml, config.toml)")
}

// Validate checks the configuration for invalid combinations
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Traffic.Enabled {
		if c.Traffic.BaseURL == "" {
			return fmt.Errorf("traffic base_url is required when traffic is enabled")
		}
		if c.Traffic.FetchIntervalSecs <= 0 {
			return fmt.Errorf("traffic fetch_interval_secs must be positive, got %d", c.Traffic.FetchIntervalSecs)
		}
		if c.Traffic.BBoxLamin >= c.Traffic.BBoxLamax {
			return fmt.Errorf("traffic bounding box: bbox_lamin must be less than bbox_lamax")
		}
		if c.Traffic.BBoxLomin >= c.Traffic.BBoxLomax {
			return fmt.Errorf("traffic bounding box: bbox_lomin must be less than bbox_lomax")
		}
	}

	if c.AI.Enabled {
		switch c.AI.Provider {
		case "gemini", "openai":
		default:
			return fmt.Errorf("ai provider must be \"gemini\" or \"openai\", got %q", c.AI.Provider)
		}
		if c.AI.APIKey == "" {
			return fmt.Errorf("ai api_key is required when ai is enabled")
		}
		if c.AI.Model == "" {
			return fmt.Errorf("ai model is required when ai is enabled")
		}
	}

	return nil
}
