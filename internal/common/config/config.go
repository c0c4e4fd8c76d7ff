// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	Places        PlacesConfig        `mapstructure:"places"`
	Cache         CacheConfig         `mapstructure:"cache"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Registry      RegistryConfig      `mapstructure:"registry"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// PlacesConfig holds the Google Places endpoints and credential.
type PlacesConfig struct {
	APIKey        string `mapstructure:"api_key"`
	TextSearchURL string `mapstructure:"text_search_url"`
	DetailsURL    string `mapstructure:"details_url"`
	PhotoURL      string `mapstructure:"photo_url"`
	Language      string `mapstructure:"language"`
	MaxPhotos     int    `mapstructure:"max_photos"` // at most 10
	Timeout       int    `mapstructure:"timeout"` // milliseconds
}

type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

// RegistryConfig optionally points at an API registry file replacing the embedded one.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}
