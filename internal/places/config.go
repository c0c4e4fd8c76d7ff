// internal/places/config.go
package places

import (
	"time"

	"restaurant-finder/internal/common/config"
)

// PlaceholderAPIKey is the sample value shipped in .env templates; it counts as no key.
const PlaceholderAPIKey = "your_google_maps_api_key_here"

// DetailsFields is the field mask sent with every details request.
const DetailsFields = "name,formatted_address,formatted_phone_number,website,opening_hours,photos,rating,price_level,types,url"

type Config struct {
	APIKey        string
	TextSearchURL string
	DetailsURL    string
	PhotoURL      string
	Language      string
	MaxPhotos     int
	Timeout       time.Duration
	CacheTTL      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		TextSearchURL: config.DefaultTextSearchURL,
		DetailsURL:    config.DefaultDetailsURL,
		PhotoURL:      config.DefaultPhotoURL,
		Language:      "en",
		MaxPhotos:     10,
		Timeout:       10 * time.Second,
		CacheTTL:      time.Hour,
	}
}

// FromAppConfig maps the places and cache sections of the application config.
func FromAppConfig(cfg *config.Config) *Config {
	return &Config{
		APIKey:        cfg.Places.APIKey,
		TextSearchURL: cfg.Places.TextSearchURL,
		DetailsURL:    cfg.Places.DetailsURL,
		PhotoURL:      cfg.Places.PhotoURL,
		Language:      cfg.Places.Language,
		MaxPhotos:     cfg.Places.MaxPhotos,
		Timeout:       config.GetDuration(cfg.Places.Timeout),
		CacheTTL:      cfg.Cache.TTL(),
	}
}

// HasCredentials reports whether upstream calls are enabled.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.APIKey != PlaceholderAPIKey
}
