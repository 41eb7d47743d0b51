package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// EnvPlacesBaseURL overrides the places API base URL.
	EnvPlacesBaseURL = "PLACES_BASE_URL"

	// EnvGoogleMapsAPIKey supplies a server-side default maps credential.
	EnvGoogleMapsAPIKey = "GOOGLE_MAPS_API_KEY"

	// EnvPlacesCacheTTL overrides the photo lookup cache duration.
	EnvPlacesCacheTTL = "PLACES_CACHE_TTL"
)

// PlacesConfig contains places API configuration for photo enrichment.
type PlacesConfig struct {
	BaseURL       string `toml:"base_url"`
	APIKey        string `toml:"api_key"`
	CacheTTL      string `toml:"cache_ttl"`
	PhotoMaxWidth int    `toml:"photo_max_width"`
	MaxPhotos     int    `toml:"max_photos"`
}

// CacheTTLDuration parses and returns the cache TTL as a time.Duration.
func (c *PlacesConfig) CacheTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the places configuration.
func (c *PlacesConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *PlacesConfig) Merge(overlay *PlacesConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.CacheTTL != "" {
		c.CacheTTL = overlay.CacheTTL
	}
	if overlay.PhotoMaxWidth != 0 {
		c.PhotoMaxWidth = overlay.PhotoMaxWidth
	}
	if overlay.MaxPhotos != 0 {
		c.MaxPhotos = overlay.MaxPhotos
	}
}

func (c *PlacesConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://maps.googleapis.com"
	}
	if c.CacheTTL == "" {
		c.CacheTTL = "15m"
	}
	if c.PhotoMaxWidth == 0 {
		c.PhotoMaxWidth = 800
	}
	if c.MaxPhotos == 0 {
		c.MaxPhotos = 3
	}
}

func (c *PlacesConfig) loadEnv() {
	if v := os.Getenv(EnvPlacesBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvGoogleMapsAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvPlacesCacheTTL); v != "" {
		c.CacheTTL = v
	}
}

func (c *PlacesConfig) validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("invalid base_url: %s", c.BaseURL)
	}
	if _, err := time.ParseDuration(c.CacheTTL); err != nil {
		return fmt.Errorf("invalid cache_ttl: %w", err)
	}
	if c.PhotoMaxWidth < 1 {
		return fmt.Errorf("invalid photo_max_width: %d", c.PhotoMaxWidth)
	}
	if c.MaxPhotos < 1 {
		return fmt.Errorf("invalid max_photos: %d", c.MaxPhotos)
	}
	return nil
}
