// Package geolocation determines the coordinates of the machine running the application.
package geolocation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/aether/internal/models"
	"googlemaps.github.io/maps"
)

// Locator returns the current position of the user.
type Locator interface {
	Locate(ctx context.Context) (*models.Coordinates, error)
}

// LocatorType represents the type of geolocation backend.
type LocatorType string

const (
	// LocatorTypeHTTP queries an endpoint answering with a plain "lat,lon" body.
	LocatorTypeHTTP LocatorType = "http"
	// LocatorTypeGoogle uses the Google Maps Geolocation API with IP-based positioning.
	LocatorTypeGoogle LocatorType = "google"
)

// LocatorConfig holds configuration for creating a Locator.
type LocatorConfig struct {
	Type    LocatorType   // Type of locator to create
	URL     string        // Endpoint URL (used by HTTP locator)
	APIKey  string        // API key (used by Google locator)
	Timeout time.Duration // Request timeout (used by HTTP locator)
	Logger  *slog.Logger  // Logger for the locator
}

// NewLocator creates a Locator based on the provided configuration.
func NewLocator(config LocatorConfig) (Locator, error) {
	switch config.Type {
	case LocatorTypeHTTP:
		if config.URL == "" {
			return nil, errors.New("URL is required for HTTP locator")
		}
		const defaultTimeout = 10 * time.Second
		if config.Timeout <= 0 {
			config.Timeout = defaultTimeout
		}
		return NewHTTPLocator(&http.Client{Timeout: config.Timeout}, config.URL, config.Logger), nil
	case LocatorTypeGoogle:
		if config.APIKey == "" {
			return nil, errors.New("API key is required for Google locator")
		}
		client, err := maps.NewClient(maps.WithAPIKey(config.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
		}
		return NewGoogleLocator(client, config.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported locator type: %s", config.Type)
	}
}
