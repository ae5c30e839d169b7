package geolocation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/aether/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleGeolocateClient is the part of the Google Maps client used for geolocation.
type GoogleGeolocateClient interface {
	Geolocate(ctx context.Context, r *maps.GeolocationRequest) (*maps.GeolocationResult, error)
}

// GoogleLocator locates the caller by IP address through the Google Maps Geolocation API.
type GoogleLocator struct {
	client GoogleGeolocateClient
	log    *slog.Logger
}

func NewGoogleLocator(client GoogleGeolocateClient, log *slog.Logger) *GoogleLocator {
	return &GoogleLocator{client: client, log: log}
}

func (gl *GoogleLocator) Locate(ctx context.Context) (*models.Coordinates, error) {
	gl.log.DebugContext(ctx, "Locating using Google Maps")

	result, err := gl.client.Geolocate(ctx, &maps.GeolocationRequest{ConsiderIP: true})
	if err != nil {
		return nil, fmt.Errorf("failed to geolocate: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: empty Google Maps answer", ErrMalformedLocation)
	}

	gl.log.DebugContext(ctx, "Google Maps located caller",
		"lat", result.Location.Lat, "lon", result.Location.Lng, "accuracy_m", result.Accuracy)

	return &models.Coordinates{Latitude: result.Location.Lat, Longitude: result.Location.Lng}, nil
}
