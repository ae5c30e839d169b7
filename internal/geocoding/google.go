package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/aether/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used to interact with the
// Google Maps geocoding services.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// zipCountry restricts ZIP lookups to the United States, the only country using five-digit ZIP codes.
const zipCountry = "US"

func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode takes a context and a query as input, and returns the geographical coordinates
// of the location using the Google Maps Geocoding API. ZIP codes are looked up as
// postal-code components, city names as free-text addresses.
func (gp *GoogleProvider) Geocode(ctx context.Context, query Query) (*models.Coordinates, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "kind", query.Kind.String(), "value", query.Value)

	req := buildGoogleRequest(query)
	if req == nil {
		return nil, ErrInvalidLocation
	}

	geocodeResponse, err := gp.client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode location: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrLocationNotFound
	}
	coords := geocodeResponse[0].Geometry.Location

	return &models.Coordinates{Latitude: coords.Lat, Longitude: coords.Lng}, nil
}

func buildGoogleRequest(query Query) *maps.GeocodingRequest {
	switch query.Kind {
	case KindZIP:
		return &maps.GeocodingRequest{
			Components: map[maps.Component]string{
				maps.ComponentPostalCode: query.Value,
				maps.ComponentCountry:    zipCountry,
			},
		}
	case KindCity:
		return &maps.GeocodingRequest{Address: query.Value}
	default:
		return nil
	}
}
