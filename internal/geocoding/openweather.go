package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/UnknownOlympus/aether/internal/models"
	"github.com/UnknownOlympus/aether/internal/openweather"
)

// APIClient is the subset of the weather API transport used for geocoding.
type APIClient interface {
	Get(ctx context.Context, endpoint, path string, query url.Values, out any) error
}

// OpenWeatherProvider resolves locations with the weather API's own geocoding endpoints.
type OpenWeatherProvider struct {
	client APIClient    // Weather API transport
	log    *slog.Logger // Logger for logging operations
}

type zipResponse struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

type directResponse struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
}

const (
	zipPath    = "/geo/1.0/zip"
	directPath = "/geo/1.0/direct"
)

// ErrLocationNotFound is returned when the provider has no match for the query.
var ErrLocationNotFound = errors.New("location not found")

// NewOpenWeatherProvider creates a geocoding provider on top of the weather API client.
func NewOpenWeatherProvider(client APIClient, log *slog.Logger) *OpenWeatherProvider {
	return &OpenWeatherProvider{client: client, log: log}
}

// Geocode resolves a ZIP code through /geo/1.0/zip and a city name through /geo/1.0/direct.
func (op *OpenWeatherProvider) Geocode(ctx context.Context, query Query) (*models.Coordinates, error) {
	op.log.DebugContext(ctx, "Geocoding using OpenWeather", "kind", query.Kind.String(), "value", query.Value)

	switch query.Kind {
	case KindZIP:
		return op.geocodeZIP(ctx, query.Value)
	case KindCity:
		return op.geocodeCity(ctx, query.Value)
	default:
		return nil, ErrInvalidLocation
	}
}

func (op *OpenWeatherProvider) geocodeZIP(ctx context.Context, zip string) (*models.Coordinates, error) {
	var result zipResponse
	err := op.client.Get(ctx, "geocode_zip", zipPath, url.Values{"zip": {zip}}, &result)
	if errors.Is(err, openweather.ErrNotFound) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to geocode zip code: %w", err)
	}

	op.log.DebugContext(ctx, "OpenWeather found result", "zip", zip, "name", result.Name, "lat", result.Lat, "lon", result.Lon)

	return &models.Coordinates{Latitude: result.Lat, Longitude: result.Lon}, nil
}

func (op *OpenWeatherProvider) geocodeCity(ctx context.Context, city string) (*models.Coordinates, error) {
	var results []directResponse
	query := url.Values{
		"q":     {city},
		"limit": {strconv.Itoa(1)}, // Only need the top result
	}
	if err := op.client.Get(ctx, "geocode_city", directPath, query, &results); err != nil {
		return nil, fmt.Errorf("failed to geocode city name: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrLocationNotFound
	}

	op.log.DebugContext(ctx, "OpenWeather found result",
		"city", city, "name", results[0].Name, "country", results[0].Country,
		"lat", results[0].Lat, "lon", results[0].Lon)

	return &models.Coordinates{Latitude: results[0].Lat, Longitude: results[0].Lon}, nil
}
