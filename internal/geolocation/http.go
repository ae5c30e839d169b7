package geolocation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/aether/internal/models"
)

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPLocator asks an IP geolocation endpoint (e.g. https://ipinfo.io/loc) for the
// current position. The endpoint answers with a plain text "latitude,longitude" body.
type HTTPLocator struct {
	client HTTPClient
	url    string
	log    *slog.Logger
}

// ErrMalformedLocation is returned when the endpoint body is not a "lat,lon" pair.
var ErrMalformedLocation = errors.New("geolocation endpoint returned malformed coordinates")

// NewHTTPLocator creates an HTTPLocator for the given endpoint.
func NewHTTPLocator(client HTTPClient, url string, log *slog.Logger) *HTTPLocator {
	return &HTTPLocator{client: client, url: url, log: log}
}

// Locate fetches the endpoint and parses its "lat,lon" answer.
func (hl *HTTPLocator) Locate(ctx context.Context) (*models.Coordinates, error) {
	hl.log.DebugContext(ctx, "Locating using geolocation endpoint", "url", hl.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, hl.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := hl.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geolocation request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		hl.log.ErrorContext(ctx, "Geolocation endpoint error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("geolocation endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseLatLon(strings.TrimSpace(string(body)))
}

func parseLatLon(text string) (*models.Coordinates, error) {
	latText, lonText, found := strings.Cut(text, ",")
	latText, lonText = strings.TrimSpace(latText), strings.TrimSpace(lonText)
	if !found || latText == "" || lonText == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLocation, text)
	}

	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrMalformedLocation, latText)
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrMalformedLocation, lonText)
	}

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
