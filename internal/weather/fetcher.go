// Package weather fetches current conditions and forecasts for a pair of coordinates.
package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/UnknownOlympus/aether/internal/models"
)

// Fetcher returns weather data for coordinates.
type Fetcher interface {
	Current(ctx context.Context, coords models.Coordinates) (*models.CurrentConditions, error)
	Forecast(ctx context.Context, coords models.Coordinates) (*models.Forecast, error)
}

// APIClient is the subset of the weather API transport used by the fetcher.
type APIClient interface {
	Get(ctx context.Context, endpoint, path string, query url.Values, out any) error
}

// OpenWeatherFetcher reads /data/2.5/weather and /data/2.5/forecast in standard units
// (Kelvin, meters per second).
type OpenWeatherFetcher struct {
	client APIClient
	log    *slog.Logger
}

type condition struct {
	Description string `json:"description"`
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []condition `json:"weather"`
}

type forecastResponse struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []condition `json:"weather"`
	} `json:"list"`
}

const (
	currentPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast"

	// forecastTimeLayout is the format of the dt_txt field, always UTC.
	forecastTimeLayout = "2006-01-02 15:04:05"
)

// ErrEmptyForecast is returned when the API answers without forecast entries.
var ErrEmptyForecast = errors.New("weather API returned an empty forecast")

// NewOpenWeatherFetcher creates a fetcher on top of the weather API client.
func NewOpenWeatherFetcher(client APIClient, log *slog.Logger) *OpenWeatherFetcher {
	return &OpenWeatherFetcher{client: client, log: log}
}

func coordinateQuery(coords models.Coordinates) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(coords.Latitude, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(coords.Longitude, 'f', -1, 64)},
	}
}

// Current returns the current conditions at coords.
func (of *OpenWeatherFetcher) Current(ctx context.Context, coords models.Coordinates) (*models.CurrentConditions, error) {
	var resp currentResponse
	if err := of.client.Get(ctx, "weather", currentPath, coordinateQuery(coords), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch current weather: %w", err)
	}

	of.log.DebugContext(ctx, "Current weather received", "location", resp.Name, "temp_k", resp.Main.Temp)

	return &models.CurrentConditions{
		Location:     resp.Name,
		TemperatureK: resp.Main.Temp,
		Humidity:     resp.Main.Humidity,
		WindSpeedMS:  resp.Wind.Speed,
		Description:  firstDescription(resp.Weather),
	}, nil
}

// Forecast returns the 3-hourly forecast at coords.
func (of *OpenWeatherFetcher) Forecast(ctx context.Context, coords models.Coordinates) (*models.Forecast, error) {
	var resp forecastResponse
	if err := of.client.Get(ctx, "forecast", forecastPath, coordinateQuery(coords), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch weather forecast: %w", err)
	}

	if len(resp.List) == 0 {
		return nil, ErrEmptyForecast
	}

	forecast := &models.Forecast{
		City:    resp.City.Name,
		Entries: make([]models.ForecastEntry, 0, len(resp.List)),
	}
	for _, item := range resp.List {
		moment, err := time.Parse(forecastTimeLayout, item.DtTxt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse forecast time %q: %w", item.DtTxt, err)
		}
		forecast.Entries = append(forecast.Entries, models.ForecastEntry{
			Time:         moment,
			TemperatureK: item.Main.Temp,
			Description:  firstDescription(item.Weather),
		})
	}

	of.log.DebugContext(ctx, "Weather forecast received", "city", forecast.City, "entries", len(forecast.Entries))

	return forecast, nil
}

func firstDescription(conditions []condition) string {
	if len(conditions) == 0 {
		return ""
	}

	return conditions[0].Description
}
