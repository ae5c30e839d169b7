package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/aether/internal/geocoding"
	"github.com/UnknownOlympus/aether/internal/geolocation"
	"github.com/UnknownOlympus/aether/internal/metrics"
	"github.com/UnknownOlympus/aether/internal/models"
	"github.com/UnknownOlympus/aether/internal/units"
	"github.com/UnknownOlympus/aether/internal/weather"
	"github.com/google/uuid"
)

// WeatherService resolves locations, fetches weather for them and converts
// the readings into the user's display units.
type WeatherService struct {
	log      *slog.Logger        // Logger for logging service activities
	geocoder geocoding.Provider  // Resolves ZIP codes and city names into coordinates
	locator  geolocation.Locator // Finds the user's own position
	fetcher  weather.Fetcher     // Weather API access
	metrics  *metrics.Metrics    // Lookup counters
}

// CurrentReport is the current weather converted into display units.
type CurrentReport struct {
	Location        string
	Coordinates     models.Coordinates
	Temperature     float64
	TemperatureUnit units.TemperatureUnit
	Humidity        int
	WindSpeed       float64
	WindSpeedUnit   units.SpeedUnit
	Description     string
}

// ForecastReport is the daily forecast converted into display units.
type ForecastReport struct {
	City            string
	TemperatureUnit units.TemperatureUnit
	Days            []ForecastDay
}

// ForecastDay is one daily reading of a ForecastReport.
type ForecastDay struct {
	Date        time.Time
	Temperature float64
	Description string
}

// ErrLocationUnresolved is returned when the location could not be turned into coordinates.
var ErrLocationUnresolved = errors.New("couldn't fetch geolocation details")

const (
	opCurrent     = "current"
	opForecast    = "forecast"
	opGeolocation = "geolocation"
)

// NewWeatherService creates a new instance of WeatherService.
func NewWeatherService(
	log *slog.Logger,
	geocoder geocoding.Provider,
	locator geolocation.Locator,
	fetcher weather.Fetcher,
	metrics *metrics.Metrics,
) *WeatherService {
	return &WeatherService{
		log:      log,
		geocoder: geocoder,
		locator:  locator,
		fetcher:  fetcher,
		metrics:  metrics,
	}
}

// CurrentWeather resolves a ZIP code or city name and returns its current weather.
func (ws *WeatherService) CurrentWeather(
	ctx context.Context,
	input string,
	prefs units.Snapshot,
) (report *CurrentReport, err error) {
	log := ws.requestLogger(opCurrent)
	defer ws.observe(ctx, log, opCurrent, &err)

	coords, err := ws.resolve(ctx, log, input)
	if err != nil {
		return nil, err
	}

	return ws.currentAt(ctx, log, *coords, prefs)
}

// CurrentWeatherAt returns the current weather for known coordinates.
func (ws *WeatherService) CurrentWeatherAt(
	ctx context.Context,
	coords models.Coordinates,
	prefs units.Snapshot,
) (report *CurrentReport, err error) {
	log := ws.requestLogger(opCurrent)
	defer ws.observe(ctx, log, opCurrent, &err)

	return ws.currentAt(ctx, log, coords, prefs)
}

// Forecast resolves a ZIP code or city name and returns one forecast reading per day
// for the next days, taken at the same time of day.
func (ws *WeatherService) Forecast(
	ctx context.Context,
	input string,
	prefs units.Snapshot,
) (report *ForecastReport, err error) {
	log := ws.requestLogger(opForecast)
	defer ws.observe(ctx, log, opForecast, &err)

	coords, err := ws.resolve(ctx, log, input)
	if err != nil {
		return nil, err
	}

	forecast, err := ws.fetcher.Forecast(ctx, *coords)
	if err != nil {
		return nil, err
	}

	report = &ForecastReport{City: forecast.City, TemperatureUnit: prefs.Temperature}
	for _, entry := range weather.DailyAtSameHour(forecast.Entries, weather.DefaultForecastDays) {
		report.Days = append(report.Days, ForecastDay{
			Date:        entry.Time,
			Temperature: prefs.ConvertTemperature(entry.TemperatureK),
			Description: entry.Description,
		})
	}

	return report, nil
}

// GeolocatedWeather finds the user's position and returns its current weather.
func (ws *WeatherService) GeolocatedWeather(
	ctx context.Context,
	prefs units.Snapshot,
) (report *CurrentReport, err error) {
	log := ws.requestLogger(opGeolocation)
	defer ws.observe(ctx, log, opGeolocation, &err)

	coords, err := ws.locator.Locate(ctx)
	if errors.Is(err, geolocation.ErrMalformedLocation) {
		log.WarnContext(ctx, "Couldn't fetch current geolocation details", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLocationUnresolved, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to locate current position: %w", err)
	}
	log.DebugContext(ctx, "Current position located", "lat", coords.Latitude, "lon", coords.Longitude)

	return ws.currentAt(ctx, log, *coords, prefs)
}

func (ws *WeatherService) resolve(ctx context.Context, log *slog.Logger, input string) (*models.Coordinates, error) {
	query, err := geocoding.ParseQuery(input)
	if err != nil {
		log.WarnContext(ctx, "Invalid location input", "input", input)
		return nil, err
	}

	coords, err := ws.geocoder.Geocode(ctx, query)
	if err != nil {
		log.WarnContext(ctx, "Couldn't fetch geolocation details", "kind", query.Kind.String(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLocationUnresolved, err)
	}
	log.DebugContext(ctx, "Location resolved", "input", query.Value, "lat", coords.Latitude, "lon", coords.Longitude)

	return coords, nil
}

func (ws *WeatherService) currentAt(
	ctx context.Context,
	log *slog.Logger,
	coords models.Coordinates,
	prefs units.Snapshot,
) (*CurrentReport, error) {
	conditions, err := ws.fetcher.Current(ctx, coords)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "Current weather fetched", "location", conditions.Location)

	return &CurrentReport{
		Location:        conditions.Location,
		Coordinates:     coords,
		Temperature:     prefs.ConvertTemperature(conditions.TemperatureK),
		TemperatureUnit: prefs.Temperature,
		Humidity:        conditions.Humidity,
		WindSpeed:       prefs.ConvertWindSpeed(conditions.WindSpeedMS),
		WindSpeedUnit:   prefs.WindSpeed,
		Description:     conditions.Description,
	}, nil
}

func (ws *WeatherService) requestLogger(operation string) *slog.Logger {
	return ws.log.With("operation", operation, "request_id", uuid.NewString())
}

// observe logs the outcome of an operation and counts it.
func (ws *WeatherService) observe(ctx context.Context, log *slog.Logger, operation string, errp *error) {
	if errp != nil && *errp != nil {
		log.ErrorContext(ctx, "Weather lookup failed", "error", *errp)
		ws.metrics.Lookups.WithLabelValues(operation, "failure").Inc()
		return
	}

	log.InfoContext(ctx, "Weather lookup completed")
	ws.metrics.Lookups.WithLabelValues(operation, "success").Inc()
}
