package service_test

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/UnknownOlympus/aether/internal/geocoding"
	"github.com/UnknownOlympus/aether/internal/geolocation"
	"github.com/UnknownOlympus/aether/internal/metrics"
	"github.com/UnknownOlympus/aether/internal/models"
	"github.com/UnknownOlympus/aether/internal/service"
	"github.com/UnknownOlympus/aether/internal/units"
	"github.com/UnknownOlympus/aether/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	geocoder *mocks.Provider
	locator  *mocks.Locator
	fetcher  *mocks.Fetcher
	metrics  *metrics.Metrics
	service  *service.WeatherService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		geocoder: mocks.NewProvider(t),
		locator:  mocks.NewLocator(t),
		fetcher:  mocks.NewFetcher(t),
		metrics:  metrics.NewMetrics(prometheus.NewRegistry()),
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	f.service = service.NewWeatherService(logger, f.geocoder, f.locator, f.fetcher, f.metrics)

	return f
}

var (
	metric   = units.Snapshot{Temperature: units.Celsius, WindSpeed: units.KilometersPerHour}
	imperial = units.Snapshot{Temperature: units.Fahrenheit, WindSpeed: units.MilesPerHour}
	kyiv     = &models.Coordinates{Latitude: 50.45, Longitude: 30.52}
	sample   = &models.CurrentConditions{
		Location:     "Kyiv",
		TemperatureK: 300,
		Humidity:     41,
		WindSpeedMS:  5,
		Description:  "scattered clouds",
	}
)

func TestCurrentWeather(t *testing.T) {
	ctx := t.Context()

	t.Run("city name in metric units", func(t *testing.T) {
		f := newFixture(t)
		f.geocoder.On("Geocode", ctx, geocoding.Query{Kind: geocoding.KindCity, Value: "Kyiv"}).Return(kyiv, nil).Once()
		f.fetcher.On("Current", ctx, *kyiv).Return(sample, nil).Once()

		report, err := f.service.CurrentWeather(ctx, " Kyiv ", metric)

		require.NoError(t, err)
		assert.Equal(t, "Kyiv", report.Location)
		assert.Equal(t, *kyiv, report.Coordinates)
		assert.InDelta(t, 26.85, report.Temperature, 0.0001)
		assert.Equal(t, units.Celsius, report.TemperatureUnit)
		assert.Equal(t, 41, report.Humidity)
		assert.InDelta(t, 18.0, report.WindSpeed, 0.0001)
		assert.Equal(t, units.KilometersPerHour, report.WindSpeedUnit)
		assert.Equal(t, "scattered clouds", report.Description)
		assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.Lookups.WithLabelValues("current", "success")), 0.0001)
	})

	t.Run("zip code in imperial units", func(t *testing.T) {
		f := newFixture(t)
		f.geocoder.On("Geocode", ctx, geocoding.Query{Kind: geocoding.KindZIP, Value: "10001"}).Return(kyiv, nil).Once()
		f.fetcher.On("Current", ctx, *kyiv).Return(sample, nil).Once()

		report, err := f.service.CurrentWeather(ctx, "10001", imperial)

		require.NoError(t, err)
		assert.InDelta(t, 80.33, report.Temperature, 0.0001)
		assert.Equal(t, units.Fahrenheit, report.TemperatureUnit)
		assert.InDelta(t, 11.18, report.WindSpeed, 0.0001)
		assert.Equal(t, units.MilesPerHour, report.WindSpeedUnit)
	})

	t.Run("invalid input never reaches the geocoder", func(t *testing.T) {
		f := newFixture(t)

		report, err := f.service.CurrentWeather(ctx, "10001-abc", metric)

		require.ErrorIs(t, err, geocoding.ErrInvalidLocation)
		assert.Nil(t, report)
		assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.Lookups.WithLabelValues("current", "failure")), 0.0001)
	})

	t.Run("geocoder failure is reported as unresolved location", func(t *testing.T) {
		f := newFixture(t)
		f.geocoder.On("Geocode", ctx, geocoding.Query{Kind: geocoding.KindCity, Value: "Atlantis"}).
			Return(nil, geocoding.ErrLocationNotFound).Once()

		report, err := f.service.CurrentWeather(ctx, "Atlantis", metric)

		require.ErrorIs(t, err, service.ErrLocationUnresolved)
		require.ErrorIs(t, err, geocoding.ErrLocationNotFound)
		assert.Nil(t, report)
	})

	t.Run("fetcher failure is returned as is", func(t *testing.T) {
		f := newFixture(t)
		f.geocoder.On("Geocode", ctx, geocoding.Query{Kind: geocoding.KindCity, Value: "Kyiv"}).Return(kyiv, nil).Once()
		f.fetcher.On("Current", ctx, *kyiv).Return(nil, assert.AnError).Once()

		report, err := f.service.CurrentWeather(ctx, "Kyiv", metric)

		require.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, service.ErrLocationUnresolved)
		assert.Nil(t, report)
	})
}

func TestCurrentWeatherAt(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	f.fetcher.On("Current", ctx, *kyiv).Return(sample, nil).Once()

	report, err := f.service.CurrentWeatherAt(ctx, *kyiv, metric)

	require.NoError(t, err)
	assert.Equal(t, "Kyiv", report.Location)
}

func TestForecast(t *testing.T) {
	ctx := t.Context()
	start := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	entries := make([]models.ForecastEntry, 0, 40)
	for i := range 40 {
		entries = append(entries, models.ForecastEntry{
			Time:         start.Add(time.Duration(i) * 3 * time.Hour),
			TemperatureK: 273.15 + float64(i),
			Description:  "clear sky",
		})
	}
	forecast := &models.Forecast{City: "Kyiv", Entries: entries}

	t.Run("one reading per day", func(t *testing.T) {
		f := newFixture(t)
		f.geocoder.On("Geocode", ctx, geocoding.Query{Kind: geocoding.KindCity, Value: "Kyiv"}).Return(kyiv, nil).Once()
		f.fetcher.On("Forecast", ctx, *kyiv).Return(forecast, nil).Once()

		report, err := f.service.Forecast(ctx, "Kyiv", metric)

		require.NoError(t, err)
		assert.Equal(t, "Kyiv", report.City)
		assert.Equal(t, units.Celsius, report.TemperatureUnit)
		require.Len(t, report.Days, 3)
		assert.Equal(t, start, report.Days[0].Date)
		assert.InDelta(t, 0.0, report.Days[0].Temperature, 0.0001)
		assert.Equal(t, start.AddDate(0, 0, 1), report.Days[1].Date)
		assert.InDelta(t, 8.0, report.Days[1].Temperature, 0.0001)
		assert.InDelta(t, 16.0, report.Days[2].Temperature, 0.0001)
		assert.Equal(t, "clear sky", report.Days[2].Description)
	})

	t.Run("fahrenheit", func(t *testing.T) {
		f := newFixture(t)
		f.geocoder.On("Geocode", ctx, geocoding.Query{Kind: geocoding.KindZIP, Value: "10001"}).Return(kyiv, nil).Once()
		f.fetcher.On("Forecast", ctx, *kyiv).Return(forecast, nil).Once()

		report, err := f.service.Forecast(ctx, "10001", imperial)

		require.NoError(t, err)
		assert.Equal(t, units.Fahrenheit, report.TemperatureUnit)
		assert.InDelta(t, 32.0, report.Days[0].Temperature, 0.0001)
	})

	t.Run("fetcher error", func(t *testing.T) {
		f := newFixture(t)
		f.geocoder.On("Geocode", ctx, geocoding.Query{Kind: geocoding.KindCity, Value: "Kyiv"}).Return(kyiv, nil).Once()
		f.fetcher.On("Forecast", ctx, *kyiv).Return(nil, assert.AnError).Once()

		report, err := f.service.Forecast(ctx, "Kyiv", metric)

		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, report)
		assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.Lookups.WithLabelValues("forecast", "failure")), 0.0001)
	})
}

func TestGeolocatedWeather(t *testing.T) {
	ctx := t.Context()

	t.Run("successful lookup", func(t *testing.T) {
		f := newFixture(t)
		f.locator.On("Locate", ctx).Return(kyiv, nil).Once()
		f.fetcher.On("Current", ctx, *kyiv).Return(sample, nil).Once()

		report, err := f.service.GeolocatedWeather(ctx, metric)

		require.NoError(t, err)
		assert.Equal(t, "Kyiv", report.Location)
		assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.Lookups.WithLabelValues("geolocation", "success")), 0.0001)
	})

	t.Run("malformed location", func(t *testing.T) {
		f := newFixture(t)
		f.locator.On("Locate", ctx).Return(nil, fmt.Errorf("%w: %q", geolocation.ErrMalformedLocation, "nowhere")).Once()

		report, err := f.service.GeolocatedWeather(ctx, metric)

		require.ErrorIs(t, err, service.ErrLocationUnresolved)
		require.ErrorIs(t, err, geolocation.ErrMalformedLocation)
		assert.Nil(t, report)
	})

	t.Run("transport failure keeps its cause", func(t *testing.T) {
		f := newFixture(t)
		f.locator.On("Locate", ctx).Return(nil, assert.AnError).Once()

		report, err := f.service.GeolocatedWeather(ctx, metric)

		require.ErrorIs(t, err, assert.AnError)
		require.NotErrorIs(t, err, service.ErrLocationUnresolved)
		assert.Nil(t, report)
		assert.InDelta(t, 1.0, testutil.ToFloat64(f.metrics.Lookups.WithLabelValues("geolocation", "failure")), 0.0001)
	})
}
