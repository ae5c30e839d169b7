package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration settings for the weather application.
// Every field is read from an environment variable of the same name in upper case,
// e.g. WeatherAPIKey from WEATHER_API_KEY, and may also come from a config file.
//
// Fields:
// - Env: The current environment (local, development, production), selects the log format.
// - LogFile: Where logs are written; empty means stderr.
// - APIKey, BaseURL: Credentials and address of the OpenWeatherMap-compatible API.
// - GeolocationURL: Endpoint answering with the caller's "lat,lon".
// - GeocodingProvider, GeolocationProvider: Backends for the location resolver and auto-location.
// - GoogleAPIKey: Google Maps key, required when a Google backend is selected.
// - RateLimit, Timeout: Outgoing request limits for the weather API.
// - GoogleRateLimit: Requests per second to Google Maps, independent of RateLimit.
// - MetricsPort: Port of the monitoring server, 0 disables it.
// - TemperatureUnit, WindSpeedUnit: Initial display units.
type Config struct {
	Env                 string        `mapstructure:"weather_env"`
	LogFile             string        `mapstructure:"weather_log_file"`
	APIKey              string        `mapstructure:"weather_api_key"`
	BaseURL             string        `mapstructure:"weather_api_base_url"`
	GeolocationURL      string        `mapstructure:"geolocation_url"`
	GeocodingProvider   string        `mapstructure:"geocoding_provider"`
	GeolocationProvider string        `mapstructure:"geolocation_provider"`
	GoogleAPIKey        string        `mapstructure:"google_maps_api_key"`
	RateLimit           int           `mapstructure:"weather_rate_limit"`
	GoogleRateLimit     int           `mapstructure:"google_maps_rate_limit"`
	Timeout             time.Duration `mapstructure:"weather_http_timeout"`
	MetricsPort         int           `mapstructure:"weather_metrics_port"`
	TemperatureUnit     string        `mapstructure:"weather_temperature_unit"`
	WindSpeedUnit       string        `mapstructure:"weather_wind_speed_unit"`
}

const (
	providerGoogle = "google"
	providerHTTP   = "http"
)

var defaults = map[string]any{
	"weather_env":              "production",
	"weather_log_file":         "logs/app.log",
	"weather_api_key":          "",
	"weather_api_base_url":     "",
	"geolocation_url":          "",
	"geocoding_provider":       "openweather",
	"geolocation_provider":     providerHTTP,
	"google_maps_api_key":      "",
	"weather_rate_limit":       10,
	"google_maps_rate_limit":   50,
	"weather_http_timeout":     "10s",
	"weather_metrics_port":     0,
	"weather_temperature_unit": "celsius",
	"weather_wind_speed_unit":  "km/h",
}

// Errors returned for missing required settings.
var (
	ErrMissingAPIKey         = errors.New("weather API key not found")
	ErrMissingBaseURL        = errors.New("weather API base url not found")
	ErrMissingGeolocationURL = errors.New("geolocation url not found")
	ErrMissingGoogleAPIKey   = errors.New("google maps API key not found")
)

// Load reads the configuration from the environment and, when path is not empty, from the
// given file (.env, .yaml, .json or .toml). Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.GeolocationProvider == providerHTTP && c.GeolocationURL == "" {
		return ErrMissingGeolocationURL
	}
	if (c.GeocodingProvider == providerGoogle || c.GeolocationProvider == providerGoogle) && c.GoogleAPIKey == "" {
		return ErrMissingGoogleAPIKey
	}

	return nil
}
