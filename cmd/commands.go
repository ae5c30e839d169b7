package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/aether/internal/cli"
	"github.com/UnknownOlympus/aether/internal/config"
	"github.com/UnknownOlympus/aether/internal/geocoding"
	"github.com/UnknownOlympus/aether/internal/geolocation"
	"github.com/UnknownOlympus/aether/internal/metrics"
	"github.com/UnknownOlympus/aether/internal/openweather"
	"github.com/UnknownOlympus/aether/internal/service"
	"github.com/UnknownOlympus/aether/internal/units"
	"github.com/UnknownOlympus/aether/internal/weather"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath      string
	temperatureUnit string
	windUnit        string
}

// application bundles everything a command needs once configuration is loaded.
type application struct {
	log      *slog.Logger
	svc      *service.WeatherService
	prefs    *units.Preference
	closeLog func()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "weather",
		Short:         "Current weather and short-term forecasts in your terminal",
		Long:          "Looks up current conditions and a three-day forecast by city name, US ZIP code or automatic geolocation.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.closeLog()

			return cli.NewApp(app.log, app.svc, app.prefs, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a config file (.env, .yaml, .json or .toml)")
	flags.StringVar(&opts.temperatureUnit, "temperature-unit", "", "temperature unit: celsius or fahrenheit")
	flags.StringVar(&opts.windUnit, "wind-unit", "", "wind speed unit: km/h or mph")

	root.AddCommand(newCurrentCmd(opts), newForecastCmd(opts), newLocateCmd(opts))

	return root
}

func newCurrentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "current <city|zip>",
		Short: "Show current weather for a city name or ZIP code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.closeLog()

			report, err := app.svc.CurrentWeather(cmd.Context(), strings.Join(args, " "), app.prefs.Snapshot())
			if err != nil {
				return fmt.Errorf("failed to fetch current weather: %w", err)
			}

			cli.NewPrinter(cmd.OutOrStdout()).Current(report)
			return nil
		},
	}
}

func newForecastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <city|zip>",
		Short: "Show the forecast for the next days",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.closeLog()

			report, err := app.svc.Forecast(cmd.Context(), strings.Join(args, " "), app.prefs.Snapshot())
			if err != nil {
				return fmt.Errorf("failed to fetch weather forecast: %w", err)
			}

			cli.NewPrinter(cmd.OutOrStdout()).Forecast(report)
			return nil
		},
	}
}

func newLocateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Show current weather at your detected location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.closeLog()

			report, err := app.svc.GeolocatedWeather(cmd.Context(), app.prefs.Snapshot())
			if err != nil {
				return fmt.Errorf("failed to fetch geolocation weather: %w", err)
			}

			cli.NewPrinter(cmd.OutOrStdout()).Current(report)
			return nil
		},
	}
}

// bootstrap loads the configuration and wires the weather service with its dependencies.
func bootstrap(ctx context.Context, opts *rootOptions) (*application, error) {
	// Load application configuration.
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	prefs, err := buildPreference(cfg, opts)
	if err != nil {
		return nil, err
	}

	// Set up the logger based on the environment.
	out, closeLog := openLogOutput(cfg.LogFile)
	logger := setupLogger(cfg.Env, out)

	// Create a separate registry for metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	client := openweather.NewClient(openweather.Config{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		RateLimit: cfg.RateLimit,
		Timeout:   cfg.Timeout,
		Logger:    logger,
		Metrics:   appMetrics,
	})

	// Create geocoding provider using factory pattern based on configuration.
	geocoder, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.GeocodingProvider),
		APIKey:    cfg.GoogleAPIKey,
		RateLimit: cfg.GoogleRateLimit,
		Client:    client,
		Logger:    logger,
	})
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to create geocoding provider: %w", err)
	}

	locator, err := geolocation.NewLocator(geolocation.LocatorConfig{
		Type:    geolocation.LocatorType(cfg.GeolocationProvider),
		URL:     cfg.GeolocationURL,
		APIKey:  cfg.GoogleAPIKey,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to create geolocation locator: %w", err)
	}

	logger.InfoContext(ctx, "Weather service initialized",
		"geocoding_provider", cfg.GeocodingProvider,
		"geolocation_provider", cfg.GeolocationProvider,
	)

	if cfg.MetricsPort > 0 {
		go startMonitoringServer(ctx, logger, reg, cfg.MetricsPort)
	}

	svc := service.NewWeatherService(
		logger, geocoder, locator, weather.NewOpenWeatherFetcher(client, logger), appMetrics,
	)

	return &application{log: logger, svc: svc, prefs: prefs, closeLog: closeLog}, nil
}

// buildPreference returns the initial unit preference: flags win over configuration.
func buildPreference(cfg *config.Config, opts *rootOptions) (*units.Preference, error) {
	temperature := cfg.TemperatureUnit
	if opts.temperatureUnit != "" {
		temperature = opts.temperatureUnit
	}
	windSpeed := cfg.WindSpeedUnit
	if opts.windUnit != "" {
		windSpeed = opts.windUnit
	}

	tempUnit, err := units.ParseTemperatureUnit(temperature)
	if err != nil {
		return nil, fmt.Errorf("invalid temperature unit: %w", err)
	}
	speedUnit, err := units.ParseSpeedUnit(windSpeed)
	if err != nil {
		return nil, fmt.Errorf("invalid wind speed unit: %w", err)
	}

	return units.NewPreference(tempUnit, speedUnit)
}
