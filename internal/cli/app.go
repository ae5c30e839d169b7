// Package cli implements the interactive menu of the weather application.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/aether/internal/geocoding"
	"github.com/UnknownOlympus/aether/internal/service"
	"github.com/UnknownOlympus/aether/internal/units"
)

// WeatherService is the part of service.WeatherService the menu depends on.
type WeatherService interface {
	CurrentWeather(ctx context.Context, input string, prefs units.Snapshot) (*service.CurrentReport, error)
	Forecast(ctx context.Context, input string, prefs units.Snapshot) (*service.ForecastReport, error)
	GeolocatedWeather(ctx context.Context, prefs units.Snapshot) (*service.CurrentReport, error)
}

// App runs the interactive menu loop.
type App struct {
	log     *slog.Logger
	svc     WeatherService
	prefs   *units.Preference
	input   *bufio.Scanner
	lines   <-chan inputLine
	printer *Printer
}

// inputLine is a single line read from the input, or the read error.
type inputLine struct {
	text string
	err  error
}

const (
	choiceCurrent = iota + 1
	choiceForecast
	choiceGeolocation
	choiceUnits
	choiceExit
)

const (
	menuText = "1. Get Current Weather\n2. Get Weather Forecast\n3. Use Geolocation (Optional)\n" +
		"4. Change Unit Preference\n5. Exit"
	locationPrompt = "Enter city name or ZIP code: "

	msgNotInteger      = "Invalid input provided. Not a valid integer."
	msgChoiceMissing   = "Invalid input provided. Input choice not exists."
	msgInvalidInput    = "Invalid input provided."
	msgNotInChoices    = "Invalid input provided. Entered value is not in the given choice."
	msgUnresolved      = "Couldn't fetch geolocation details."
	msgPreferenceSaved = "Unit preferences updated!"
)

// errInputClosed is returned by prompts when stdin is exhausted.
var errInputClosed = errors.New("input closed")

// NewApp creates the interactive application reading from in and writing to out.
func NewApp(log *slog.Logger, svc WeatherService, prefs *units.Preference, in io.Reader, out io.Writer) *App {
	return &App{
		log:     log,
		svc:     svc,
		prefs:   prefs,
		input:   bufio.NewScanner(in),
		printer: NewPrinter(out),
	}
}

// Run shows the menu and dispatches choices until the user exits, the input ends
// or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	a.lines = a.readLines(done)

	a.printer.Title("Welcome to the Weather Forecast Application!")
	a.printer.Line(menuText)

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := a.ask(ctx, "Choose an option: ")
		if stopped(err) {
			return nil
		}
		if err != nil {
			return err
		}

		choice, ok := parseChoice(line)
		if !ok {
			a.printer.Warning(msgNotInteger)
			continue
		}

		switch choice {
		case choiceCurrent:
			err = a.currentWeather(ctx)
		case choiceForecast:
			err = a.forecast(ctx)
		case choiceGeolocation:
			a.geolocatedWeather(ctx)
		case choiceUnits:
			err = a.changeUnitPreference(ctx)
		case choiceExit:
			a.log.InfoContext(ctx, "User exited the application")
			return nil
		default:
			a.printer.Warning(msgChoiceMissing)
		}

		if stopped(err) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// stopped reports whether err ends the session normally: input exhausted or interrupted.
func stopped(err error) bool {
	return errors.Is(err, errInputClosed) || errors.Is(err, context.Canceled)
}

func (a *App) currentWeather(ctx context.Context) error {
	location, err := a.ask(ctx, locationPrompt)
	if err != nil {
		return err
	}

	report, err := a.svc.CurrentWeather(ctx, location, a.prefs.Snapshot())
	if err != nil {
		a.reportError(ctx, "current weather data", err)
		return nil
	}
	a.printer.Current(report)

	return nil
}

func (a *App) forecast(ctx context.Context) error {
	location, err := a.ask(ctx, locationPrompt)
	if err != nil {
		return err
	}

	report, err := a.svc.Forecast(ctx, location, a.prefs.Snapshot())
	if err != nil {
		a.reportError(ctx, "weather forecast data", err)
		return nil
	}
	a.printer.Forecast(report)

	return nil
}

func (a *App) geolocatedWeather(ctx context.Context) {
	report, err := a.svc.GeolocatedWeather(ctx, a.prefs.Snapshot())
	if err != nil {
		a.reportError(ctx, "geolocation weather data", err)
		return
	}
	a.printer.Current(report)
}

// changeUnitPreference asks for the temperature unit, then the wind speed unit.
// Invalid input aborts the dialog and keeps the units chosen so far.
func (a *App) changeUnitPreference(ctx context.Context) error {
	a.printer.Line("1. Celsius (°C)\n2. Fahrenheit (°F)")
	temperature, ok, err := pick(ctx, a, "Choose your preferred temperature unit: ", units.Celsius, units.Fahrenheit)
	if err != nil || !ok {
		return err
	}
	if err = a.prefs.SetTemperature(temperature); err != nil {
		return fmt.Errorf("failed to set temperature unit: %w", err)
	}

	a.printer.Line("1. km/h\n2. mph")
	windSpeed, ok, err := pick(ctx, a, "Choose your preferred wind speed unit: ", units.KilometersPerHour, units.MilesPerHour)
	if err != nil || !ok {
		return err
	}
	if err = a.prefs.SetWindSpeed(windSpeed); err != nil {
		return fmt.Errorf("failed to set wind speed unit: %w", err)
	}

	a.printer.Success(msgPreferenceSaved)
	a.log.InfoContext(ctx, "Unit preferences updated",
		"temperature", string(a.prefs.Temperature()), "wind_speed", string(a.prefs.WindSpeed()))

	return nil
}

// pick asks for choice 1 or 2 and returns the matching option. ok is false when the
// answer was invalid and a message has been printed.
func pick[T any](ctx context.Context, a *App, prompt string, first, second T) (T, bool, error) {
	var zero T

	line, err := a.ask(ctx, prompt)
	if err != nil {
		return zero, false, err
	}

	// Signed answers are numbers here, only the main menu is digits-only.
	choice, err := strconv.Atoi(line)
	if err != nil {
		a.printer.Warning(msgNotInteger)
		return zero, false, nil
	}

	switch choice {
	case 1:
		return first, true, nil
	case 2:
		return second, true, nil
	default:
		a.printer.Warning(msgNotInChoices)
		return zero, false, nil
	}
}

// parseChoice accepts unsigned decimal numbers only.
func parseChoice(line string) (int, bool) {
	if line == "" || strings.IndexFunc(line, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, false
	}

	choice, err := strconv.Atoi(line)

	return choice, err == nil
}

// readLines scans the input in the background so prompts can be interrupted.
// The goroutine stops sending once done is closed.
func (a *App) readLines(done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)
		for a.input.Scan() {
			select {
			case lines <- inputLine{text: a.input.Text()}:
			case <-done:
				return
			}
		}
		if err := a.input.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-done:
			}
		}
	}()

	return lines
}

// ask prompts and waits for the next line. It returns errInputClosed at the end of
// the input and ctx.Err() when ctx is canceled first.
func (a *App) ask(ctx context.Context, prompt string) (string, error) {
	a.printer.Prompt(prompt)

	select {
	case <-ctx.Done():
		a.printer.Line("")
		return "", ctx.Err()
	case line, ok := <-a.lines:
		if !ok {
			a.printer.Line("")
			return "", errInputClosed
		}
		if line.err != nil {
			return "", fmt.Errorf("failed to read input: %w", line.err)
		}
		return strings.TrimSpace(line.text), nil
	}
}

// reportError prints a failed lookup the way the user expects and logs it.
func (a *App) reportError(ctx context.Context, what string, err error) {
	switch {
	case errors.Is(err, geocoding.ErrInvalidLocation):
		a.printer.Warning(msgInvalidInput)
	case errors.Is(err, service.ErrLocationUnresolved):
		a.printer.Warning(msgUnresolved)
	default:
		a.printer.Error(fmt.Sprintf("Error while fetching %s: %v", what, err))
	}

	a.log.ErrorContext(ctx, "Error while fetching "+what, "error", err)
}
