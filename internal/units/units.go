// Package units holds the display units chosen by the user and the conversions
// from the raw values reported by the weather API.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// TemperatureUnit is the unit used to display temperatures.
type TemperatureUnit string

// SpeedUnit is the unit used to display wind speed.
type SpeedUnit string

const (
	// Celsius displays temperatures in degrees Celsius.
	Celsius TemperatureUnit = "°C"
	// Fahrenheit displays temperatures in degrees Fahrenheit.
	Fahrenheit TemperatureUnit = "°F"

	// KilometersPerHour displays wind speed in km/h.
	KilometersPerHour SpeedUnit = "km/h"
	// MilesPerHour displays wind speed in mph.
	MilesPerHour SpeedUnit = "mph"
)

const (
	absoluteZeroC = 273.15
	msToKmh       = 3.6
	kmhToMph      = 0.6213711922
	precision     = 2
)

// ErrUnknownUnit is returned when a unit is not one of the supported values.
var ErrUnknownUnit = errors.New("unknown unit")

// Valid reports whether the unit is one of the supported temperature units.
func (u TemperatureUnit) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// Valid reports whether the unit is one of the supported wind speed units.
func (u SpeedUnit) Valid() bool {
	return u == KilometersPerHour || u == MilesPerHour
}

// ParseTemperatureUnit converts user or configuration input into a TemperatureUnit.
func ParseTemperatureUnit(value string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "celsius", "c", "°c", "metric":
		return Celsius, nil
	case "fahrenheit", "f", "°f", "imperial":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("%w: temperature %q", ErrUnknownUnit, value)
	}
}

// ParseSpeedUnit converts user or configuration input into a SpeedUnit.
func ParseSpeedUnit(value string) (SpeedUnit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "km/h", "kmh", "kph", "metric":
		return KilometersPerHour, nil
	case "mph", "imperial":
		return MilesPerHour, nil
	default:
		return "", fmt.Errorf("%w: wind speed %q", ErrUnknownUnit, value)
	}
}

// KelvinToCelsius converts a Kelvin temperature to Celsius, rounded to two decimals.
func KelvinToCelsius(kelvin float64) float64 {
	return round(kelvin - absoluteZeroC)
}

// KelvinToFahrenheit converts a Kelvin temperature to Fahrenheit, rounded to two decimals.
func KelvinToFahrenheit(kelvin float64) float64 {
	return round((kelvin-absoluteZeroC)*9/5 + 32)
}

// MetersPerSecondToKmh converts meters per second to kilometers per hour, rounded to two decimals.
func MetersPerSecondToKmh(speed float64) float64 {
	return round(speed * msToKmh)
}

// KmhToMph converts kilometers per hour to miles per hour, rounded to two decimals.
func KmhToMph(speed float64) float64 {
	return round(speed * kmhToMph)
}

func round(value float64) float64 {
	factor := math.Pow10(precision)
	return math.Round(value*factor) / factor
}
