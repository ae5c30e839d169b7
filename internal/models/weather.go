package models

import "time"

// CurrentConditions holds the current weather for a location in the units reported by the API:
// temperature in Kelvin and wind speed in meters per second.
type CurrentConditions struct {
	Location     string  // Location is the place name reported by the weather API.
	TemperatureK float64 // TemperatureK is the air temperature in Kelvin.
	Humidity     int     // Humidity is the relative humidity in percent.
	WindSpeedMS  float64 // WindSpeedMS is the wind speed in meters per second.
	Description  string  // Description is a short text summary, e.g. "light rain".
}

// ForecastEntry is a single reading of the short-term forecast.
type ForecastEntry struct {
	Time         time.Time // Time is the forecasted moment (UTC).
	TemperatureK float64   // TemperatureK is the forecasted temperature in Kelvin.
	Description  string    // Description is a short text summary.
}

// Forecast is the short-term forecast for a city.
type Forecast struct {
	City    string
	Entries []ForecastEntry
}
