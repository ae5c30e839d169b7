package units

import "fmt"

// Preference is the user's choice of display units for the current session.
// Both fields always hold one of their supported values.
type Preference struct {
	temperature TemperatureUnit
	windSpeed   SpeedUnit
}

// Snapshot is an immutable copy of a Preference taken for a single lookup.
type Snapshot struct {
	Temperature TemperatureUnit
	WindSpeed   SpeedUnit
}

// DefaultPreference returns the metric preference: Celsius and km/h.
func DefaultPreference() *Preference {
	return &Preference{temperature: Celsius, windSpeed: KilometersPerHour}
}

// NewPreference creates a preference from the given units, rejecting unsupported values.
func NewPreference(temperature TemperatureUnit, windSpeed SpeedUnit) (*Preference, error) {
	pref := DefaultPreference()
	if err := pref.SetTemperature(temperature); err != nil {
		return nil, err
	}
	if err := pref.SetWindSpeed(windSpeed); err != nil {
		return nil, err
	}

	return pref, nil
}

// SetTemperature changes the temperature unit. An unsupported unit leaves the preference unchanged.
func (p *Preference) SetTemperature(unit TemperatureUnit) error {
	if !unit.Valid() {
		return fmt.Errorf("%w: temperature %q", ErrUnknownUnit, unit)
	}
	p.temperature = unit

	return nil
}

// SetWindSpeed changes the wind speed unit. An unsupported unit leaves the preference unchanged.
func (p *Preference) SetWindSpeed(unit SpeedUnit) error {
	if !unit.Valid() {
		return fmt.Errorf("%w: wind speed %q", ErrUnknownUnit, unit)
	}
	p.windSpeed = unit

	return nil
}

// Temperature returns the current temperature unit.
func (p *Preference) Temperature() TemperatureUnit { return p.temperature }

// WindSpeed returns the current wind speed unit.
func (p *Preference) WindSpeed() SpeedUnit { return p.windSpeed }

// Snapshot returns a copy of the preference.
func (p *Preference) Snapshot() Snapshot {
	return Snapshot{Temperature: p.temperature, WindSpeed: p.windSpeed}
}

// ConvertTemperature converts a Kelvin reading into the snapshot's temperature unit.
func (s Snapshot) ConvertTemperature(kelvin float64) float64 {
	if s.Temperature == Fahrenheit {
		return KelvinToFahrenheit(kelvin)
	}

	return KelvinToCelsius(kelvin)
}

// ConvertWindSpeed converts a meters-per-second reading into the snapshot's wind speed unit.
func (s Snapshot) ConvertWindSpeed(metersPerSecond float64) float64 {
	if s.WindSpeed == MilesPerHour {
		return KmhToMph(metersPerSecond * msToKmh)
	}

	return MetersPerSecondToKmh(metersPerSecond)
}
