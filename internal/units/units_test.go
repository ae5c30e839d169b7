package units_test

import (
	"testing"

	"github.com/UnknownOlympus/aether/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 26.85, units.KelvinToCelsius(300), 0.0001)
	assert.InDelta(t, 0.0, units.KelvinToCelsius(273.15), 0.0001)
	assert.InDelta(t, 80.33, units.KelvinToFahrenheit(300), 0.0001)
	assert.InDelta(t, 32.0, units.KelvinToFahrenheit(273.15), 0.0001)
	assert.InDelta(t, 36.0, units.MetersPerSecondToKmh(10), 0.0001)
	assert.InDelta(t, 62.14, units.KmhToMph(100), 0.0001)
	assert.InDelta(t, 6.21, units.KmhToMph(10), 0.0001)
}

func TestParseTemperatureUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    units.TemperatureUnit
		wantErr bool
	}{
		{input: "celsius", want: units.Celsius},
		{input: " C ", want: units.Celsius},
		{input: "°C", want: units.Celsius},
		{input: "Fahrenheit", want: units.Fahrenheit},
		{input: "imperial", want: units.Fahrenheit},
		{input: "kelvin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := units.ParseTemperatureUnit(tt.input)
		if tt.wantErr {
			require.ErrorIs(t, err, units.ErrUnknownUnit, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseSpeedUnit(t *testing.T) {
	t.Parallel()

	got, err := units.ParseSpeedUnit("KPH")
	require.NoError(t, err)
	assert.Equal(t, units.KilometersPerHour, got)

	got, err = units.ParseSpeedUnit("mph")
	require.NoError(t, err)
	assert.Equal(t, units.MilesPerHour, got)

	_, err = units.ParseSpeedUnit("knots")
	require.ErrorIs(t, err, units.ErrUnknownUnit)
}

func TestPreference(t *testing.T) {
	t.Parallel()

	t.Run("defaults to metric", func(t *testing.T) {
		t.Parallel()
		pref := units.DefaultPreference()

		assert.Equal(t, units.Celsius, pref.Temperature())
		assert.Equal(t, units.KilometersPerHour, pref.WindSpeed())
	})

	t.Run("rejects unsupported units and keeps previous value", func(t *testing.T) {
		t.Parallel()
		pref := units.DefaultPreference()

		require.ErrorIs(t, pref.SetTemperature("K"), units.ErrUnknownUnit)
		require.ErrorIs(t, pref.SetWindSpeed("knots"), units.ErrUnknownUnit)
		assert.Equal(t, units.Celsius, pref.Temperature())
		assert.Equal(t, units.KilometersPerHour, pref.WindSpeed())
	})

	t.Run("snapshot is detached from later changes", func(t *testing.T) {
		t.Parallel()
		pref, err := units.NewPreference(units.Fahrenheit, units.MilesPerHour)
		require.NoError(t, err)

		snap := pref.Snapshot()
		require.NoError(t, pref.SetTemperature(units.Celsius))

		assert.Equal(t, units.Fahrenheit, snap.Temperature)
		assert.Equal(t, units.MilesPerHour, snap.WindSpeed)
	})

	t.Run("new preference validates input", func(t *testing.T) {
		t.Parallel()
		pref, err := units.NewPreference(units.Celsius, "knots")

		require.ErrorIs(t, err, units.ErrUnknownUnit)
		assert.Nil(t, pref)
	})
}

func TestSnapshotConvert(t *testing.T) {
	t.Parallel()

	metric := units.Snapshot{Temperature: units.Celsius, WindSpeed: units.KilometersPerHour}
	imperial := units.Snapshot{Temperature: units.Fahrenheit, WindSpeed: units.MilesPerHour}

	assert.InDelta(t, 26.85, metric.ConvertTemperature(300), 0.0001)
	assert.InDelta(t, 80.33, imperial.ConvertTemperature(300), 0.0001)
	assert.InDelta(t, 18.0, metric.ConvertWindSpeed(5), 0.0001)
	assert.InDelta(t, 11.18, imperial.ConvertWindSpeed(5), 0.0001)
}
