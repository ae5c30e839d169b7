package weather

import "github.com/UnknownOlympus/aether/internal/models"

// DefaultForecastDays is the number of daily readings shown for a forecast.
const DefaultForecastDays = 3

// DailyAtSameHour picks up to limit entries sharing the time of day of the first entry,
// which yields one reading per day from a 3-hourly forecast.
func DailyAtSameHour(entries []models.ForecastEntry, limit int) []models.ForecastEntry {
	if len(entries) == 0 || limit <= 0 {
		return nil
	}

	hour, minute, _ := entries[0].Time.Clock()
	daily := make([]models.ForecastEntry, 0, limit)
	for _, entry := range entries {
		h, m, _ := entry.Time.Clock()
		if h != hour || m != minute {
			continue
		}
		daily = append(daily, entry)
		if len(daily) == limit {
			break
		}
	}

	return daily
}
