// Package forecast converts raw effort estimates into risk-buffered
// forecasts and rolls effort up the work item hierarchy.
package forecast

import (
	"math"

	"github.com/alexanderramin/capplan/internal/domain"
)

// ForecastDays inflates a raw estimate by the confidence buffer of the given
// level. The result is always rounded up to a whole day: capacity planning
// never under-forecasts effort. Non-positive input yields 0.
func ForecastDays(rawDays float64, level domain.ConfidenceLevel, settings domain.ConfidenceSettings) float64 {
	if rawDays <= 0 {
		return 0
	}
	buffer := settings.BufferPct(level) / 100
	return math.Ceil(rawDays * (1 + buffer))
}
