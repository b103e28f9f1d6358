package forecast

import (
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestForecastDays_CeilingPolicy(t *testing.T) {
	settings := domain.DefaultConfidenceSettings()

	// 10 raw days at medium (15%) buffers to ceil(11.5) = 12.
	assert.Equal(t, 12.0, ForecastDays(10, domain.ConfidenceMedium, settings))
	// 3 raw days at medium: ceil(3.45) = 4, never 3.5.
	assert.Equal(t, 4.0, ForecastDays(3, domain.ConfidenceMedium, settings))
	assert.Equal(t, 4.0, ForecastDays(3, domain.ConfidenceLow, settings))
	assert.Equal(t, 4.0, ForecastDays(3, domain.ConfidenceHigh, settings))
}

func TestForecastDays_NeverBelowRaw(t *testing.T) {
	settings := domain.DefaultConfidenceSettings()
	for _, raw := range []float64{0.5, 1, 2.5, 7, 40} {
		for _, level := range []domain.ConfidenceLevel{domain.ConfidenceHigh, domain.ConfidenceMedium, domain.ConfidenceLow} {
			assert.GreaterOrEqual(t, ForecastDays(raw, level, settings), raw,
				"forecast must not under-estimate raw=%v level=%s", raw, level)
		}
	}
}

func TestForecastDays_MonotonicInBuffer(t *testing.T) {
	settings := domain.DefaultConfidenceSettings()
	for _, raw := range []float64{1, 5, 13, 27.5} {
		high := ForecastDays(raw, domain.ConfidenceHigh, settings)
		medium := ForecastDays(raw, domain.ConfidenceMedium, settings)
		low := ForecastDays(raw, domain.ConfidenceLow, settings)
		assert.LessOrEqual(t, high, medium)
		assert.LessOrEqual(t, medium, low)
	}
}

func TestForecastDays_EmptyLevelUsesDefault(t *testing.T) {
	settings := domain.DefaultConfidenceSettings()
	assert.Equal(t, ForecastDays(10, domain.ConfidenceMedium, settings), ForecastDays(10, "", settings))
}

func TestForecastDays_NonPositiveIsZero(t *testing.T) {
	settings := domain.DefaultConfidenceSettings()
	assert.Zero(t, ForecastDays(0, domain.ConfidenceLow, settings))
	assert.Zero(t, ForecastDays(-4, domain.ConfidenceLow, settings))
}
