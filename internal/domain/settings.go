package domain

// ConfidenceSettings maps each confidence level to a buffer percentage over
// the raw estimate (Medium=15 means forecast = raw × 1.15) and names the
// level applied when none is given.
type ConfidenceSettings struct {
	High         float64
	Medium       float64
	Low          float64
	DefaultLevel ConfidenceLevel
}

// BufferPct returns the buffer percentage for the given level, resolving an
// empty level through DefaultLevel and falling back to the package default.
func (c ConfidenceSettings) BufferPct(level ConfidenceLevel) float64 {
	if level == "" {
		level = c.DefaultLevel
	}
	if level == "" {
		level = DefaultConfidenceLevel
	}
	switch level {
	case ConfidenceHigh:
		return c.High
	case ConfidenceLow:
		return c.Low
	default:
		return c.Medium
	}
}

// DefaultConfidenceSettings returns the stock 5/15/25 buffer table.
func DefaultConfidenceSettings() ConfidenceSettings {
	return ConfidenceSettings{
		High:         5,
		Medium:       15,
		Low:          25,
		DefaultLevel: DefaultConfidenceLevel,
	}
}

// SprintSettings drives deterministic sprint generation.
type SprintSettings struct {
	SprintDurationWeeks int
	SprintsPerYear      int
	StartDate           string // ISO date; empty means first Monday of the year
	ByeWeeksAfter       []int  // sprint numbers followed by a one-week gap
}

// DefaultSprintSettings returns two-week sprints, 26 per year.
func DefaultSprintSettings() SprintSettings {
	return SprintSettings{
		SprintDurationWeeks: 2,
		SprintsPerYear:      26,
	}
}

// Settings is the planning-wide configuration snapshot.
type Settings struct {
	BAUReserveDays   float64
	DefaultCountryID string
	Confidence       ConfidenceSettings
	JiraConfidence   ConfidenceSettings
	Sprint           SprintSettings
}

// DefaultSettings returns the stock configuration: 5 BAU days per quarter,
// 5/15/25 confidence buffers for both manual and Jira estimates.
func DefaultSettings() Settings {
	return Settings{
		BAUReserveDays: 5,
		Confidence:     DefaultConfidenceSettings(),
		JiraConfidence: DefaultConfidenceSettings(),
		Sprint:         DefaultSprintSettings(),
	}
}
