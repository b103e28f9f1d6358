package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuarter_CanonicalForm(t *testing.T) {
	q := ParseQuarter("Q1 2026")
	require.NotNil(t, q)
	assert.Equal(t, 1, q.Number)
	assert.Equal(t, 2026, q.Year)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), q.Start)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), q.End)
}

func TestParseQuarter_AlternateForm(t *testing.T) {
	q := ParseQuarter("2026-Q3")
	require.NotNil(t, q)
	assert.Equal(t, 3, q.Number)
	assert.Equal(t, 2026, q.Year)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), q.Start)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), q.End)
	assert.Equal(t, "Q3 2026", q.Label())
}

func TestParseQuarter_InvalidShapes(t *testing.T) {
	for _, label := range []string{"", "Q5 2026", "Q0 2026", "2026 Q1", "Q1-2026", "quarter one", "Q12026"} {
		assert.Nil(t, ParseQuarter(label), "label %q should not parse", label)
	}
}

func TestParseQuarter_EndIsLastDayOfMonth(t *testing.T) {
	// Q1 of a leap year still ends Mar 31; Q2 ends Jun 30.
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), ParseQuarter("Q1 2024").End)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), ParseQuarter("Q2 2024").End)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), ParseQuarter("Q4 2024").End)
}

func TestQuarterForDate(t *testing.T) {
	q := QuarterForDate(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Q1 2026", q.Label())
	q = QuarterForDate(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Q4 2026", q.Label())
}

func TestCompareQuarters(t *testing.T) {
	assert.Equal(t, -1, CompareQuarters("Q4 2025", "Q1 2026"))
	assert.Equal(t, 1, CompareQuarters("Q2 2026", "Q1 2026"))
	assert.Equal(t, 0, CompareQuarters("Q2 2026", "2026-Q2"))
	assert.Equal(t, -1, CompareQuarters("garbage", "Q1 2026"))
	assert.Equal(t, 0, CompareQuarters("", ""))
}

func TestNextPreviousQuarter(t *testing.T) {
	assert.Equal(t, "Q2 2026", NextQuarter("Q1 2026"))
	assert.Equal(t, "Q1 2027", NextQuarter("Q4 2026"))
	assert.Equal(t, "Q4 2025", PreviousQuarter("Q1 2026"))
	assert.Equal(t, "Q1 2026", PreviousQuarter("Q2 2026"))
	assert.Equal(t, "", NextQuarter("nope"))
	assert.Equal(t, "", PreviousQuarter(""))
}

func TestQuartersBetween(t *testing.T) {
	got := QuartersBetween("Q3 2025", "Q2 2026")
	assert.Equal(t, []string{"Q3 2025", "Q4 2025", "Q1 2026", "Q2 2026"}, got)

	assert.Equal(t, []string{"Q1 2026"}, QuartersBetween("Q1 2026", "Q1 2026"))
	assert.Nil(t, QuartersBetween("Q2 2026", "Q1 2026"), "reversed range yields nil")
	assert.Nil(t, QuartersBetween("bad", "Q1 2026"))
}

func TestIsQuarterInRange(t *testing.T) {
	assert.True(t, IsQuarterInRange("Q1 2026", "Q4 2025", "Q2 2026"))
	assert.True(t, IsQuarterInRange("Q4 2025", "Q4 2025", "Q2 2026"), "range is inclusive")
	assert.True(t, IsQuarterInRange("Q2 2026", "Q4 2025", "Q2 2026"), "range is inclusive")
	assert.False(t, IsQuarterInRange("Q3 2026", "Q4 2025", "Q2 2026"))
	assert.False(t, IsQuarterInRange("bad", "Q4 2025", "Q2 2026"))
}
