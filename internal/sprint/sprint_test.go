package sprint

import (
	"testing"
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSprintsForYear_Deterministic(t *testing.T) {
	settings := domain.DefaultSprintSettings()
	a := GenerateSprintsForYear(2026, settings)
	b := GenerateSprintsForYear(2026, settings)
	assert.Equal(t, a, b)
}

func TestGenerateSprintsForYear_DefaultStartIsFirstMonday(t *testing.T) {
	sprints := GenerateSprintsForYear(2026, domain.DefaultSprintSettings())
	require.NotEmpty(t, sprints)
	// First Monday of 2026 is Jan 5.
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), sprints[0].StartDate)
	assert.Equal(t, 1, sprints[0].Number)
	assert.Equal(t, "Q1 2026", sprints[0].Quarter)
}

func TestGenerateSprintsForYear_SequentialNoGaps(t *testing.T) {
	sprints := GenerateSprintsForYear(2026, domain.SprintSettings{
		SprintDurationWeeks: 2,
		SprintsPerYear:      6,
	})
	require.Len(t, sprints, 6)
	for i := 1; i < len(sprints); i++ {
		assert.Equal(t, sprints[i-1].EndDate.AddDate(0, 0, 1), sprints[i].StartDate,
			"sprint %d must start the day after sprint %d ends", i+1, i)
	}
	// Two-week sprints span 14 calendar days inclusive.
	span := sprints[0].EndDate.Sub(sprints[0].StartDate).Hours()/24 + 1
	assert.Equal(t, 14.0, span)
}

func TestGenerateSprintsForYear_ByeWeekInsertsGap(t *testing.T) {
	sprints := GenerateSprintsForYear(2026, domain.SprintSettings{
		SprintDurationWeeks: 2,
		SprintsPerYear:      4,
		ByeWeeksAfter:       []int{2},
	})
	require.Len(t, sprints, 5, "four sprints plus one bye entry")

	bye := sprints[2]
	assert.True(t, bye.IsBye)
	assert.Equal(t, sprints[1].EndDate.AddDate(0, 0, 1), bye.StartDate)
	assert.Equal(t, bye.EndDate.Sub(bye.StartDate).Hours()/24+1, 7.0, "bye is one week")
	assert.Equal(t, bye.EndDate.AddDate(0, 0, 1), sprints[3].StartDate,
		"sprint 3 resumes after the bye week")
	assert.Equal(t, 3, sprints[3].Number)
}

func TestGenerateSprintsForYear_ConfiguredStartDate(t *testing.T) {
	sprints := GenerateSprintsForYear(2026, domain.SprintSettings{
		SprintDurationWeeks: 1,
		SprintsPerYear:      2,
		StartDate:           "2026-02-02",
	})
	require.Len(t, sprints, 2)
	assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), sprints[0].StartDate)
}

func TestSprintsForQuarter(t *testing.T) {
	sprints := GenerateSprintsForYear(2026, domain.DefaultSprintSettings())
	q2 := SprintsForQuarter("Q2 2026", sprints)
	require.NotEmpty(t, q2)
	for _, s := range q2 {
		assert.Equal(t, "Q2 2026", s.Quarter)
	}
}

func TestWorkingDaysInSprint(t *testing.T) {
	sprints := GenerateSprintsForYear(2026, domain.SprintSettings{
		SprintDurationWeeks: 2,
		SprintsPerYear:      1,
	})
	require.Len(t, sprints, 1)
	assert.Equal(t, 10, WorkingDaysInSprint(sprints[0], nil))

	holidays := []domain.PublicHoliday{{Date: "2026-01-06"}}
	assert.Equal(t, 9, WorkingDaysInSprint(sprints[0], holidays))
}

func TestWorkingDaysInSprint_ByeWeekIsZero(t *testing.T) {
	sprints := GenerateSprintsForYear(2026, domain.SprintSettings{
		SprintDurationWeeks: 1,
		SprintsPerYear:      1,
		ByeWeeksAfter:       []int{1},
	})
	require.Len(t, sprints, 2)
	assert.Equal(t, 0, WorkingDaysInSprint(sprints[1], nil))
}

func TestParseSprintReference(t *testing.T) {
	ref := ParseSprintReference("Sprint 14")
	require.NotNil(t, ref)
	assert.Equal(t, 14, ref.Number)
	assert.Nil(t, ref.Year)

	ref = ParseSprintReference("BOARD Sprint #7 (2026)")
	require.NotNil(t, ref)
	assert.Equal(t, 7, ref.Number)
	require.NotNil(t, ref.Year)
	assert.Equal(t, 2026, *ref.Year)

	assert.Nil(t, ParseSprintReference("Backlog"))
	assert.Nil(t, ParseSprintReference(""))
}

func TestMapSprintNameToQuarter(t *testing.T) {
	sprints := GenerateSprintsForYear(2026, domain.SprintSettings{
		SprintDurationWeeks: 2,
		SprintsPerYear:      8,
	})
	// Sprint 7 starts 2026-03-30, which is still Q1.
	q := MapSprintNameToQuarter("Team Alpha sprint 7", sprints)
	assert.Equal(t, sprints[6].Quarter, q)

	assert.Equal(t, "", MapSprintNameToQuarter("no match here", sprints))
}

func TestMapSprintNameToQuarter_FirstMatchWins(t *testing.T) {
	sprints := []Sprint{
		{Name: "Sprint 1", Quarter: "Q1 2026"},
		{Name: "Sprint 12", Quarter: "Q2 2026"},
	}
	// "Sprint 1" is a substring of "Sprint 12"; first configured sprint wins.
	assert.Equal(t, "Q1 2026", MapSprintNameToQuarter("Sprint 12", sprints))
}
