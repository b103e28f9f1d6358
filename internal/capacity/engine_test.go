package capacity

import (
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(v float64) *float64 { return &v }

// baseSnapshot returns a normalized snapshot with one member and default
// settings (5 BAU days, 5/15/25 buffers).
func baseSnapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Members: []domain.TeamMember{
			{ID: "m-1", Name: "Dana", Email: "dana@example.com", CountryID: "de", MaxConcurrentProjects: 3},
		},
		Settings: domain.DefaultSettings(),
	}
	snap.Normalize()
	return snap
}

func TestCalculate_BAUOnly(t *testing.T) {
	snap := baseSnapshot()
	result := Calculate("m-1", "Q1 2026", snap)

	assert.Equal(t, 64.0, result.TotalWorkdays)
	assert.Equal(t, 5.0, result.UsedDays)
	assert.Equal(t, 59.0, result.AvailableDays)
	assert.Equal(t, 8, result.UsedPercent, "round(5/64*100)")
	assert.Equal(t, domain.StatusNormal, result.Status)
	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, domain.BreakdownBAU, result.Breakdown[0].Type)
	assert.Equal(t, 5.0, result.Breakdown[0].Days)
}

func TestCalculate_UnknownMemberIsZeroedNormal(t *testing.T) {
	snap := baseSnapshot()
	result := Calculate("nobody", "Q1 2026", snap)
	assert.Zero(t, result.TotalWorkdays)
	assert.Zero(t, result.UsedDays)
	assert.Zero(t, result.UsedPercent)
	assert.Equal(t, domain.StatusNormal, result.Status)
	assert.Empty(t, result.Breakdown)
}

func TestCalculate_BadQuarterIsZeroedNormal(t *testing.T) {
	snap := baseSnapshot()
	result := Calculate("m-1", "First Quarter", snap)
	assert.Equal(t, domain.ZeroCapacityResult("m-1", "First Quarter"), result)
}

func TestCalculate_CountryHolidaysReduceTotal(t *testing.T) {
	snap := baseSnapshot()
	snap.Holidays = []domain.PublicHoliday{
		{Date: "2026-01-01", CountryID: "de"},
		{Date: "2026-01-06", CountryID: "de"},
		{Date: "2026-01-06", CountryID: "fr"}, // other country, ignored
	}
	result := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 62.0, result.TotalWorkdays)
}

func TestCalculate_TimeOffClampedToQuarter(t *testing.T) {
	snap := baseSnapshot()
	snap.TimeOff = []domain.TimeOff{
		// Mar 25 – Apr 7 spans the quarter boundary; only the five Q1
		// working days count.
		{ID: "t-1", MemberID: "m-1", StartDate: "2026-03-25", EndDate: "2026-04-07"},
	}
	result := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 10.0, result.UsedDays, "5 BAU + 5 time off")

	require.Len(t, result.Breakdown, 2)
	assert.Equal(t, domain.BreakdownTimeOff, result.Breakdown[1].Type)
	assert.Equal(t, 5.0, result.Breakdown[1].Days)
}

func TestCalculate_AssignmentForecastedAtPhaseConfidence(t *testing.T) {
	snap := baseSnapshot()
	snap.Projects = []domain.Project{{
		ID: "p-1", Name: "Atlas", Status: domain.ProjectActive,
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1", Name: "Build",
			StartQuarter: "Q1 2026", EndQuarter: "Q2 2026",
			ConfidenceLevel: domain.ConfidenceMedium,
		}},
	}}
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 10},
	}

	result := Calculate("m-1", "Q1 2026", snap)
	// ceil(10 * 1.15) = 12, plus 5 BAU.
	assert.Equal(t, 17.0, result.UsedDays)

	require.Len(t, result.Breakdown, 2)
	entry := result.Breakdown[1]
	assert.Equal(t, domain.BreakdownProject, entry.Type)
	assert.Equal(t, 12.0, entry.Days)
	assert.Equal(t, "Atlas", entry.ProjectName)
	assert.Equal(t, "Build", entry.PhaseName)
}

func TestCalculate_OneEntryPerPhaseNotPerAssignment(t *testing.T) {
	snap := baseSnapshot()
	snap.Projects = []domain.Project{{
		ID: "p-1", Name: "Atlas", Status: domain.ProjectActive,
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1", Name: "Build",
			StartQuarter: "Q1 2026", EndQuarter: "Q1 2026",
		}},
	}}
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 3},
		{ID: "a-2", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 5},
	}

	result := Calculate("m-1", "Q1 2026", snap)
	require.Len(t, result.Breakdown, 2, "bau + one aggregated project entry")
	// Each assignment forecast separately: ceil(3*1.15)+ceil(5*1.15) = 4+6.
	assert.Equal(t, 10.0, result.Breakdown[1].Days)
}

func TestCalculate_CompletedProjectIgnored(t *testing.T) {
	snap := baseSnapshot()
	snap.Projects = []domain.Project{{
		ID: "p-1", Name: "Atlas", Status: domain.ProjectCompleted,
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1", StartQuarter: "Q1 2026", EndQuarter: "Q1 2026",
		}},
	}}
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 10},
	}
	result := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 5.0, result.UsedDays, "only BAU remains")
}

func TestCalculate_PhaseExplicitDatesWin(t *testing.T) {
	snap := baseSnapshot()
	snap.Projects = []domain.Project{{
		ID: "p-1", Name: "Atlas", Status: domain.ProjectActive,
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1", Name: "Build",
			// Quarter labels say Q1, explicit dates say Q3: dates win.
			StartQuarter: "Q1 2026", EndQuarter: "Q1 2026",
			StartDate: "2026-07-01", EndDate: "2026-08-15",
		}},
	}}
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 10},
		{ID: "a-2", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q3 2026", Days: 10},
	}

	q1 := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 5.0, q1.UsedDays, "phase does not overlap Q1")

	q3 := Calculate("m-1", "Q3 2026", snap)
	assert.Equal(t, 17.0, q3.UsedDays)
}

func TestCalculate_JiraItemsPerItemEntries(t *testing.T) {
	snap := baseSnapshot()
	snap.JiraItems = []domain.JiraItem{
		{JiraKey: "CAP-1", Summary: "Build importer", Type: "story", StatusCategory: domain.CategoryTodo,
			StoryPoints: pts(3), AssigneeEmail: "DANA@example.com", SprintName: "Sprint 2"},
		{JiraKey: "CAP-2", Summary: "Wire exporter", Type: "story", StatusCategory: domain.CategoryInProgress,
			StoryPoints: pts(5), AssigneeEmail: "dana@example.com", SprintName: "Sprint 3"},
	}

	result := Calculate("m-1", "Q1 2026", snap)
	// Sprints 2 and 3 of 2026 fall in Q1. ceil(3*1.15)+ceil(5*1.15) = 4+6.
	assert.Equal(t, 15.0, result.UsedDays)

	require.Len(t, result.Breakdown, 3, "bau + one entry per jira item")
	assert.Equal(t, domain.BreakdownJira, result.Breakdown[1].Type)
	assert.Equal(t, "CAP-1", result.Breakdown[1].JiraKey)
	assert.Equal(t, "Build importer", result.Breakdown[1].Summary)
	assert.Equal(t, "CAP-2", result.Breakdown[2].JiraKey)
}

func TestCalculate_JiraItemFilters(t *testing.T) {
	snap := baseSnapshot()
	snap.JiraItems = []domain.JiraItem{
		// Done: skipped.
		{JiraKey: "CAP-1", StatusCategory: domain.CategoryDone, StoryPoints: pts(3),
			AssigneeEmail: "dana@example.com", SprintName: "Sprint 2"},
		// No story points: skipped.
		{JiraKey: "CAP-2", StatusCategory: domain.CategoryTodo,
			AssigneeEmail: "dana@example.com", SprintName: "Sprint 2"},
		// Someone else's item: skipped.
		{JiraKey: "CAP-3", StatusCategory: domain.CategoryTodo, StoryPoints: pts(3),
			AssigneeEmail: "max@example.com", SprintName: "Sprint 2"},
		// Sprint resolves to Q2, not Q1: skipped.
		{JiraKey: "CAP-4", StatusCategory: domain.CategoryTodo, StoryPoints: pts(3),
			AssigneeEmail: "dana@example.com", SprintName: "Sprint 9"},
		// No sprint at all: skipped.
		{JiraKey: "CAP-5", StatusCategory: domain.CategoryTodo, StoryPoints: pts(3),
			AssigneeEmail: "dana@example.com"},
	}

	result := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 5.0, result.UsedDays, "every item filtered out")
}

func TestCalculate_MemberWithoutEmailSkipsJira(t *testing.T) {
	snap := baseSnapshot()
	snap.Members[0].Email = ""
	snap.JiraItems = []domain.JiraItem{
		{JiraKey: "CAP-1", StatusCategory: domain.CategoryTodo, StoryPoints: pts(3),
			AssigneeEmail: "dana@example.com", SprintName: "Sprint 2"},
	}
	result := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 5.0, result.UsedDays)
}

func TestCalculate_JiraSyncedAssignmentPreventsDoubleCount(t *testing.T) {
	snap := baseSnapshot()
	snap.Projects = []domain.Project{{
		ID: "p-1", Name: "Atlas", Status: domain.ProjectActive,
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1", Name: "Build",
			StartQuarter: "Q1 2026", EndQuarter: "Q1 2026",
		}},
	}}
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1",
			Quarter: "Q1 2026", Days: 8, JiraSynced: true},
	}
	snap.JiraItems = []domain.JiraItem{
		{JiraKey: "CAP-1", StatusCategory: domain.CategoryTodo, StoryPoints: pts(8),
			AssigneeEmail: "dana@example.com", SprintName: "Sprint 2",
			MappedProjectID: "p-1", MappedPhaseID: "ph-1"},
		// Mapped to a different pair: still counted.
		{JiraKey: "CAP-2", StatusCategory: domain.CategoryTodo, StoryPoints: pts(2),
			AssigneeEmail: "dana@example.com", SprintName: "Sprint 2",
			MappedProjectID: "p-2", MappedPhaseID: "ph-9"},
	}

	result := Calculate("m-1", "Q1 2026", snap)
	// 5 BAU + ceil(8*1.15)=10 assignment + ceil(2*1.15)=3 for CAP-2 only.
	assert.Equal(t, 18.0, result.UsedDays)
	for _, b := range result.Breakdown {
		assert.NotEqual(t, "CAP-1", b.JiraKey, "synced item must not appear")
	}
}

func TestCalculate_StatusBoundaries(t *testing.T) {
	snap := baseSnapshot()

	// Exactly 90% used: normal.
	snap.Settings.BAUReserveDays = 57.6 // 57.6/64 = 90%
	assert.Equal(t, domain.StatusNormal, Calculate("m-1", "Q1 2026", snap).Status)

	// 91%: warning.
	snap.Settings.BAUReserveDays = 58.24
	result := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 91, result.UsedPercent)
	assert.Equal(t, domain.StatusWarning, result.Status)

	// Just over the total: overallocated, raw available negative.
	snap.Settings.BAUReserveDays = 64.01
	result = Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, domain.StatusOverallocated, result.Status)
	assert.Less(t, result.AvailableDaysRaw, 0.0)
	assert.Zero(t, result.AvailableDays)
}

func TestCalculate_NestedAssignmentsViaNormalize(t *testing.T) {
	snap := baseSnapshot()
	snap.Projects = []domain.Project{{
		ID: "p-1", Name: "Atlas", Status: domain.ProjectActive,
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1", Name: "Build",
			StartQuarter: "Q1 2026", EndQuarter: "Q1 2026",
			Assignments: []domain.Assignment{
				{ID: "a-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 10},
			},
		}},
	}}
	snap.Normalize()

	result := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 17.0, result.UsedDays, "nested assignment folded into flat list")
}

func TestCalculate_FlatListWinsOverNested(t *testing.T) {
	snap := baseSnapshot()
	snap.Projects = []domain.Project{{
		ID: "p-1", Name: "Atlas", Status: domain.ProjectActive,
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1", Name: "Build",
			StartQuarter: "Q1 2026", EndQuarter: "Q1 2026",
			Assignments: []domain.Assignment{
				// Stale nested copy; must be ignored.
				{ID: "a-old", MemberID: "m-1", Quarter: "Q1 2026", Days: 99},
			},
		}},
	}}
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 10},
	}
	snap.Normalize()

	result := Calculate("m-1", "Q1 2026", snap)
	assert.Equal(t, 17.0, result.UsedDays)
}
