package capacity

import (
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// teamSnapshot builds a three-member team with two projects for warning
// scenarios.
func teamSnapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Members: []domain.TeamMember{
			{ID: "m-1", Name: "Dana", Email: "dana@example.com", SkillIDs: []string{"sk-go"}, MaxConcurrentProjects: 1},
			{ID: "m-2", Name: "Max", Email: "max@example.com", SkillIDs: []string{"sk-go", "sk-sql"}, MaxConcurrentProjects: 3},
			{ID: "m-3", Name: "Ada", MaxConcurrentProjects: 3},
		},
		Skills: []domain.Skill{
			{ID: "sk-go", Name: "Go"},
			{ID: "sk-sql", Name: "SQL"},
		},
		Projects: []domain.Project{
			{
				ID: "p-1", Name: "Atlas", Status: domain.ProjectActive,
				Phases: []domain.Phase{{
					ID: "ph-1", ProjectID: "p-1", Name: "Build",
					StartQuarter: "Q1 2026", EndQuarter: "Q2 2026",
					RequiredSkillIDs: []string{"sk-go", "sk-sql"},
				}},
			},
			{
				ID: "p-2", Name: "Borealis", Status: domain.ProjectActive,
				Phases: []domain.Phase{{
					ID: "ph-2", ProjectID: "p-2", Name: "Discovery",
					StartQuarter: "Q1 2026", EndQuarter: "Q1 2026",
				}},
			},
		},
		Settings: domain.DefaultSettings(),
	}
	snap.Normalize()
	return snap
}

func TestMemberProjectCount(t *testing.T) {
	snap := teamSnapshot()
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 5},
		{ID: "a-2", ProjectID: "p-2", PhaseID: "ph-2", MemberID: "m-1", Quarter: "Q1 2026", Days: 5},
		{ID: "a-3", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q2 2026", Days: 5},
	}
	assert.Equal(t, 2, MemberProjectCount("m-1", "Q1 2026", snap))
	assert.Equal(t, 1, MemberProjectCount("m-1", "Q2 2026", snap))
	assert.Equal(t, 0, MemberProjectCount("m-2", "Q1 2026", snap))
}

func TestMemberProjectCount_CompletedProjectExcluded(t *testing.T) {
	snap := teamSnapshot()
	snap.Projects[1].Status = domain.ProjectCompleted
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 5},
		{ID: "a-2", ProjectID: "p-2", PhaseID: "ph-2", MemberID: "m-1", Quarter: "Q1 2026", Days: 5},
	}
	assert.Equal(t, 1, MemberProjectCount("m-1", "Q1 2026", snap))
}

func TestCheckSkillMatch(t *testing.T) {
	snap := teamSnapshot()

	match := CheckSkillMatch("m-2", []string{"sk-go", "sk-sql"}, snap)
	assert.True(t, match.Matched)
	assert.Empty(t, match.MissingSkillNames)

	match = CheckSkillMatch("m-1", []string{"sk-go", "sk-sql"}, snap)
	assert.False(t, match.Matched)
	assert.Equal(t, []string{"SQL"}, match.MissingSkillNames)
}

func TestCheckSkillMatch_UnknownMemberMissesEverything(t *testing.T) {
	snap := teamSnapshot()
	match := CheckSkillMatch("ghost", []string{"sk-go", "sk-sql"}, snap)
	assert.False(t, match.Matched)
	assert.Equal(t, []string{"Go", "SQL"}, match.MissingSkillNames)
}

func TestCollectWarnings_Overallocation(t *testing.T) {
	snap := teamSnapshot()
	// 60 raw days at medium forecast to 69, over any quarter's workdays.
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 60},
	}
	w := CollectWarnings(snap, "Q1 2026")

	require.Len(t, w.Overallocated, 1)
	assert.Equal(t, "m-1", w.Overallocated[0].MemberID)
	assert.Equal(t, "Q1 2026", w.Overallocated[0].Quarter)
	assert.Empty(t, w.HighUtilization)
}

func TestCollectWarnings_TooManyProjects(t *testing.T) {
	snap := teamSnapshot()
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 2},
		{ID: "a-2", ProjectID: "p-2", PhaseID: "ph-2", MemberID: "m-1", Quarter: "Q1 2026", Days: 2},
	}
	w := CollectWarnings(snap, "Q1 2026")

	require.Len(t, w.TooManyProjects, 1, "m-1 has max 1 concurrent project")
	assert.Equal(t, "m-1", w.TooManyProjects[0].MemberID)
	assert.Equal(t, 2, w.TooManyProjects[0].Detail)
}

func TestCollectWarnings_SkillMismatch(t *testing.T) {
	snap := teamSnapshot()
	snap.Assignments = []domain.Assignment{
		// m-1 lacks sk-sql required by ph-1; m-2 covers everything.
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 2},
		{ID: "a-2", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-2", Quarter: "Q1 2026", Days: 2},
	}
	w := CollectWarnings(snap, "Q1 2026")

	require.Len(t, w.SkillMismatch, 1)
	sm := w.SkillMismatch[0]
	assert.Equal(t, "m-1", sm.MemberID)
	assert.Equal(t, "Atlas", sm.ProjectName)
	assert.Equal(t, "Build", sm.PhaseName)
	assert.Equal(t, []string{"SQL"}, sm.MissingSkills)
}

func TestCollectWarnings_BadQuarterIsEmpty(t *testing.T) {
	snap := teamSnapshot()
	w := CollectWarnings(snap, "whenever")
	assert.Empty(t, w.Overallocated)
	assert.Empty(t, w.HighUtilization)
	assert.Empty(t, w.TooManyProjects)
	assert.Empty(t, w.SkillMismatch)
}

func TestTeamUtilizationSummary(t *testing.T) {
	snap := teamSnapshot()
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-1", PhaseID: "ph-1", MemberID: "m-1", Quarter: "Q1 2026", Days: 60},
	}
	summary := TeamUtilizationSummary("Q1 2026", snap)

	assert.Equal(t, 3, summary.TotalMembers)
	assert.Equal(t, 1, summary.Overallocated)
	assert.Equal(t, 2, summary.Normal)
	assert.Zero(t, summary.HighUtilization)
	// m-1: (5+69)/64 = 116%; m-2 and m-3: 8% each => avg round(132/3) = 44.
	assert.Equal(t, 44, summary.AverageUtilization)
}

func TestTeamUtilizationSummary_EmptyTeam(t *testing.T) {
	snap := &domain.Snapshot{Settings: domain.DefaultSettings()}
	summary := TeamUtilizationSummary("Q1 2026", snap)
	assert.Zero(t, summary.TotalMembers)
	assert.Zero(t, summary.AverageUtilization)
}
