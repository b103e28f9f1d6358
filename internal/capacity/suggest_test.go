package capacity

import (
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestAssignees_PrefersFreeSkilledMembers(t *testing.T) {
	snap := teamSnapshot()
	// m-1 is loaded up; m-2 is free and covers the skills.
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-2", PhaseID: "ph-2", MemberID: "m-1", Quarter: "Q1 2026", Days: 40},
	}
	suggestions := SuggestAssignees("p-1", "ph-1", "Q1 2026", snap)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "m-2", suggestions[0].MemberID, "free member with full skill match ranks first")
	assert.True(t, suggestions[0].SkillsMatched)
}

func TestSuggestAssignees_OverallocatedPenalized(t *testing.T) {
	snap := teamSnapshot()
	snap.Assignments = []domain.Assignment{
		{ID: "a-1", ProjectID: "p-2", PhaseID: "ph-2", MemberID: "m-2", Quarter: "Q1 2026", Days: 70},
	}
	suggestions := SuggestAssignees("p-2", "ph-2", "Q1 2026", snap)

	require.Len(t, suggestions, 3)
	assert.NotEqual(t, "m-2", suggestions[0].MemberID)
	var m2 Suggestion
	for _, s := range suggestions {
		if s.MemberID == "m-2" {
			m2 = s
		}
	}
	var codes []SuggestionReasonCode
	for _, r := range m2.Reasons {
		codes = append(codes, r.Code)
	}
	assert.Contains(t, codes, ReasonOverallocated)
	assert.Contains(t, codes, ReasonAlreadyAssigned)
}

func TestSuggestAssignees_NoSkillRequirementMatchesEveryone(t *testing.T) {
	snap := teamSnapshot()
	suggestions := SuggestAssignees("p-2", "ph-2", "Q1 2026", snap)
	for _, s := range suggestions {
		assert.True(t, s.SkillsMatched)
	}
}

func TestSortSuggestions_Deterministic(t *testing.T) {
	suggestions := []Suggestion{
		{MemberID: "m-b", Score: 10, AvailableDays: 5},
		{MemberID: "m-a", Score: 10, AvailableDays: 5},
		{MemberID: "m-c", Score: 10, AvailableDays: 9},
		{MemberID: "m-d", Score: 30},
	}
	SortSuggestions(suggestions)
	var ids []string
	for _, s := range suggestions {
		ids = append(ids, s.MemberID)
	}
	assert.Equal(t, []string{"m-d", "m-c", "m-a", "m-b"}, ids)
}
