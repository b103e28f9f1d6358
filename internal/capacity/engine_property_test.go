package capacity

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestCalculate_Invariants property-tests the engine over randomized
// snapshots: breakdown sums to used days, available days are clamped at
// zero, the percent/status classification is internally consistent, and
// breakdown tags stay within the closed enum.
func TestCalculate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	quarters := []string{"Q4 2025", "Q1 2026", "Q2 2026", "Q3 2026"}
	levels := []domain.ConfidenceLevel{"", domain.ConfidenceHigh, domain.ConfidenceMedium, domain.ConfidenceLow}

	for trial := 0; trial < 150; trial++ {
		snap := &domain.Snapshot{Settings: domain.DefaultSettings()}
		snap.Settings.BAUReserveDays = float64(rng.Intn(10))

		numMembers := rng.Intn(4) + 1
		for i := 0; i < numMembers; i++ {
			snap.Members = append(snap.Members, domain.TeamMember{
				ID:    fmt.Sprintf("m-%d", i),
				Name:  fmt.Sprintf("Member %d", i),
				Email: fmt.Sprintf("member%d@example.com", i),
			})
		}

		numProjects := rng.Intn(3) + 1
		for p := 0; p < numProjects; p++ {
			projectID := fmt.Sprintf("p-%d", p)
			phase := domain.Phase{
				ID:              fmt.Sprintf("ph-%d", p),
				ProjectID:       projectID,
				Name:            "Phase",
				StartQuarter:    quarters[rng.Intn(len(quarters))],
				EndQuarter:      "Q3 2026",
				ConfidenceLevel: levels[rng.Intn(len(levels))],
			}
			snap.Projects = append(snap.Projects, domain.Project{
				ID: projectID, Name: fmt.Sprintf("Project %d", p),
				Status: domain.ProjectActive,
				Phases: []domain.Phase{phase},
			})

			numAssignments := rng.Intn(4)
			for a := 0; a < numAssignments; a++ {
				snap.Assignments = append(snap.Assignments, domain.Assignment{
					ID:         fmt.Sprintf("a-%d-%d", p, a),
					ProjectID:  projectID,
					PhaseID:    phase.ID,
					MemberID:   fmt.Sprintf("m-%d", rng.Intn(numMembers)),
					Quarter:    quarters[rng.Intn(len(quarters))],
					Days:       float64(rng.Intn(40)) / 2, // 0–19.5 in half days
					JiraSynced: rng.Intn(4) == 0,
				})
			}
		}

		numItems := rng.Intn(5)
		for j := 0; j < numItems; j++ {
			points := float64(rng.Intn(16))
			snap.JiraItems = append(snap.JiraItems, domain.JiraItem{
				JiraKey:        fmt.Sprintf("CAP-%d", j),
				StatusCategory: []domain.StatusCategory{domain.CategoryTodo, domain.CategoryInProgress, domain.CategoryDone}[rng.Intn(3)],
				StoryPoints:    &points,
				AssigneeEmail:  fmt.Sprintf("member%d@example.com", rng.Intn(numMembers)),
				SprintName:     fmt.Sprintf("Sprint %d", rng.Intn(26)+1),
			})
		}
		snap.Normalize()

		memberID := fmt.Sprintf("m-%d", rng.Intn(numMembers))
		quarter := quarters[rng.Intn(len(quarters))]
		result := Calculate(memberID, quarter, snap)

		// Invariant 1: used days equal the breakdown sum.
		sum := 0.0
		for _, b := range result.Breakdown {
			sum += b.Days
		}
		assert.InDelta(t, result.UsedDays, sum, 1e-9, "trial %d: breakdown must sum to used days", trial)

		// Invariant 2: available days are clamped, raw is not.
		assert.GreaterOrEqual(t, result.AvailableDays, 0.0, "trial %d", trial)
		assert.InDelta(t, result.TotalWorkdays-result.UsedDays, result.AvailableDaysRaw, 1e-9, "trial %d", trial)

		// Invariant 3: status matches the classification rules.
		switch {
		case result.UsedDays > result.TotalWorkdays:
			assert.Equal(t, domain.StatusOverallocated, result.Status, "trial %d", trial)
		case result.UsedPercent > 90:
			assert.Equal(t, domain.StatusWarning, result.Status, "trial %d", trial)
		default:
			assert.Equal(t, domain.StatusNormal, result.Status, "trial %d", trial)
		}

		// Invariant 4: breakdown tags come from the closed enum, and no
		// entry carries negative days.
		for _, b := range result.Breakdown {
			assert.Contains(t, []domain.BreakdownType{
				domain.BreakdownBAU, domain.BreakdownTimeOff, domain.BreakdownProject, domain.BreakdownJira,
			}, b.Type, "trial %d", trial)
			assert.GreaterOrEqual(t, b.Days, 0.0, "trial %d", trial)
		}
	}
}
