// Package capacity computes per-member, per-quarter capacity from a
// planning snapshot: total working days minus BAU reserve, time off, manual
// phase assignments and Jira-linked work items. Every function is a pure
// computation over its arguments; results are recomputed on every call.
package capacity

import (
	"math"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/forecast"
	"github.com/alexanderramin/capplan/internal/sprint"
)

// pairKey identifies a (project, phase) pair for jira-synced dedup tracking.
type pairKey struct {
	projectID string
	phaseID   string
}

// Calculate computes the capacity of one member for one quarter. Unknown
// members and unparseable quarters return a zeroed result with status
// normal: the engine backs live rendering and never fails.
//
// The snapshot must be normalized (flat assignment list); see
// domain.Snapshot.Normalize.
func Calculate(memberID, quarter string, snap *domain.Snapshot) domain.CapacityResult {
	member := snap.MemberByID(memberID)
	q := calendar.ParseQuarter(quarter)
	if member == nil || q == nil {
		return domain.ZeroCapacityResult(memberID, quarter)
	}

	holidays := snap.HolidaysForCountry(member.CountryID)
	totalWorkdays := float64(calendar.CountWorkingDaysInQuarter(quarter, holidays))

	result := domain.CapacityResult{
		MemberID:      memberID,
		Quarter:       quarter,
		TotalWorkdays: totalWorkdays,
	}

	// BAU reserve is charged every quarter regardless of assignments.
	bau := snap.Settings.BAUReserveDays
	result.UsedDays += bau
	result.Breakdown = append(result.Breakdown, domain.CapacityBreakdownItem{
		Type: domain.BreakdownBAU,
		Days: bau,
	})

	// Time off, clamped to the quarter.
	timeOffDays := 0.0
	for _, to := range snap.TimeOffForMember(memberID) {
		timeOffDays += float64(calendar.CountWorkingDaysClamped(to.StartDate, to.EndDate, quarter, holidays))
	}
	if timeOffDays > 0 {
		result.UsedDays += timeOffDays
		result.Breakdown = append(result.Breakdown, domain.CapacityBreakdownItem{
			Type: domain.BreakdownTimeOff,
			Days: timeOffDays,
		})
	}

	// Manual project/phase assignments: one breakdown entry per phase.
	// Pairs with at least one jira-synced assignment are recorded so the
	// Jira pass below does not double-count the same work.
	jiraSyncedPairs := make(map[pairKey]bool)
	for pi := range snap.Projects {
		project := &snap.Projects[pi]
		if project.Status == domain.ProjectCompleted {
			continue
		}
		for phi := range project.Phases {
			phase := &project.Phases[phi]
			if !phaseOverlapsQuarter(phase, quarter) {
				continue
			}

			level := domain.CoalesceLevel(phase.ConfidenceLevel, snap.Settings.Confidence.DefaultLevel)
			phaseDays := 0.0
			found := false
			for _, a := range snap.Assignments {
				if a.MemberID != memberID || a.ProjectID != project.ID || a.PhaseID != phase.ID || a.Quarter != quarter {
					continue
				}
				found = true
				phaseDays += forecast.ForecastDays(a.Days, level, snap.Settings.Confidence)
				if a.JiraSynced {
					jiraSyncedPairs[pairKey{project.ID, phase.ID}] = true
				}
			}
			if found {
				result.UsedDays += phaseDays
				result.Breakdown = append(result.Breakdown, domain.CapacityBreakdownItem{
					Type:        domain.BreakdownProject,
					Days:        phaseDays,
					ProjectID:   project.ID,
					ProjectName: project.Name,
					PhaseID:     phase.ID,
					PhaseName:   phase.Name,
				})
			}
		}
	}

	// Jira-linked work items: one entry per item for traceability.
	if member.HasEmail() && len(snap.JiraItems) > 0 {
		sprints := sprint.GenerateSprintsForYear(q.Year, snap.Settings.Sprint)
		for _, item := range snap.JiraItems {
			if jiraSyncedPairs[pairKey{item.MappedProjectID, item.MappedPhaseID}] {
				continue // already represented by a synced assignment
			}
			if item.IsDone() {
				continue
			}
			if item.StoryPoints == nil || *item.StoryPoints <= 0 {
				continue
			}
			if !domain.EmailsEqual(item.AssigneeEmail, member.Email) {
				continue
			}
			if sprint.MapSprintNameToQuarter(item.SprintName, sprints) != quarter {
				continue
			}

			level := domain.CoalesceLevel(item.ConfidenceLevel, snap.Settings.JiraConfidence.DefaultLevel)
			days := forecast.ForecastDays(*item.StoryPoints, level, snap.Settings.JiraConfidence)
			result.UsedDays += days
			result.Breakdown = append(result.Breakdown, domain.CapacityBreakdownItem{
				Type:    domain.BreakdownJira,
				Days:    days,
				JiraKey: item.JiraKey,
				Summary: item.Summary,
			})
		}
	}

	result.AvailableDaysRaw = totalWorkdays - result.UsedDays
	result.AvailableDays = math.Max(0, result.AvailableDaysRaw)
	if totalWorkdays > 0 {
		result.UsedPercent = int(math.Round(result.UsedDays / totalWorkdays * 100))
	}
	result.Status = classify(result.UsedDays, totalWorkdays, result.UsedPercent)
	return result
}

// classify maps used effort to the status enum. Exactly 90% is still normal.
func classify(usedDays, totalWorkdays float64, usedPercent int) domain.CapacityStatus {
	switch {
	case usedDays > totalWorkdays:
		return domain.StatusOverallocated
	case usedPercent > 90:
		return domain.StatusWarning
	default:
		return domain.StatusNormal
	}
}

// phaseOverlapsQuarter reports whether the phase's effective date range
// touches the given quarter. Explicit dates take precedence over quarter
// labels when both parse.
func phaseOverlapsQuarter(phase *domain.Phase, quarter string) bool {
	q := calendar.ParseQuarter(quarter)
	if q == nil {
		return false
	}
	if phase.HasExplicitDates() {
		start, okS := calendar.ParseDate(phase.StartDate)
		end, okE := calendar.ParseDate(phase.EndDate)
		if okS && okE {
			return !start.After(q.End) && !end.Before(q.Start)
		}
	}
	return calendar.IsQuarterInRange(quarter, phase.StartQuarter, phase.EndQuarter)
}
