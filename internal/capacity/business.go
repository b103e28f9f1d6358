package capacity

import (
	"math"
	"time"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
)

// BusinessCapacityForWindow computes the informational capacity of a
// business contact over an arbitrary window. It mirrors the member
// working-day logic but never feeds member status or warnings: business
// allocations are tracked, not enforced.
//
// Each assignment's lump-sum days are prorated into the window by
// working-day proportion over the assignment's resolved range: the linked
// phase's range when PhaseID is set, else the declared quarter.
func BusinessCapacityForWindow(
	contact *domain.BusinessContact,
	windowStart, windowEnd time.Time,
	assignments []domain.BusinessAssignment,
	timeOff []domain.BusinessTimeOff,
	holidays []domain.PublicHoliday,
	projects []domain.Project,
) domain.BusinessCellData {
	var cell domain.BusinessCellData
	if contact == nil || windowStart.After(windowEnd) {
		return cell
	}

	windowDays := calendar.CountWorkingDays(windowStart, windowEnd, holidays)
	if windowDays == 0 {
		cell.IsPublicHoliday = true
		return cell
	}

	offDays := 0
	for _, to := range timeOff {
		if to.ContactID != contact.ID {
			continue
		}
		start, okS := calendar.ParseDate(to.StartDate)
		end, okE := calendar.ParseDate(to.EndDate)
		if !okS || !okE {
			continue
		}
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		offDays += calendar.CountWorkingDays(start, end, holidays)
	}
	if offDays >= windowDays {
		cell.IsTimeOff = true
	}
	cell.AvailableDays = math.Max(0, float64(windowDays-offDays))

	for _, a := range assignments {
		if a.ContactID != contact.ID {
			continue
		}
		rangeStart, rangeEnd, ok := resolveAssignmentRange(a, projects)
		if !ok {
			continue
		}
		cell.AllocatedDays += calendar.ProrateToWindow(a.Days, rangeStart, rangeEnd, windowStart, windowEnd, holidays)
	}

	if cell.AvailableDays > 0 {
		cell.UsedPercent = int(math.Round(cell.AllocatedDays / cell.AvailableDays * 100))
	}
	return cell
}

// resolveAssignmentRange returns the date range a business assignment's days
// are spread over.
func resolveAssignmentRange(a domain.BusinessAssignment, projects []domain.Project) (time.Time, time.Time, bool) {
	if a.PhaseID != "" {
		for pi := range projects {
			for phi := range projects[pi].Phases {
				phase := &projects[pi].Phases[phi]
				if phase.ID != a.PhaseID {
					continue
				}
				return phaseRange(phase)
			}
		}
		return time.Time{}, time.Time{}, false
	}
	q := calendar.ParseQuarter(a.Quarter)
	if q == nil {
		return time.Time{}, time.Time{}, false
	}
	return q.Start, q.End, true
}

// phaseRange resolves a phase's effective date range: explicit dates when
// both parse, else the span of its start/end quarters.
func phaseRange(phase *domain.Phase) (time.Time, time.Time, bool) {
	if phase.HasExplicitDates() {
		start, okS := calendar.ParseDate(phase.StartDate)
		end, okE := calendar.ParseDate(phase.EndDate)
		if okS && okE {
			return start, end, true
		}
	}
	startQ := calendar.ParseQuarter(phase.StartQuarter)
	endQ := calendar.ParseQuarter(phase.EndQuarter)
	if startQ == nil || endQ == nil {
		return time.Time{}, time.Time{}, false
	}
	return startQ.Start, endQ.End, true
}
