package capacity

import (
	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
)

// MemberProjectCount counts distinct non-completed projects on which the
// member holds at least one assignment in the given quarter.
func MemberProjectCount(memberID, quarter string, snap *domain.Snapshot) int {
	seen := make(map[string]bool)
	for pi := range snap.Projects {
		project := &snap.Projects[pi]
		if project.Status == domain.ProjectCompleted || seen[project.ID] {
			continue
		}
		for phi := range project.Phases {
			phase := &project.Phases[phi]
			if !phaseOverlapsQuarter(phase, quarter) {
				continue
			}
			for _, a := range snap.Assignments {
				if a.MemberID == memberID && a.ProjectID == project.ID && a.PhaseID == phase.ID && a.Quarter == quarter {
					seen[project.ID] = true
					break
				}
			}
			if seen[project.ID] {
				break
			}
		}
	}
	return len(seen)
}

// SkillMatch is the result of checking a member against required skills.
type SkillMatch struct {
	Matched           bool
	MissingSkillNames []string
}

// CheckSkillMatch reports whether the member covers all required skills.
// An unknown member reports every required skill as missing.
func CheckSkillMatch(memberID string, requiredSkillIDs []string, snap *domain.Snapshot) SkillMatch {
	member := snap.MemberByID(memberID)
	have := make(map[string]bool)
	if member != nil {
		for _, id := range member.SkillIDs {
			have[id] = true
		}
	}

	var missing []string
	for _, id := range requiredSkillIDs {
		if !have[id] {
			missing = append(missing, snap.SkillName(id))
		}
	}
	return SkillMatch{Matched: len(missing) == 0, MissingSkillNames: missing}
}

// MemberWarning flags one member's capacity problem in a quarter.
type MemberWarning struct {
	MemberID    string
	MemberName  string
	Quarter     string
	UsedPercent int
	UsedDays    float64
	Detail      int // project count for the too-many-projects warning
}

// SkillMismatchWarning flags an assignment whose member lacks a phase's
// required skills.
type SkillMismatchWarning struct {
	MemberID      string
	MemberName    string
	ProjectID     string
	ProjectName   string
	PhaseID       string
	PhaseName     string
	MissingSkills []string
}

// Warnings aggregates every team-level capacity flag for one quarter.
type Warnings struct {
	Overallocated   []MemberWarning
	HighUtilization []MemberWarning
	TooManyProjects []MemberWarning
	SkillMismatch   []SkillMismatchWarning
}

// CollectWarnings classifies every member for the given quarter and scans
// all phases with skill requirements. The quarter is an explicit parameter
// so callers (and tests) control what "current" means; derive it from
// calendar.QuarterForDate when wall-clock behavior is wanted.
func CollectWarnings(snap *domain.Snapshot, asOfQuarter string) Warnings {
	var w Warnings
	if calendar.ParseQuarter(asOfQuarter) == nil {
		return w
	}

	for i := range snap.Members {
		m := &snap.Members[i]
		result := Calculate(m.ID, asOfQuarter, snap)
		entry := MemberWarning{
			MemberID:    m.ID,
			MemberName:  m.Name,
			Quarter:     asOfQuarter,
			UsedPercent: result.UsedPercent,
			UsedDays:    result.UsedDays,
		}
		switch result.Status {
		case domain.StatusOverallocated:
			w.Overallocated = append(w.Overallocated, entry)
		case domain.StatusWarning:
			w.HighUtilization = append(w.HighUtilization, entry)
		}

		if m.MaxConcurrentProjects > 0 {
			count := MemberProjectCount(m.ID, asOfQuarter, snap)
			if count > m.MaxConcurrentProjects {
				entry.Detail = count
				w.TooManyProjects = append(w.TooManyProjects, entry)
			}
		}
	}

	// Skill mismatches are scanned across all quarters of a phase, not just
	// asOf: a mis-staffed future phase is already actionable.
	for pi := range snap.Projects {
		project := &snap.Projects[pi]
		if project.Status == domain.ProjectCompleted {
			continue
		}
		for phi := range project.Phases {
			phase := &project.Phases[phi]
			if len(phase.RequiredSkillIDs) == 0 {
				continue
			}
			flagged := make(map[string]bool)
			for _, a := range snap.Assignments {
				if a.ProjectID != project.ID || a.PhaseID != phase.ID || flagged[a.MemberID] {
					continue
				}
				match := CheckSkillMatch(a.MemberID, phase.RequiredSkillIDs, snap)
				if match.Matched {
					continue
				}
				flagged[a.MemberID] = true
				name := ""
				if m := snap.MemberByID(a.MemberID); m != nil {
					name = m.Name
				}
				w.SkillMismatch = append(w.SkillMismatch, SkillMismatchWarning{
					MemberID:      a.MemberID,
					MemberName:    name,
					ProjectID:     project.ID,
					ProjectName:   project.Name,
					PhaseID:       phase.ID,
					PhaseName:     phase.Name,
					MissingSkills: match.MissingSkillNames,
				})
			}
		}
	}

	return w
}
