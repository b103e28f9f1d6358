package capacity

import (
	"sort"

	"github.com/alexanderramin/capplan/internal/domain"
)

// SuggestionReasonCode tags one factor of a suggestion score.
type SuggestionReasonCode string

const (
	ReasonAvailableCapacity SuggestionReasonCode = "AVAILABLE_CAPACITY"
	ReasonOverallocated     SuggestionReasonCode = "OVERALLOCATED"
	ReasonSkillsMatch       SuggestionReasonCode = "SKILLS_MATCH"
	ReasonSkillsMissing     SuggestionReasonCode = "SKILLS_MISSING"
	ReasonProjectLoad       SuggestionReasonCode = "PROJECT_LOAD"
	ReasonAlreadyAssigned   SuggestionReasonCode = "ALREADY_ASSIGNED"
)

// SuggestionReason explains one scoring factor.
type SuggestionReason struct {
	Code    SuggestionReasonCode
	Message string
	Delta   float64
}

// Suggestion ranks one member as a candidate for a phase in a quarter.
type Suggestion struct {
	MemberID      string
	MemberName    string
	Score         float64
	AvailableDays float64
	UsedPercent   int
	SkillsMatched bool
	Reasons       []SuggestionReason
}

// SuggestAssignees scores every member as a candidate for the given phase
// and quarter, ranking by free capacity, skill coverage, and concurrent
// project load. A thin consumer of Calculate: each factor reads engine
// output, never raw snapshot numbers.
func SuggestAssignees(projectID, phaseID, quarter string, snap *domain.Snapshot) []Suggestion {
	phase := snap.PhaseByID(phaseID)

	var out []Suggestion
	for i := range snap.Members {
		m := &snap.Members[i]
		result := Calculate(m.ID, quarter, snap)

		s := Suggestion{
			MemberID:      m.ID,
			MemberName:    m.Name,
			AvailableDays: result.AvailableDays,
			UsedPercent:   result.UsedPercent,
		}

		if result.Status == domain.StatusOverallocated {
			s.add(ReasonOverallocated, "Already over capacity", -50)
		} else {
			s.add(ReasonAvailableCapacity, "Has free capacity this quarter", result.AvailableDays)
		}

		if phase != nil && len(phase.RequiredSkillIDs) > 0 {
			match := CheckSkillMatch(m.ID, phase.RequiredSkillIDs, snap)
			s.SkillsMatched = match.Matched
			if match.Matched {
				s.add(ReasonSkillsMatch, "Covers all required skills", 20)
			} else {
				s.add(ReasonSkillsMissing, "Missing required skills", -15*float64(len(match.MissingSkillNames)))
			}
		} else {
			s.SkillsMatched = true
		}

		count := MemberProjectCount(m.ID, quarter, snap)
		if m.MaxConcurrentProjects > 0 && count >= m.MaxConcurrentProjects {
			s.add(ReasonProjectLoad, "At concurrent project limit", -20)
		}

		if hasAssignment(m.ID, projectID, phaseID, quarter, snap) {
			s.add(ReasonAlreadyAssigned, "Already assigned to this phase", -100)
		}

		out = append(out, s)
	}

	SortSuggestions(out)
	return out
}

func (s *Suggestion) add(code SuggestionReasonCode, msg string, delta float64) {
	s.Score += delta
	s.Reasons = append(s.Reasons, SuggestionReason{Code: code, Message: msg, Delta: delta})
}

func hasAssignment(memberID, projectID, phaseID, quarter string, snap *domain.Snapshot) bool {
	for _, a := range snap.Assignments {
		if a.MemberID == memberID && a.ProjectID == projectID && a.PhaseID == phaseID && a.Quarter == quarter {
			return true
		}
	}
	return false
}

// SortSuggestions orders candidates deterministically: score descending,
// then available days descending, then member ID ascending.
func SortSuggestions(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.AvailableDays != b.AvailableDays {
			return a.AvailableDays > b.AvailableDays
		}
		return a.MemberID < b.MemberID
	})
}
