package domain

import "strings"

// Snapshot is the read-only planning state one computation runs over. The
// core never mutates it; callers must not edit it mid-computation.
type Snapshot struct {
	Members             []TeamMember
	Skills              []Skill
	Holidays            []PublicHoliday
	TimeOff             []TimeOff
	Projects            []Project
	Assignments         []Assignment
	JiraItems           []JiraItem
	BusinessContacts    []BusinessContact
	BusinessAssignments []BusinessAssignment
	BusinessTimeOff     []BusinessTimeOff
	Settings            Settings
}

// Normalize canonicalizes the snapshot in place: assignments nested under
// phases (the legacy storage shape) are folded into the flat Assignments
// list, which becomes the only list the engine reads. When the flat list is
// already non-empty it wins and nested entries are dropped as stale copies.
func (s *Snapshot) Normalize() {
	if len(s.Assignments) == 0 {
		for pi := range s.Projects {
			for phi := range s.Projects[pi].Phases {
				ph := &s.Projects[pi].Phases[phi]
				for _, a := range ph.Assignments {
					if a.ProjectID == "" {
						a.ProjectID = ph.ProjectID
					}
					if a.PhaseID == "" {
						a.PhaseID = ph.ID
					}
					s.Assignments = append(s.Assignments, a)
				}
			}
		}
	}
	for pi := range s.Projects {
		for phi := range s.Projects[pi].Phases {
			s.Projects[pi].Phases[phi].Assignments = nil
		}
	}
}

// MemberByID returns the member with the given ID, or nil.
func (s *Snapshot) MemberByID(id string) *TeamMember {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i]
		}
	}
	return nil
}

// ProjectByID returns the project with the given ID, or nil.
func (s *Snapshot) ProjectByID(id string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// PhaseByID returns the phase with the given ID across all projects, or nil.
func (s *Snapshot) PhaseByID(id string) *Phase {
	for i := range s.Projects {
		for j := range s.Projects[i].Phases {
			if s.Projects[i].Phases[j].ID == id {
				return &s.Projects[i].Phases[j]
			}
		}
	}
	return nil
}

// SkillName returns the display name for a skill ID, falling back to the ID
// itself for unknown skills.
func (s *Snapshot) SkillName(id string) string {
	for i := range s.Skills {
		if s.Skills[i].ID == id {
			return s.Skills[i].Name
		}
	}
	return id
}

// HolidaysForCountry returns the holidays of the given country, falling back
// to the settings default country when countryID is empty.
func (s *Snapshot) HolidaysForCountry(countryID string) []PublicHoliday {
	if countryID == "" {
		countryID = s.Settings.DefaultCountryID
	}
	var out []PublicHoliday
	for _, h := range s.Holidays {
		if h.CountryID == countryID {
			out = append(out, h)
		}
	}
	return out
}

// TimeOffForMember returns all time-off records of one member.
func (s *Snapshot) TimeOffForMember(memberID string) []TimeOff {
	var out []TimeOff
	for _, t := range s.TimeOff {
		if t.MemberID == memberID {
			out = append(out, t)
		}
	}
	return out
}

// EmailsEqual compares two email addresses case-insensitively, the way Jira
// assignee matching works.
func EmailsEqual(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}
