package domain

import "time"

type TeamMember struct {
	ID                    string
	Name                  string
	Email                 string
	CountryID             string
	Role                  string
	SkillIDs              []string
	MaxConcurrentProjects int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasEmail reports whether the member can be matched against Jira assignees.
func (m *TeamMember) HasEmail() bool {
	return m.Email != ""
}

type Skill struct {
	ID   string
	Name string
}

// PublicHoliday excludes one calendar day from working-day counts for
// everyone in the given country. Date is an ISO yyyy-mm-dd string.
type PublicHoliday struct {
	ID        string
	Date      string
	Name      string
	CountryID string
}

// TimeOff is an inclusive ISO date range of absence for one member.
type TimeOff struct {
	ID        string
	MemberID  string
	StartDate string
	EndDate   string
	Note      string
}
