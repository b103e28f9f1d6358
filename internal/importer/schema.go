package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a workspace import. All
// cross-references between sections use refs, which are mapped to generated
// IDs during conversion.
type ImportSchema struct {
	Settings            *SettingsImport            `json:"settings,omitempty"`
	Skills              []SkillImport              `json:"skills,omitempty"`
	Members             []MemberImport             `json:"members"`
	Holidays            []HolidayImport            `json:"holidays,omitempty"`
	TimeOff             []TimeOffImport            `json:"time_off,omitempty"`
	Projects            []ProjectImport            `json:"projects"`
	Assignments         []AssignmentImport         `json:"assignments,omitempty"`
	JiraItems           []JiraItemImport           `json:"jira_items,omitempty"`
	BusinessContacts    []BusinessContactImport    `json:"business_contacts,omitempty"`
	BusinessAssignments []BusinessAssignmentImport `json:"business_assignments,omitempty"`
	BusinessTimeOff     []BusinessTimeOffImport    `json:"business_time_off,omitempty"`
}

// SettingsImport overrides planning defaults. Omitted fields keep their
// stock values.
type SettingsImport struct {
	BAUReserveDays *float64              `json:"bau_reserve_days,omitempty"`
	DefaultCountry string                `json:"default_country,omitempty"`
	Confidence     *ConfidenceImport     `json:"confidence,omitempty"`
	JiraConfidence *ConfidenceImport     `json:"jira_confidence,omitempty"`
	Sprint         *SprintSettingsImport `json:"sprint,omitempty"`
}

// ConfidenceImport defines buffer percentages per confidence level.
type ConfidenceImport struct {
	High         *float64 `json:"high,omitempty"`
	Medium       *float64 `json:"medium,omitempty"`
	Low          *float64 `json:"low,omitempty"`
	DefaultLevel string   `json:"default_level,omitempty"`
}

// SprintSettingsImport defines the sprint cadence.
type SprintSettingsImport struct {
	DurationWeeks *int   `json:"duration_weeks,omitempty"`
	PerYear       *int   `json:"per_year,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	ByeWeeksAfter []int  `json:"bye_weeks_after,omitempty"`
}

// SkillImport defines a skill in the import file.
type SkillImport struct {
	Ref  string `json:"ref"`
	Name string `json:"name"`
}

// MemberImport defines a team member in the import file.
type MemberImport struct {
	Ref                   string   `json:"ref"`
	Name                  string   `json:"name"`
	Email                 string   `json:"email,omitempty"`
	Country               string   `json:"country,omitempty"`
	Role                  string   `json:"role,omitempty"`
	MaxConcurrentProjects *int     `json:"max_concurrent_projects,omitempty"`
	Skills                []string `json:"skills,omitempty"`
}

// HolidayImport defines a public holiday in the import file.
type HolidayImport struct {
	Date    string `json:"date"`
	Name    string `json:"name,omitempty"`
	Country string `json:"country"`
}

// TimeOffImport defines an absence range for a member.
type TimeOffImport struct {
	MemberRef string `json:"member_ref"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Note      string `json:"note,omitempty"`
}

// ProjectImport defines a project and its phases in the import file.
type ProjectImport struct {
	Ref    string        `json:"ref"`
	Name   string        `json:"name"`
	Status string        `json:"status,omitempty"`
	Phases []PhaseImport `json:"phases,omitempty"`
}

// PhaseImport defines a project phase. Assignments may be nested here as a
// legacy shape; the converter emits them into the flat assignment list.
type PhaseImport struct {
	Ref            string             `json:"ref"`
	Name           string             `json:"name"`
	StartQuarter   string             `json:"start_quarter,omitempty"`
	EndQuarter     string             `json:"end_quarter,omitempty"`
	StartDate      string             `json:"start_date,omitempty"`
	EndDate        string             `json:"end_date,omitempty"`
	Confidence     string             `json:"confidence,omitempty"`
	RequiredSkills []string           `json:"required_skills,omitempty"`
	Assignments    []AssignmentImport `json:"assignments,omitempty"`
}

// AssignmentImport defines a member commitment for one quarter. ProjectRef
// and PhaseRef may be omitted when the assignment is nested under a phase.
type AssignmentImport struct {
	ProjectRef string  `json:"project_ref,omitempty"`
	PhaseRef   string  `json:"phase_ref,omitempty"`
	MemberRef  string  `json:"member_ref"`
	Quarter    string  `json:"quarter"`
	Days       float64 `json:"days"`
	JiraSynced bool    `json:"jira_synced,omitempty"`
}

// JiraItemImport defines a synced Jira work item.
type JiraItemImport struct {
	Key            string   `json:"key"`
	ParentKey      string   `json:"parent_key,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Type           string   `json:"type,omitempty"`
	StatusCategory string   `json:"status_category,omitempty"`
	StoryPoints    *float64 `json:"story_points,omitempty"`
	AssigneeEmail  string   `json:"assignee_email,omitempty"`
	SprintName     string   `json:"sprint_name,omitempty"`
	ProjectRef     string   `json:"project_ref,omitempty"`
	PhaseRef       string   `json:"phase_ref,omitempty"`
	Confidence     string   `json:"confidence,omitempty"`
}

// BusinessContactImport defines an external stakeholder.
type BusinessContactImport struct {
	Ref     string `json:"ref"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Country string `json:"country,omitempty"`
	Company string `json:"company,omitempty"`
}

// BusinessAssignmentImport commits a contact's days to a quarter or phase.
type BusinessAssignmentImport struct {
	ContactRef string  `json:"contact_ref"`
	ProjectRef string  `json:"project_ref,omitempty"`
	PhaseRef   string  `json:"phase_ref,omitempty"`
	Quarter    string  `json:"quarter,omitempty"`
	Days       float64 `json:"days"`
	Note       string  `json:"note,omitempty"`
}

// BusinessTimeOffImport defines an absence range for a contact.
type BusinessTimeOffImport struct {
	ContactRef string `json:"contact_ref"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// LoadImportSchema reads and parses a workspace import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
