package domain

import "time"

type Project struct {
	ID        string
	Name      string
	Status    ProjectStatus
	Phases    []Phase
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Phase is a sub-deliverable of a project. Its effective date range is the
// explicit StartDate/EndDate pair when both are set, else the span of
// StartQuarter..EndQuarter.
type Phase struct {
	ID               string
	ProjectID        string
	Name             string
	StartQuarter     string
	EndQuarter       string
	StartDate        string          // ISO date, optional
	EndDate          string          // ISO date, optional
	ConfidenceLevel  ConfidenceLevel // empty means settings default
	RequiredSkillIDs []string

	// Assignments nested under the phase are a legacy storage shape; the
	// snapshot adapter folds them into the flat list. See Snapshot.
	Assignments []Assignment
}

// HasExplicitDates reports whether the phase's range comes from exact dates
// rather than quarter labels.
func (p *Phase) HasExplicitDates() bool {
	return p.StartDate != "" && p.EndDate != ""
}

// Assignment commits a member to a (project, phase) for one quarter.
// Days are raw, un-buffered effort.
type Assignment struct {
	ID         string
	ProjectID  string
	PhaseID    string
	MemberID   string
	Quarter    string
	Days       float64
	JiraSynced bool
}

// JiraItem is a Jira-synced work item. Items form a forest via ParentKey;
// leaves carry story points (1 point = 1 raw day), structural nodes roll up
// their children.
type JiraItem struct {
	JiraKey         string
	ParentKey       string
	Summary         string
	Type            string
	StatusCategory  StatusCategory
	StoryPoints     *float64
	AssigneeEmail   string
	SprintName      string
	MappedProjectID string
	MappedPhaseID   string
	ConfidenceLevel ConfidenceLevel // empty means Jira settings default
}

// IsDone reports whether the item no longer consumes capacity.
func (j *JiraItem) IsDone() bool {
	return j.StatusCategory == CategoryDone
}
