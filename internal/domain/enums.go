package domain

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// DefaultConfidenceLevel is the fallback used wherever a confidence level is
// optional (phases, Jira items, settings with no default configured).
const DefaultConfidenceLevel = ConfidenceMedium

// ValidConfidenceLevels is the canonical set of accepted confidence strings.
var ValidConfidenceLevels = map[string]bool{
	"high": true, "medium": true, "low": true,
}

type CapacityStatus string

const (
	StatusNormal        CapacityStatus = "normal"
	StatusWarning       CapacityStatus = "warning"
	StatusOverallocated CapacityStatus = "overallocated"
)

// BreakdownType tags a capacity breakdown entry with its source. The UI
// switches on this tag, so the set is closed.
type BreakdownType string

const (
	BreakdownBAU     BreakdownType = "bau"
	BreakdownTimeOff BreakdownType = "timeoff"
	BreakdownProject BreakdownType = "project"
	BreakdownJira    BreakdownType = "jira"
)

type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"planned": true, "active": true, "on_hold": true, "completed": true,
}

// StatusCategory is the Jira-style status bucket of a work item.
type StatusCategory string

const (
	CategoryTodo       StatusCategory = "todo"
	CategoryInProgress StatusCategory = "in_progress"
	CategoryDone       StatusCategory = "done"
)

// ValidItemTypes is the canonical set of accepted Jira item type strings.
var ValidItemTypes = map[string]bool{
	"epic": true, "feature": true, "story": true, "task": true, "bug": true,
}
