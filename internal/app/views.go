package app

import (
	"github.com/alexanderramin/capplan/internal/capacity"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/forecast"
	"github.com/alexanderramin/capplan/internal/sprint"
)

type CapacityRequest struct {
	MemberID string
	Quarter  string
}

// CapacityReportView is one member's capacity in one quarter, enriched with
// the member's display name for rendering.
type CapacityReportView struct {
	MemberName string
	Result     domain.CapacityResult
}

// HeatmapRequest asks for the whole team across a span of quarters.
// StartQuarter defaults to the current quarter, Quarters to 4.
type HeatmapRequest struct {
	StartQuarter string
	Quarters     int
}

type HeatmapRow struct {
	MemberID   string
	MemberName string
	Cells      []domain.CapacityResult
}

type HeatmapView struct {
	Quarters []string
	Rows     []HeatmapRow
}

type TeamSummaryView struct {
	Summary capacity.UtilizationSummary
}

type WarningsView struct {
	Quarter  string
	Warnings capacity.Warnings
}

type SuggestRequest struct {
	ProjectID string
	PhaseID   string
	Quarter   string
}

type SuggestResponse struct {
	Suggestions []capacity.Suggestion
}

// SprintRequest asks for the sprint calendar of one year, optionally
// filtered to a single quarter.
type SprintRequest struct {
	Year    int
	Quarter string
}

type SprintView struct {
	Name        string
	StartDate   string
	EndDate     string
	Quarter     string
	IsBye       bool
	WorkingDays int
}

type SprintsView struct {
	Year    int
	Sprints []SprintView
}

// RollupRow is one top-level Jira item with its aggregated effort.
type RollupRow struct {
	JiraKey string
	Summary string
	Type    string
	Entry   forecast.RollupEntry
}

type RollupView struct {
	Rows []RollupRow
}

// BusinessHeatmapRequest asks for business contact capacity over quarters.
type BusinessHeatmapRequest struct {
	StartQuarter string
	Quarters     int
}

type BusinessHeatmapRow struct {
	ContactID   string
	ContactName string
	Company     string
	Cells       []domain.BusinessCellData
}

type BusinessHeatmapView struct {
	Quarters []string
	Rows     []BusinessHeatmapRow
}

// SprintViewFromSprint flattens a generated sprint for rendering.
func SprintViewFromSprint(s sprint.Sprint, holidays []domain.PublicHoliday) SprintView {
	return SprintView{
		Name:        s.Name,
		StartDate:   s.StartDate.Format("2006-01-02"),
		EndDate:     s.EndDate.Format("2006-01-02"),
		Quarter:     s.Quarter,
		IsBye:       s.IsBye,
		WorkingDays: sprint.WorkingDaysInSprint(s, holidays),
	}
}
