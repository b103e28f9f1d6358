package app

import (
	"context"

	"github.com/alexanderramin/capplan/internal/importer"
)

type CapacityUseCase interface {
	MemberCapacity(ctx context.Context, req CapacityRequest) (*CapacityReportView, error)
	Heatmap(ctx context.Context, req HeatmapRequest) (*HeatmapView, error)
	TeamSummary(ctx context.Context, quarter string) (*TeamSummaryView, error)
}

type WarningsUseCase interface {
	Warnings(ctx context.Context, asOfQuarter string) (*WarningsView, error)
}

type SuggestUseCase interface {
	SuggestAssignees(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)
}

type SprintUseCase interface {
	Sprints(ctx context.Context, req SprintRequest) (*SprintsView, error)
}

type RollupUseCase interface {
	Rollup(ctx context.Context, quarter string) (*RollupView, error)
}

type BusinessUseCase interface {
	BusinessHeatmap(ctx context.Context, req BusinessHeatmapRequest) (*BusinessHeatmapView, error)
}

// ImportResult counts what a workspace import created.
type ImportResult struct {
	MemberCount     int
	ProjectCount    int
	PhaseCount      int
	AssignmentCount int
	JiraItemCount   int
	ContactCount    int
}

type ImportWorkspaceUseCase interface {
	ImportWorkspace(ctx context.Context, filePath string) (*ImportResult, error)
	ImportWorkspaceFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
