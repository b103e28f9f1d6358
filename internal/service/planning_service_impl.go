package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/capplan/internal/app"
	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/capacity"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/forecast"
	"github.com/alexanderramin/capplan/internal/sprint"
)

type planningService struct {
	snapshots SnapshotService
	observer  UseCaseObserver
}

func NewPlanningService(snapshots SnapshotService, observers ...UseCaseObserver) PlanningService {
	return &planningService{
		snapshots: snapshots,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *planningService) MemberCapacity(ctx context.Context, req app.CapacityRequest) (*app.CapacityReportView, error) {
	start := time.Now()
	view, err := s.memberCapacity(ctx, req)
	observe(ctx, s.observer, "member_capacity", start, err, map[string]any{
		"member_id": req.MemberID,
		"quarter":   req.Quarter,
	})
	return view, err
}

func (s *planningService) memberCapacity(ctx context.Context, req app.CapacityRequest) (*app.CapacityReportView, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	m := snap.MemberByID(req.MemberID)
	if m == nil {
		return nil, fmt.Errorf("member %q not found", req.MemberID)
	}
	quarter := canonicalOrCurrentQuarter(req.Quarter)
	return &app.CapacityReportView{
		MemberName: m.Name,
		Result:     capacity.Calculate(m.ID, quarter, snap),
	}, nil
}

func (s *planningService) Heatmap(ctx context.Context, req app.HeatmapRequest) (*app.HeatmapView, error) {
	start := time.Now()
	view, err := s.heatmap(ctx, req)
	observe(ctx, s.observer, "heatmap", start, err, nil)
	return view, err
}

func (s *planningService) heatmap(ctx context.Context, req app.HeatmapRequest) (*app.HeatmapView, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	quarters := quarterSpan(req.StartQuarter, req.Quarters)

	view := &app.HeatmapView{Quarters: quarters}
	for i := range snap.Members {
		m := &snap.Members[i]
		row := app.HeatmapRow{MemberID: m.ID, MemberName: m.Name}
		for _, q := range quarters {
			row.Cells = append(row.Cells, capacity.Calculate(m.ID, q, snap))
		}
		view.Rows = append(view.Rows, row)
	}
	return view, nil
}

func (s *planningService) TeamSummary(ctx context.Context, quarter string) (*app.TeamSummaryView, error) {
	start := time.Now()
	view, err := s.teamSummary(ctx, quarter)
	observe(ctx, s.observer, "team_summary", start, err, map[string]any{"quarter": quarter})
	return view, err
}

func (s *planningService) teamSummary(ctx context.Context, quarter string) (*app.TeamSummaryView, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	quarter = canonicalOrCurrentQuarter(quarter)
	return &app.TeamSummaryView{
		Summary: capacity.TeamUtilizationSummary(quarter, snap),
	}, nil
}

func (s *planningService) Warnings(ctx context.Context, asOfQuarter string) (*app.WarningsView, error) {
	start := time.Now()
	view, err := s.warnings(ctx, asOfQuarter)
	observe(ctx, s.observer, "warnings", start, err, map[string]any{"quarter": asOfQuarter})
	return view, err
}

func (s *planningService) warnings(ctx context.Context, asOfQuarter string) (*app.WarningsView, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	asOfQuarter = canonicalOrCurrentQuarter(asOfQuarter)
	return &app.WarningsView{
		Quarter:  asOfQuarter,
		Warnings: capacity.CollectWarnings(snap, asOfQuarter),
	}, nil
}

func (s *planningService) SuggestAssignees(ctx context.Context, req app.SuggestRequest) (*app.SuggestResponse, error) {
	start := time.Now()
	resp, err := s.suggestAssignees(ctx, req)
	observe(ctx, s.observer, "suggest_assignees", start, err, map[string]any{
		"phase_id": req.PhaseID,
		"quarter":  req.Quarter,
	})
	return resp, err
}

func (s *planningService) suggestAssignees(ctx context.Context, req app.SuggestRequest) (*app.SuggestResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	quarter := canonicalOrCurrentQuarter(req.Quarter)
	return &app.SuggestResponse{
		Suggestions: capacity.SuggestAssignees(req.ProjectID, req.PhaseID, quarter, snap),
	}, nil
}

func (s *planningService) Sprints(ctx context.Context, req app.SprintRequest) (*app.SprintsView, error) {
	start := time.Now()
	view, err := s.sprints(ctx, req)
	observe(ctx, s.observer, "sprints", start, err, map[string]any{"year": req.Year})
	return view, err
}

func (s *planningService) sprints(ctx context.Context, req app.SprintRequest) (*app.SprintsView, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	year := req.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	generated := sprint.GenerateSprintsForYear(year, snap.Settings.Sprint)
	if req.Quarter != "" {
		if q := calendar.ParseQuarter(req.Quarter); q != nil {
			generated = sprint.SprintsForQuarter(q.Label(), generated)
		}
	}

	holidays := snap.HolidaysForCountry(snap.Settings.DefaultCountryID)
	view := &app.SprintsView{Year: year}
	for _, sp := range generated {
		view.Sprints = append(view.Sprints, app.SprintViewFromSprint(sp, holidays))
	}
	return view, nil
}

func (s *planningService) Rollup(ctx context.Context, quarter string) (*app.RollupView, error) {
	start := time.Now()
	view, err := s.rollup(ctx, quarter)
	observe(ctx, s.observer, "rollup", start, err, map[string]any{"quarter": quarter})
	return view, err
}

// rollup aggregates story points over the Jira forest and reports the
// top-level items. The quarter filter keeps only trees whose root maps to a
// sprint in that quarter; an empty quarter reports everything.
func (s *planningService) rollup(ctx context.Context, quarter string) (*app.RollupView, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries := forecast.ComputeRollup(snap.JiraItems,
		snap.Settings.JiraConfidence.DefaultLevel, snap.Settings.JiraConfidence)

	known := make(map[string]bool, len(snap.JiraItems))
	for i := range snap.JiraItems {
		known[snap.JiraItems[i].JiraKey] = true
	}

	var quarterSprints []sprint.Sprint
	if quarter != "" {
		if q := calendar.ParseQuarter(quarter); q != nil {
			quarter = q.Label()
			quarterSprints = sprint.GenerateSprintsForYear(q.Year, snap.Settings.Sprint)
		}
	}

	view := &app.RollupView{}
	for i := range snap.JiraItems {
		item := &snap.JiraItems[i]
		if item.ParentKey != "" && known[item.ParentKey] {
			continue
		}
		if quarterSprints != nil {
			mapped := sprint.MapSprintNameToQuarter(item.SprintName, quarterSprints)
			if mapped != quarter {
				continue
			}
		}
		view.Rows = append(view.Rows, app.RollupRow{
			JiraKey: item.JiraKey,
			Summary: item.Summary,
			Type:    item.Type,
			Entry:   entries[item.JiraKey],
		})
	}
	sort.Slice(view.Rows, func(i, j int) bool { return view.Rows[i].JiraKey < view.Rows[j].JiraKey })
	return view, nil
}

func (s *planningService) BusinessHeatmap(ctx context.Context, req app.BusinessHeatmapRequest) (*app.BusinessHeatmapView, error) {
	start := time.Now()
	view, err := s.businessHeatmap(ctx, req)
	observe(ctx, s.observer, "business_heatmap", start, err, nil)
	return view, err
}

func (s *planningService) businessHeatmap(ctx context.Context, req app.BusinessHeatmapRequest) (*app.BusinessHeatmapView, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	quarters := quarterSpan(req.StartQuarter, req.Quarters)

	view := &app.BusinessHeatmapView{Quarters: quarters}
	for i := range snap.BusinessContacts {
		c := &snap.BusinessContacts[i]
		holidays := snap.HolidaysForCountry(c.CountryID)
		row := app.BusinessHeatmapRow{ContactID: c.ID, ContactName: c.Name, Company: c.Company}
		for _, label := range quarters {
			q := calendar.ParseQuarter(label)
			if q == nil {
				row.Cells = append(row.Cells, domain.BusinessCellData{})
				continue
			}
			row.Cells = append(row.Cells, capacity.BusinessCapacityForWindow(
				c, q.Start, q.End,
				snap.BusinessAssignments, snap.BusinessTimeOff, holidays, snap.Projects))
		}
		view.Rows = append(view.Rows, row)
	}
	return view, nil
}

// canonicalOrCurrentQuarter resolves an optional quarter argument: empty
// means the current wall-clock quarter, anything else is canonicalized.
// Unparseable labels pass through so the engine degrades them to zero.
func canonicalOrCurrentQuarter(label string) string {
	if label == "" {
		return calendar.QuarterForDate(time.Now().UTC()).Label()
	}
	if q := calendar.ParseQuarter(label); q != nil {
		return q.Label()
	}
	return label
}

// quarterSpan builds a run of consecutive quarter labels.
func quarterSpan(startLabel string, count int) []string {
	if count <= 0 {
		count = 4
	}
	label := canonicalOrCurrentQuarter(startLabel)
	quarters := make([]string, 0, count)
	for i := 0; i < count && label != ""; i++ {
		quarters = append(quarters, label)
		label = calendar.NextQuarter(label)
	}
	return quarters
}
