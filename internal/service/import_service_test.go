package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/capplan/internal/importer"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/alexanderramin/capplan/internal/testutil"
)

func workspaceSchema() *importer.ImportSchema {
	points := 5.0
	return &importer.ImportSchema{
		Skills: []importer.SkillImport{
			{Ref: "go", Name: "Go"},
		},
		Members: []importer.MemberImport{
			{Ref: "dana", Name: "Dana", Email: "dana@example.com", Country: "DE", Skills: []string{"go"}},
			{Ref: "max", Name: "Max"},
		},
		Holidays: []importer.HolidayImport{
			{Date: "2026-01-01", Name: "New Year", Country: "DE"},
		},
		TimeOff: []importer.TimeOffImport{
			{MemberRef: "dana", StartDate: "2026-02-02", EndDate: "2026-02-06"},
		},
		Projects: []importer.ProjectImport{
			{
				Ref:  "atlas",
				Name: "Atlas",
				Phases: []importer.PhaseImport{
					{Ref: "build", Name: "Build", StartQuarter: "2026-Q1", EndQuarter: "2026-Q1", RequiredSkills: []string{"go"}},
				},
			},
		},
		Assignments: []importer.AssignmentImport{
			{ProjectRef: "atlas", PhaseRef: "build", MemberRef: "dana", Quarter: "Q1 2026", Days: 10},
		},
		JiraItems: []importer.JiraItemImport{
			{Key: "PROJ-1", Summary: "Build the thing", StoryPoints: &points, ProjectRef: "atlas", PhaseRef: "build"},
		},
		BusinessContacts: []importer.BusinessContactImport{
			{Ref: "bob", Name: "Bob", Company: "Acme"},
		},
		BusinessAssignments: []importer.BusinessAssignmentImport{
			{ContactRef: "bob", Quarter: "Q1 2026", Days: 5},
		},
	}
}

func TestImportService_ImportWorkspaceFromSchema(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(conn))
	ctx := context.Background()

	result, err := svc.ImportWorkspaceFromSchema(ctx, workspaceSchema())
	require.NoError(t, err)

	assert.Equal(t, 2, result.MemberCount)
	assert.Equal(t, 1, result.ProjectCount)
	assert.Equal(t, 1, result.PhaseCount)
	assert.Equal(t, 1, result.AssignmentCount)
	assert.Equal(t, 1, result.JiraItemCount)
	assert.Equal(t, 1, result.ContactCount)

	members, err := repository.NewSQLiteMemberRepo(conn).List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Dana", members[0].Name)
	assert.Len(t, members[0].SkillIDs, 1)

	projects, err := repository.NewSQLiteProjectRepo(conn).List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Phases, 1)
	phase := projects[0].Phases[0]
	assert.Equal(t, "Q1 2026", phase.StartQuarter)
	assert.Len(t, phase.RequiredSkillIDs, 1)

	assignments, err := repository.NewSQLiteAssignmentRepo(conn).List(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, projects[0].ID, assignments[0].ProjectID)
	assert.Equal(t, phase.ID, assignments[0].PhaseID)
}

func TestImportService_ImportWorkspace_FromFile(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(conn))

	data, err := json.Marshal(workspaceSchema())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "workspace.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	result, err := svc.ImportWorkspace(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.MemberCount)
}

func TestImportService_ImportWorkspace_MissingFile(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(conn))

	_, err := svc.ImportWorkspace(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestImportService_RejectsInvalidSchema(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(conn))
	ctx := context.Background()

	schema := workspaceSchema()
	schema.Assignments[0].MemberRef = "ghost"
	schema.Projects[0].Phases[0].StartQuarter = "Q5 2026"

	_, err := svc.ImportWorkspaceFromSchema(ctx, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid import file")

	members, err := repository.NewSQLiteMemberRepo(conn).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestImportService_RollsBackOnPersistFailure(t *testing.T) {
	conn := testutil.NewTestDB(t)
	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: conn, FailOn: 8, Err: injected}
	svc := NewImportService(uow)
	ctx := context.Background()

	_, err := svc.ImportWorkspaceFromSchema(ctx, workspaceSchema())
	require.ErrorIs(t, err, injected)

	members, err := repository.NewSQLiteMemberRepo(conn).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	projects, err := repository.NewSQLiteProjectRepo(conn).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
