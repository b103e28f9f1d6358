package importer

import (
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_ResolvesRefsToIDs(t *testing.T) {
	schema := validSchema()
	require.Empty(t, ValidateImportSchema(schema))

	ws := Convert(schema)

	require.Len(t, ws.Members, 2)
	require.Len(t, ws.Projects, 1)
	require.Len(t, ws.Assignments, 1)

	dana := ws.Members[0]
	assert.NotEmpty(t, dana.ID)
	assert.Equal(t, "Dana", dana.Name)
	require.Len(t, dana.SkillIDs, 1)
	assert.Equal(t, ws.Skills[0].ID, dana.SkillIDs[0])

	proj := ws.Projects[0]
	require.Len(t, proj.Phases, 1)
	assert.Equal(t, proj.ID, proj.Phases[0].ProjectID)

	a := ws.Assignments[0]
	assert.Equal(t, proj.ID, a.ProjectID)
	assert.Equal(t, proj.Phases[0].ID, a.PhaseID)
	assert.Equal(t, dana.ID, a.MemberID)
	assert.Equal(t, 10.0, a.Days)
}

func TestConvert_CanonicalizesQuarterLabels(t *testing.T) {
	schema := validSchema()
	schema.Assignments[0].Quarter = "2026-Q1"
	schema.Projects[0].Phases[0].StartQuarter = "2026-Q1"

	ws := Convert(schema)

	assert.Equal(t, "Q1 2026", ws.Assignments[0].Quarter)
	assert.Equal(t, "Q1 2026", ws.Projects[0].Phases[0].StartQuarter)
}

func TestConvert_FoldsNestedAssignments(t *testing.T) {
	schema := validSchema()
	schema.Assignments = nil
	schema.Projects[0].Phases[0].Assignments = []AssignmentImport{
		{MemberRef: "max", Quarter: "Q1 2026", Days: 8},
		{MemberRef: "dana", Quarter: "Q2 2026", Days: 4, JiraSynced: true},
	}

	ws := Convert(schema)

	require.Len(t, ws.Assignments, 2)
	proj := ws.Projects[0]
	for _, a := range ws.Assignments {
		assert.Equal(t, proj.ID, a.ProjectID)
		assert.Equal(t, proj.Phases[0].ID, a.PhaseID)
	}
	assert.True(t, ws.Assignments[1].JiraSynced)
	// Phases keep no nested copies after conversion.
	assert.Empty(t, proj.Phases[0].Assignments)
}

func TestConvert_JiraItemMapping(t *testing.T) {
	points := 5.0
	schema := validSchema()
	schema.JiraItems = []JiraItemImport{
		{Key: "PROJ-1", Type: "epic"},
		{Key: "PROJ-2", ParentKey: "PROJ-1", StoryPoints: &points,
			ProjectRef: "atlas", PhaseRef: "build", Confidence: "low"},
	}

	ws := Convert(schema)

	require.Len(t, ws.JiraItems, 2)
	epic := ws.JiraItems[0]
	assert.Equal(t, "epic", epic.Type)
	assert.Equal(t, domain.CategoryTodo, epic.StatusCategory)
	assert.Empty(t, epic.MappedProjectID)

	story := ws.JiraItems[1]
	assert.Equal(t, "story", story.Type)
	assert.Equal(t, ws.Projects[0].ID, story.MappedProjectID)
	assert.Equal(t, ws.Projects[0].Phases[0].ID, story.MappedPhaseID)
	assert.Equal(t, domain.ConfidenceLow, story.ConfidenceLevel)
	require.NotNil(t, story.StoryPoints)
	assert.Equal(t, 5.0, *story.StoryPoints)
}

func TestConvert_SettingsMergeOntoDefaults(t *testing.T) {
	bau := 8.0
	low := 30.0
	weeks := 3
	schema := validSchema()
	schema.Settings = &SettingsImport{
		BAUReserveDays: &bau,
		DefaultCountry: "de",
		Confidence:     &ConfidenceImport{Low: &low, DefaultLevel: "high"},
		Sprint:         &SprintSettingsImport{DurationWeeks: &weeks, ByeWeeksAfter: []int{6, 13}},
	}

	ws := Convert(schema)

	require.NotNil(t, ws.Settings)
	assert.Equal(t, 8.0, ws.Settings.BAUReserveDays)
	assert.Equal(t, "de", ws.Settings.DefaultCountryID)
	assert.Equal(t, 30.0, ws.Settings.Confidence.Low)
	assert.Equal(t, 15.0, ws.Settings.Confidence.Medium)
	assert.Equal(t, domain.ConfidenceHigh, ws.Settings.Confidence.DefaultLevel)
	// Jira buffers untouched by the manual confidence override.
	assert.Equal(t, 25.0, ws.Settings.JiraConfidence.Low)
	assert.Equal(t, 3, ws.Settings.Sprint.SprintDurationWeeks)
	assert.Equal(t, []int{6, 13}, ws.Settings.Sprint.ByeWeeksAfter)
}

func TestConvert_NoSettingsYieldsDefaults(t *testing.T) {
	ws := Convert(validSchema())
	require.NotNil(t, ws.Settings)
	assert.Equal(t, 5.0, ws.Settings.BAUReserveDays)
	assert.Equal(t, 26, ws.Settings.Sprint.SprintsPerYear)
}

func TestConvert_BusinessEntities(t *testing.T) {
	schema := validSchema()
	schema.BusinessTimeOff = []BusinessTimeOffImport{
		{ContactRef: "bob", StartDate: "2026-03-02", EndDate: "2026-03-06"},
	}

	ws := Convert(schema)

	require.Len(t, ws.BusinessContacts, 1)
	bob := ws.BusinessContacts[0]
	require.Len(t, ws.BusinessAssignments, 1)
	assert.Equal(t, bob.ID, ws.BusinessAssignments[0].ContactID)
	require.Len(t, ws.BusinessTimeOff, 1)
	assert.Equal(t, bob.ID, ws.BusinessTimeOff[0].ContactID)
}
