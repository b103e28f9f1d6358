package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Members     service.MemberService
	Skills      service.SkillService
	Projects    service.ProjectService
	Assignments service.AssignmentService
	Calendar    service.CalendarService
	Jira        service.JiraService
	Business    service.BusinessService
	Settings    service.SettingsService
	Planning    service.PlanningService
	Import      service.ImportService

	// IsInteractive reports whether stdin is an interactive terminal.
	// Interactive-only features (forms, the heatmap TUI) check it.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "capplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "capplan",
		Short: "Team capacity planner",
	}

	root.AddCommand(
		newMemberCmd(app),
		newSkillCmd(app),
		newHolidayCmd(app),
		newProjectCmd(app),
		newAssignCmd(app),
		newJiraCmd(app),
		newBusinessCmd(app),
		newCapacityCmd(app),
		newHeatmapCmd(app),
		newSummaryCmd(app),
		newWarningsCmd(app),
		newSuggestCmd(app),
		newSprintsCmd(app),
		newRollupCmd(app),
		newSettingsCmd(app),
		newImportCmd(app),
	)

	return root
}
