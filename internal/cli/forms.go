package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

// capplanHuhTheme returns a custom huh theme using the existing palette.
func capplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateQuarter(s string) error {
	if calendar.ParseQuarter(s) == nil {
		return fmt.Errorf("enter a quarter like \"Q1 2026\"")
	}
	return nil
}

func validateDays(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number of days")
	}
	return nil
}

// runAssignForm collects an assignment interactively: member, project,
// phase, quarter and days, each step filtered by the previous choice.
func runAssignForm(ctx context.Context, a *App, cmd *cobra.Command) error {
	members, err := a.Members.List(ctx)
	if err != nil {
		return err
	}
	projects, err := a.Projects.List(ctx)
	if err != nil {
		return err
	}
	if len(members) == 0 || len(projects) == 0 {
		return fmt.Errorf("add members and projects before assigning")
	}

	memberOpts := make([]huh.Option[string], 0, len(members))
	for _, m := range members {
		memberOpts = append(memberOpts, huh.NewOption(m.Name, m.ID))
	}
	projectOpts := make([]huh.Option[string], 0, len(projects))
	phasesByProject := make(map[string][]domain.Phase, len(projects))
	for _, p := range projects {
		if len(p.Phases) == 0 {
			continue
		}
		projectOpts = append(projectOpts, huh.NewOption(p.Name, p.ID))
		phasesByProject[p.ID] = p.Phases
	}
	if len(projectOpts) == 0 {
		return fmt.Errorf("no project has phases yet")
	}

	var memberID, projectID, phaseID, quarter, daysStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Who?").
				Options(memberOpts...).
				Value(&memberID),
			huh.NewSelect[string]().
				Title("Which project?").
				Options(projectOpts...).
				Value(&projectID),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which phase?").
				OptionsFunc(func() []huh.Option[string] {
					phases := phasesByProject[projectID]
					opts := make([]huh.Option[string], 0, len(phases))
					for i := range phases {
						opts = append(opts, huh.NewOption(phases[i].Name, phases[i].ID))
					}
					return opts
				}, &projectID).
				Value(&phaseID),
			huh.NewInput().
				Title("Quarter").
				Placeholder("Q1 2026").
				Value(&quarter).
				Validate(validateQuarter),
			huh.NewInput().
				Title("Days").
				Placeholder("10").
				Value(&daysStr).
				Validate(validateDays),
		),
	).WithTheme(capplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	days, _ := strconv.ParseFloat(daysStr, 64)
	assignment := &domain.Assignment{
		ProjectID: projectID,
		PhaseID:   phaseID,
		MemberID:  memberID,
		Quarter:   quarter,
		Days:      days,
	}
	if err := a.Assignments.Assign(ctx, assignment); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s days for %s\n", formatter.Days(days), assignment.Quarter)
	return nil
}
