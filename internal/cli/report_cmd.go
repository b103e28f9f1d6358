package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/app"
	"github.com/alexanderramin/capplan/internal/cli/formatter"
)

func newCapacityCmd(a *App) *cobra.Command {
	var quarter string

	cmd := &cobra.Command{
		Use:   "capacity <member>",
		Short: "Show one member's capacity for a quarter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMember(ctx, a, args[0])
			if err != nil {
				return err
			}
			view, err := a.Planning.MemberCapacity(ctx, app.CapacityRequest{
				MemberID: m.ID,
				Quarter:  quarter,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCapacityReport(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&quarter, "quarter", "", "Quarter (defaults to current)")
	return cmd
}

func newHeatmapCmd(a *App) *cobra.Command {
	var from string
	var quarters int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show team capacity across quarters",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Planning.Heatmap(context.Background(), app.HeatmapRequest{
				StartQuarter: from,
				Quarters:     quarters,
			})
			if err != nil {
				return err
			}

			if interactive && a.interactive() {
				model := newHeatmapModel(view)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHeatmap(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First quarter (defaults to current)")
	cmd.Flags().IntVar(&quarters, "quarters", 4, "Number of quarters")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse cells in a TUI")
	return cmd
}

func newSummaryCmd(a *App) *cobra.Command {
	var quarter string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the team utilization summary for a quarter",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Planning.TeamSummary(context.Background(), quarter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeamSummary(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&quarter, "quarter", "", "Quarter (defaults to current)")
	return cmd
}

func newWarningsCmd(a *App) *cobra.Command {
	var quarter string

	cmd := &cobra.Command{
		Use:   "warnings",
		Short: "Show capacity and skill warnings for a quarter",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Planning.Warnings(context.Background(), quarter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWarnings(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&quarter, "quarter", "", "Quarter (defaults to current)")
	return cmd
}

func newSuggestCmd(a *App) *cobra.Command {
	var projectIn, phaseIn, quarter string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank members as candidates for a phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, a, projectIn)
			if err != nil {
				return err
			}
			ph, err := resolvePhase(p, phaseIn)
			if err != nil {
				return err
			}

			resp, err := a.Planning.SuggestAssignees(ctx, app.SuggestRequest{
				ProjectID: p.ID,
				PhaseID:   ph.ID,
				Quarter:   quarter,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestions(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectIn, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&phaseIn, "phase", "", "Phase name or ID")
	cmd.Flags().StringVar(&quarter, "quarter", "", "Quarter (defaults to current)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("phase")
	return cmd
}

func newSprintsCmd(a *App) *cobra.Command {
	var year int
	var quarter string

	cmd := &cobra.Command{
		Use:   "sprints",
		Short: "Show the generated sprint calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Planning.Sprints(context.Background(), app.SprintRequest{
				Year:    year,
				Quarter: quarter,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSprints(view))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (defaults to current)")
	cmd.Flags().StringVar(&quarter, "quarter", "", "Limit to one quarter")
	return cmd
}

func newRollupCmd(a *App) *cobra.Command {
	var quarter string

	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Roll up Jira story points over the item hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Planning.Rollup(context.Background(), quarter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRollup(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&quarter, "quarter", "", "Limit to items mapped to one quarter's sprints")
	return cmd
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a workspace from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportWorkspace(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported %d members, %d projects (%d phases), %d assignments, %d Jira items, %d contacts\n",
				result.MemberCount, result.ProjectCount, result.PhaseCount,
				result.AssignmentCount, result.JiraItemCount, result.ContactCount)
			return nil
		},
	}
}
