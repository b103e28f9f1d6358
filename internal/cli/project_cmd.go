package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and phases",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectStatusCmd(app),
		newProjectRemoveCmd(app),
		newPhaseCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:   args[0],
				Status: domain.ProjectStatus(status),
			}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Name, p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Status (planned, active, on_hold, completed)")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No projects yet. Add one with 'capplan project add'."))
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					formatter.Bold(p.Name),
					formatter.StatusPill(p.Status),
					fmt.Sprintf("%d", len(p.Phases)),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "Name", "Status", "Phases"}, rows))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project>",
		Short: "Show a project with its phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(context.Background(), app, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", formatter.Header(p.Name))
			fmt.Fprintf(out, "Status  %s\n", formatter.StatusPill(p.Status))
			fmt.Fprintf(out, "ID      %s\n", formatter.Dim(p.ID))

			if len(p.Phases) == 0 {
				fmt.Fprintln(out, formatter.Dim("\nNo phases."))
				return nil
			}

			rows := make([][]string, 0, len(p.Phases))
			for i := range p.Phases {
				ph := &p.Phases[i]
				span := ph.StartQuarter
				if ph.EndQuarter != ph.StartQuarter {
					span = ph.StartQuarter + " – " + ph.EndQuarter
				}
				if ph.HasExplicitDates() {
					span = ph.StartDate + " – " + ph.EndDate
				}
				rows = append(rows, []string{
					formatter.TruncID(ph.ID),
					formatter.Bold(ph.Name),
					span,
					formatter.ConfidenceBadge(ph.ConfidenceLevel),
					fmt.Sprintf("%d", len(ph.RequiredSkillIDs)),
				})
			}
			fmt.Fprintf(out, "\n%s\n", formatter.Header("Phases"))
			fmt.Fprint(out, formatter.RenderTable(
				[]string{"ID", "Name", "Span", "Confidence", "Skills"}, rows))
			return nil
		},
	}
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <project> <status>",
		Short: "Change a project's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			p.Status = domain.ProjectStatus(args[1])
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project %s is now %s\n", p.Name, formatter.StatusPill(p.Status))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project>",
		Short: "Remove a project, its phases and assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", p.Name)
			return nil
		},
	}
}

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage project phases",
	}

	var startQ, endQ, startDate, endDate, confidence string
	var skills []string

	add := &cobra.Command{
		Use:   "add <project> <name>",
		Short: "Add a phase to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			skillIDs, err := resolveSkillIDs(ctx, app, skills)
			if err != nil {
				return err
			}
			if endQ == "" {
				endQ = startQ
			}

			ph := &domain.Phase{
				ProjectID:        p.ID,
				Name:             args[1],
				StartQuarter:     startQ,
				EndQuarter:       endQ,
				StartDate:        startDate,
				EndDate:          endDate,
				ConfidenceLevel:  domain.ConfidenceLevel(confidence),
				RequiredSkillIDs: skillIDs,
			}
			if err := app.Projects.AddPhase(ctx, ph); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added phase %s to %s\n", ph.Name, p.Name)
			return nil
		},
	}
	add.Flags().StringVar(&startQ, "from", "", "Start quarter (e.g. \"Q1 2026\")")
	add.Flags().StringVar(&endQ, "to", "", "End quarter (defaults to start)")
	add.Flags().StringVar(&startDate, "start", "", "Explicit start date (YYYY-MM-DD)")
	add.Flags().StringVar(&endDate, "end", "", "Explicit end date (YYYY-MM-DD)")
	add.Flags().StringVar(&confidence, "confidence", "", "Confidence (high, medium, low)")
	add.Flags().StringSliceVar(&skills, "skills", nil, "Required skill names")
	_ = add.MarkFlagRequired("from")

	remove := &cobra.Command{
		Use:   "remove <project> <phase>",
		Short: "Remove a phase and its assignments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			ph, err := resolvePhase(p, args[1])
			if err != nil {
				return err
			}
			if err := app.Projects.RemovePhase(ctx, ph.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed phase %s from %s\n", ph.Name, p.Name)
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}
