package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

func newAssignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Manage quarter assignments",
	}

	cmd.AddCommand(
		newAssignAddCmd(app),
		newAssignListCmd(app),
		newAssignRemoveCmd(app),
	)

	return cmd
}

func newAssignAddCmd(app *App) *cobra.Command {
	var memberIn, projectIn, phaseIn, quarter string
	var days float64
	var jiraSynced bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Assign a member to a phase for a quarter",
		Long: "Assign a member to a phase for a quarter. Without flags on an " +
			"interactive terminal, a guided form collects the details.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// No flags at all on a terminal: run the guided form.
			if memberIn == "" && projectIn == "" && app.interactive() {
				return runAssignForm(ctx, app, cmd)
			}

			m, err := resolveMember(ctx, app, memberIn)
			if err != nil {
				return err
			}
			p, err := resolveProject(ctx, app, projectIn)
			if err != nil {
				return err
			}
			ph, err := resolvePhase(p, phaseIn)
			if err != nil {
				return err
			}

			a := &domain.Assignment{
				ProjectID:  p.ID,
				PhaseID:    ph.ID,
				MemberID:   m.ID,
				Quarter:    quarter,
				Days:       days,
				JiraSynced: jiraSynced,
			}
			if err := app.Assignments.Assign(ctx, a); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to %s / %s for %s (%s days)\n",
				m.Name, p.Name, ph.Name, a.Quarter, formatter.Days(days))
			return nil
		},
	}

	cmd.Flags().StringVar(&memberIn, "member", "", "Member name or ID")
	cmd.Flags().StringVar(&projectIn, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&phaseIn, "phase", "", "Phase name or ID")
	cmd.Flags().StringVar(&quarter, "quarter", "", "Quarter (e.g. \"Q1 2026\")")
	cmd.Flags().Float64Var(&days, "days", 0, "Committed days")
	cmd.Flags().BoolVar(&jiraSynced, "jira-synced", false, "Mark as covered by Jira items")

	return cmd
}

func newAssignListCmd(app *App) *cobra.Command {
	var quarter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var assignments []*domain.Assignment
			var err error
			if quarter != "" {
				assignments, err = app.Assignments.ListByQuarter(ctx, quarter)
			} else {
				assignments, err = app.Assignments.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No assignments."))
				return nil
			}

			names := newNameIndex(ctx, app)
			rows := make([][]string, 0, len(assignments))
			for _, a := range assignments {
				synced := ""
				if a.JiraSynced {
					synced = formatter.StyleBlue.Render("jira")
				}
				rows = append(rows, []string{
					formatter.TruncID(a.ID),
					names.member(a.MemberID),
					names.projectPhase(a.ProjectID, a.PhaseID),
					a.Quarter,
					formatter.Days(a.Days),
					synced,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "Member", "Phase", "Quarter", "Days", ""}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&quarter, "quarter", "", "Filter by quarter")
	return cmd
}

func newAssignRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assignments.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed assignment")
			return nil
		},
	}
}

// nameIndex resolves entity IDs to display names for list rendering. Lookup
// failures degrade to the truncated ID.
type nameIndex struct {
	members map[string]string
	phases  map[string]string
}

func newNameIndex(ctx context.Context, app *App) *nameIndex {
	idx := &nameIndex{
		members: make(map[string]string),
		phases:  make(map[string]string),
	}
	if members, err := app.Members.List(ctx); err == nil {
		for _, m := range members {
			idx.members[m.ID] = m.Name
		}
	}
	if projects, err := app.Projects.List(ctx); err == nil {
		for _, p := range projects {
			for i := range p.Phases {
				idx.phases[p.Phases[i].ID] = p.Name + " / " + p.Phases[i].Name
			}
		}
	}
	return idx
}

func (idx *nameIndex) member(id string) string {
	if name, ok := idx.members[id]; ok {
		return name
	}
	return formatter.TruncID(id)
}

func (idx *nameIndex) projectPhase(projectID, phaseID string) string {
	if name, ok := idx.phases[phaseID]; ok {
		return name
	}
	return formatter.TruncID(phaseID)
}
