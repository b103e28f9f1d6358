package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

func newJiraCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jira",
		Short: "Manage synced Jira work items",
	}

	cmd.AddCommand(
		newJiraUpsertCmd(app),
		newJiraListCmd(app),
		newJiraRemoveCmd(app),
	)

	return cmd
}

func newJiraUpsertCmd(app *App) *cobra.Command {
	var parentKey, summary, itemType, statusCategory, assignee, sprintName, confidence string
	var projectIn, phaseIn string
	var points float64

	cmd := &cobra.Command{
		Use:   "upsert <key>",
		Short: "Create or update a Jira item by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			item := &domain.JiraItem{
				JiraKey:         args[0],
				ParentKey:       parentKey,
				Summary:         summary,
				Type:            itemType,
				StatusCategory:  domain.StatusCategory(statusCategory),
				AssigneeEmail:   assignee,
				SprintName:      sprintName,
				ConfidenceLevel: domain.ConfidenceLevel(confidence),
			}
			if cmd.Flags().Changed("points") {
				item.StoryPoints = &points
			}
			if projectIn != "" {
				p, err := resolveProject(ctx, app, projectIn)
				if err != nil {
					return err
				}
				item.MappedProjectID = p.ID
				if phaseIn != "" {
					ph, err := resolvePhase(p, phaseIn)
					if err != nil {
						return err
					}
					item.MappedPhaseID = ph.ID
				}
			}

			if err := app.Jira.Upsert(ctx, item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Upserted %s\n", item.JiraKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&parentKey, "parent", "", "Parent item key")
	cmd.Flags().StringVar(&summary, "summary", "", "Item summary")
	cmd.Flags().StringVar(&itemType, "type", "", "Item type (epic, feature, story, task, bug)")
	cmd.Flags().StringVar(&statusCategory, "status", "", "Status category (todo, in_progress, done)")
	cmd.Flags().Float64Var(&points, "points", 0, "Story points (1 point = 1 raw day)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee email")
	cmd.Flags().StringVar(&sprintName, "sprint", "", "Sprint name")
	cmd.Flags().StringVar(&confidence, "confidence", "", "Confidence (high, medium, low)")
	cmd.Flags().StringVar(&projectIn, "project", "", "Mapped project")
	cmd.Flags().StringVar(&phaseIn, "phase", "", "Mapped phase")

	return cmd
}

func newJiraListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Jira items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Jira.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No Jira items."))
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				points := formatter.Dim("—")
				if item.StoryPoints != nil {
					points = formatter.Days(*item.StoryPoints)
				}
				rows = append(rows, []string{
					formatter.Bold(item.JiraKey),
					formatter.Dim(item.ParentKey),
					item.Summary,
					formatter.Dim(item.Type),
					string(item.StatusCategory),
					points,
					item.SprintName,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"Key", "Parent", "Summary", "Type", "Status", "Points", "Sprint"}, rows))
			return nil
		},
	}
}

func newJiraRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a Jira item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Jira.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}
