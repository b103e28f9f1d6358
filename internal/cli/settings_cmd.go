package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change planning settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", formatter.Header("Settings"))
			fmt.Fprintf(out, "BAU reserve       %s days per quarter\n", formatter.Bold(formatter.Days(s.BAUReserveDays)))
			fmt.Fprintf(out, "Default country   %s\n", orDim(s.DefaultCountryID))
			fmt.Fprintf(out, "Confidence        high %s%%, medium %s%%, low %s%% (default %s)\n",
				formatter.Days(s.Confidence.High), formatter.Days(s.Confidence.Medium),
				formatter.Days(s.Confidence.Low), formatter.ConfidenceBadge(s.Confidence.DefaultLevel))
			fmt.Fprintf(out, "Jira confidence   high %s%%, medium %s%%, low %s%% (default %s)\n",
				formatter.Days(s.JiraConfidence.High), formatter.Days(s.JiraConfidence.Medium),
				formatter.Days(s.JiraConfidence.Low), formatter.ConfidenceBadge(s.JiraConfidence.DefaultLevel))
			fmt.Fprintf(out, "Sprints           %d per year, %d weeks each\n",
				s.Sprint.SprintsPerYear, s.Sprint.SprintDurationWeeks)
			if s.Sprint.StartDate != "" {
				fmt.Fprintf(out, "Sprint start      %s\n", s.Sprint.StartDate)
			}
			if len(s.Sprint.ByeWeeksAfter) > 0 {
				parts := make([]string, len(s.Sprint.ByeWeeksAfter))
				for i, n := range s.Sprint.ByeWeeksAfter {
					parts[i] = fmt.Sprintf("%d", n)
				}
				fmt.Fprintf(out, "Bye weeks after   sprints %s\n", strings.Join(parts, ", "))
			}
			return nil
		},
	}
}

func orDim(s string) string {
	if s == "" {
		return formatter.Dim("(not set)")
	}
	return s
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var bau float64
	var country, confDefault, jiraDefault, sprintStart string
	var sprintWeeks, sprintsPerYear int
	var byeAfter []int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings (only provided flags are applied)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("bau") {
				s.BAUReserveDays = bau
			}
			if flags.Changed("default-country") {
				s.DefaultCountryID = country
			}
			if flags.Changed("confidence-default") {
				s.Confidence.DefaultLevel = domain.ConfidenceLevel(confDefault)
			}
			if flags.Changed("jira-confidence-default") {
				s.JiraConfidence.DefaultLevel = domain.ConfidenceLevel(jiraDefault)
			}
			if flags.Changed("sprint-weeks") {
				s.Sprint.SprintDurationWeeks = sprintWeeks
			}
			if flags.Changed("sprints-per-year") {
				s.Sprint.SprintsPerYear = sprintsPerYear
			}
			if flags.Changed("sprint-start") {
				s.Sprint.StartDate = sprintStart
			}
			if flags.Changed("bye-after") {
				s.Sprint.ByeWeeksAfter = byeAfter
			}

			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings updated")
			return nil
		},
	}

	cmd.Flags().Float64Var(&bau, "bau", 0, "BAU reserve days per quarter")
	cmd.Flags().StringVar(&country, "default-country", "", "Default country for holidays")
	cmd.Flags().StringVar(&confDefault, "confidence-default", "", "Default confidence level")
	cmd.Flags().StringVar(&jiraDefault, "jira-confidence-default", "", "Default Jira confidence level")
	cmd.Flags().IntVar(&sprintWeeks, "sprint-weeks", 0, "Sprint duration in weeks")
	cmd.Flags().IntVar(&sprintsPerYear, "sprints-per-year", 0, "Sprints per year")
	cmd.Flags().StringVar(&sprintStart, "sprint-start", "", "First sprint start date (YYYY-MM-DD)")
	cmd.Flags().IntSliceVar(&byeAfter, "bye-after", nil, "Sprint numbers followed by a bye week")

	return cmd
}
