package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage team members",
	}

	cmd.AddCommand(
		newMemberAddCmd(app),
		newMemberListCmd(app),
		newMemberRemoveCmd(app),
		newMemberSkillsCmd(app),
		newMemberTimeOffCmd(app),
	)

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var email, country, role string
	var skills []string
	var maxProjects int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			skillIDs, err := resolveSkillIDs(ctx, app, skills)
			if err != nil {
				return err
			}

			m := &domain.TeamMember{
				Name:                  args[0],
				Email:                 email,
				CountryID:             country,
				Role:                  role,
				SkillIDs:              skillIDs,
				MaxConcurrentProjects: maxProjects,
			}
			if err := app.Members.Create(ctx, m); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added member %s [%s]\n", m.Name, m.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email (matches Jira assignees)")
	cmd.Flags().StringVar(&country, "country", "", "Country code for public holidays")
	cmd.Flags().StringVar(&role, "role", "", "Role description")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Skill names (comma-separated)")
	cmd.Flags().IntVar(&maxProjects, "max-projects", 0, "Concurrent project limit (0 = unlimited)")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Members.List(context.Background())
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No members yet. Add one with 'capplan member add'."))
				return nil
			}

			rows := make([][]string, 0, len(members))
			for _, m := range members {
				rows = append(rows, []string{
					formatter.TruncID(m.ID),
					formatter.Bold(m.Name),
					m.Email,
					m.CountryID,
					m.Role,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "Name", "Email", "Country", "Role"}, rows))
			return nil
		},
	}
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <member>",
		Short: "Remove a member and their assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMember(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Members.Delete(ctx, m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed member %s\n", m.Name)
			return nil
		},
	}
}

func newMemberSkillsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skills <member> <skill>...",
		Short: "Replace a member's skill set",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMember(ctx, app, args[0])
			if err != nil {
				return err
			}
			skillIDs, err := resolveSkillIDs(ctx, app, args[1:])
			if err != nil {
				return err
			}
			if err := app.Members.SetSkills(ctx, m.ID, skillIDs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set skills for %s: %s\n", m.Name, strings.Join(args[1:], ", "))
			return nil
		},
	}
}

func newMemberTimeOffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeoff",
		Short: "Manage member time off",
	}

	var note string
	add := &cobra.Command{
		Use:   "add <member> <start> <end>",
		Short: "Record a time off range (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMember(ctx, app, args[0])
			if err != nil {
				return err
			}
			t := &domain.TimeOff{
				ID:        uuid.New().String(),
				MemberID:  m.ID,
				StartDate: args[1],
				EndDate:   args[2],
				Note:      note,
			}
			if err := app.Members.AddTimeOff(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added time off for %s: %s to %s\n", m.Name, t.StartDate, t.EndDate)
			return nil
		},
	}
	add.Flags().StringVar(&note, "note", "", "Optional note")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a time off entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Members.RemoveTimeOff(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed time off entry")
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newSkillCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Manage the skill catalog",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sk := &domain.Skill{Name: args[0]}
			if err := app.Skills.Upsert(context.Background(), sk); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added skill %s\n", sk.Name)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := app.Skills.List(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(skills))
			for _, sk := range skills {
				rows = append(rows, []string{formatter.TruncID(sk.ID), sk.Name})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "Name"}, rows))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage public holidays",
	}

	var name string
	add := &cobra.Command{
		Use:   "add <date> <country>",
		Short: "Add a public holiday (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &domain.PublicHoliday{
				ID:        uuid.New().String(),
				Date:      args[0],
				CountryID: args[1],
				Name:      name,
			}
			if err := app.Calendar.AddHoliday(context.Background(), h); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added holiday %s (%s)\n", h.Date, h.CountryID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "Holiday name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List public holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays, err := app.Calendar.ListHolidays(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(holidays))
			for _, h := range holidays {
				rows = append(rows, []string{h.Date, h.CountryID, h.Name})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"Date", "Country", "Name"}, rows))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a public holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Calendar.RemoveHoliday(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed holiday")
			return nil
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}
