package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/app"
	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

func newBusinessCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "business",
		Short: "Manage business contacts and their capacity",
	}

	cmd.AddCommand(
		newBusinessContactCmd(a),
		newBusinessAssignCmd(a),
		newBusinessTimeOffCmd(a),
		newBusinessHeatmapCmd(a),
	)

	return cmd
}

func newBusinessContactCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage business contacts",
	}

	var email, country, company string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a business contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.BusinessContact{
				ID:        uuid.New().String(),
				Name:      args[0],
				Email:     email,
				CountryID: country,
				Company:   company,
			}
			if err := a.Business.CreateContact(context.Background(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added contact %s [%s]\n", c.Name, c.ID[:8])
			return nil
		},
	}
	add.Flags().StringVar(&email, "email", "", "Email")
	add.Flags().StringVar(&country, "country", "", "Country code for public holidays")
	add.Flags().StringVar(&company, "company", "", "Company name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List business contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := a.Business.ListContacts(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(contacts))
			for _, c := range contacts {
				rows = append(rows, []string{
					formatter.TruncID(c.ID),
					formatter.Bold(c.Name),
					c.Company,
					c.Email,
					c.CountryID,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "Name", "Company", "Email", "Country"}, rows))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a business contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveContact(ctx, a, args[0])
			if err != nil {
				return err
			}
			if err := a.Business.DeleteContact(ctx, c.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed contact %s\n", c.Name)
			return nil
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func newBusinessAssignCmd(a *App) *cobra.Command {
	var projectIn, phaseIn, quarter, note string
	var days float64

	cmd := &cobra.Command{
		Use:   "assign <contact>",
		Short: "Commit a contact's days to a phase or quarter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveContact(ctx, a, args[0])
			if err != nil {
				return err
			}

			ba := &domain.BusinessAssignment{
				ID:        uuid.New().String(),
				ContactID: c.ID,
				Quarter:   quarter,
				Days:      days,
				Note:      note,
			}
			if projectIn != "" {
				p, err := resolveProject(ctx, a, projectIn)
				if err != nil {
					return err
				}
				ba.ProjectID = p.ID
				if phaseIn != "" {
					ph, err := resolvePhase(p, phaseIn)
					if err != nil {
						return err
					}
					ba.PhaseID = ph.ID
				}
			}

			if err := a.Business.Assign(ctx, ba); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s days of %s\n", formatter.Days(days), c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectIn, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&phaseIn, "phase", "", "Phase name or ID (range follows the phase)")
	cmd.Flags().StringVar(&quarter, "quarter", "", "Fixed quarter (when no phase is given)")
	cmd.Flags().Float64Var(&days, "days", 0, "Committed days")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")

	return cmd
}

func newBusinessTimeOffCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeoff",
		Short: "Manage contact time off",
	}

	add := &cobra.Command{
		Use:   "add <contact> <start> <end>",
		Short: "Record a time off range (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveContact(ctx, a, args[0])
			if err != nil {
				return err
			}
			t := &domain.BusinessTimeOff{
				ID:        uuid.New().String(),
				ContactID: c.ID,
				StartDate: args[1],
				EndDate:   args[2],
			}
			if err := a.Business.AddTimeOff(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added time off for %s: %s to %s\n", c.Name, t.StartDate, t.EndDate)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a time off entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Business.RemoveTimeOff(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed time off entry")
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newBusinessHeatmapCmd(a *App) *cobra.Command {
	var from string
	var quarters int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show contact capacity across quarters",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Planning.BusinessHeatmap(context.Background(), app.BusinessHeatmapRequest{
				StartQuarter: from,
				Quarters:     quarters,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBusinessHeatmap(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First quarter (defaults to current)")
	cmd.Flags().IntVar(&quarters, "quarters", 4, "Number of quarters")
	return cmd
}

func resolveContact(ctx context.Context, a *App, input string) (*domain.BusinessContact, error) {
	if input == "" {
		return nil, fmt.Errorf("contact is required")
	}

	contacts, err := a.Business.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range contacts {
		if strings.EqualFold(c.Name, input) || c.ID == input {
			return c, nil
		}
	}

	var matches []*domain.BusinessContact
	for _, c := range contacts {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("contact not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("contact %q is ambiguous (%d matches)", input, len(matches))
	}
}
