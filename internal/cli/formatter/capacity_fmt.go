package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capplan/internal/app"
	"github.com/alexanderramin/capplan/internal/domain"
)

// FormatCapacityReport renders one member's quarter capacity with the
// per-source breakdown.
func FormatCapacityReport(view *app.CapacityReportView) string {
	r := view.Result

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s — %s", view.MemberName, r.Quarter)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n\n", CapacityIndicator(r.Status), UtilizationBar(r.UsedPercent, 20)))

	b.WriteString(fmt.Sprintf("Working days   %s\n", Bold(Days(r.TotalWorkdays))))
	b.WriteString(fmt.Sprintf("Used           %s\n", Bold(Days(r.UsedDays))))
	available := Days(r.AvailableDays)
	if r.AvailableDaysRaw < 0 {
		available = StyleRed.Render(fmt.Sprintf("0 (%s over)", Days(-r.AvailableDaysRaw)))
	}
	b.WriteString(fmt.Sprintf("Available      %s\n", available))

	if len(r.Breakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Breakdown"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(r.Breakdown))
		for _, item := range r.Breakdown {
			rows = append(rows, []string{breakdownLabel(item), breakdownDetail(item), Days(item.Days)})
		}
		b.WriteString(RenderTable([]string{"Source", "Detail", "Days"}, rows))
	}

	return b.String()
}

func breakdownLabel(item domain.CapacityBreakdownItem) string {
	switch item.Type {
	case domain.BreakdownBAU:
		return StylePurple.Render("BAU")
	case domain.BreakdownTimeOff:
		return StyleBlue.Render("Time off")
	case domain.BreakdownProject:
		return StyleFg.Render("Project")
	case domain.BreakdownJira:
		return StyleBlue.Render("Jira")
	default:
		return string(item.Type)
	}
}

func breakdownDetail(item domain.CapacityBreakdownItem) string {
	switch item.Type {
	case domain.BreakdownProject:
		return fmt.Sprintf("%s / %s", item.ProjectName, item.PhaseName)
	case domain.BreakdownJira:
		return fmt.Sprintf("%s %s", item.JiraKey, Dim(item.Summary))
	default:
		return Dim("—")
	}
}

// FormatTeamSummary renders the team-wide utilization tally for a quarter.
func FormatTeamSummary(view *app.TeamSummaryView) string {
	s := view.Summary

	var b strings.Builder
	b.WriteString(Header("Team — " + s.Quarter))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Members          %s\n", Bold(fmt.Sprintf("%d", s.TotalMembers))))
	b.WriteString(fmt.Sprintf("Normal           %s\n", StyleGreen.Render(fmt.Sprintf("%d", s.Normal))))
	b.WriteString(fmt.Sprintf("High load        %s\n", StyleYellow.Render(fmt.Sprintf("%d", s.HighUtilization))))
	b.WriteString(fmt.Sprintf("Overallocated    %s\n", StyleRed.Render(fmt.Sprintf("%d", s.Overallocated))))
	b.WriteString(fmt.Sprintf("Avg utilization  %s\n", UtilizationBar(s.AverageUtilization, 20)))
	return b.String()
}

// FormatHeatmap renders the team heatmap as a member-by-quarter table of
// used percentages.
func FormatHeatmap(view *app.HeatmapView) string {
	headers := append([]string{"Member"}, view.Quarters...)

	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		cells := []string{row.MemberName}
		for _, c := range row.Cells {
			cells = append(cells, PercentCell(c.UsedPercent, c.Status))
		}
		rows = append(rows, cells)
	}

	return Header("Capacity heatmap") + "\n" + RenderTable(headers, rows)
}

// FormatBusinessHeatmap renders the business contact heatmap. Quarters with
// no working days show a dash, full time-off quarters show "off".
func FormatBusinessHeatmap(view *app.BusinessHeatmapView) string {
	headers := append([]string{"Contact", "Company"}, view.Quarters...)

	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		cells := []string{row.ContactName, Dim(row.Company)}
		for _, c := range row.Cells {
			cells = append(cells, businessCell(c))
		}
		rows = append(rows, cells)
	}

	return Header("Business heatmap") + "\n" + RenderTable(headers, rows)
}

func businessCell(c domain.BusinessCellData) string {
	switch {
	case c.IsPublicHoliday:
		return Dim("—")
	case c.IsTimeOff:
		return StyleBlue.Render("off")
	case c.UsedPercent > 100:
		return StyleRed.Render(fmt.Sprintf("%d%%", c.UsedPercent))
	case c.UsedPercent > 90:
		return StyleYellow.Render(fmt.Sprintf("%d%%", c.UsedPercent))
	default:
		return StyleGreen.Render(fmt.Sprintf("%d%%", c.UsedPercent))
	}
}
