package formatter

import (
	"fmt"

	"github.com/alexanderramin/capplan/internal/app"
)

// FormatSprints renders the generated sprint calendar for one year.
func FormatSprints(view *app.SprintsView) string {
	rows := make([][]string, 0, len(view.Sprints))
	for _, s := range view.Sprints {
		name := Bold(s.Name)
		days := Days(float64(s.WorkingDays))
		if s.IsBye {
			name = StylePurple.Render(s.Name)
			days = Dim("—")
		}
		rows = append(rows, []string{name, s.StartDate, s.EndDate, Dim(s.Quarter), days})
	}

	title := fmt.Sprintf("Sprints %d", view.Year)
	return Header(title) + "\n" + RenderTable([]string{"Sprint", "Start", "End", "Quarter", "Work days"}, rows)
}

// FormatRollup renders the Jira story point rollup, one row per top-level
// item.
func FormatRollup(view *app.RollupView) string {
	if len(view.Rows) == 0 {
		return Dim("No Jira items to roll up.") + "\n"
	}

	rows := make([][]string, 0, len(view.Rows))
	var totalRaw, totalForecast float64
	for _, r := range view.Rows {
		rows = append(rows, []string{
			Bold(r.JiraKey),
			r.Summary,
			Dim(r.Type),
			Days(r.Entry.RawDays),
			Days(r.Entry.ForecastedDays),
			fmt.Sprintf("%d", r.Entry.ItemCount),
		})
		totalRaw += r.Entry.RawDays
		totalForecast += r.Entry.ForecastedDays
	}
	rows = append(rows, []string{
		StyleHeader.Render("Total"), "", "",
		Bold(Days(totalRaw)), Bold(Days(totalForecast)), "",
	})

	return Header("Jira rollup") + "\n" +
		RenderTable([]string{"Key", "Summary", "Type", "Raw", "Forecast", "Items"}, rows)
}
