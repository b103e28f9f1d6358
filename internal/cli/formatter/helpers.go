package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/capplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// UtilizationBar renders a fixed-width bar for a used percentage, colored by
// the same thresholds the capacity engine applies.
func UtilizationBar(usedPercent, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := usedPercent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	style := StyleGreen
	switch {
	case usedPercent > 100:
		style = StyleRed
	case usedPercent > 90:
		style = StyleYellow
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, style.Render(fmt.Sprintf("%d%%", usedPercent)))
}

// PercentCell renders a used percentage colored by capacity status.
func PercentCell(usedPercent int, status domain.CapacityStatus) string {
	return CapacityColor(status).Render(fmt.Sprintf("%d%%", usedPercent))
}

// Days formats a day count, dropping a trailing ".0".
func Days(d float64) string {
	if d == float64(int64(d)) {
		return fmt.Sprintf("%d", int64(d))
	}
	return fmt.Sprintf("%.1f", d)
}

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.ProjectOnHold:
		return StyleYellow.Render("◌ On Hold")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// ConfidenceBadge returns a colored confidence level label.
func ConfidenceBadge(level domain.ConfidenceLevel) string {
	switch level {
	case domain.ConfidenceHigh:
		return StyleGreen.Render("high")
	case domain.ConfidenceMedium:
		return StyleYellow.Render("medium")
	case domain.ConfidenceLow:
		return StyleRed.Render("low")
	default:
		return StyleDim.Render("default")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
