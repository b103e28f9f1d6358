package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/capplan/internal/app"
	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

type heatmapKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

var heatmapKeys = heatmapKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// heatmapModel is a read-only cell browser over a computed heatmap: arrow
// keys move the cursor, the pane below shows the selected cell's breakdown.
type heatmapModel struct {
	view *app.HeatmapView
	row  int
	col  int
}

func newHeatmapModel(view *app.HeatmapView) heatmapModel {
	return heatmapModel{view: view}
}

func (m heatmapModel) Init() tea.Cmd { return nil }

func (m heatmapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, heatmapKeys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, heatmapKeys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(keyMsg, heatmapKeys.Down):
		if m.row < len(m.view.Rows)-1 {
			m.row++
		}
	case key.Matches(keyMsg, heatmapKeys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(keyMsg, heatmapKeys.Right):
		if m.col < len(m.view.Quarters)-1 {
			m.col++
		}
	}
	return m, nil
}

func (m heatmapModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Capacity heatmap"))
	b.WriteString("\n\n")

	if len(m.view.Rows) == 0 {
		b.WriteString(formatter.Dim("No members.\n"))
		return b.String()
	}

	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑↓←→ move · q quit\n"))
	return b.String()
}

func (m heatmapModel) renderGrid() string {
	nameWidth := len("Member")
	for _, row := range m.view.Rows {
		if len(row.MemberName) > nameWidth {
			nameWidth = len(row.MemberName)
		}
	}

	const cellWidth = 10

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(pad("Member", nameWidth)))
	for _, q := range m.view.Quarters {
		b.WriteString("  " + formatter.StyleHeader.Render(pad(q, cellWidth)))
	}
	b.WriteString("\n")

	for ri, row := range m.view.Rows {
		b.WriteString(formatter.Bold(pad(row.MemberName, nameWidth)))
		for ci, cell := range row.Cells {
			text := fmt.Sprintf("%d%%", cell.UsedPercent)
			rendered := formatter.CapacityColor(cell.Status).Render(pad(text, cellWidth))
			if ri == m.row && ci == m.col {
				rendered = formatter.StyleHeader.Render(pad("["+text+"]", cellWidth))
			}
			b.WriteString("  " + rendered)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m heatmapModel) renderDetail() string {
	row := m.view.Rows[m.row]
	if m.col >= len(row.Cells) {
		return ""
	}
	cell := row.Cells[m.col]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s — %s  %s\n",
		formatter.Bold(row.MemberName), cell.Quarter, formatter.CapacityIndicator(cell.Status)))
	b.WriteString(fmt.Sprintf("%s of %s days used, %s free\n",
		formatter.Days(cell.UsedDays), formatter.Days(cell.TotalWorkdays), formatter.Days(cell.AvailableDays)))
	for _, item := range cell.Breakdown {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			formatter.Dim("·"), breakdownLine(item), formatter.Days(item.Days)))
	}
	return formatter.RenderBox("", b.String())
}

func breakdownLine(item domain.CapacityBreakdownItem) string {
	switch item.Type {
	case domain.BreakdownProject:
		return item.ProjectName + " / " + item.PhaseName
	case domain.BreakdownJira:
		return item.JiraKey
	case domain.BreakdownTimeOff:
		return "Time off"
	default:
		return "BAU"
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
