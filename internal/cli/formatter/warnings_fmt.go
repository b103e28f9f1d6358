package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capplan/internal/app"
	"github.com/alexanderramin/capplan/internal/capacity"
)

// FormatWarnings renders the team warning report for a quarter, one section
// per warning class. An empty report collapses to a single all-clear line.
func FormatWarnings(view *app.WarningsView) string {
	w := view.Warnings
	if len(w.Overallocated)+len(w.HighUtilization)+len(w.TooManyProjects)+len(w.SkillMismatch) == 0 {
		return StyleGreen.Render("✔") + " No capacity warnings for " + Bold(view.Quarter) + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Warnings — " + view.Quarter))
	b.WriteString("\n")

	writeMemberSection := func(title string, style func(...string) string, warnings []capacity.MemberWarning, detail func(capacity.MemberWarning) string) {
		if len(warnings) == 0 {
			return
		}
		b.WriteString("\n" + style(title) + "\n")
		for _, mw := range warnings {
			b.WriteString(fmt.Sprintf("  %s  %s\n", Bold(mw.MemberName), detail(mw)))
		}
	}

	writeMemberSection("Overallocated", StyleRed.Render, w.Overallocated, func(mw capacity.MemberWarning) string {
		return fmt.Sprintf("%d%% (%s days committed)", mw.UsedPercent, Days(mw.UsedDays))
	})
	writeMemberSection("High utilization", StyleYellow.Render, w.HighUtilization, func(mw capacity.MemberWarning) string {
		return fmt.Sprintf("%d%%", mw.UsedPercent)
	})
	writeMemberSection("Too many projects", StyleYellow.Render, w.TooManyProjects, func(mw capacity.MemberWarning) string {
		return fmt.Sprintf("%d concurrent projects", mw.Detail)
	})

	if len(w.SkillMismatch) > 0 {
		b.WriteString("\n" + StylePurple.Render("Skill mismatches") + "\n")
		for _, sm := range w.SkillMismatch {
			b.WriteString(fmt.Sprintf("  %s on %s / %s %s\n",
				Bold(sm.MemberName), sm.ProjectName, sm.PhaseName,
				Dim("missing: "+strings.Join(sm.MissingSkills, ", "))))
		}
	}

	return b.String()
}

// FormatSuggestions renders ranked assignee candidates with their scoring
// reasons.
func FormatSuggestions(resp *app.SuggestResponse) string {
	if len(resp.Suggestions) == 0 {
		return Dim("No candidates found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Suggested assignees"))
	b.WriteString("\n")
	for i, s := range resp.Suggestions {
		skills := StyleGreen.Render("skills ✔")
		if !s.SkillsMatched {
			skills = StyleRed.Render("skills ✘")
		}
		b.WriteString(fmt.Sprintf("\n%d. %s  %s  %s free, %d%% used  %s\n",
			i+1, Bold(s.MemberName),
			Dim(fmt.Sprintf("score %.0f", s.Score)),
			Days(s.AvailableDays), s.UsedPercent, skills))
		for _, r := range s.Reasons {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("·"), Dim(r.Message)))
		}
	}
	return b.String()
}
