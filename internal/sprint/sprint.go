// Package sprint generates deterministic sprint calendars and maps Jira
// sprint names onto quarters.
package sprint

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
)

// Sprint is one generated sprint. Bye weeks appear as one-week entries with
// IsBye set; they carry no number and consume no capacity.
type Sprint struct {
	Number    int
	Year      int
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Quarter   string
	IsBye     bool
}

// firstMonday returns the first Monday of the given year.
func firstMonday(year int) time.Time {
	d := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// GenerateSprintsForYear produces the sprint calendar for one year. The
// sequence is fully determined by (year, settings): sprints start at the
// configured start date (first Monday of the year when unset) and follow
// each other without gaps, except that a one-week bye entry is inserted
// immediately after each sprint number listed in ByeWeeksAfter.
func GenerateSprintsForYear(year int, settings domain.SprintSettings) []Sprint {
	weeks := settings.SprintDurationWeeks
	if weeks <= 0 {
		weeks = 2
	}
	count := settings.SprintsPerYear
	if count <= 0 {
		count = 26
	}

	start := firstMonday(year)
	if settings.StartDate != "" {
		if d, ok := calendar.ParseDate(settings.StartDate); ok {
			start = d
		}
	}

	byeAfter := make(map[int]bool, len(settings.ByeWeeksAfter))
	for _, n := range settings.ByeWeeksAfter {
		byeAfter[n] = true
	}

	var sprints []Sprint
	cur := start
	for n := 1; n <= count; n++ {
		end := cur.AddDate(0, 0, weeks*7-1)
		sprints = append(sprints, Sprint{
			Number:    n,
			Year:      year,
			Name:      "Sprint " + strconv.Itoa(n),
			StartDate: cur,
			EndDate:   end,
			Quarter:   calendar.QuarterForDate(cur).Label(),
		})
		cur = end.AddDate(0, 0, 1)

		if byeAfter[n] {
			byeEnd := cur.AddDate(0, 0, 6)
			sprints = append(sprints, Sprint{
				Year:      year,
				Name:      "Bye week",
				StartDate: cur,
				EndDate:   byeEnd,
				Quarter:   calendar.QuarterForDate(cur).Label(),
				IsBye:     true,
			})
			cur = byeEnd.AddDate(0, 0, 1)
		}
	}
	return sprints
}

// SprintsForQuarter filters sprints by their owning quarter.
func SprintsForQuarter(quarter string, sprints []Sprint) []Sprint {
	var out []Sprint
	for _, s := range sprints {
		if s.Quarter == quarter {
			out = append(out, s)
		}
	}
	return out
}

// WorkingDaysInSprint counts working days within the sprint's date range,
// applying the same weekend and holiday exclusions as the calendar package.
// Bye weeks count as zero.
func WorkingDaysInSprint(s Sprint, holidays []domain.PublicHoliday) int {
	if s.IsBye {
		return 0
	}
	return calendar.CountWorkingDays(s.StartDate, s.EndDate, holidays)
}

// Reference is a sprint ordinal extracted from free text, with an optional
// year when the text carries one.
type Reference struct {
	Number int
	Year   *int
}

var (
	sprintNumPattern = regexp.MustCompile(`(?i)sprint\s*#?\s*(\d+)`)
	yearPattern      = regexp.MustCompile(`\b(20\d{2})\b`)
)

// ParseSprintReference extracts a sprint ordinal (and optional year) from a
// free-text sprint name such as one Jira might return. Returns nil when no
// ordinal is present.
func ParseSprintReference(text string) *Reference {
	m := sprintNumPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	num, _ := strconv.Atoi(m[1])
	ref := &Reference{Number: num}
	if ym := yearPattern.FindStringSubmatch(text); ym != nil {
		y, _ := strconv.Atoi(ym[1])
		ref.Year = &y
	}
	return ref
}

// MapSprintNameToQuarter resolves a Jira sprint name to a quarter label by
// fuzzy match: the first configured sprint whose name is a case-insensitive
// substring of the given name wins. Returns "" when nothing matches.
func MapSprintNameToQuarter(sprintName string, sprints []Sprint) string {
	lower := strings.ToLower(sprintName)
	for _, s := range sprints {
		if s.Name == "" || s.IsBye {
			continue
		}
		if strings.Contains(lower, strings.ToLower(s.Name)) {
			return s.Quarter
		}
	}
	return ""
}
