// Package calendar provides quarter and working-day arithmetic. All
// functions degrade to zero values on unparseable input instead of
// returning errors, since they back live report computation.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the canonical ISO representation for stored dates.
const DateLayout = "2006-01-02"

var (
	quarterPattern    = regexp.MustCompile(`^Q([1-4])\s+(\d{4})$`)
	altQuarterPattern = regexp.MustCompile(`^(\d{4})-Q([1-4])$`)
)

// Quarter is a parsed quarter label. Start and End are the first and last
// calendar day of the quarter; End is inclusive.
type Quarter struct {
	Number int
	Year   int
	Start  time.Time
	End    time.Time
}

// Label returns the canonical "Q<n> <yyyy>" form.
func (q Quarter) Label() string {
	return fmt.Sprintf("Q%d %d", q.Number, q.Year)
}

// ParseQuarter parses a quarter label. The canonical form is "Q<n> <yyyy>";
// "<yyyy>-Q<n>" is additionally accepted. Returns nil for any other shape.
func ParseQuarter(label string) *Quarter {
	var numStr, yearStr string
	if m := quarterPattern.FindStringSubmatch(label); m != nil {
		numStr, yearStr = m[1], m[2]
	} else if m := altQuarterPattern.FindStringSubmatch(label); m != nil {
		yearStr, numStr = m[1], m[2]
	} else {
		return nil
	}

	num, _ := strconv.Atoi(numStr)
	year, _ := strconv.Atoi(yearStr)

	startMonth := time.Month((num-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1) // last day of the third month
	return &Quarter{Number: num, Year: year, Start: start, End: end}
}

// QuarterForDate returns the quarter containing the given date.
func QuarterForDate(t time.Time) Quarter {
	num := (int(t.Month())-1)/3 + 1
	start := time.Date(t.Year(), time.Month((num-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	return Quarter{
		Number: num,
		Year:   t.Year(),
		Start:  start,
		End:    start.AddDate(0, 3, -1),
	}
}

// CompareQuarters orders two quarter labels by year, then quarter number.
// Returns -1, 0 or 1. An unparseable label sorts before any valid one.
func CompareQuarters(a, b string) int {
	qa, qb := ParseQuarter(a), ParseQuarter(b)
	switch {
	case qa == nil && qb == nil:
		return 0
	case qa == nil:
		return -1
	case qb == nil:
		return 1
	}
	if qa.Year != qb.Year {
		if qa.Year < qb.Year {
			return -1
		}
		return 1
	}
	if qa.Number != qb.Number {
		if qa.Number < qb.Number {
			return -1
		}
		return 1
	}
	return 0
}

// NextQuarter returns the label of the quarter after the given one, or ""
// for an unparseable label.
func NextQuarter(label string) string {
	q := ParseQuarter(label)
	if q == nil {
		return ""
	}
	if q.Number == 4 {
		return Quarter{Number: 1, Year: q.Year + 1}.Label()
	}
	return Quarter{Number: q.Number + 1, Year: q.Year}.Label()
}

// PreviousQuarter returns the label of the quarter before the given one, or
// "" for an unparseable label.
func PreviousQuarter(label string) string {
	q := ParseQuarter(label)
	if q == nil {
		return ""
	}
	if q.Number == 1 {
		return Quarter{Number: 4, Year: q.Year - 1}.Label()
	}
	return Quarter{Number: q.Number - 1, Year: q.Year}.Label()
}

// QuartersBetween returns all quarter labels from a to b inclusive, in
// order. Returns nil when either label is unparseable or a is after b.
func QuartersBetween(a, b string) []string {
	if ParseQuarter(a) == nil || ParseQuarter(b) == nil || CompareQuarters(a, b) > 0 {
		return nil
	}
	var out []string
	cur := ParseQuarter(a).Label()
	for {
		out = append(out, cur)
		if CompareQuarters(cur, b) == 0 {
			return out
		}
		cur = NextQuarter(cur)
	}
}

// IsQuarterInRange reports whether q falls within [start, end] inclusive.
// Returns false when any label is unparseable.
func IsQuarterInRange(q, start, end string) bool {
	if ParseQuarter(q) == nil || ParseQuarter(start) == nil || ParseQuarter(end) == nil {
		return false
	}
	return CompareQuarters(q, start) >= 0 && CompareQuarters(q, end) <= 0
}

// ParseDate parses an ISO yyyy-mm-dd date string.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
