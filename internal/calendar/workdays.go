package calendar

import (
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
)

// IsWeekend reports whether the date is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// holidaySet indexes holiday dates by their ISO day string.
func holidaySet(holidays []domain.PublicHoliday) map[string]bool {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[h.Date] = true
	}
	return set
}

// CountWorkingDays scans the inclusive range day by day and counts days that
// are neither weekend days nor listed holidays. Holidays must already be
// filtered to the relevant country. Returns 0 when start is after end.
func CountWorkingDays(start, end time.Time, holidays []domain.PublicHoliday) int {
	if start.After(end) {
		return 0
	}
	set := holidaySet(holidays)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) || set[d.Format(DateLayout)] {
			continue
		}
		count++
	}
	return count
}

// CountWorkingDaysInQuarter counts working days across a whole quarter.
// Returns 0 for an unparseable label.
func CountWorkingDaysInQuarter(label string, holidays []domain.PublicHoliday) int {
	q := ParseQuarter(label)
	if q == nil {
		return 0
	}
	return CountWorkingDays(q.Start, q.End, holidays)
}

// CountWorkingDaysClamped counts the working days of [startDate, endDate]
// after clamping the range to the quarter's boundaries. Used to prorate
// time off that spans a quarter boundary. Returns 0 for unparseable input
// or an empty intersection.
func CountWorkingDaysClamped(startDate, endDate, quarterLabel string, holidays []domain.PublicHoliday) int {
	q := ParseQuarter(quarterLabel)
	if q == nil {
		return 0
	}
	start, ok := ParseDate(startDate)
	if !ok {
		return 0
	}
	end, ok := ParseDate(endDate)
	if !ok {
		return 0
	}
	if start.Before(q.Start) {
		start = q.Start
	}
	if end.After(q.End) {
		end = q.End
	}
	return CountWorkingDays(start, end, holidays)
}

// ProrateToWindow distributes totalDays across [rangeStart, rangeEnd]
// proportionally to working-day density and returns the share falling inside
// [windowStart, windowEnd]. Returns 0 when the full range has no working
// days or the window does not overlap it. Holidays and weekends are unevenly
// distributed, so proration is by working days, never calendar days.
func ProrateToWindow(totalDays float64, rangeStart, rangeEnd, windowStart, windowEnd time.Time, holidays []domain.PublicHoliday) float64 {
	full := CountWorkingDays(rangeStart, rangeEnd, holidays)
	if full == 0 {
		return 0
	}
	overlapStart := rangeStart
	if windowStart.After(overlapStart) {
		overlapStart = windowStart
	}
	overlapEnd := rangeEnd
	if windowEnd.Before(overlapEnd) {
		overlapEnd = windowEnd
	}
	overlap := CountWorkingDays(overlapStart, overlapEnd, holidays)
	if overlap == 0 {
		return 0
	}
	return totalDays * float64(overlap) / float64(full)
}
