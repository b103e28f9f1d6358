package capacity

import (
	"testing"
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessCapacityForWindow_ProratesByWorkingDays(t *testing.T) {
	contact := &domain.BusinessContact{ID: "c-1", Name: "Quinn"}
	projects := []domain.Project{{
		ID: "p-1",
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1",
			// Two equal five-workday weeks: Jan 5 – Jan 18 2026.
			StartDate: "2026-01-05", EndDate: "2026-01-18",
		}},
	}}
	assignments := []domain.BusinessAssignment{
		{ID: "b-1", ContactID: "c-1", ProjectID: "p-1", PhaseID: "ph-1", Days: 10},
	}

	week1 := BusinessCapacityForWindow(contact, day(2026, 1, 5), day(2026, 1, 11), assignments, nil, nil, projects)
	assert.Equal(t, 5.0, week1.AvailableDays)
	assert.InDelta(t, 5.0, week1.AllocatedDays, 1e-9)
	assert.Equal(t, 100, week1.UsedPercent)

	week2 := BusinessCapacityForWindow(contact, day(2026, 1, 12), day(2026, 1, 18), assignments, nil, nil, projects)
	assert.InDelta(t, 5.0, week2.AllocatedDays, 1e-9)
}

func TestBusinessCapacityForWindow_QuarterDenominatedAssignment(t *testing.T) {
	contact := &domain.BusinessContact{ID: "c-1"}
	assignments := []domain.BusinessAssignment{
		{ID: "b-1", ContactID: "c-1", Quarter: "Q1 2026", Days: 64},
	}
	// One working week of a 64-workday quarter gets 64 * 5/64 = 5 days.
	cell := BusinessCapacityForWindow(contact, day(2026, 1, 5), day(2026, 1, 11), assignments, nil, nil, nil)
	assert.InDelta(t, 5.0, cell.AllocatedDays, 1e-9)
}

func TestBusinessCapacityForWindow_TimeOffReducesAvailability(t *testing.T) {
	contact := &domain.BusinessContact{ID: "c-1"}
	timeOff := []domain.BusinessTimeOff{
		{ID: "t-1", ContactID: "c-1", StartDate: "2026-01-05", EndDate: "2026-01-06"},
	}
	cell := BusinessCapacityForWindow(contact, day(2026, 1, 5), day(2026, 1, 9), nil, timeOff, nil, nil)
	assert.Equal(t, 3.0, cell.AvailableDays)
	assert.False(t, cell.IsTimeOff)
}

func TestBusinessCapacityForWindow_FullTimeOffFlagged(t *testing.T) {
	contact := &domain.BusinessContact{ID: "c-1"}
	timeOff := []domain.BusinessTimeOff{
		{ID: "t-1", ContactID: "c-1", StartDate: "2026-01-05", EndDate: "2026-01-09"},
	}
	cell := BusinessCapacityForWindow(contact, day(2026, 1, 5), day(2026, 1, 9), nil, timeOff, nil, nil)
	assert.True(t, cell.IsTimeOff)
	assert.Zero(t, cell.AvailableDays)
	assert.Zero(t, cell.UsedPercent, "no division by zero")
}

func TestBusinessCapacityForWindow_AllHolidayWindow(t *testing.T) {
	contact := &domain.BusinessContact{ID: "c-1"}
	holidays := []domain.PublicHoliday{{Date: "2026-01-05"}, {Date: "2026-01-06"}}
	cell := BusinessCapacityForWindow(contact, day(2026, 1, 5), day(2026, 1, 6), nil, nil, holidays, nil)
	assert.True(t, cell.IsPublicHoliday)
	assert.Zero(t, cell.AvailableDays)
}

func TestBusinessCapacityForWindow_OtherContactsIgnored(t *testing.T) {
	contact := &domain.BusinessContact{ID: "c-1"}
	assignments := []domain.BusinessAssignment{
		{ID: "b-1", ContactID: "c-2", Quarter: "Q1 2026", Days: 40},
	}
	timeOff := []domain.BusinessTimeOff{
		{ID: "t-1", ContactID: "c-2", StartDate: "2026-01-05", EndDate: "2026-01-09"},
	}
	cell := BusinessCapacityForWindow(contact, day(2026, 1, 5), day(2026, 1, 9), assignments, timeOff, nil, nil)
	assert.Zero(t, cell.AllocatedDays)
	assert.Equal(t, 5.0, cell.AvailableDays)
}

func TestBusinessCapacityForWindow_UnresolvableRangeSkipped(t *testing.T) {
	contact := &domain.BusinessContact{ID: "c-1"}
	assignments := []domain.BusinessAssignment{
		{ID: "b-1", ContactID: "c-1", PhaseID: "missing-phase", Days: 10},
		{ID: "b-2", ContactID: "c-1", Quarter: "not a quarter", Days: 10},
	}
	cell := BusinessCapacityForWindow(contact, day(2026, 1, 5), day(2026, 1, 9), assignments, nil, nil, nil)
	assert.Zero(t, cell.AllocatedDays)
}

func TestBusinessCapacityForWindow_NilContact(t *testing.T) {
	cell := BusinessCapacityForWindow(nil, day(2026, 1, 5), day(2026, 1, 9), nil, nil, nil, nil)
	assert.Equal(t, domain.BusinessCellData{}, cell)
}
