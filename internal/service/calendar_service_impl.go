package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/google/uuid"
)

type calendarService struct {
	holidays repository.HolidayRepo
}

func NewCalendarService(holidays repository.HolidayRepo) CalendarService {
	return &calendarService{holidays: holidays}
}

func (s *calendarService) AddHoliday(ctx context.Context, h *domain.PublicHoliday) error {
	if _, ok := calendar.ParseDate(h.Date); !ok {
		return fmt.Errorf("invalid holiday date %q", h.Date)
	}
	if h.CountryID == "" {
		return fmt.Errorf("holiday country is required")
	}
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return s.holidays.Create(ctx, h)
}

func (s *calendarService) ListHolidays(ctx context.Context) ([]*domain.PublicHoliday, error) {
	return s.holidays.List(ctx)
}

func (s *calendarService) RemoveHoliday(ctx context.Context, id string) error {
	return s.holidays.Delete(ctx, id)
}
