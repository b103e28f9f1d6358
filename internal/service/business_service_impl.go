package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/google/uuid"
)

type businessService struct {
	business repository.BusinessRepo
}

func NewBusinessService(business repository.BusinessRepo) BusinessService {
	return &businessService{business: business}
}

func (s *businessService) CreateContact(ctx context.Context, c *domain.BusinessContact) error {
	if c.Name == "" {
		return fmt.Errorf("contact name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return s.business.CreateContact(ctx, c)
}

func (s *businessService) ListContacts(ctx context.Context) ([]*domain.BusinessContact, error) {
	return s.business.ListContacts(ctx)
}

func (s *businessService) DeleteContact(ctx context.Context, id string) error {
	return s.business.DeleteContact(ctx, id)
}

func (s *businessService) Assign(ctx context.Context, a *domain.BusinessAssignment) error {
	if a.Days < 0 {
		return fmt.Errorf("assignment days must not be negative")
	}
	if a.PhaseID == "" && a.Quarter == "" {
		return fmt.Errorf("either a phase or a quarter is required")
	}
	if a.Quarter != "" {
		q := calendar.ParseQuarter(a.Quarter)
		if q == nil {
			return fmt.Errorf("invalid quarter %q", a.Quarter)
		}
		a.Quarter = q.Label()
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return s.business.CreateAssignment(ctx, a)
}

func (s *businessService) ListAssignments(ctx context.Context) ([]*domain.BusinessAssignment, error) {
	return s.business.ListAssignments(ctx)
}

func (s *businessService) RemoveAssignment(ctx context.Context, id string) error {
	return s.business.DeleteAssignment(ctx, id)
}

func (s *businessService) AddTimeOff(ctx context.Context, t *domain.BusinessTimeOff) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return s.business.CreateTimeOff(ctx, t)
}

func (s *businessService) RemoveTimeOff(ctx context.Context, id string) error {
	return s.business.DeleteTimeOff(ctx, id)
}
