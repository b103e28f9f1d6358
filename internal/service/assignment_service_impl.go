package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/google/uuid"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
	members     repository.MemberRepo
	projects    repository.ProjectRepo
}

func NewAssignmentService(
	assignments repository.AssignmentRepo,
	members repository.MemberRepo,
	projects repository.ProjectRepo,
) AssignmentService {
	return &assignmentService{assignments: assignments, members: members, projects: projects}
}

func (s *assignmentService) Assign(ctx context.Context, a *domain.Assignment) error {
	if a.Days < 0 {
		return fmt.Errorf("assignment days must not be negative")
	}
	q := calendar.ParseQuarter(a.Quarter)
	if q == nil {
		return fmt.Errorf("invalid quarter %q", a.Quarter)
	}
	a.Quarter = q.Label()

	if _, err := s.members.GetByID(ctx, a.MemberID); err != nil {
		return fmt.Errorf("resolving member: %w", err)
	}
	p, err := s.projects.GetByID(ctx, a.ProjectID)
	if err != nil {
		return fmt.Errorf("resolving project: %w", err)
	}
	found := false
	for i := range p.Phases {
		if p.Phases[i].ID == a.PhaseID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("phase %q does not belong to project %q", a.PhaseID, p.Name)
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return s.assignments.Create(ctx, a)
}

func (s *assignmentService) List(ctx context.Context) ([]*domain.Assignment, error) {
	return s.assignments.List(ctx)
}

func (s *assignmentService) ListByQuarter(ctx context.Context, quarter string) ([]*domain.Assignment, error) {
	if q := calendar.ParseQuarter(quarter); q != nil {
		quarter = q.Label()
	}
	return s.assignments.ListByQuarter(ctx, quarter)
}

func (s *assignmentService) Remove(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}
