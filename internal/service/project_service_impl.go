package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectPlanned
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *projectService) AddPhase(ctx context.Context, ph *domain.Phase) error {
	if ph.ProjectID == "" {
		return fmt.Errorf("phase project id is required")
	}
	if err := normalizePhaseQuarters(ph); err != nil {
		return err
	}
	if ph.ID == "" {
		ph.ID = uuid.New().String()
	}
	if err := s.projects.CreatePhase(ctx, ph); err != nil {
		return err
	}
	if len(ph.RequiredSkillIDs) > 0 {
		return s.projects.SetPhaseSkills(ctx, ph.ID, ph.RequiredSkillIDs)
	}
	return nil
}

func (s *projectService) UpdatePhase(ctx context.Context, ph *domain.Phase) error {
	if err := normalizePhaseQuarters(ph); err != nil {
		return err
	}
	if err := s.projects.UpdatePhase(ctx, ph); err != nil {
		return err
	}
	return s.projects.SetPhaseSkills(ctx, ph.ID, ph.RequiredSkillIDs)
}

func (s *projectService) RemovePhase(ctx context.Context, id string) error {
	return s.projects.DeletePhase(ctx, id)
}

// normalizePhaseQuarters canonicalizes quarter labels and rejects ones that
// do not parse. Explicit dates are passed through untouched; the engine
// resolves precedence at compute time.
func normalizePhaseQuarters(ph *domain.Phase) error {
	if ph.StartQuarter != "" {
		q := calendar.ParseQuarter(ph.StartQuarter)
		if q == nil {
			return fmt.Errorf("invalid start quarter %q", ph.StartQuarter)
		}
		ph.StartQuarter = q.Label()
	}
	if ph.EndQuarter != "" {
		q := calendar.ParseQuarter(ph.EndQuarter)
		if q == nil {
			return fmt.Errorf("invalid end quarter %q", ph.EndQuarter)
		}
		ph.EndQuarter = q.Label()
	}
	return nil
}
