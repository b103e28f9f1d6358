package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/capplan/internal/domain"
)

// ErrNotFound is returned by GetByID-style lookups when no row matches.
// Callers test for it with errors.Is.
var ErrNotFound = errors.New("not found")

type MemberRepo interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	SetSkills(ctx context.Context, memberID string, skillIDs []string) error
}

type SkillRepo interface {
	Upsert(ctx context.Context, s *domain.Skill) error
	List(ctx context.Context) ([]*domain.Skill, error)
}

type HolidayRepo interface {
	Create(ctx context.Context, h *domain.PublicHoliday) error
	List(ctx context.Context) ([]*domain.PublicHoliday, error)
	Delete(ctx context.Context, id string) error
}

type TimeOffRepo interface {
	Create(ctx context.Context, t *domain.TimeOff) error
	List(ctx context.Context) ([]*domain.TimeOff, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.TimeOff, error)
	Delete(ctx context.Context, id string) error
}

// ProjectRepo persists projects together with their phases. List and
// GetByID return projects with phases (and phase skill requirements)
// populated.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error

	CreatePhase(ctx context.Context, ph *domain.Phase) error
	UpdatePhase(ctx context.Context, ph *domain.Phase) error
	DeletePhase(ctx context.Context, id string) error
	SetPhaseSkills(ctx context.Context, phaseID string, skillIDs []string) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	List(ctx context.Context) ([]*domain.Assignment, error)
	ListByQuarter(ctx context.Context, quarter string) ([]*domain.Assignment, error)
	Delete(ctx context.Context, id string) error
}

type JiraItemRepo interface {
	Upsert(ctx context.Context, item *domain.JiraItem) error
	List(ctx context.Context) ([]*domain.JiraItem, error)
	Delete(ctx context.Context, jiraKey string) error
}

type BusinessRepo interface {
	CreateContact(ctx context.Context, c *domain.BusinessContact) error
	ListContacts(ctx context.Context) ([]*domain.BusinessContact, error)
	DeleteContact(ctx context.Context, id string) error

	CreateAssignment(ctx context.Context, a *domain.BusinessAssignment) error
	ListAssignments(ctx context.Context) ([]*domain.BusinessAssignment, error)
	DeleteAssignment(ctx context.Context, id string) error

	CreateTimeOff(ctx context.Context, t *domain.BusinessTimeOff) error
	ListTimeOff(ctx context.Context) ([]*domain.BusinessTimeOff, error)
	DeleteTimeOff(ctx context.Context, id string) error
}

// SettingsRepo stores the single settings row; Get returns defaults when
// nothing has been saved yet.
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
