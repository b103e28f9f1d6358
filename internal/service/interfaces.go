package service

import (
	"context"

	"github.com/alexanderramin/capplan/internal/app"
	"github.com/alexanderramin/capplan/internal/domain"
)

type MemberService interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	SetSkills(ctx context.Context, memberID string, skillIDs []string) error
	AddTimeOff(ctx context.Context, t *domain.TimeOff) error
	RemoveTimeOff(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	AddPhase(ctx context.Context, ph *domain.Phase) error
	UpdatePhase(ctx context.Context, ph *domain.Phase) error
	RemovePhase(ctx context.Context, id string) error
}

type AssignmentService interface {
	Assign(ctx context.Context, a *domain.Assignment) error
	List(ctx context.Context) ([]*domain.Assignment, error)
	ListByQuarter(ctx context.Context, quarter string) ([]*domain.Assignment, error)
	Remove(ctx context.Context, id string) error
}

type SkillService interface {
	Upsert(ctx context.Context, s *domain.Skill) error
	List(ctx context.Context) ([]*domain.Skill, error)
}

type CalendarService interface {
	AddHoliday(ctx context.Context, h *domain.PublicHoliday) error
	ListHolidays(ctx context.Context) ([]*domain.PublicHoliday, error)
	RemoveHoliday(ctx context.Context, id string) error
}

type JiraService interface {
	Upsert(ctx context.Context, item *domain.JiraItem) error
	List(ctx context.Context) ([]*domain.JiraItem, error)
	Remove(ctx context.Context, jiraKey string) error
}

type BusinessService interface {
	CreateContact(ctx context.Context, c *domain.BusinessContact) error
	ListContacts(ctx context.Context) ([]*domain.BusinessContact, error)
	DeleteContact(ctx context.Context, id string) error
	Assign(ctx context.Context, a *domain.BusinessAssignment) error
	ListAssignments(ctx context.Context) ([]*domain.BusinessAssignment, error)
	RemoveAssignment(ctx context.Context, id string) error
	AddTimeOff(ctx context.Context, t *domain.BusinessTimeOff) error
	RemoveTimeOff(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}

// SnapshotService assembles the full planning state from storage into the
// normalized in-memory shape the engine computes over.
type SnapshotService interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// PlanningService bundles the read-side computations: capacity reports,
// heatmaps, warnings, suggestions, sprint calendars, and Jira rollups.
type PlanningService interface {
	app.CapacityUseCase
	app.WarningsUseCase
	app.SuggestUseCase
	app.SprintUseCase
	app.RollupUseCase
	app.BusinessUseCase
}

type ImportService interface {
	app.ImportWorkspaceUseCase
}
