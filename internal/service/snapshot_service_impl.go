package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
)

type snapshotService struct {
	members     repository.MemberRepo
	skills      repository.SkillRepo
	holidays    repository.HolidayRepo
	timeOff     repository.TimeOffRepo
	projects    repository.ProjectRepo
	assignments repository.AssignmentRepo
	jiraItems   repository.JiraItemRepo
	business    repository.BusinessRepo
	settings    repository.SettingsRepo
}

func NewSnapshotService(
	members repository.MemberRepo,
	skills repository.SkillRepo,
	holidays repository.HolidayRepo,
	timeOff repository.TimeOffRepo,
	projects repository.ProjectRepo,
	assignments repository.AssignmentRepo,
	jiraItems repository.JiraItemRepo,
	business repository.BusinessRepo,
	settings repository.SettingsRepo,
) SnapshotService {
	return &snapshotService{
		members:     members,
		skills:      skills,
		holidays:    holidays,
		timeOff:     timeOff,
		projects:    projects,
		assignments: assignments,
		jiraItems:   jiraItems,
		business:    business,
		settings:    settings,
	}
}

// Load reads the whole planning state and returns it normalized. The engine
// computes over this value without touching storage again, so one report
// sees one consistent state.
func (s *snapshotService) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	members, err := s.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading members: %w", err)
	}
	for _, m := range members {
		snap.Members = append(snap.Members, *m)
	}

	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading skills: %w", err)
	}
	for _, sk := range skills {
		snap.Skills = append(snap.Skills, *sk)
	}

	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading holidays: %w", err)
	}
	for _, h := range holidays {
		snap.Holidays = append(snap.Holidays, *h)
	}

	timeOff, err := s.timeOff.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading time off: %w", err)
	}
	for _, t := range timeOff {
		snap.TimeOff = append(snap.TimeOff, *t)
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	for _, p := range projects {
		snap.Projects = append(snap.Projects, *p)
	}

	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}
	for _, a := range assignments {
		snap.Assignments = append(snap.Assignments, *a)
	}

	jiraItems, err := s.jiraItems.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading jira items: %w", err)
	}
	for _, item := range jiraItems {
		snap.JiraItems = append(snap.JiraItems, *item)
	}

	contacts, err := s.business.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading business contacts: %w", err)
	}
	for _, c := range contacts {
		snap.BusinessContacts = append(snap.BusinessContacts, *c)
	}

	bizAssignments, err := s.business.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading business assignments: %w", err)
	}
	for _, a := range bizAssignments {
		snap.BusinessAssignments = append(snap.BusinessAssignments, *a)
	}

	bizTimeOff, err := s.business.ListTimeOff(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading business time off: %w", err)
	}
	for _, t := range bizTimeOff {
		snap.BusinessTimeOff = append(snap.BusinessTimeOff, *t)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	snap.Settings = *settings

	snap.Normalize()
	return snap, nil
}
