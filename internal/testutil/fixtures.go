package testutil

import (
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/google/uuid"
)

// Member options
type MemberOption func(*domain.TeamMember)

func WithEmail(email string) MemberOption {
	return func(m *domain.TeamMember) {
		m.Email = email
	}
}

func WithCountry(countryID string) MemberOption {
	return func(m *domain.TeamMember) {
		m.CountryID = countryID
	}
}

func WithSkills(skillIDs ...string) MemberOption {
	return func(m *domain.TeamMember) {
		m.SkillIDs = skillIDs
	}
}

func WithMaxConcurrentProjects(n int) MemberOption {
	return func(m *domain.TeamMember) {
		m.MaxConcurrentProjects = n
	}
}

func NewTestMember(name string, opts ...MemberOption) *domain.TeamMember {
	now := time.Now().UTC()
	m := &domain.TeamMember{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseDates(start, end string) PhaseOption {
	return func(ph *domain.Phase) {
		ph.StartDate = start
		ph.EndDate = end
	}
}

func WithPhaseConfidence(level domain.ConfidenceLevel) PhaseOption {
	return func(ph *domain.Phase) {
		ph.ConfidenceLevel = level
	}
}

func WithRequiredSkills(skillIDs ...string) PhaseOption {
	return func(ph *domain.Phase) {
		ph.RequiredSkillIDs = skillIDs
	}
}

// NewTestPhase creates a phase spanning a single quarter by default.
func NewTestPhase(projectID, name, quarter string, opts ...PhaseOption) *domain.Phase {
	ph := &domain.Phase{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		Name:         name,
		StartQuarter: quarter,
		EndQuarter:   quarter,
	}
	for _, opt := range opts {
		opt(ph)
	}
	return ph
}

// Assignment options
type AssignmentOption func(*domain.Assignment)

func WithJiraSynced() AssignmentOption {
	return func(a *domain.Assignment) {
		a.JiraSynced = true
	}
}

func NewTestAssignment(projectID, phaseID, memberID, quarter string, days float64, opts ...AssignmentOption) *domain.Assignment {
	a := &domain.Assignment{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		PhaseID:   phaseID,
		MemberID:  memberID,
		Quarter:   quarter,
		Days:      days,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// JiraItem options
type JiraItemOption func(*domain.JiraItem)

func WithParentKey(key string) JiraItemOption {
	return func(j *domain.JiraItem) {
		j.ParentKey = key
	}
}

func WithStoryPoints(points float64) JiraItemOption {
	return func(j *domain.JiraItem) {
		j.StoryPoints = &points
	}
}

func WithAssignee(email string) JiraItemOption {
	return func(j *domain.JiraItem) {
		j.AssigneeEmail = email
	}
}

func WithSprint(name string) JiraItemOption {
	return func(j *domain.JiraItem) {
		j.SprintName = name
	}
}

func WithStatusCategory(c domain.StatusCategory) JiraItemOption {
	return func(j *domain.JiraItem) {
		j.StatusCategory = c
	}
}

func WithMapping(projectID, phaseID string) JiraItemOption {
	return func(j *domain.JiraItem) {
		j.MappedProjectID = projectID
		j.MappedPhaseID = phaseID
	}
}

func NewTestJiraItem(key string, opts ...JiraItemOption) *domain.JiraItem {
	j := &domain.JiraItem{
		JiraKey:        key,
		Summary:        "Test item " + key,
		Type:           "story",
		StatusCategory: domain.CategoryTodo,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// NewTestTimeOff creates an inclusive absence range for the member.
func NewTestTimeOff(memberID, start, end string) *domain.TimeOff {
	return &domain.TimeOff{
		ID:        uuid.New().String(),
		MemberID:  memberID,
		StartDate: start,
		EndDate:   end,
	}
}

// NewTestHoliday creates a public holiday for the given country.
func NewTestHoliday(date, name, countryID string) *domain.PublicHoliday {
	return &domain.PublicHoliday{
		ID:        uuid.New().String(),
		Date:      date,
		Name:      name,
		CountryID: countryID,
	}
}

// NewTestContact creates a business contact.
func NewTestContact(name, company string) *domain.BusinessContact {
	return &domain.BusinessContact{
		ID:      uuid.New().String(),
		Name:    name,
		Company: company,
	}
}
