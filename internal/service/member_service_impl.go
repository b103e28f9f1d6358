package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/google/uuid"
)

type memberService struct {
	members repository.MemberRepo
	timeOff repository.TimeOffRepo
}

func NewMemberService(members repository.MemberRepo, timeOff repository.TimeOffRepo) MemberService {
	return &memberService{members: members, timeOff: timeOff}
}

func (s *memberService) Create(ctx context.Context, m *domain.TeamMember) error {
	if m.Name == "" {
		return fmt.Errorf("member name is required")
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.members.Create(ctx, m); err != nil {
		return err
	}
	if len(m.SkillIDs) > 0 {
		return s.members.SetSkills(ctx, m.ID, m.SkillIDs)
	}
	return nil
}

func (s *memberService) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	return s.members.GetByID(ctx, id)
}

func (s *memberService) List(ctx context.Context) ([]*domain.TeamMember, error) {
	return s.members.List(ctx)
}

func (s *memberService) Update(ctx context.Context, m *domain.TeamMember) error {
	m.UpdatedAt = time.Now().UTC()
	return s.members.Update(ctx, m)
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	return s.members.Delete(ctx, id)
}

func (s *memberService) SetSkills(ctx context.Context, memberID string, skillIDs []string) error {
	return s.members.SetSkills(ctx, memberID, skillIDs)
}

func (s *memberService) AddTimeOff(ctx context.Context, t *domain.TimeOff) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if _, err := s.members.GetByID(ctx, t.MemberID); err != nil {
		return fmt.Errorf("resolving member: %w", err)
	}
	return s.timeOff.Create(ctx, t)
}

func (s *memberService) RemoveTimeOff(ctx context.Context, id string) error {
	return s.timeOff.Delete(ctx, id)
}
