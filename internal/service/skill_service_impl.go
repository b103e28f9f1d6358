package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
)

type skillService struct {
	skills repository.SkillRepo
}

func NewSkillService(skills repository.SkillRepo) SkillService {
	return &skillService{skills: skills}
}

func (s *skillService) Upsert(ctx context.Context, sk *domain.Skill) error {
	if sk.Name == "" {
		return fmt.Errorf("skill name is required")
	}
	if sk.ID == "" {
		sk.ID = uuid.New().String()
	}
	return s.skills.Upsert(ctx, sk)
}

func (s *skillService) List(ctx context.Context) ([]*domain.Skill, error) {
	return s.skills.List(ctx)
}
