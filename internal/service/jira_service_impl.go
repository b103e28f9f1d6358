package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
)

type jiraService struct {
	items repository.JiraItemRepo
}

func NewJiraService(items repository.JiraItemRepo) JiraService {
	return &jiraService{items: items}
}

func (s *jiraService) Upsert(ctx context.Context, item *domain.JiraItem) error {
	if item.JiraKey == "" {
		return fmt.Errorf("jira key is required")
	}
	if item.StoryPoints != nil && *item.StoryPoints < 0 {
		return fmt.Errorf("story points must not be negative")
	}
	if item.ParentKey == item.JiraKey {
		return fmt.Errorf("item %s cannot be its own parent", item.JiraKey)
	}
	if item.Type == "" {
		item.Type = "story"
	}
	if item.StatusCategory == "" {
		item.StatusCategory = domain.CategoryTodo
	}
	return s.items.Upsert(ctx, item)
}

func (s *jiraService) List(ctx context.Context) ([]*domain.JiraItem, error) {
	return s.items.List(ctx)
}

func (s *jiraService) Remove(ctx context.Context, jiraKey string) error {
	return s.items.Delete(ctx, jiraKey)
}
