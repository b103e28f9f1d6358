package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/alexanderramin/capplan/internal/testutil"
)

func TestJiraUpsert_RejectsSelfParent(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewJiraService(repository.NewSQLiteJiraItemRepo(conn))
	ctx := context.Background()

	err := svc.Upsert(ctx, &domain.JiraItem{JiraKey: "CAP-1", ParentKey: "CAP-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be its own parent")

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestJiraUpsert_DefaultsTypeAndStatus(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewJiraService(repository.NewSQLiteJiraItemRepo(conn))
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, &domain.JiraItem{JiraKey: "CAP-2", ParentKey: "EPIC-1"}))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "story", items[0].Type)
	assert.Equal(t, domain.CategoryTodo, items[0].StatusCategory)
}
