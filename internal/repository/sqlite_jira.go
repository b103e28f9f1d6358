package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// jiraItemColumns is the canonical SELECT column list for jira_items.
const jiraItemColumns = `jira_key, parent_key, summary, type, status_category,
		story_points, assignee_email, sprint_name, mapped_project_id, mapped_phase_id,
		confidence_level`

// SQLiteJiraItemRepo implements JiraItemRepo using a SQLite database.
type SQLiteJiraItemRepo struct {
	db db.DBTX
}

// NewSQLiteJiraItemRepo creates a new SQLiteJiraItemRepo.
func NewSQLiteJiraItemRepo(conn db.DBTX) *SQLiteJiraItemRepo {
	return &SQLiteJiraItemRepo{db: conn}
}

// Upsert inserts the item or overwrites the existing row with the same Jira
// key. Sync runs re-import items wholesale, so last write wins.
func (r *SQLiteJiraItemRepo) Upsert(ctx context.Context, item *domain.JiraItem) error {
	query := `INSERT INTO jira_items (jira_key, parent_key, summary, type, status_category,
		story_points, assignee_email, sprint_name, mapped_project_id, mapped_phase_id, confidence_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(jira_key) DO UPDATE SET
			parent_key = excluded.parent_key,
			summary = excluded.summary,
			type = excluded.type,
			status_category = excluded.status_category,
			story_points = excluded.story_points,
			assignee_email = excluded.assignee_email,
			sprint_name = excluded.sprint_name,
			mapped_project_id = excluded.mapped_project_id,
			mapped_phase_id = excluded.mapped_phase_id,
			confidence_level = excluded.confidence_level`
	_, err := r.db.ExecContext(ctx, query,
		item.JiraKey,
		item.ParentKey,
		item.Summary,
		item.Type,
		string(item.StatusCategory),
		nullableFloatToValue(item.StoryPoints),
		item.AssigneeEmail,
		item.SprintName,
		item.MappedProjectID,
		item.MappedPhaseID,
		string(item.ConfidenceLevel),
	)
	if err != nil {
		return fmt.Errorf("upserting jira item: %w", err)
	}
	return nil
}

func (r *SQLiteJiraItemRepo) List(ctx context.Context) ([]*domain.JiraItem, error) {
	query := `SELECT ` + jiraItemColumns + ` FROM jira_items ORDER BY jira_key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing jira items: %w", err)
	}
	defer rows.Close()

	var items []*domain.JiraItem
	for rows.Next() {
		var item domain.JiraItem
		var categoryStr, confidenceStr string
		var points sql.NullFloat64
		if err := rows.Scan(&item.JiraKey, &item.ParentKey, &item.Summary, &item.Type,
			&categoryStr, &points, &item.AssigneeEmail, &item.SprintName,
			&item.MappedProjectID, &item.MappedPhaseID, &confidenceStr); err != nil {
			return nil, fmt.Errorf("scanning jira item: %w", err)
		}
		item.StatusCategory = domain.StatusCategory(categoryStr)
		item.ConfidenceLevel = domain.ConfidenceLevel(confidenceStr)
		item.StoryPoints = parseNullableFloat(points)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jira items: %w", err)
	}
	return items, nil
}

func (r *SQLiteJiraItemRepo) Delete(ctx context.Context, jiraKey string) error {
	query := `DELETE FROM jira_items WHERE jira_key = ?`
	_, err := r.db.ExecContext(ctx, query, jiraKey)
	if err != nil {
		return fmt.Errorf("deleting jira item: %w", err)
	}
	return nil
}
