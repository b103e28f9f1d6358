package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// assignmentColumns is the canonical SELECT column list for assignments.
const assignmentColumns = `id, project_id, phase_id, member_id, quarter, days, jira_synced`

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (id, project_id, phase_id, member_id, quarter, days, jira_synced)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ProjectID,
		a.PhaseID,
		a.MemberID,
		a.Quarter,
		a.Days,
		boolToInt(a.JiraSynced),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) List(ctx context.Context) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments ORDER BY quarter, member_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()
	return r.scanAssignments(rows)
}

func (r *SQLiteAssignmentRepo) ListByQuarter(ctx context.Context, quarter string) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE quarter = ? ORDER BY member_id`
	rows, err := r.db.QueryContext(ctx, query, quarter)
	if err != nil {
		return nil, fmt.Errorf("listing assignments by quarter: %w", err)
	}
	defer rows.Close()
	return r.scanAssignments(rows)
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM assignments WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) scanAssignments(rows *sql.Rows) ([]*domain.Assignment, error) {
	var assignments []*domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var syncedInt int
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.PhaseID, &a.MemberID,
			&a.Quarter, &a.Days, &syncedInt); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		a.JiraSynced = intToBool(syncedInt)
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return assignments, nil
}
