package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// SQLiteTimeOffRepo implements TimeOffRepo using a SQLite database.
type SQLiteTimeOffRepo struct {
	db db.DBTX
}

// NewSQLiteTimeOffRepo creates a new SQLiteTimeOffRepo.
func NewSQLiteTimeOffRepo(conn db.DBTX) *SQLiteTimeOffRepo {
	return &SQLiteTimeOffRepo{db: conn}
}

func (r *SQLiteTimeOffRepo) Create(ctx context.Context, t *domain.TimeOff) error {
	query := `INSERT INTO time_off (id, member_id, start_date, end_date, note)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.MemberID, t.StartDate, t.EndDate, t.Note)
	if err != nil {
		return fmt.Errorf("inserting time off: %w", err)
	}
	return nil
}

func (r *SQLiteTimeOffRepo) List(ctx context.Context) ([]*domain.TimeOff, error) {
	query := `SELECT id, member_id, start_date, end_date, note
		FROM time_off ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing time off: %w", err)
	}
	defer rows.Close()
	return r.scanTimeOff(rows)
}

func (r *SQLiteTimeOffRepo) ListByMember(ctx context.Context, memberID string) ([]*domain.TimeOff, error) {
	query := `SELECT id, member_id, start_date, end_date, note
		FROM time_off WHERE member_id = ? ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("listing time off by member: %w", err)
	}
	defer rows.Close()
	return r.scanTimeOff(rows)
}

func (r *SQLiteTimeOffRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM time_off WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting time off: %w", err)
	}
	return nil
}

func (r *SQLiteTimeOffRepo) scanTimeOff(rows *sql.Rows) ([]*domain.TimeOff, error) {
	var entries []*domain.TimeOff
	for rows.Next() {
		var t domain.TimeOff
		if err := rows.Scan(&t.ID, &t.MemberID, &t.StartDate, &t.EndDate, &t.Note); err != nil {
			return nil, fmt.Errorf("scanning time off: %w", err)
		}
		entries = append(entries, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time off: %w", err)
	}
	return entries, nil
}
