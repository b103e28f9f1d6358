package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

func (r *SQLiteHolidayRepo) Create(ctx context.Context, h *domain.PublicHoliday) error {
	query := `INSERT INTO holidays (id, date, name, country_id) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, h.ID, h.Date, h.Name, h.CountryID)
	if err != nil {
		return fmt.Errorf("inserting holiday: %w", err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) List(ctx context.Context) ([]*domain.PublicHoliday, error) {
	query := `SELECT id, date, name, country_id FROM holidays ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*domain.PublicHoliday
	for rows.Next() {
		var h domain.PublicHoliday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CountryID); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		holidays = append(holidays, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

func (r *SQLiteHolidayRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM holidays WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting holiday: %w", err)
	}
	return nil
}
