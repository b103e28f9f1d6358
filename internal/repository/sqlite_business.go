package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// SQLiteBusinessRepo implements BusinessRepo using a SQLite database.
type SQLiteBusinessRepo struct {
	db db.DBTX
}

// NewSQLiteBusinessRepo creates a new SQLiteBusinessRepo.
func NewSQLiteBusinessRepo(conn db.DBTX) *SQLiteBusinessRepo {
	return &SQLiteBusinessRepo{db: conn}
}

func (r *SQLiteBusinessRepo) CreateContact(ctx context.Context, c *domain.BusinessContact) error {
	query := `INSERT INTO business_contacts (id, name, email, country_id, company)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Email, c.CountryID, c.Company)
	if err != nil {
		return fmt.Errorf("inserting business contact: %w", err)
	}
	return nil
}

func (r *SQLiteBusinessRepo) ListContacts(ctx context.Context) ([]*domain.BusinessContact, error) {
	query := `SELECT id, name, email, country_id, company FROM business_contacts ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing business contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*domain.BusinessContact
	for rows.Next() {
		var c domain.BusinessContact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CountryID, &c.Company); err != nil {
			return nil, fmt.Errorf("scanning business contact: %w", err)
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating business contacts: %w", err)
	}
	return contacts, nil
}

func (r *SQLiteBusinessRepo) DeleteContact(ctx context.Context, id string) error {
	query := `DELETE FROM business_contacts WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting business contact: %w", err)
	}
	return nil
}

func (r *SQLiteBusinessRepo) CreateAssignment(ctx context.Context, a *domain.BusinessAssignment) error {
	query := `INSERT INTO business_assignments (id, contact_id, project_id, phase_id, quarter, days, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.ContactID, a.ProjectID, a.PhaseID, a.Quarter, a.Days, a.Note)
	if err != nil {
		return fmt.Errorf("inserting business assignment: %w", err)
	}
	return nil
}

func (r *SQLiteBusinessRepo) ListAssignments(ctx context.Context) ([]*domain.BusinessAssignment, error) {
	query := `SELECT id, contact_id, project_id, phase_id, quarter, days, note
		FROM business_assignments ORDER BY contact_id, quarter`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing business assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.BusinessAssignment
	for rows.Next() {
		var a domain.BusinessAssignment
		if err := rows.Scan(&a.ID, &a.ContactID, &a.ProjectID, &a.PhaseID,
			&a.Quarter, &a.Days, &a.Note); err != nil {
			return nil, fmt.Errorf("scanning business assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating business assignments: %w", err)
	}
	return assignments, nil
}

func (r *SQLiteBusinessRepo) DeleteAssignment(ctx context.Context, id string) error {
	query := `DELETE FROM business_assignments WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting business assignment: %w", err)
	}
	return nil
}

func (r *SQLiteBusinessRepo) CreateTimeOff(ctx context.Context, t *domain.BusinessTimeOff) error {
	query := `INSERT INTO business_time_off (id, contact_id, start_date, end_date)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.ContactID, t.StartDate, t.EndDate)
	if err != nil {
		return fmt.Errorf("inserting business time off: %w", err)
	}
	return nil
}

func (r *SQLiteBusinessRepo) ListTimeOff(ctx context.Context) ([]*domain.BusinessTimeOff, error) {
	query := `SELECT id, contact_id, start_date, end_date FROM business_time_off ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing business time off: %w", err)
	}
	defer rows.Close()

	var entries []*domain.BusinessTimeOff
	for rows.Next() {
		var t domain.BusinessTimeOff
		if err := rows.Scan(&t.ID, &t.ContactID, &t.StartDate, &t.EndDate); err != nil {
			return nil, fmt.Errorf("scanning business time off: %w", err)
		}
		entries = append(entries, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating business time off: %w", err)
	}
	return entries, nil
}

func (r *SQLiteBusinessRepo) DeleteTimeOff(ctx context.Context, id string) error {
	query := `DELETE FROM business_time_off WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting business time off: %w", err)
	}
	return nil
}
