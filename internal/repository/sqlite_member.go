package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// memberColumns is the canonical SELECT column list for members.
const memberColumns = `id, name, email, country_id, role, max_concurrent_projects,
		created_at, updated_at`

// SQLiteMemberRepo implements MemberRepo using a SQLite database.
type SQLiteMemberRepo struct {
	db db.DBTX
}

// NewSQLiteMemberRepo creates a new SQLiteMemberRepo.
func NewSQLiteMemberRepo(conn db.DBTX) *SQLiteMemberRepo {
	return &SQLiteMemberRepo{db: conn}
}

func (r *SQLiteMemberRepo) Create(ctx context.Context, m *domain.TeamMember) error {
	query := `INSERT INTO members (id, name, email, country_id, role, max_concurrent_projects,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.Email,
		m.CountryID,
		m.Role,
		m.MaxConcurrentProjects,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting member: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	m, err := r.scanMember(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadSkills(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMemberRepo) List(ctx context.Context) ([]*domain.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.CountryID, &m.Role,
			&m.MaxConcurrentProjects, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}
		if err := r.parseTimes(&m, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}

	for _, m := range members {
		if err := r.loadSkills(ctx, m); err != nil {
			return nil, err
		}
	}
	return members, nil
}

func (r *SQLiteMemberRepo) Update(ctx context.Context, m *domain.TeamMember) error {
	query := `UPDATE members SET name = ?, email = ?, country_id = ?, role = ?,
		max_concurrent_projects = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.Name,
		m.Email,
		m.CountryID,
		m.Role,
		m.MaxConcurrentProjects,
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating member: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM members WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting member: %w", err)
	}
	return nil
}

// SetSkills replaces the member's skill set with the given IDs.
func (r *SQLiteMemberRepo) SetSkills(ctx context.Context, memberID string, skillIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM member_skills WHERE member_id = ?`, memberID); err != nil {
		return fmt.Errorf("clearing member skills: %w", err)
	}
	for _, skillID := range skillIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO member_skills (member_id, skill_id) VALUES (?, ?)`,
			memberID, skillID)
		if err != nil {
			return fmt.Errorf("inserting member skill: %w", err)
		}
	}
	return nil
}

func (r *SQLiteMemberRepo) loadSkills(ctx context.Context, m *domain.TeamMember) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT skill_id FROM member_skills WHERE member_id = ? ORDER BY skill_id`, m.ID)
	if err != nil {
		return fmt.Errorf("listing member skills: %w", err)
	}
	defer rows.Close()

	m.SkillIDs = nil
	for rows.Next() {
		var skillID string
		if err := rows.Scan(&skillID); err != nil {
			return fmt.Errorf("scanning member skill: %w", err)
		}
		m.SkillIDs = append(m.SkillIDs, skillID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating member skills: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) scanMember(row *sql.Row) (*domain.TeamMember, error) {
	var m domain.TeamMember
	var createdAtStr, updatedAtStr string
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.CountryID, &m.Role,
		&m.MaxConcurrentProjects, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("member: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning member: %w", err)
	}
	if err := r.parseTimes(&m, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SQLiteMemberRepo) parseTimes(m *domain.TeamMember, createdAtStr, updatedAtStr string) error {
	var parseErr error
	m.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	m.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}
