package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// SQLiteSkillRepo implements SkillRepo using a SQLite database.
type SQLiteSkillRepo struct {
	db db.DBTX
}

// NewSQLiteSkillRepo creates a new SQLiteSkillRepo.
func NewSQLiteSkillRepo(conn db.DBTX) *SQLiteSkillRepo {
	return &SQLiteSkillRepo{db: conn}
}

func (r *SQLiteSkillRepo) Upsert(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name)
	if err != nil {
		return fmt.Errorf("upserting skill: %w", err)
	}
	return nil
}

func (r *SQLiteSkillRepo) List(ctx context.Context) ([]*domain.Skill, error) {
	query := `SELECT id, name FROM skills ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	defer rows.Close()

	var skills []*domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		skills = append(skills, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skills: %w", err)
	}
	return skills, nil
}
