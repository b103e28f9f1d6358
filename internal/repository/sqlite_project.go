package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// phaseColumns is the canonical SELECT column list for phases.
const phaseColumns = `id, project_id, name, start_quarter, end_quarter,
		start_date, end_date, confidence_level`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
// Projects are returned with phases and phase skill requirements populated.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Status),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, name, status, created_at, updated_at FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := r.scanProject(row)
	if err != nil {
		return nil, err
	}
	phases, err := r.listPhases(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Phases = phases
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT id, name, status, created_at, updated_at FROM projects ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		var statusStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&p.ID, &p.Name, &statusStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		p.Status = domain.ProjectStatus(statusStr)
		if err := r.parseTimes(&p, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		phases, err := r.listPhases(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Phases = phases
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		string(p.Status),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) CreatePhase(ctx context.Context, ph *domain.Phase) error {
	query := `INSERT INTO phases (id, project_id, name, start_quarter, end_quarter,
		start_date, end_date, confidence_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ph.ID,
		ph.ProjectID,
		ph.Name,
		ph.StartQuarter,
		ph.EndQuarter,
		ph.StartDate,
		ph.EndDate,
		string(ph.ConfidenceLevel),
	)
	if err != nil {
		return fmt.Errorf("inserting phase: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) UpdatePhase(ctx context.Context, ph *domain.Phase) error {
	query := `UPDATE phases SET name = ?, start_quarter = ?, end_quarter = ?,
		start_date = ?, end_date = ?, confidence_level = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		ph.Name,
		ph.StartQuarter,
		ph.EndQuarter,
		ph.StartDate,
		ph.EndDate,
		string(ph.ConfidenceLevel),
		ph.ID,
	)
	if err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) DeletePhase(ctx context.Context, id string) error {
	query := `DELETE FROM phases WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return nil
}

// SetPhaseSkills replaces the phase's required skill set with the given IDs.
func (r *SQLiteProjectRepo) SetPhaseSkills(ctx context.Context, phaseID string, skillIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM phase_skills WHERE phase_id = ?`, phaseID); err != nil {
		return fmt.Errorf("clearing phase skills: %w", err)
	}
	for _, skillID := range skillIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO phase_skills (phase_id, skill_id) VALUES (?, ?)`,
			phaseID, skillID)
		if err != nil {
			return fmt.Errorf("inserting phase skill: %w", err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) listPhases(ctx context.Context, projectID string) ([]domain.Phase, error) {
	query := `SELECT ` + phaseColumns + ` FROM phases WHERE project_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing phases: %w", err)
	}
	defer rows.Close()

	var phases []domain.Phase
	for rows.Next() {
		var ph domain.Phase
		var confidenceStr string
		if err := rows.Scan(&ph.ID, &ph.ProjectID, &ph.Name, &ph.StartQuarter, &ph.EndQuarter,
			&ph.StartDate, &ph.EndDate, &confidenceStr); err != nil {
			return nil, fmt.Errorf("scanning phase: %w", err)
		}
		ph.ConfidenceLevel = domain.ConfidenceLevel(confidenceStr)
		phases = append(phases, ph)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}

	for i := range phases {
		skillIDs, err := r.listPhaseSkills(ctx, phases[i].ID)
		if err != nil {
			return nil, err
		}
		phases[i].RequiredSkillIDs = skillIDs
	}
	return phases, nil
}

func (r *SQLiteProjectRepo) listPhaseSkills(ctx context.Context, phaseID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT skill_id FROM phase_skills WHERE phase_id = ? ORDER BY skill_id`, phaseID)
	if err != nil {
		return nil, fmt.Errorf("listing phase skills: %w", err)
	}
	defer rows.Close()

	var skillIDs []string
	for rows.Next() {
		var skillID string
		if err := rows.Scan(&skillID); err != nil {
			return nil, fmt.Errorf("scanning phase skill: %w", err)
		}
		skillIDs = append(skillIDs, skillID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phase skills: %w", err)
	}
	return skillIDs, nil
}

func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var statusStr, createdAtStr, updatedAtStr string
	err := row.Scan(&p.ID, &p.Name, &statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Status = domain.ProjectStatus(statusStr)
	if err := r.parseTimes(&p, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProjectRepo) parseTimes(p *domain.Project, createdAtStr, updatedAtStr string) error {
	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}
