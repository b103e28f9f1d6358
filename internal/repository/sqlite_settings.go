package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database. The
// settings table holds a single row with id 1.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

// Get loads the settings row, falling back to defaults when nothing has been
// saved yet.
func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT bau_reserve_days, default_country_id,
		conf_high, conf_medium, conf_low, conf_default,
		jira_conf_high, jira_conf_medium, jira_conf_low, jira_conf_default,
		sprint_duration_weeks, sprints_per_year, sprint_start_date, bye_weeks_after
		FROM settings WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var confDefault, jiraConfDefault, byeWeeksCSV string
	err := row.Scan(
		&s.BAUReserveDays,
		&s.DefaultCountryID,
		&s.Confidence.High,
		&s.Confidence.Medium,
		&s.Confidence.Low,
		&confDefault,
		&s.JiraConfidence.High,
		&s.JiraConfidence.Medium,
		&s.JiraConfidence.Low,
		&jiraConfDefault,
		&s.Sprint.SprintDurationWeeks,
		&s.Sprint.SprintsPerYear,
		&s.Sprint.StartDate,
		&byeWeeksCSV,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.Confidence.DefaultLevel = domain.ConfidenceLevel(confDefault)
	s.JiraConfidence.DefaultLevel = domain.ConfidenceLevel(jiraConfDefault)
	s.Sprint.ByeWeeksAfter = csvToInts(byeWeeksCSV)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT INTO settings (id, bau_reserve_days, default_country_id,
		conf_high, conf_medium, conf_low, conf_default,
		jira_conf_high, jira_conf_medium, jira_conf_low, jira_conf_default,
		sprint_duration_weeks, sprints_per_year, sprint_start_date, bye_weeks_after)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			bau_reserve_days = excluded.bau_reserve_days,
			default_country_id = excluded.default_country_id,
			conf_high = excluded.conf_high,
			conf_medium = excluded.conf_medium,
			conf_low = excluded.conf_low,
			conf_default = excluded.conf_default,
			jira_conf_high = excluded.jira_conf_high,
			jira_conf_medium = excluded.jira_conf_medium,
			jira_conf_low = excluded.jira_conf_low,
			jira_conf_default = excluded.jira_conf_default,
			sprint_duration_weeks = excluded.sprint_duration_weeks,
			sprints_per_year = excluded.sprints_per_year,
			sprint_start_date = excluded.sprint_start_date,
			bye_weeks_after = excluded.bye_weeks_after`
	_, err := r.db.ExecContext(ctx, query,
		s.BAUReserveDays,
		s.DefaultCountryID,
		s.Confidence.High,
		s.Confidence.Medium,
		s.Confidence.Low,
		string(s.Confidence.DefaultLevel),
		s.JiraConfidence.High,
		s.JiraConfidence.Medium,
		s.JiraConfidence.Low,
		string(s.JiraConfidence.DefaultLevel),
		s.Sprint.SprintDurationWeeks,
		s.Sprint.SprintsPerYear,
		s.Sprint.StartDate,
		intsToCSV(s.Sprint.ByeWeeksAfter),
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
