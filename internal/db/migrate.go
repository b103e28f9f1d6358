package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are executed in order on every startup. Statements must stay
// idempotent; ALTER TABLE additions are tolerated via the duplicate-column
// check in Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS skills (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS members (
		id                      TEXT PRIMARY KEY,
		name                    TEXT NOT NULL,
		email                   TEXT NOT NULL DEFAULT '',
		country_id              TEXT NOT NULL DEFAULT '',
		role                    TEXT NOT NULL DEFAULT '',
		max_concurrent_projects INTEGER NOT NULL DEFAULT 0,
		created_at              TEXT NOT NULL,
		updated_at              TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS member_skills (
		member_id TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		skill_id  TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		PRIMARY KEY (member_id, skill_id)
	)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		country_id TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_off (
		id         TEXT PRIMARY KEY,
		member_id  TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'planned'
		           CHECK(status IN ('planned','active','on_hold','completed')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name             TEXT NOT NULL,
		start_quarter    TEXT NOT NULL DEFAULT '',
		end_quarter      TEXT NOT NULL DEFAULT '',
		start_date       TEXT NOT NULL DEFAULT '',
		end_date         TEXT NOT NULL DEFAULT '',
		confidence_level TEXT NOT NULL DEFAULT ''
		                 CHECK(confidence_level IN ('','high','medium','low'))
	)`,

	`CREATE TABLE IF NOT EXISTS phase_skills (
		phase_id TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		skill_id TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		PRIMARY KEY (phase_id, skill_id)
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		phase_id    TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		member_id   TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		quarter     TEXT NOT NULL,
		days        REAL NOT NULL DEFAULT 0,
		jira_synced INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_member_quarter
		ON assignments(member_id, quarter)`,

	`CREATE TABLE IF NOT EXISTS jira_items (
		jira_key          TEXT PRIMARY KEY,
		parent_key        TEXT NOT NULL DEFAULT '',
		summary           TEXT NOT NULL DEFAULT '',
		type              TEXT NOT NULL DEFAULT 'story',
		status_category   TEXT NOT NULL DEFAULT 'todo'
		                  CHECK(status_category IN ('todo','in_progress','done')),
		story_points      REAL,
		assignee_email    TEXT NOT NULL DEFAULT '',
		sprint_name       TEXT NOT NULL DEFAULT '',
		mapped_project_id TEXT NOT NULL DEFAULT '',
		mapped_phase_id   TEXT NOT NULL DEFAULT '',
		confidence_level  TEXT NOT NULL DEFAULT ''
		                  CHECK(confidence_level IN ('','high','medium','low'))
	)`,

	`CREATE TABLE IF NOT EXISTS business_contacts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		country_id TEXT NOT NULL DEFAULT '',
		company    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS business_assignments (
		id         TEXT PRIMARY KEY,
		contact_id TEXT NOT NULL REFERENCES business_contacts(id) ON DELETE CASCADE,
		project_id TEXT NOT NULL DEFAULT '',
		phase_id   TEXT NOT NULL DEFAULT '',
		quarter    TEXT NOT NULL DEFAULT '',
		days       REAL NOT NULL DEFAULT 0,
		note       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS business_time_off (
		id         TEXT PRIMARY KEY,
		contact_id TEXT NOT NULL REFERENCES business_contacts(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                    INTEGER PRIMARY KEY CHECK(id = 1),
		bau_reserve_days      REAL NOT NULL DEFAULT 5,
		default_country_id    TEXT NOT NULL DEFAULT '',
		conf_high             REAL NOT NULL DEFAULT 5,
		conf_medium           REAL NOT NULL DEFAULT 15,
		conf_low              REAL NOT NULL DEFAULT 25,
		conf_default          TEXT NOT NULL DEFAULT 'medium',
		jira_conf_high        REAL NOT NULL DEFAULT 5,
		jira_conf_medium      REAL NOT NULL DEFAULT 15,
		jira_conf_low         REAL NOT NULL DEFAULT 25,
		jira_conf_default     TEXT NOT NULL DEFAULT 'medium',
		sprint_duration_weeks INTEGER NOT NULL DEFAULT 2,
		sprints_per_year      INTEGER NOT NULL DEFAULT 26,
		sprint_start_date     TEXT NOT NULL DEFAULT '',
		bye_weeks_after       TEXT NOT NULL DEFAULT ''
	)`,
}

// Migrate runs all schema migrations in order.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
