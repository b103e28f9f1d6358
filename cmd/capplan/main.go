package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/capplan/internal/cli"
	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/alexanderramin/capplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.capplan/capplan.db
	dbPath := os.Getenv("CAPPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".capplan", "capplan.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	memberRepo := repository.NewSQLiteMemberRepo(database)
	skillRepo := repository.NewSQLiteSkillRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	timeOffRepo := repository.NewSQLiteTimeOffRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	jiraRepo := repository.NewSQLiteJiraItemRepo(database)
	businessRepo := repository.NewSQLiteBusinessRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case telemetry to stderr
	var observers []service.UseCaseObserver
	if os.Getenv("CAPPLAN_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	snapshotSvc := service.NewSnapshotService(
		memberRepo, skillRepo, holidayRepo, timeOffRepo, projectRepo,
		assignmentRepo, jiraRepo, businessRepo, settingsRepo)

	app := &cli.App{
		Members:     service.NewMemberService(memberRepo, timeOffRepo),
		Skills:      service.NewSkillService(skillRepo),
		Projects:    service.NewProjectService(projectRepo),
		Assignments: service.NewAssignmentService(assignmentRepo, memberRepo, projectRepo),
		Calendar:    service.NewCalendarService(holidayRepo),
		Jira:        service.NewJiraService(jiraRepo),
		Business:    service.NewBusinessService(businessRepo),
		Settings:    service.NewSettingsService(settingsRepo),
		Planning:    service.NewPlanningService(snapshotSvc, observers...),
		Import:      service.NewImportService(uow, observers...),
	}

	// Detect interactive terminal for the guided assignment form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
