package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/capplan/internal/app"
	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/importer"
	"github.com/alexanderramin/capplan/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportWorkspace(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, err
	}
	return s.ImportWorkspaceFromSchema(ctx, schema)
}

func (s *importService) ImportWorkspaceFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error) {
	start := time.Now()
	result, err := s.importSchema(ctx, schema)
	fields := map[string]any{}
	if result != nil {
		fields["members"] = result.MemberCount
		fields["projects"] = result.ProjectCount
		fields["assignments"] = result.AssignmentCount
	}
	observe(ctx, s.observer, "import_workspace", start, err, fields)
	return result, err
}

// importSchema validates, converts and persists a workspace in a single
// transaction, so a failed import leaves the database untouched.
func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid import file:\n%s", formatValidationErrors(errs))
	}
	ws := importer.Convert(schema)

	result := &app.ImportResult{}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		members := repository.NewSQLiteMemberRepo(tx)
		skills := repository.NewSQLiteSkillRepo(tx)
		holidays := repository.NewSQLiteHolidayRepo(tx)
		timeOff := repository.NewSQLiteTimeOffRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)
		assignments := repository.NewSQLiteAssignmentRepo(tx)
		jiraItems := repository.NewSQLiteJiraItemRepo(tx)
		business := repository.NewSQLiteBusinessRepo(tx)
		settings := repository.NewSQLiteSettingsRepo(tx)

		for _, sk := range ws.Skills {
			if err := skills.Upsert(ctx, sk); err != nil {
				return err
			}
		}
		for _, m := range ws.Members {
			if err := members.Create(ctx, m); err != nil {
				return err
			}
			if len(m.SkillIDs) > 0 {
				if err := members.SetSkills(ctx, m.ID, m.SkillIDs); err != nil {
					return err
				}
			}
			result.MemberCount++
		}
		for _, h := range ws.Holidays {
			if err := holidays.Create(ctx, h); err != nil {
				return err
			}
		}
		for _, t := range ws.TimeOff {
			if err := timeOff.Create(ctx, t); err != nil {
				return err
			}
		}
		for _, p := range ws.Projects {
			if err := projects.Create(ctx, p); err != nil {
				return err
			}
			result.ProjectCount++
			for i := range p.Phases {
				ph := &p.Phases[i]
				if err := projects.CreatePhase(ctx, ph); err != nil {
					return err
				}
				if len(ph.RequiredSkillIDs) > 0 {
					if err := projects.SetPhaseSkills(ctx, ph.ID, ph.RequiredSkillIDs); err != nil {
						return err
					}
				}
				result.PhaseCount++
			}
		}
		for _, a := range ws.Assignments {
			if err := assignments.Create(ctx, a); err != nil {
				return err
			}
			result.AssignmentCount++
		}
		for _, item := range ws.JiraItems {
			if err := jiraItems.Upsert(ctx, item); err != nil {
				return err
			}
			result.JiraItemCount++
		}
		for _, c := range ws.BusinessContacts {
			if err := business.CreateContact(ctx, c); err != nil {
				return err
			}
			result.ContactCount++
		}
		for _, a := range ws.BusinessAssignments {
			if err := business.CreateAssignment(ctx, a); err != nil {
				return err
			}
		}
		for _, t := range ws.BusinessTimeOff {
			if err := business.CreateTimeOff(ctx, t); err != nil {
				return err
			}
		}
		if ws.Settings != nil {
			if err := settings.Upsert(ctx, ws.Settings); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = "  - " + err.Error()
	}
	return strings.Join(lines, "\n")
}
