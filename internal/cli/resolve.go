package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/capplan/internal/domain"
)

// resolveMember turns user input (exact name, full ID, or ID prefix) into a
// member. Name matching is case-insensitive.
func resolveMember(ctx context.Context, app *App, input string) (*domain.TeamMember, error) {
	if input == "" {
		return nil, fmt.Errorf("member is required")
	}

	members, err := app.Members.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range members {
		if strings.EqualFold(m.Name, input) || m.ID == input {
			return m, nil
		}
	}

	var matches []*domain.TeamMember
	for _, m := range members {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("member %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProject turns user input (exact name, full ID, or ID prefix) into a
// project with phases populated.
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) || p.ID == input {
			return p, nil
		}
	}

	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolvePhase finds a phase of the given project by name, ID, or ID prefix.
func resolvePhase(p *domain.Project, input string) (*domain.Phase, error) {
	if input == "" {
		return nil, fmt.Errorf("phase is required")
	}

	for i := range p.Phases {
		ph := &p.Phases[i]
		if strings.EqualFold(ph.Name, input) || ph.ID == input {
			return ph, nil
		}
	}

	var matches []*domain.Phase
	for i := range p.Phases {
		if strings.HasPrefix(p.Phases[i].ID, input) {
			matches = append(matches, &p.Phases[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("phase not found in project %s: %q", p.Name, input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("phase %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSkillIDs maps skill names (or IDs) to skill IDs, creating nothing.
func resolveSkillIDs(ctx context.Context, app *App, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	skills, err := app.Skills.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		found := ""
		for _, sk := range skills {
			if strings.EqualFold(sk.Name, name) || sk.ID == name {
				found = sk.ID
				break
			}
		}
		if found == "" {
			return nil, fmt.Errorf("skill not found: %q", name)
		}
		ids = append(ids, found)
	}
	return ids, nil
}
