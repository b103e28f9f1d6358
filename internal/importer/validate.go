package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
)

var validStatusCategories = map[string]bool{"todo": true, "in_progress": true, "done": true}

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	skillRefs := make(map[string]bool)
	errs = append(errs, validateSkills(schema.Skills, skillRefs)...)

	memberRefs := make(map[string]bool)
	errs = append(errs, validateMembers(schema.Members, skillRefs, memberRefs)...)

	errs = append(errs, validateHolidays(schema.Holidays)...)
	errs = append(errs, validateTimeOff(schema.TimeOff, memberRefs)...)

	projectRefs := make(map[string]bool)
	phaseRefs := make(map[string]bool)
	errs = append(errs, validateProjects(schema.Projects, skillRefs, memberRefs, projectRefs, phaseRefs)...)

	errs = append(errs, validateAssignments("assignments", schema.Assignments, memberRefs, projectRefs, phaseRefs, true)...)
	errs = append(errs, validateJiraItems(schema.JiraItems, projectRefs, phaseRefs)...)

	contactRefs := make(map[string]bool)
	errs = append(errs, validateBusinessContacts(schema.BusinessContacts, contactRefs)...)
	errs = append(errs, validateBusinessAssignments(schema.BusinessAssignments, contactRefs, projectRefs, phaseRefs)...)
	errs = append(errs, validateBusinessTimeOff(schema.BusinessTimeOff, contactRefs)...)

	return errs
}

func validateSkills(skills []SkillImport, skillRefs map[string]bool) []error {
	var errs []error
	for i, s := range skills {
		prefix := fmt.Sprintf("skills[%d]", i)
		if s.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if skillRefs[s.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, s.Ref))
		} else {
			skillRefs[s.Ref] = true
		}
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validateMembers(members []MemberImport, skillRefs, memberRefs map[string]bool) []error {
	var errs []error
	for i, m := range members {
		prefix := fmt.Sprintf("members[%d]", i)
		if m.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if memberRefs[m.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, m.Ref))
		} else {
			memberRefs[m.Ref] = true
		}
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if m.MaxConcurrentProjects != nil && *m.MaxConcurrentProjects < 0 {
			errs = append(errs, fmt.Errorf("%s.max_concurrent_projects must not be negative", prefix))
		}
		for _, ref := range m.Skills {
			if !skillRefs[ref] {
				errs = append(errs, fmt.Errorf("%s.skills: ref %q not found in skills", prefix, ref))
			}
		}
	}
	return errs
}

func validateHolidays(holidays []HolidayImport) []error {
	var errs []error
	for i, h := range holidays {
		prefix := fmt.Sprintf("holidays[%d]", i)
		errs = append(errs, validateDate(prefix+".date", h.Date)...)
		if h.Country == "" {
			errs = append(errs, fmt.Errorf("%s.country is required", prefix))
		}
	}
	return errs
}

func validateTimeOff(entries []TimeOffImport, memberRefs map[string]bool) []error {
	var errs []error
	for i, t := range entries {
		prefix := fmt.Sprintf("time_off[%d]", i)
		if t.MemberRef == "" {
			errs = append(errs, fmt.Errorf("%s.member_ref is required", prefix))
		} else if !memberRefs[t.MemberRef] {
			errs = append(errs, fmt.Errorf("%s.member_ref: ref %q not found in members", prefix, t.MemberRef))
		}
		errs = append(errs, validateDateRange(prefix, t.StartDate, t.EndDate)...)
	}
	return errs
}

func validateProjects(projects []ProjectImport, skillRefs, memberRefs, projectRefs, phaseRefs map[string]bool) []error {
	var errs []error
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		if p.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if projectRefs[p.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, p.Ref))
		} else {
			projectRefs[p.Ref] = true
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Status != "" && !domain.ValidProjectStatuses[p.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
		}

		for j, ph := range p.Phases {
			phasePrefix := fmt.Sprintf("%s.phases[%d]", prefix, j)
			if ph.Ref == "" {
				errs = append(errs, fmt.Errorf("%s.ref is required", phasePrefix))
			} else if phaseRefs[ph.Ref] {
				errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", phasePrefix, ph.Ref))
			} else {
				phaseRefs[ph.Ref] = true
			}
			if ph.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", phasePrefix))
			}
			errs = append(errs, validateOptionalQuarter(phasePrefix+".start_quarter", ph.StartQuarter)...)
			errs = append(errs, validateOptionalQuarter(phasePrefix+".end_quarter", ph.EndQuarter)...)
			errs = append(errs, validateOptionalDate(phasePrefix+".start_date", ph.StartDate)...)
			errs = append(errs, validateOptionalDate(phasePrefix+".end_date", ph.EndDate)...)
			if ph.Confidence != "" && !domain.ValidConfidenceLevels[ph.Confidence] {
				errs = append(errs, fmt.Errorf("%s.confidence: invalid value %q", phasePrefix, ph.Confidence))
			}
			for _, ref := range ph.RequiredSkills {
				if !skillRefs[ref] {
					errs = append(errs, fmt.Errorf("%s.required_skills: ref %q not found in skills", phasePrefix, ref))
				}
			}
			// Nested assignments inherit project and phase from their position.
			errs = append(errs, validateAssignments(phasePrefix+".assignments", ph.Assignments, memberRefs, nil, nil, false)...)
		}
	}
	return errs
}

func validateAssignments(section string, assignments []AssignmentImport, memberRefs, projectRefs, phaseRefs map[string]bool, requireRefs bool) []error {
	var errs []error
	for i, a := range assignments {
		prefix := fmt.Sprintf("%s[%d]", section, i)
		if a.MemberRef == "" {
			errs = append(errs, fmt.Errorf("%s.member_ref is required", prefix))
		} else if !memberRefs[a.MemberRef] {
			errs = append(errs, fmt.Errorf("%s.member_ref: ref %q not found in members", prefix, a.MemberRef))
		}
		if requireRefs {
			if a.ProjectRef == "" {
				errs = append(errs, fmt.Errorf("%s.project_ref is required", prefix))
			} else if !projectRefs[a.ProjectRef] {
				errs = append(errs, fmt.Errorf("%s.project_ref: ref %q not found in projects", prefix, a.ProjectRef))
			}
			if a.PhaseRef == "" {
				errs = append(errs, fmt.Errorf("%s.phase_ref is required", prefix))
			} else if !phaseRefs[a.PhaseRef] {
				errs = append(errs, fmt.Errorf("%s.phase_ref: ref %q not found in phases", prefix, a.PhaseRef))
			}
		}
		if a.Quarter == "" {
			errs = append(errs, fmt.Errorf("%s.quarter is required", prefix))
		} else if calendar.ParseQuarter(a.Quarter) == nil {
			errs = append(errs, fmt.Errorf("%s.quarter: invalid label %q", prefix, a.Quarter))
		}
		if a.Days < 0 {
			errs = append(errs, fmt.Errorf("%s.days must not be negative", prefix))
		}
	}
	return errs
}

func validateJiraItems(items []JiraItemImport, projectRefs, phaseRefs map[string]bool) []error {
	var errs []error
	keys := make(map[string]bool)
	for i, item := range items {
		prefix := fmt.Sprintf("jira_items[%d]", i)
		if item.Key == "" {
			errs = append(errs, fmt.Errorf("%s.key is required", prefix))
		} else if keys[item.Key] {
			errs = append(errs, fmt.Errorf("%s.key: duplicate key %q", prefix, item.Key))
		} else {
			keys[item.Key] = true
		}
		if item.Type != "" && !domain.ValidItemTypes[item.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, item.Type))
		}
		if item.StatusCategory != "" && !validStatusCategories[item.StatusCategory] {
			errs = append(errs, fmt.Errorf("%s.status_category: invalid value %q", prefix, item.StatusCategory))
		}
		if item.StoryPoints != nil && *item.StoryPoints < 0 {
			errs = append(errs, fmt.Errorf("%s.story_points must not be negative", prefix))
		}
		if item.Confidence != "" && !domain.ValidConfidenceLevels[item.Confidence] {
			errs = append(errs, fmt.Errorf("%s.confidence: invalid value %q", prefix, item.Confidence))
		}
		if item.ProjectRef != "" && !projectRefs[item.ProjectRef] {
			errs = append(errs, fmt.Errorf("%s.project_ref: ref %q not found in projects", prefix, item.ProjectRef))
		}
		if item.PhaseRef != "" && !phaseRefs[item.PhaseRef] {
			errs = append(errs, fmt.Errorf("%s.phase_ref: ref %q not found in phases", prefix, item.PhaseRef))
		}
		if item.ParentKey != "" && item.ParentKey == item.Key {
			errs = append(errs, fmt.Errorf("%s.parent_key: item %q cannot be its own parent", prefix, item.Key))
		}
	}
	// Beyond the self-parent check, parent keys may point at items outside
	// the import, so they are not cross-checked here. The rollup degrades
	// unknown parents and cycles at compute time.
	return errs
}

func validateBusinessContacts(contacts []BusinessContactImport, contactRefs map[string]bool) []error {
	var errs []error
	for i, c := range contacts {
		prefix := fmt.Sprintf("business_contacts[%d]", i)
		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if contactRefs[c.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, c.Ref))
		} else {
			contactRefs[c.Ref] = true
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validateBusinessAssignments(assignments []BusinessAssignmentImport, contactRefs, projectRefs, phaseRefs map[string]bool) []error {
	var errs []error
	for i, a := range assignments {
		prefix := fmt.Sprintf("business_assignments[%d]", i)
		if a.ContactRef == "" {
			errs = append(errs, fmt.Errorf("%s.contact_ref is required", prefix))
		} else if !contactRefs[a.ContactRef] {
			errs = append(errs, fmt.Errorf("%s.contact_ref: ref %q not found in business_contacts", prefix, a.ContactRef))
		}
		if a.PhaseRef == "" && a.Quarter == "" {
			errs = append(errs, fmt.Errorf("%s: either phase_ref or quarter is required", prefix))
		}
		if a.PhaseRef != "" && !phaseRefs[a.PhaseRef] {
			errs = append(errs, fmt.Errorf("%s.phase_ref: ref %q not found in phases", prefix, a.PhaseRef))
		}
		if a.ProjectRef != "" && !projectRefs[a.ProjectRef] {
			errs = append(errs, fmt.Errorf("%s.project_ref: ref %q not found in projects", prefix, a.ProjectRef))
		}
		if a.Quarter != "" && calendar.ParseQuarter(a.Quarter) == nil {
			errs = append(errs, fmt.Errorf("%s.quarter: invalid label %q", prefix, a.Quarter))
		}
		if a.Days < 0 {
			errs = append(errs, fmt.Errorf("%s.days must not be negative", prefix))
		}
	}
	return errs
}

func validateBusinessTimeOff(entries []BusinessTimeOffImport, contactRefs map[string]bool) []error {
	var errs []error
	for i, t := range entries {
		prefix := fmt.Sprintf("business_time_off[%d]", i)
		if t.ContactRef == "" {
			errs = append(errs, fmt.Errorf("%s.contact_ref is required", prefix))
		} else if !contactRefs[t.ContactRef] {
			errs = append(errs, fmt.Errorf("%s.contact_ref: ref %q not found in business_contacts", prefix, t.ContactRef))
		}
		errs = append(errs, validateDateRange(prefix, t.StartDate, t.EndDate)...)
	}
	return errs
}

func validateDateRange(prefix, start, end string) []error {
	var errs []error
	if start == "" {
		errs = append(errs, fmt.Errorf("%s.start_date is required", prefix))
	} else {
		errs = append(errs, validateDate(prefix+".start_date", start)...)
	}
	if end == "" {
		errs = append(errs, fmt.Errorf("%s.end_date is required", prefix))
	} else {
		errs = append(errs, validateDate(prefix+".end_date", end)...)
	}
	if start != "" && end != "" {
		s, sErr := time.Parse(calendar.DateLayout, start)
		e, eErr := time.Parse(calendar.DateLayout, end)
		if sErr == nil && eErr == nil && e.Before(s) {
			errs = append(errs, fmt.Errorf("%s: end_date %q must not be before start_date %q", prefix, end, start))
		}
	}
	return errs
}

func validateDate(field, dateStr string) []error {
	if _, err := time.Parse(calendar.DateLayout, dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, dateStr)}
	}
	return nil
}

func validateOptionalDate(field, dateStr string) []error {
	if dateStr == "" {
		return nil
	}
	return validateDate(field, dateStr)
}

func validateOptionalQuarter(field, label string) []error {
	if label == "" {
		return nil
	}
	if calendar.ParseQuarter(label) == nil {
		return []error{fmt.Errorf("%s: invalid quarter label %q", field, label)}
	}
	return nil
}
