package importer

import (
	"time"

	"github.com/alexanderramin/capplan/internal/calendar"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/google/uuid"
)

// ImportedWorkspace holds the converted domain objects ready for persistence.
type ImportedWorkspace struct {
	Settings            *domain.Settings
	Skills              []*domain.Skill
	Members             []*domain.TeamMember
	Holidays            []*domain.PublicHoliday
	TimeOff             []*domain.TimeOff
	Projects            []*domain.Project
	Assignments         []*domain.Assignment
	JiraItems           []*domain.JiraItem
	BusinessContacts    []*domain.BusinessContact
	BusinessAssignments []*domain.BusinessAssignment
	BusinessTimeOff     []*domain.BusinessTimeOff
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
// Quarter labels are canonicalized and nested phase assignments are folded
// into the flat assignment list.
func Convert(schema *ImportSchema) *ImportedWorkspace {
	now := time.Now().UTC()
	ws := &ImportedWorkspace{}

	refMap := make(map[string]string) // ref -> UUID

	for _, s := range schema.Skills {
		realID := uuid.New().String()
		refMap[s.Ref] = realID
		ws.Skills = append(ws.Skills, &domain.Skill{ID: realID, Name: s.Name})
	}

	for _, m := range schema.Members {
		realID := uuid.New().String()
		refMap[m.Ref] = realID
		ws.Members = append(ws.Members, &domain.TeamMember{
			ID:                    realID,
			Name:                  m.Name,
			Email:                 m.Email,
			CountryID:             m.Country,
			Role:                  m.Role,
			SkillIDs:              resolveRefs(refMap, m.Skills),
			MaxConcurrentProjects: domain.IntFromPtrWithDefault(0, m.MaxConcurrentProjects),
			CreatedAt:             now,
			UpdatedAt:             now,
		})
	}

	for _, h := range schema.Holidays {
		ws.Holidays = append(ws.Holidays, &domain.PublicHoliday{
			ID:        uuid.New().String(),
			Date:      h.Date,
			Name:      h.Name,
			CountryID: h.Country,
		})
	}

	for _, t := range schema.TimeOff {
		ws.TimeOff = append(ws.TimeOff, &domain.TimeOff{
			ID:        uuid.New().String(),
			MemberID:  refMap[t.MemberRef],
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			Note:      t.Note,
		})
	}

	for _, p := range schema.Projects {
		projectID := uuid.New().String()
		refMap[p.Ref] = projectID

		status := domain.CoalesceStr(p.Status, string(domain.ProjectPlanned))
		project := &domain.Project{
			ID:        projectID,
			Name:      p.Name,
			Status:    domain.ProjectStatus(status),
			CreatedAt: now,
			UpdatedAt: now,
		}

		for _, ph := range p.Phases {
			phaseID := uuid.New().String()
			refMap[ph.Ref] = phaseID

			project.Phases = append(project.Phases, domain.Phase{
				ID:               phaseID,
				ProjectID:        projectID,
				Name:             ph.Name,
				StartQuarter:     canonicalQuarter(ph.StartQuarter),
				EndQuarter:       canonicalQuarter(ph.EndQuarter),
				StartDate:        ph.StartDate,
				EndDate:          ph.EndDate,
				ConfidenceLevel:  domain.ConfidenceLevel(ph.Confidence),
				RequiredSkillIDs: resolveRefs(refMap, ph.RequiredSkills),
			})

			// Legacy nested shape: emit into the flat list with position
			// context filled in.
			for _, a := range ph.Assignments {
				ws.Assignments = append(ws.Assignments, convertAssignment(refMap, a, p.Ref, ph.Ref))
			}
		}
		ws.Projects = append(ws.Projects, project)
	}

	for _, a := range schema.Assignments {
		ws.Assignments = append(ws.Assignments, convertAssignment(refMap, a, a.ProjectRef, a.PhaseRef))
	}

	for _, item := range schema.JiraItems {
		itemType := domain.CoalesceStr(item.Type, "story")
		category := domain.CoalesceStr(item.StatusCategory, string(domain.CategoryTodo))
		ws.JiraItems = append(ws.JiraItems, &domain.JiraItem{
			JiraKey:         item.Key,
			ParentKey:       item.ParentKey,
			Summary:         item.Summary,
			Type:            itemType,
			StatusCategory:  domain.StatusCategory(category),
			StoryPoints:     item.StoryPoints,
			AssigneeEmail:   item.AssigneeEmail,
			SprintName:      item.SprintName,
			MappedProjectID: refMap[item.ProjectRef],
			MappedPhaseID:   refMap[item.PhaseRef],
			ConfidenceLevel: domain.ConfidenceLevel(item.Confidence),
		})
	}

	for _, c := range schema.BusinessContacts {
		realID := uuid.New().String()
		refMap[c.Ref] = realID
		ws.BusinessContacts = append(ws.BusinessContacts, &domain.BusinessContact{
			ID:        realID,
			Name:      c.Name,
			Email:     c.Email,
			CountryID: c.Country,
			Company:   c.Company,
		})
	}

	for _, a := range schema.BusinessAssignments {
		ws.BusinessAssignments = append(ws.BusinessAssignments, &domain.BusinessAssignment{
			ID:        uuid.New().String(),
			ContactID: refMap[a.ContactRef],
			ProjectID: refMap[a.ProjectRef],
			PhaseID:   refMap[a.PhaseRef],
			Quarter:   canonicalQuarter(a.Quarter),
			Days:      a.Days,
			Note:      a.Note,
		})
	}

	for _, t := range schema.BusinessTimeOff {
		ws.BusinessTimeOff = append(ws.BusinessTimeOff, &domain.BusinessTimeOff{
			ID:        uuid.New().String(),
			ContactID: refMap[t.ContactRef],
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
		})
	}

	ws.Settings = convertSettings(schema.Settings)
	return ws
}

func convertAssignment(refMap map[string]string, a AssignmentImport, projectRef, phaseRef string) *domain.Assignment {
	return &domain.Assignment{
		ID:         uuid.New().String(),
		ProjectID:  refMap[projectRef],
		PhaseID:    refMap[phaseRef],
		MemberID:   refMap[a.MemberRef],
		Quarter:    canonicalQuarter(a.Quarter),
		Days:       a.Days,
		JiraSynced: a.JiraSynced,
	}
}

// convertSettings merges the import's overrides onto the stock defaults.
func convertSettings(in *SettingsImport) *domain.Settings {
	s := domain.DefaultSettings()
	if in == nil {
		return &s
	}
	s.BAUReserveDays = domain.Float64FromPtrWithDefault(s.BAUReserveDays, in.BAUReserveDays)
	s.DefaultCountryID = domain.CoalesceStr(in.DefaultCountry, s.DefaultCountryID)
	mergeConfidence(&s.Confidence, in.Confidence)
	mergeConfidence(&s.JiraConfidence, in.JiraConfidence)
	if in.Sprint != nil {
		s.Sprint.SprintDurationWeeks = domain.IntFromPtrWithDefault(s.Sprint.SprintDurationWeeks, in.Sprint.DurationWeeks)
		s.Sprint.SprintsPerYear = domain.IntFromPtrWithDefault(s.Sprint.SprintsPerYear, in.Sprint.PerYear)
		s.Sprint.StartDate = domain.CoalesceStr(in.Sprint.StartDate, s.Sprint.StartDate)
		if len(in.Sprint.ByeWeeksAfter) > 0 {
			s.Sprint.ByeWeeksAfter = in.Sprint.ByeWeeksAfter
		}
	}
	return &s
}

func mergeConfidence(dst *domain.ConfidenceSettings, in *ConfidenceImport) {
	if in == nil {
		return
	}
	dst.High = domain.Float64FromPtrWithDefault(dst.High, in.High)
	dst.Medium = domain.Float64FromPtrWithDefault(dst.Medium, in.Medium)
	dst.Low = domain.Float64FromPtrWithDefault(dst.Low, in.Low)
	if in.DefaultLevel != "" {
		dst.DefaultLevel = domain.ConfidenceLevel(in.DefaultLevel)
	}
}

func resolveRefs(refMap map[string]string, refs []string) []string {
	if len(refs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if id, ok := refMap[ref]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// canonicalQuarter rewrites any accepted quarter spelling into the canonical
// "Q<n> <yyyy>" form. Unparseable labels pass through unchanged.
func canonicalQuarter(label string) string {
	if label == "" {
		return ""
	}
	q := calendar.ParseQuarter(label)
	if q == nil {
		return label
	}
	return q.Label()
}
