package domain

// BusinessContact is an external/business-side stakeholder tracked in
// parallel to the IT team. Business capacity is informational only and never
// feeds member warnings.
type BusinessContact struct {
	ID        string
	Name      string
	Email     string
	CountryID string
	Company   string
}

// BusinessAssignment commits a contact's lump-sum days either to a fixed
// quarter or to a phase whose date range is resolved dynamically.
type BusinessAssignment struct {
	ID        string
	ContactID string
	ProjectID string
	PhaseID   string // when set, range comes from the phase
	Quarter   string // used when PhaseID is empty
	Days      float64
	Note      string
}

type BusinessTimeOff struct {
	ID        string
	ContactID string
	StartDate string
	EndDate   string
}

// BusinessCellData is the informational capacity of one contact over one
// window (typically a week or a quarter).
type BusinessCellData struct {
	AvailableDays   float64
	AllocatedDays   float64
	UsedPercent     int
	IsTimeOff       bool // window fully covered by time off
	IsPublicHoliday bool // window has no working days at all
}
