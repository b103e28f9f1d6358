package domain

// CapacityBreakdownItem is one source of consumed days in a member's quarter.
type CapacityBreakdownItem struct {
	Type        BreakdownType
	Days        float64
	ProjectID   string
	ProjectName string
	PhaseID     string
	PhaseName   string
	JiraKey     string
	Summary     string
}

// CapacityResult is the engine's per-member, per-quarter output. It is
// recomputed on every call and never cached.
type CapacityResult struct {
	MemberID         string
	Quarter          string
	TotalWorkdays    float64
	UsedDays         float64
	AvailableDays    float64 // clamped at zero
	AvailableDaysRaw float64 // may be negative
	UsedPercent      int
	Status           CapacityStatus
	Breakdown        []CapacityBreakdownItem
}

// ZeroCapacityResult is the defensive default for unknown members or
// unparseable quarters: all-zero fields, status normal.
func ZeroCapacityResult(memberID, quarter string) CapacityResult {
	return CapacityResult{
		MemberID: memberID,
		Quarter:  quarter,
		Status:   StatusNormal,
	}
}
