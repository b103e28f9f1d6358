package capacity

import (
	"math"

	"github.com/alexanderramin/capplan/internal/domain"
)

// UtilizationSummary aggregates per-member capacity results for one quarter.
type UtilizationSummary struct {
	Quarter            string
	TotalMembers       int
	Overallocated      int
	HighUtilization    int
	Normal             int
	AverageUtilization int // mean used percent, rounded
}

// TeamUtilizationSummary runs Calculate for every member and tallies the
// status distribution plus the average utilization.
func TeamUtilizationSummary(quarter string, snap *domain.Snapshot) UtilizationSummary {
	summary := UtilizationSummary{Quarter: quarter}
	totalPct := 0
	for i := range snap.Members {
		result := Calculate(snap.Members[i].ID, quarter, snap)
		summary.TotalMembers++
		totalPct += result.UsedPercent
		switch result.Status {
		case domain.StatusOverallocated:
			summary.Overallocated++
		case domain.StatusWarning:
			summary.HighUtilization++
		default:
			summary.Normal++
		}
	}
	if summary.TotalMembers > 0 {
		summary.AverageUtilization = int(math.Round(float64(totalPct) / float64(summary.TotalMembers)))
	}
	return summary
}
