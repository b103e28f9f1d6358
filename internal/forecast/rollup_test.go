package forecast

import (
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(v float64) *float64 { return &v }

func TestComputeRollup_EpicFeatureStory(t *testing.T) {
	items := []domain.JiraItem{
		{JiraKey: "EPIC-1", Type: "epic"},
		{JiraKey: "FEAT-1", ParentKey: "EPIC-1", Type: "feature"},
		{JiraKey: "FEAT-2", ParentKey: "EPIC-1", Type: "feature"},
		{JiraKey: "ST-1", ParentKey: "FEAT-1", Type: "story", StoryPoints: pts(3)},
		{JiraKey: "ST-2", ParentKey: "FEAT-1", Type: "story", StoryPoints: pts(5)},
		{JiraKey: "ST-3", ParentKey: "FEAT-2", Type: "story", StoryPoints: pts(3)},
		{JiraKey: "ST-4", ParentKey: "FEAT-2", Type: "story", StoryPoints: pts(5)},
	}
	rollup := ComputeRollup(items, domain.ConfidenceMedium, domain.DefaultConfidenceSettings())

	feat := rollup["FEAT-1"]
	assert.Equal(t, 8.0, feat.RawDays)
	// ceil(3*1.15) + ceil(5*1.15) = 4 + 6 = 10
	assert.Equal(t, 10.0, feat.ForecastedDays)
	assert.Equal(t, 2, feat.ItemCount)

	epic := rollup["EPIC-1"]
	assert.Equal(t, 16.0, epic.RawDays)
	assert.Equal(t, 20.0, epic.ForecastedDays)
	assert.Equal(t, 4, epic.ItemCount)
}

func TestComputeRollup_StructuralPointsIgnored(t *testing.T) {
	// An epic with its own story points contributes only its children's sum.
	items := []domain.JiraItem{
		{JiraKey: "EPIC-1", StoryPoints: pts(100)},
		{JiraKey: "ST-1", ParentKey: "EPIC-1", StoryPoints: pts(2)},
	}
	rollup := ComputeRollup(items, domain.ConfidenceMedium, domain.DefaultConfidenceSettings())
	assert.Equal(t, 2.0, rollup["EPIC-1"].RawDays)
	assert.Equal(t, 1, rollup["EPIC-1"].ItemCount)
}

func TestComputeRollup_Additivity(t *testing.T) {
	items := []domain.JiraItem{
		{JiraKey: "E"},
		{JiraKey: "F1", ParentKey: "E"},
		{JiraKey: "F2", ParentKey: "E"},
		{JiraKey: "S1", ParentKey: "F1", StoryPoints: pts(1.5)},
		{JiraKey: "S2", ParentKey: "F1", StoryPoints: pts(2)},
		{JiraKey: "S3", ParentKey: "F2", StoryPoints: pts(8)},
	}
	rollup := ComputeRollup(items, domain.ConfidenceLow, domain.DefaultConfidenceSettings())

	parent := rollup["E"]
	assert.Equal(t, rollup["F1"].RawDays+rollup["F2"].RawDays, parent.RawDays)
	assert.Equal(t, rollup["F1"].ForecastedDays+rollup["F2"].ForecastedDays, parent.ForecastedDays)
	assert.Equal(t, rollup["F1"].ItemCount+rollup["F2"].ItemCount, parent.ItemCount)
}

func TestComputeRollup_MissingPointsLeafIsZero(t *testing.T) {
	items := []domain.JiraItem{
		{JiraKey: "F"},
		{JiraKey: "S1", ParentKey: "F", StoryPoints: pts(3)},
		{JiraKey: "S2", ParentKey: "F"}, // no estimate yet
	}
	rollup := ComputeRollup(items, domain.ConfidenceMedium, domain.DefaultConfidenceSettings())
	f := rollup["F"]
	assert.Equal(t, 3.0, f.RawDays)
	assert.Equal(t, 2, f.ItemCount, "unestimated leaf still counts as an item")
	assert.GreaterOrEqual(t, f.RawDays, 0.0)
	assert.GreaterOrEqual(t, f.ForecastedDays, 0.0)
}

func TestComputeRollup_ParentOutsideListIsRoot(t *testing.T) {
	// A parentKey pointing at an item that is not in the list must not
	// fabricate an entry for the phantom parent.
	items := []domain.JiraItem{
		{JiraKey: "S1", ParentKey: "GHOST-1", StoryPoints: pts(4)},
	}
	rollup := ComputeRollup(items, domain.ConfidenceMedium, domain.DefaultConfidenceSettings())
	require.Len(t, rollup, 1)
	_, ok := rollup["GHOST-1"]
	assert.False(t, ok)
	assert.Equal(t, 4.0, rollup["S1"].RawDays)
}

func TestComputeRollup_PerItemConfidenceOverride(t *testing.T) {
	items := []domain.JiraItem{
		{JiraKey: "F"},
		{JiraKey: "S1", ParentKey: "F", StoryPoints: pts(10), ConfidenceLevel: domain.ConfidenceHigh},
		{JiraKey: "S2", ParentKey: "F", StoryPoints: pts(10)},
	}
	rollup := ComputeRollup(items, domain.ConfidenceLow, domain.DefaultConfidenceSettings())
	// S1 at high: ceil(10.5) = 11. S2 falls back to low: ceil(12.5) = 13.
	assert.Equal(t, 24.0, rollup["F"].ForecastedDays)
}

func TestComputeRollup_SelfParentDegradesToZero(t *testing.T) {
	// An item listing itself as parent must not recurse; it degrades to a
	// zeroed entry instead of crashing the walk.
	items := []domain.JiraItem{
		{JiraKey: "S1", ParentKey: "S1", StoryPoints: pts(3)},
		{JiraKey: "S2", StoryPoints: pts(5)},
	}
	rollup := ComputeRollup(items, domain.ConfidenceMedium, domain.DefaultConfidenceSettings())

	require.Contains(t, rollup, "S1")
	assert.Equal(t, RollupEntry{}, rollup["S1"])
	assert.Equal(t, 5.0, rollup["S2"].RawDays, "items outside the cycle are unaffected")
}

func TestComputeRollup_ParentCycleDegradesToZero(t *testing.T) {
	items := []domain.JiraItem{
		{JiraKey: "A", ParentKey: "B", StoryPoints: pts(3)},
		{JiraKey: "B", ParentKey: "A", StoryPoints: pts(5)},
		{JiraKey: "C", ParentKey: "A", StoryPoints: pts(2)},
	}
	rollup := ComputeRollup(items, domain.ConfidenceMedium, domain.DefaultConfidenceSettings())

	// A and B form a cycle; whichever is walked first sums the other's
	// sentinel plus C's leaf entry. Nothing recurses unbounded and every
	// entry stays finite and non-negative.
	require.Len(t, rollup, 3)
	assert.Equal(t, 2.0, rollup["C"].RawDays)
	for key, e := range rollup {
		assert.GreaterOrEqual(t, e.RawDays, 0.0, key)
		assert.GreaterOrEqual(t, e.ForecastedDays, 0.0, key)
	}
}

func TestComputeRollup_EmptyInput(t *testing.T) {
	rollup := ComputeRollup(nil, domain.ConfidenceMedium, domain.DefaultConfidenceSettings())
	assert.Empty(t, rollup)
}
