package forecast

import "github.com/alexanderramin/capplan/internal/domain"

// RollupEntry aggregates effort for one node of the work item forest.
type RollupEntry struct {
	RawDays        float64
	ForecastedDays float64
	ItemCount      int
}

// ComputeRollup aggregates story points bottom-up over the parentKey forest.
// Leaves contribute their own story points (raw) and per-item forecast;
// nodes with children contribute only the sum of their children, and their
// own points are ignored. Parent keys pointing outside the item list
// are treated as roots, and parent cycles degrade to zeroed entries instead
// of recursing. Results are memoized per key within this call; the cache is
// discarded when it returns.
func ComputeRollup(items []domain.JiraItem, defaultLevel domain.ConfidenceLevel, settings domain.ConfidenceSettings) map[string]RollupEntry {
	byKey := make(map[string]*domain.JiraItem, len(items))
	for i := range items {
		byKey[items[i].JiraKey] = &items[i]
	}

	children := make(map[string][]string)
	for i := range items {
		p := items[i].ParentKey
		if p == "" {
			continue
		}
		if _, ok := byKey[p]; !ok {
			continue
		}
		children[p] = append(children[p], items[i].JiraKey)
	}

	memo := make(map[string]RollupEntry, len(items))

	var roll func(key string) RollupEntry
	roll = func(key string) RollupEntry {
		if e, ok := memo[key]; ok {
			return e
		}
		// Seed before recursing: a key seen again mid-walk is part of a
		// parent cycle and contributes zero rather than recursing forever.
		memo[key] = RollupEntry{}

		var entry RollupEntry
		kids := children[key]
		if len(kids) == 0 {
			item := byKey[key]
			raw := 0.0
			if item.StoryPoints != nil && *item.StoryPoints > 0 {
				raw = *item.StoryPoints
			}
			level := domain.CoalesceLevel(item.ConfidenceLevel, defaultLevel)
			entry = RollupEntry{
				RawDays:        raw,
				ForecastedDays: ForecastDays(raw, level, settings),
				ItemCount:      1,
			}
		} else {
			for _, k := range kids {
				child := roll(k)
				entry.RawDays += child.RawDays
				entry.ForecastedDays += child.ForecastedDays
				entry.ItemCount += child.ItemCount
			}
		}

		memo[key] = entry
		return entry
	}

	for i := range items {
		roll(items[i].JiraKey)
	}
	return memo
}
