package service

import (
	"spinwheel-backend/internal/features/wheel/models"
)

// SelectPrize performs one weighted draw over the prizes that still have
// quota left. It is a pure function of the catalog, the current award counts
// and the random source; it never touches the store.
//
// The returned value is the prize's original catalog index, which is what the
// front end uses to stop the wheel on the right segment.
func SelectPrize(catalog *models.Catalog, awardCounts map[string]int64, rng RandSource) int {
	eligible := make([]int, 0, len(catalog.Prizes))
	totalWeight := 0.0
	for i, p := range catalog.Prizes {
		if !p.Unbounded() && awardCounts[p.Code] >= int64(p.Limit) {
			continue
		}
		eligible = append(eligible, i)
		totalWeight += p.Weight
	}

	// Unreachable while the no-win entry is unbounded, but don't crash the
	// wheel on a bad catalog.
	if len(eligible) == 0 {
		return catalog.NoWinIndex()
	}

	drawn := rng.Float64() * totalWeight
	cumulative := 0.0
	for _, idx := range eligible {
		cumulative += catalog.Prizes[idx].Weight
		if cumulative >= drawn {
			return idx
		}
	}

	// Float round-off can leave drawn a hair above the final cumulative.
	return eligible[len(eligible)-1]
}
