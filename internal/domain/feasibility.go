package domain

// Thresholds holds the harvestable-volume cutoffs for feasibility tiers,
// in liters per year.
type Thresholds struct {
	HighlySuitable     int64
	ModeratelySuitable int64
}

// DefaultThresholds returns the standard classification cutoffs. Only the
// upper cutoff is active: sites below the lower one are still reported as
// moderately suitable rather than ruled out, since even a small catchment
// offsets some municipal demand.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighlySuitable:     150_000,
		ModeratelySuitable: 50_000,
	}
}

// Classify maps a harvestable volume to its feasibility tier. The comparison
// is strictly greater-than: exactly 150,000 L is moderately suitable.
func (e *Engine) Classify(harvestableLiters int64) FeasibilityTier {
	if harvestableLiters > e.thresholds.HighlySuitable {
		return TierHighlySuitable
	}
	return TierModeratelySuitable
}

// Recommend selects a structure category from the stated purpose and existing
// well infrastructure. First match wins:
//
//	storage intent              → cistern, regardless of wells
//	recharge intent with a well → shaft feeding that well
//	everything else             → percolation pit or trench
func (e *Engine) Recommend(purpose Purpose, well WellType) StructureType {
	switch {
	case purpose == PurposeStorage:
		return StructureStorageTank
	case purpose == PurposeRecharge && hasWell(well):
		return StructureRechargeShaft
	default:
		return StructureRechargePit
	}
}

func hasWell(well WellType) bool {
	switch well {
	case WellBorewell, WellOpenWell, WellBoth:
		return true
	}
	return false
}
