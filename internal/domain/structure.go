package domain

import (
	"fmt"
	"strconv"
)

// TankBufferDays is the storage-tank sizing assumption: the tank should cover
// this many days of the household's daily usage.
const TankBufferDays = 60

// StructureDetail resolves illustrative physical dimensions and a
// construction note for a recommended structure. The storage-tank branch is
// the only data-driven one: capacity is dailyUsageLiters (or the default
// 300 L assumption when zero) times the buffer-day count, displayed in both
// cubic meters and liters.
func (e *Engine) StructureDetail(structure StructureType, dailyUsageLiters float64) StructureDetail {
	switch structure {
	case StructureRechargeShaft:
		return StructureDetail{
			DimensionOrCapacity: "1.5 - 2.0 meters",
			Depth:               "18 - 30 meters",
			ConstructionNote:    "Vertical shaft accessing deep aquifer. Requires expert drilling and graded filter media.",
		}
	case StructureStorageTank:
		if dailyUsageLiters <= 0 {
			dailyUsageLiters = DefaultDailyUsageLiters
		}
		liters := dailyUsageLiters * e.tankBufferDays
		cubicMeters := liters / 1000
		return StructureDetail{
			DimensionOrCapacity: fmt.Sprintf("Capacity: %.1f m³ (Approx %s Liters)", cubicMeters, groupDigits(int64(liters))),
			Depth:               "Varies (Above or Underground)",
			ConstructionNote:    "Sealed, opaque plastic or reinforced concrete tank for collection and direct use.",
		}
	case StructureRechargePit:
		return StructureDetail{
			DimensionOrCapacity: "1.0 - 1.5 meters wide",
			Depth:               "1.5 - 3.0 meters deep",
			ConstructionNote:    "Simple pit/trench filled with layers of boulders, gravel, and sand for shallow percolation.",
		}
	default:
		return StructureDetail{
			DimensionOrCapacity: "Varies by dimension",
			Depth:               "Varies by type",
			ConstructionNote:    "Requires custom design based on final site visit.",
		}
	}
}

// groupDigits formats an integer with comma thousands separators, e.g.
// 18000 -> "18,000".
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
