package domain

import "math"

// DefaultAnnualRainfallMm is the regional fallback used when a location
// cannot be resolved against the historical archive.
const DefaultAnnualRainfallMm = 850

// HarvestableLiters estimates the annual collectible volume for a roof.
// The formula is exact: 1 mm of rain on 1 m² is 1 L, scaled by the material's
// runoff coefficient and rounded to the nearest liter. Inputs are not range
// checked; callers validate upstream.
func (e *Engine) HarvestableLiters(rainfallMm, roofAreaSqM float64, roof RoofType) int64 {
	return int64(math.Round(rainfallMm * roofAreaSqM * e.runoff.Coefficient(roof)))
}

// Scenarios derives the low/actual/high sensitivity band from the resolved
// annual rainfall. The low bound is 70% of actual floored at 500 mm; the high
// bound is 130% with no ceiling. Each bound runs independently through the
// harvest formula with the same roof area and material.
func (e *Engine) Scenarios(annualRainfallMm, roofAreaSqM float64, roof RoofType) Scenarios {
	low := math.Max(annualRainfallMm*e.lowScenarioFactor, e.lowScenarioFloorMm)
	high := annualRainfallMm * e.highScenarioFactor

	return Scenarios{
		Low: ScenarioPoint{
			RainfallMm:        low,
			HarvestableLiters: e.HarvestableLiters(low, roofAreaSqM, roof),
		},
		Actual: ScenarioPoint{
			RainfallMm:        annualRainfallMm,
			HarvestableLiters: e.HarvestableLiters(annualRainfallMm, roofAreaSqM, roof),
		},
		High: ScenarioPoint{
			RainfallMm:        high,
			HarvestableLiters: e.HarvestableLiters(high, roofAreaSqM, roof),
		},
	}
}
