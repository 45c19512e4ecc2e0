// Package domain implements the rainwater-harvesting feasibility engine.
//
// # Estimation Model
//
// The harvestable volume for a roof catchment follows the standard rational
// formula used by the Central Ground Water Board rooftop harvesting manuals:
//
//	harvestable (L) = rainfall (mm) × roof area (m²) × runoff coefficient
//
// One millimeter of rain on one square meter is one liter, so the formula
// needs no unit conversion. The runoff coefficient is a dimensionless factor
// expressing how much rain on a given roofing material becomes collectible
// runoff:
//
//	RCC slab      0.90
//	Metal sheet   0.85
//	Clay tile     0.75
//	Asbestos      0.65
//	Other/unknown 0.60
//
// # Sensitivity Band
//
// Annual rainfall varies considerably year to year, so every assessment
// carries a three-point band: 70% of the resolved rainfall (floored at
// 500 mm so arid-zone estimates stay physically plausible), the resolved
// value itself, and 130%. Each point runs through the same harvest formula.
//
// # Feasibility and Structure Selection
//
// Sites harvesting more than 150,000 L/year are rated HIGHLY SUITABLE,
// everything else MODERATELY SUITABLE. The recommended structure is a
// three-row decision table over the stated purpose and existing well
// infrastructure: storage intent always gets a cistern, recharge intent
// with a well to recharge gets a shaft, and everything else falls through
// to a percolation pit or trench.
//
// All components are pure functions of their inputs; the engine holds only
// immutable configuration tables constructed once at startup. Rainfall
// resolution (the single effectful step) lives in the rainfall package.
package domain
