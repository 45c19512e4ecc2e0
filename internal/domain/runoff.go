package domain

// RunoffTable maps roofing material to its runoff coefficient.
type RunoffTable map[RoofType]float64

// DefaultRunoffTable returns the standard coefficient table. Values follow
// the CGWB rooftop harvesting manual ranges for common Indian roof materials.
func DefaultRunoffTable() RunoffTable {
	return RunoffTable{
		RoofRCC:      0.90,
		RoofMetal:    0.85,
		RoofTile:     0.75,
		RoofAsbestos: 0.65,
		RoofOther:    0.60,
	}
}

// Coefficient returns the runoff coefficient for a roof type. Unrecognized
// materials map to the "other" coefficient rather than failing.
func (t RunoffTable) Coefficient(roof RoofType) float64 {
	if c, ok := t[roof]; ok {
		return c
	}
	return t[RoofOther]
}
