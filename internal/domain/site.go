package domain

import "strings"

// RoofType identifies the roofing material of the catchment surface.
type RoofType string

const (
	RoofRCC      RoofType = "rcc"
	RoofMetal    RoofType = "metal"
	RoofTile     RoofType = "tile"
	RoofAsbestos RoofType = "asbestos"
	RoofOther    RoofType = "other"
)

// WellType identifies existing water infrastructure on the site.
type WellType string

const (
	WellNone     WellType = "none"
	WellBorewell WellType = "borewell"
	WellOpenWell WellType = "openwell"
	WellBoth     WellType = "both"
)

// Purpose is the owner's stated goal for harvested water.
type Purpose string

const (
	PurposeStorage      Purpose = "storage"
	PurposeRecharge     Purpose = "recharge"
	PurposeBoth         Purpose = "both"
	PurposeConsultation Purpose = "consultation"
)

// Defaults applied when optional site attributes are absent.
const (
	DefaultDailyUsageLiters       = 300.0
	DefaultGroundwaterDepthMeters = 20.0
	DefaultSoilType               = "Alluvial"
	DefaultAquiferType            = "Deep Alluvial Aquifer"
)

// SiteInput is one site's assessment form, immutable per assessment.
// Validation of enum values and numeric ranges happens at the API boundary;
// the engine itself treats unknown roof types as "other".
type SiteInput struct {
	Location     string
	RoofAreaSqM  float64
	RoofType     RoofType
	ExistingWell WellType
	Purpose      Purpose

	// Optional attributes. Zero means "not provided".
	DailyUsageLiters       float64
	GroundwaterDepthMeters float64
	SoilType               string

	// Descriptive extras carried through to the stored assessment.
	BuildingType string
	Occupants    int
	OpenSpaceSqM float64
	BudgetRange  string
}

// EffectiveDailyUsage returns the daily water usage used for storage-tank
// sizing, falling back to the configured default assumption.
func (s SiteInput) EffectiveDailyUsage() float64 {
	if s.DailyUsageLiters > 0 {
		return s.DailyUsageLiters
	}
	return DefaultDailyUsageLiters
}

// EffectiveGroundwaterDepth returns the groundwater depth for the
// hydrogeological profile, defaulted when the owner did not supply one.
func (s SiteInput) EffectiveGroundwaterDepth() float64 {
	if s.GroundwaterDepthMeters > 0 {
		return s.GroundwaterDepthMeters
	}
	return DefaultGroundwaterDepthMeters
}

// EffectiveSoilType returns the soil type for display, defaulted when absent.
func (s SiteInput) EffectiveSoilType() string {
	if t := strings.TrimSpace(s.SoilType); t != "" {
		return t
	}
	return DefaultSoilType
}
