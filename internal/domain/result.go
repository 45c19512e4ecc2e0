package domain

// RainfallSource tags whether an estimate came from live archive data or the
// regional fallback default, so the rendering layer can disclose accuracy.
type RainfallSource string

const (
	RainfallSourceLive     RainfallSource = "live"
	RainfallSourceFallback RainfallSource = "fallback"
)

// RainfallEstimate is an annual rainfall figure resolved for a location.
type RainfallEstimate struct {
	AnnualMm float64        `json:"annual_mm"`
	Source   RainfallSource `json:"source"`
}

// FeasibilityTier is the ordinal suitability classification.
type FeasibilityTier string

const (
	TierHighlySuitable     FeasibilityTier = "HIGHLY SUITABLE"
	TierModeratelySuitable FeasibilityTier = "MODERATELY SUITABLE"
)

// StructureType is the recommended harvesting structure category.
type StructureType string

const (
	StructureStorageTank   StructureType = "Storage Tank (Cistern)"
	StructureRechargeShaft StructureType = "Recharge Shaft"
	StructureRechargePit   StructureType = "Recharge Pit/Trench"
)

// ScenarioPoint is one point of the rainfall sensitivity band. RainfallMm is
// kept unrounded so the harvestable figure matches the exact perturbed input.
type ScenarioPoint struct {
	RainfallMm        float64 `json:"rainfall_mm"`
	HarvestableLiters int64   `json:"harvestable_liters"`
}

// Scenarios is the low/actual/high sensitivity band.
type Scenarios struct {
	Low    ScenarioPoint `json:"low"`
	Actual ScenarioPoint `json:"actual"`
	High   ScenarioPoint `json:"high"`
}

// CostTier is one fixed pricing tier.
type CostTier struct {
	Label     string `json:"label"`
	Cost      int64  `json:"cost"`
	Structure string `json:"structure"`
}

// CostTiers is the fixed three-tier pricing table.
type CostTiers struct {
	Basic    CostTier `json:"basic"`
	Standard CostTier `json:"standard"`
	Premium  CostTier `json:"premium"`
}

// CostRange is the min/max project cost envelope shown in the summary.
type CostRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// HydroProfile summarizes the site's hydrogeological context for the report.
type HydroProfile struct {
	LocalRainfallMm        float64 `json:"local_rainfall_mm"`
	SoilType               string  `json:"soil_type"`
	PrincipalAquifer       string  `json:"principal_aquifer"`
	GroundwaterDepthMeters float64 `json:"groundwater_depth_meters"`
}

// FeasibilityResult is the complete output of one assessment. It is computed
// once per submitted SiteInput and immutable thereafter; document rendering
// re-reads the stored copy rather than recomputing.
type FeasibilityResult struct {
	AnnualRainfallMm       float64         `json:"annual_rainfall_mm"`
	RainfallSource         RainfallSource  `json:"rainfall_source"`
	HarvestableWaterLiters int64           `json:"harvestable_water_liters"`
	FeasibilityTier        FeasibilityTier `json:"feasibility_tier"`
	RecommendedStructure   StructureType   `json:"recommended_structure"`
	Scenarios              Scenarios       `json:"scenarios"`
	CostTiers              CostTiers       `json:"cost_tiers"`
	EstimatedPaybackYears  float64         `json:"estimated_payback_years"`
	ProjectCostEstimate    CostRange       `json:"project_cost_estimate"`
	HydroProfile           HydroProfile    `json:"hydro_profile"`
}

// StructureDetail holds the illustrative physical parameters of a recommended
// structure. Derived at render time from the stored recommendation, not
// persisted with the original result.
type StructureDetail struct {
	DimensionOrCapacity string `json:"dimension_or_capacity"`
	Depth               string `json:"depth"`
	ConstructionNote    string `json:"construction_note"`
}
