package domain

import "time"

// AssessmentEvent is the payload published to the event stream when an
// assessment completes. Downstream consumers (dashboards, campaign tooling)
// only need the headline outcome, not the full report.
type AssessmentEvent struct {
	AssessmentID           string          `json:"assessment_id"`
	UserID                 string          `json:"user_id"`
	Location               string          `json:"location"`
	FeasibilityTier        FeasibilityTier `json:"feasibility_tier"`
	RecommendedStructure   StructureType   `json:"recommended_structure"`
	HarvestableWaterLiters int64           `json:"harvestable_water_liters"`
	RainfallSource         RainfallSource  `json:"rainfall_source"`
	CompletedAt            time.Time       `json:"completed_at"`
}
