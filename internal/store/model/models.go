// Package model defines the persisted entities of the assessment service.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
)

// User is a phone-keyed account. Registration is deliberately lenient: an
// assessment submission creates the user on the fly when the phone number is
// unknown.
type User struct {
	ID          uuid.UUID `gorm:"primaryKey;type:VARCHAR(36)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   *time.Time
	PhoneNumber string `gorm:"not null;uniqueIndex;type:VARCHAR(15)"`
	FullName    string `gorm:"type:VARCHAR(255)"`
}

// Assessment is one submitted site form, immutable once stored.
type Assessment struct {
	ID        uuid.UUID `gorm:"primaryKey;type:VARCHAR(36)"`
	CreatedAt time.Time `gorm:"not null"`
	UserID    uuid.UUID `gorm:"not null;index;type:VARCHAR(36)"`

	Location     string  `gorm:"not null"`
	RoofAreaSqM  float64 `gorm:"not null"`
	RoofType     string  `gorm:"not null;type:VARCHAR(20)"`
	ExistingWell string  `gorm:"not null;type:VARCHAR(20)"`
	Purpose      string  `gorm:"not null;type:VARCHAR(20)"`

	BuildingType           string `gorm:"type:VARCHAR(50)"`
	Occupants              int
	OpenSpaceSqM           float64
	SoilType               string `gorm:"type:VARCHAR(50)"`
	DailyUsageLiters       float64
	GroundwaterDepthMeters float64
	BudgetRange            string `gorm:"type:VARCHAR(50)"`
}

// Report is the stored feasibility result for one assessment. Nested
// structures (scenarios, cost tiers, hydro profile) live in JSON columns.
type Report struct {
	ID           uuid.UUID `gorm:"primaryKey;type:VARCHAR(36)"`
	CreatedAt    time.Time `gorm:"not null"`
	AssessmentID uuid.UUID `gorm:"not null;uniqueIndex;type:VARCHAR(36)"`

	FeasibilityTier        string  `gorm:"not null;type:VARCHAR(30)"`
	AnnualRainfallMm       float64 `gorm:"not null"`
	RainfallSource         string  `gorm:"not null;type:VARCHAR(10)"`
	HarvestableWaterLiters int64   `gorm:"not null"`
	RecommendedStructure   string  `gorm:"not null;type:VARCHAR(40)"`
	EstimatedPaybackYears  float64 `gorm:"not null"`

	Scenarios    *JSONField[domain.Scenarios]    `gorm:"type:jsonb;not null"`
	CostTiers    *JSONField[domain.CostTiers]    `gorm:"type:jsonb;not null"`
	CostEstimate *JSONField[domain.CostRange]    `gorm:"type:jsonb;not null"`
	HydroProfile *JSONField[domain.HydroProfile] `gorm:"type:jsonb;not null"`
}

// NewReport converts a computed feasibility result into its stored form.
func NewReport(assessmentID uuid.UUID, result domain.FeasibilityResult) Report {
	return Report{
		ID:           uuid.New(),
		AssessmentID: assessmentID,

		FeasibilityTier:        string(result.FeasibilityTier),
		AnnualRainfallMm:       result.AnnualRainfallMm,
		RainfallSource:         string(result.RainfallSource),
		HarvestableWaterLiters: result.HarvestableWaterLiters,
		RecommendedStructure:   string(result.RecommendedStructure),
		EstimatedPaybackYears:  result.EstimatedPaybackYears,

		Scenarios:    MakeJSONField(result.Scenarios),
		CostTiers:    MakeJSONField(result.CostTiers),
		CostEstimate: MakeJSONField(result.ProjectCostEstimate),
		HydroProfile: MakeJSONField(result.HydroProfile),
	}
}

// Result reconstructs the feasibility result from its stored form.
func (r Report) Result() domain.FeasibilityResult {
	result := domain.FeasibilityResult{
		AnnualRainfallMm:       r.AnnualRainfallMm,
		RainfallSource:         domain.RainfallSource(r.RainfallSource),
		HarvestableWaterLiters: r.HarvestableWaterLiters,
		FeasibilityTier:        domain.FeasibilityTier(r.FeasibilityTier),
		RecommendedStructure:   domain.StructureType(r.RecommendedStructure),
		EstimatedPaybackYears:  r.EstimatedPaybackYears,
	}
	if r.Scenarios != nil {
		result.Scenarios = r.Scenarios.Data
	}
	if r.CostTiers != nil {
		result.CostTiers = r.CostTiers.Data
	}
	if r.CostEstimate != nil {
		result.ProjectCostEstimate = r.CostEstimate.Data
	}
	if r.HydroProfile != nil {
		result.HydroProfile = r.HydroProfile.Data
	}
	return result
}

// SiteInput reconstructs the engine input from a stored assessment.
func (a Assessment) SiteInput() domain.SiteInput {
	return domain.SiteInput{
		Location:     a.Location,
		RoofAreaSqM:  a.RoofAreaSqM,
		RoofType:     domain.RoofType(a.RoofType),
		ExistingWell: domain.WellType(a.ExistingWell),
		Purpose:      domain.Purpose(a.Purpose),

		DailyUsageLiters:       a.DailyUsageLiters,
		GroundwaterDepthMeters: a.GroundwaterDepthMeters,
		SoilType:               a.SoilType,

		BuildingType: a.BuildingType,
		Occupants:    a.Occupants,
		OpenSpaceSqM: a.OpenSpaceSqM,
		BudgetRange:  a.BudgetRange,
	}
}
