package domain

// Engine computes feasibility results from site input and resolved rainfall.
// All configuration tables are fixed at construction, so a single Engine is
// safe for concurrent use across requests.
type Engine struct {
	runoff     RunoffTable
	thresholds Thresholds
	costTiers  CostTiers
	finance    FinanceAssumptions

	defaultRainfallMm  float64
	lowScenarioFactor  float64
	highScenarioFactor float64
	lowScenarioFloorMm float64

	tankBufferDays float64
}

// EngineOption overrides one of the engine's configuration tables.
type EngineOption func(*Engine)

// WithRunoffTable replaces the runoff coefficient table.
func WithRunoffTable(t RunoffTable) EngineOption {
	return func(e *Engine) { e.runoff = t }
}

// WithThresholds replaces the feasibility classification thresholds.
func WithThresholds(t Thresholds) EngineOption {
	return func(e *Engine) { e.thresholds = t }
}

// WithCostTiers replaces the fixed pricing table.
func WithCostTiers(t CostTiers) EngineOption {
	return func(e *Engine) { e.costTiers = t }
}

// WithFinanceAssumptions replaces the payback-period assumptions.
func WithFinanceAssumptions(f FinanceAssumptions) EngineOption {
	return func(e *Engine) { e.finance = f }
}

// WithDefaultRainfall sets the fallback annual rainfall in millimeters.
func WithDefaultRainfall(mm float64) EngineOption {
	return func(e *Engine) { e.defaultRainfallMm = mm }
}

// WithTankBufferDays sets the storage-tank sizing buffer in days.
func WithTankBufferDays(days float64) EngineOption {
	return func(e *Engine) { e.tankBufferDays = days }
}

// NewEngine creates an Engine with the standard tables, overridable per option.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		runoff:     DefaultRunoffTable(),
		thresholds: DefaultThresholds(),
		costTiers:  DefaultCostTiers(),
		finance:    DefaultFinanceAssumptions(),

		defaultRainfallMm:  DefaultAnnualRainfallMm,
		lowScenarioFactor:  0.7,
		highScenarioFactor: 1.3,
		lowScenarioFloorMm: 500,

		tankBufferDays: TankBufferDays,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultRainfall returns the engine's fallback rainfall estimate, used when
// the location cannot be resolved to live archive data.
func (e *Engine) DefaultRainfall() RainfallEstimate {
	return RainfallEstimate{AnnualMm: e.defaultRainfallMm, Source: RainfallSourceFallback}
}

// Assess runs the full deterministic pipeline for one site. The rainfall
// estimate must already be resolved; Assess itself performs no I/O.
func (e *Engine) Assess(in SiteInput, rainfall RainfallEstimate) FeasibilityResult {
	harvestable := e.HarvestableLiters(rainfall.AnnualMm, in.RoofAreaSqM, in.RoofType)

	return FeasibilityResult{
		AnnualRainfallMm:       rainfall.AnnualMm,
		RainfallSource:         rainfall.Source,
		HarvestableWaterLiters: harvestable,
		FeasibilityTier:        e.Classify(harvestable),
		RecommendedStructure:   e.Recommend(in.Purpose, in.ExistingWell),
		Scenarios:              e.Scenarios(rainfall.AnnualMm, in.RoofAreaSqM, in.RoofType),
		CostTiers:              e.costTiers,
		EstimatedPaybackYears:  e.PaybackYears(e.costTiers.Standard.Cost),
		ProjectCostEstimate: CostRange{
			Min: e.costTiers.Basic.Cost,
			Max: e.costTiers.Premium.Cost,
		},
		HydroProfile: HydroProfile{
			LocalRainfallMm:        rainfall.AnnualMm,
			SoilType:               in.EffectiveSoilType(),
			PrincipalAquifer:       DefaultAquiferType,
			GroundwaterDepthMeters: in.EffectiveGroundwaterDepth(),
		},
	}
}
