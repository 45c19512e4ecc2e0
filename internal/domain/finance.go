package domain

import "math"

// FinanceAssumptions holds the payback-period inputs. AnnualSavings is the
// assumed yearly water-cost saving in rupees once a structure is in place.
type FinanceAssumptions struct {
	AnnualSavings float64
}

// DefaultFinanceAssumptions returns the standard financial assumptions.
func DefaultFinanceAssumptions() FinanceAssumptions {
	return FinanceAssumptions{AnnualSavings: 18_000}
}

// DefaultCostTiers returns the fixed three-tier pricing table. The tiers are
// a pricing configuration, independent of site input for the lifetime of a
// deployment.
func DefaultCostTiers() CostTiers {
	return CostTiers{
		Basic: CostTier{
			Label:     "Tier 1: Basic (Shallow Recharge/Small Storage)",
			Cost:      60_000,
			Structure: "Simple Recharge Pit + First-Flush Filter",
		},
		Standard: CostTier{
			Label:     "Tier 2: Standard (Recommended)",
			Cost:      150_000,
			Structure: "Recharge Shaft or Medium Cistern + Multi-Stage Filtration",
		},
		Premium: CostTier{
			Label:     "Tier 3: Premium (Max. Capacity/Deep Recharge)",
			Cost:      300_000,
			Structure: "Advanced Recharge Shaft with Sump + Large Storage Tank",
		},
	}
}

// PaybackYears computes the payback period for a structure cost against the
// assumed annual savings, rounded to one decimal place.
func (e *Engine) PaybackYears(cost int64) float64 {
	return math.Round(float64(cost)/e.finance.AnnualSavings*10) / 10
}
