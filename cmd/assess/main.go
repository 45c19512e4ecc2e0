// Command assess runs the feasibility engine offline for one site and prints
// the result as JSON. It uses the fallback rainfall default unless -rainfall
// is given, so no network access or database is needed. Useful for checking
// engine behavior and for generating fixture data.
//
// Usage:
//
//	go run ./cmd/assess \
//	  -roof-area 120 -roof-type rcc -well borewell -purpose recharge \
//	  -rainfall 1100
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
)

func main() {
	roofArea := flag.Float64("roof-area", 0, "roof catchment area in square meters (required)")
	roofType := flag.String("roof-type", "other", "roof material: rcc, metal, tile, asbestos, other")
	well := flag.String("well", "none", "existing well: none, borewell, openwell, both")
	purpose := flag.String("purpose", "storage", "harvesting purpose: storage, recharge, both, consultation")
	rainfallMm := flag.Float64("rainfall", 0, "annual rainfall in mm (0 uses the regional default)")
	dailyUsage := flag.Float64("daily-usage", 0, "daily water usage in liters (0 uses the default assumption)")
	soil := flag.String("soil", "", "soil type for the hydrogeological profile")
	depth := flag.Float64("groundwater-depth", 0, "groundwater depth in meters (0 uses the default)")
	flag.Parse()

	if *roofArea <= 0 {
		fmt.Fprintln(os.Stderr, "error: -roof-area must be positive")
		flag.Usage()
		os.Exit(1)
	}

	engine := domain.NewEngine()

	rainfall := engine.DefaultRainfall()
	if *rainfallMm > 0 {
		rainfall = domain.RainfallEstimate{AnnualMm: *rainfallMm, Source: domain.RainfallSourceLive}
	}

	result := engine.Assess(domain.SiteInput{
		RoofAreaSqM:  *roofArea,
		RoofType:     domain.RoofType(*roofType),
		ExistingWell: domain.WellType(*well),
		Purpose:      domain.Purpose(*purpose),

		DailyUsageLiters:       *dailyUsage,
		GroundwaterDepthMeters: *depth,
		SoilType:               *soil,
	}, rainfall)

	out := struct {
		Result          domain.FeasibilityResult `json:"result"`
		StructureDetail domain.StructureDetail   `json:"structure_detail"`
	}{
		Result:          result,
		StructureDetail: engine.StructureDetail(result.RecommendedStructure, *dailyUsage),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
