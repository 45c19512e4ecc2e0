package service

// reportTemplate is the printable HTML report. Layout is deliberately plain:
// one column, table-based sections, no scripts, so it prints cleanly to A4.
const reportTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.T.Title}}</title>
<style>
  body { font-family: "Noto Sans", Arial, sans-serif; color: #1a2a3a; margin: 40px; }
  h1 { font-size: 22px; color: #0b5394; margin-bottom: 0; }
  h2 { font-size: 16px; color: #0b5394; border-bottom: 2px solid #0b5394; padding-bottom: 4px; margin-top: 28px; }
  .subtitle { color: #666; margin-top: 4px; }
  .meta { color: #666; font-size: 12px; margin-top: 8px; }
  table { border-collapse: collapse; width: 100%; margin-top: 10px; }
  th, td { border: 1px solid #c9d6e3; padding: 6px 10px; text-align: left; font-size: 13px; }
  th { background: #eef4fa; }
  .tier { font-size: 18px; font-weight: bold; color: #0b5394; }
  .disclaimer { font-size: 11px; color: #777; margin-top: 4px; }
</style>
</head>
<body>

<h1>{{.T.Title}}</h1>
<div class="subtitle">{{.T.Subtitle}}</div>
<div class="meta">{{.User.FullName}} &middot; {{.User.PhoneNumber}} &middot; {{.Date}}</div>

<h2>{{.T.SectionExecutiveSummary}}</h2>
<p class="tier">{{.Result.FeasibilityTier}}</p>
<table>
  <tr><th>Annual Harvestable Water</th><td>{{commas .Result.HarvestableWaterLiters}} Liters</td></tr>
  <tr><th>Recommended Structure</th><td>{{.Result.RecommendedStructure}}</td></tr>
  <tr><th>Estimated Payback Period</th><td>{{.Result.EstimatedPaybackYears}} years</td></tr>
  <tr><th>Project Cost Estimate</th><td>&#8377;{{commas .Result.ProjectCostEstimate.Min}} &ndash; &#8377;{{commas .Result.ProjectCostEstimate.Max}}</td></tr>
</table>

<h2>{{.T.SectionSiteAssessment}}</h2>
<table>
  <tr><th>Location</th><td>{{.Assessment.Location}}</td></tr>
  <tr><th>Roof Area</th><td>{{.Assessment.RoofAreaSqM}} m&sup2;</td></tr>
  <tr><th>Roof Type</th><td>{{.Assessment.RoofType}}</td></tr>
  <tr><th>Existing Well</th><td>{{.Assessment.ExistingWell}}</td></tr>
  <tr><th>Purpose</th><td>{{.Assessment.Purpose}}</td></tr>
</table>

<h2>{{.T.SectionHarvestingPotential}}</h2>
<table>
  <tr><th>Scenario</th><th>Rainfall (mm)</th><th>Harvestable (Liters)</th></tr>
  <tr><td>Low (70%)</td><td>{{printf "%.0f" .Result.Scenarios.Low.RainfallMm}}</td><td>{{commas .Result.Scenarios.Low.HarvestableLiters}}</td></tr>
  <tr><td>Expected</td><td>{{printf "%.0f" .Result.Scenarios.Actual.RainfallMm}}</td><td>{{commas .Result.Scenarios.Actual.HarvestableLiters}}</td></tr>
  <tr><td>High (130%)</td><td>{{printf "%.0f" .Result.Scenarios.High.RainfallMm}}</td><td>{{commas .Result.Scenarios.High.HarvestableLiters}}</td></tr>
</table>

<h2>{{.T.SectionHydroProfile}}</h2>
<table>
  <tr><th>Local Rainfall</th><td>{{.Result.HydroProfile.LocalRainfallMm}} mm/year{{if eq .Result.RainfallSource "fallback"}} (regional default){{end}}</td></tr>
  <tr><th>Soil Type</th><td>{{.Result.HydroProfile.SoilType}}</td></tr>
  <tr><th>Principal Aquifer</th><td>{{.Result.HydroProfile.PrincipalAquifer}}</td></tr>
  <tr><th>Groundwater Depth</th><td>{{.Result.HydroProfile.GroundwaterDepthMeters}} meters</td></tr>
</table>

<h2>{{.T.SectionStructure}}</h2>
<table>
  <tr><th>Type</th><td>{{.Result.RecommendedStructure}}</td></tr>
  <tr><th>Diameter/Capacity</th><td>{{.StructureDetail.DimensionOrCapacity}}</td></tr>
  <tr><th>Depth</th><td>{{.StructureDetail.Depth}}</td></tr>
  <tr><th>Construction</th><td>{{.StructureDetail.ConstructionNote}}</td></tr>
</table>
<table>
  <tr><th>Tier</th><th>Cost (&#8377;)</th><th>Structure</th><th>Payback (years)</th></tr>
  {{range .CostRows}}<tr><td>{{.Label}}</td><td>{{commas .Cost}}</td><td>{{.Structure}}</td><td>{{.PaybackYears}}</td></tr>
  {{end}}
</table>

<h2>{{.T.SectionLimitations}}</h2>
<p class="disclaimer">{{.T.DisclaimerDataSource}}</p>
<p class="disclaimer">{{.T.DisclaimerValidation}}</p>
<p class="disclaimer">{{.T.DisclaimerAssumptions}}</p>

</body>
</html>
`
