package engine

import "github.com/greenloop/ecotrace/internal/survey"

// CalculateWasteEmissions computes annual waste emissions.
//
// Weekly waste pounds set the additive base, the recycling percentage scales
// it down by up to 50%, the prevention answer applies its multiplier, then
// the three habit booleans apply independent discounts. A blank waste
// section yields 0.
func CalculateWasteEmissions(r *survey.Responses) float64 {
	emissions := 0.0

	if lbs, ok := survey.ParseOptionalFloat(r.Waste.WasteLbs); ok {
		emissions = lbs * WasteFactorPerLb
	}

	if pct, ok := survey.ParseOptionalFloat(r.Waste.RecyclingPercent); ok {
		emissions *= 1 - (pct/100)*RecyclingMaxReduction
	}

	switch r.Waste.Prevention {
	case survey.CodeA:
		emissions *= PreventionBestMultiplier
	case survey.CodeB:
		emissions *= PreventionGoodMultiplier
	case survey.CodeC:
		emissions *= PreventionSomeMultiplier
	case survey.CodeD:
		emissions *= PreventionWorstMultiplier
	default:
		// No adjustment.
	}

	if r.Waste.RepairsItems {
		emissions *= RepairsItemsMultiplier
	}
	if r.Waste.MinimizesWaste {
		emissions *= MinimizesWasteMultiplier
	}
	if r.Waste.AvoidsPlastic {
		emissions *= AvoidsPlasticMultiplier
	}

	return emissions
}
