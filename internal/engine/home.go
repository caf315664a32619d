package engine

import "github.com/greenloop/ecotrace/internal/survey"

// CalculateHomeEmissions computes annual home energy emissions in metric
// tons CO2e.
//
// Utility quantities accumulate additively (kg CO2e), then the efficiency
// tier, energy management tier and renewable energy multipliers apply in
// that order, and the result converts from kg to metric tons. Blank or
// non-numeric quantities contribute nothing; unanswered tiers are identity
// multipliers.
func CalculateHomeEmissions(r *survey.Responses) float64 {
	emissions := 0.0

	if kwh, ok := survey.ParseOptionalFloat(r.ElectricityKwh); ok {
		emissions += kwh * ElectricityFactor
	}
	if therms, ok := survey.ParseOptionalFloat(r.NaturalGasTherm); ok {
		emissions += therms * NaturalGasFactor
	}
	if gallons, ok := survey.ParseOptionalFloat(r.HeatingOilGallons); ok {
		emissions += gallons * HeatingOilFactor
	}
	if gallons, ok := survey.ParseOptionalFloat(r.PropaneGallons); ok {
		emissions += gallons * PropaneFactor
	}

	switch r.HomeEfficiency {
	case survey.TierA:
		emissions *= EfficientHomeMultiplier
	case survey.TierC:
		emissions *= InefficientHomeMultiplier
	case survey.TierB, survey.TierUnanswered:
		// No adjustment.
	}

	switch r.EnergyManagement {
	case survey.TierA:
		emissions *= ActiveManagementMultiplier
	case survey.TierC:
		emissions *= NoManagementMultiplier
	case survey.TierB, survey.TierUnanswered:
		// No adjustment.
	}

	if r.UsesRenewableEnergy {
		emissions *= RenewableEnergyMultiplier
	}

	return emissions / KgPerMetricTon
}
