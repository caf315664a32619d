package engine

import "github.com/greenloop/ecotrace/internal/survey"

// CalculateTransportEmissions computes annual transport emissions.
//
// The primary mode selects a fixed base; mileage times cost-per-mile adds a
// spend-scaled term when both parse; the long-distance travel answer applies
// a final multiplier. An unmatched or unanswered mode contributes a zero
// base, so a fully blank transport section yields 0.
func CalculateTransportEmissions(r *survey.Responses) float64 {
	emissions := 0.0

	switch r.PrimaryTransportMode {
	case survey.CodeA:
		emissions = TransportBaseActive
	case survey.CodeB:
		emissions = TransportBasePublic
	case survey.CodeC:
		emissions = TransportBaseCar
	case survey.CodeD:
		emissions = TransportBaseFrequent
	default:
		// Unanswered or unmatched: base stays 0.
	}

	mileage, okMileage := survey.ParseOptionalFloat(r.AnnualMileage)
	costPerMile, okCost := survey.ParseOptionalFloat(r.CostPerMile)
	if okMileage && okCost {
		emissions += mileage * costPerMile * MileageSpendFactor
	}

	switch r.LongDistanceTravel {
	case survey.CodeA:
		emissions *= RareTravelMultiplier
	case survey.CodeB:
		emissions *= OccasionalTravelMultiplier
	case survey.CodeC:
		emissions *= FrequentTravelMultiplier
	default:
		// No adjustment.
	}

	return emissions
}
