package engine

import "github.com/greenloop/ecotrace/internal/survey"

// dietFactors maps diet codes to daily emission factors.
var dietFactors = map[survey.Diet]float64{
	survey.DietVegan:        DietFactorVegan,
	survey.DietVegetarian:   DietFactorVegetarian,
	survey.DietFlexitarian:  DietFactorFlexitarian,
	survey.DietModerateMeat: DietFactorModerateMeat,
	survey.DietMeatHeavy:    DietFactorMeatHeavy,
}

// CalculateFoodEmissions computes annual food emissions.
//
// The diet factor scales over a full year, plant-based meals per week scale
// the total down by up to 30%, and the four lifestyle booleans each apply an
// independent discount. An unanswered diet contributes nothing (the whole
// calculator returns 0); a non-empty but unrecognized diet code falls back
// to the moderate default factor.
//
// The result intentionally stays in the scoring model's kg-equivalent scale
// rather than metric tons; see CategoryEmissions.
func CalculateFoodEmissions(r *survey.Responses) float64 {
	if r.DietType == survey.DietUnanswered {
		return 0
	}

	factor, ok := dietFactors[r.DietType]
	if !ok {
		factor = DefaultDietFactor
	}

	emissions := factor * DaysPerYear

	if meals, okMeals := survey.ParseOptionalFloat(r.PlantBasedPerWeek); okMeals {
		emissions *= 1 - (meals/MealsPerWeek)*PlantBasedMaxReduction
	}

	if r.BuysLocalFood {
		emissions *= LocalFoodMultiplier
	}
	if r.GrowsOwnFood {
		emissions *= GrowsOwnFoodMultiplier
	}
	if r.Composts {
		emissions *= CompostingMultiplier
	}
	if r.PlansMeals {
		emissions *= MealPlanningMultiplier
	}

	return emissions
}
