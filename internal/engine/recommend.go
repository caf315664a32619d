package engine

import "github.com/greenloop/ecotrace/internal/survey"

// rule pairs a predicate over the answer record with the recommendation it
// emits. Rules evaluate in declaration order and each contributes at most
// one recommendation, so output ordering is stable across runs and new
// rules append without disturbing existing output.
type rule struct {
	applies  func(*survey.Responses) bool
	template Recommendation
}

// recommendationRules is the fixed, ordered rule set. The renewable energy
// rule stays first; clients display the leading recommendation prominently.
var recommendationRules = []rule{
	{
		applies: func(r *survey.Responses) bool { return !r.UsesRenewableEnergy },
		template: Recommendation{
			Category:    "home",
			Title:       "Switch to Renewable Energy",
			Description: "Choose a utility plan backed by wind or solar generation.",
			Impact:      "Can cut your home energy emissions in half",
			Difficulty:  DifficultyMedium,
		},
	},
	{
		applies: func(r *survey.Responses) bool { return r.HomeEfficiency == survey.TierC },
		template: Recommendation{
			Category:    "home",
			Title:       "Upgrade Home Efficiency",
			Description: "Seal drafts, add insulation, and replace aging appliances with efficient models.",
			Impact:      "Moves your home from the highest emission tier",
			Difficulty:  DifficultyMedium,
		},
	},
	{
		applies: func(r *survey.Responses) bool { return r.PrimaryTransportMode == survey.CodeC || r.PrimaryTransportMode == survey.CodeD },
		template: Recommendation{
			Category:    "transport",
			Title:       "Shift Trips to Transit or Cycling",
			Description: "Replace short solo car trips with public transit, cycling, or walking.",
			Impact:      "Each shifted trip avoids its full driving emissions",
			Difficulty:  DifficultyMedium,
		},
	},
	{
		applies: func(r *survey.Responses) bool { return r.DietType == survey.DietMeatHeavy || r.DietType == survey.DietModerateMeat },
		template: Recommendation{
			Category:    "food",
			Title:       "Add Plant-Based Meals",
			Description: "Swap a few meat-centered meals each week for plant-based ones.",
			Impact:      "Up to 30% off your food footprint at 21 meals a week",
			Difficulty:  DifficultyEasy,
		},
	},
	{
		applies: func(r *survey.Responses) bool { return !r.Composts },
		template: Recommendation{
			Category:    "food",
			Title:       "Start Composting",
			Description: "Divert food scraps from landfill with a countertop or backyard compost bin.",
			Impact:      "Keeps methane-producing waste out of landfill",
			Difficulty:  DifficultyEasy,
		},
	},
	{
		applies: func(r *survey.Responses) bool { return !r.Waste.AvoidsPlastic },
		template: Recommendation{
			Category:    "waste",
			Title:       "Cut Single-Use Plastic",
			Description: "Carry reusable bags and bottles to replace disposable packaging.",
			Impact:      "Reduces both waste volume and upstream production emissions",
			Difficulty:  DifficultyEasy,
		},
	},
	{
		applies: func(r *survey.Responses) bool {
			pct, ok := survey.ParseOptionalFloat(r.Waste.RecyclingPercent)
			return ok && pct < 50
		},
		template: Recommendation{
			Category:    "waste",
			Title:       "Recycle More of Your Waste",
			Description: "Check your local program; most households can recycle well over half their waste stream.",
			Impact:      "Every 10% recycled trims your waste emissions by 5%",
			Difficulty:  DifficultyEasy,
		},
	},
}

// GenerateRecommendations evaluates the rule set against the answer record.
// Completed is always false on fresh recommendations; only UI state flips it.
func GenerateRecommendations(r *survey.Responses) []Recommendation {
	recs := make([]Recommendation, 0, len(recommendationRules))
	for _, rl := range recommendationRules {
		if rl.applies(r) {
			recs = append(recs, rl.template)
		}
	}
	return recs
}
