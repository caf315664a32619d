package personality

import "github.com/greenloop/ecotrace/internal/survey"

// Category is one of the four sub-score groupings.
type Category string

// Categories, in fixed precedence order for dominant-category ties.
const (
	CategoryHome      Category = "home"
	CategoryTransport Category = "transport"
	CategoryFood      Category = "food"
	CategoryWaste     Category = "waste"
)

var categoryOrder = []Category{CategoryHome, CategoryTransport, CategoryFood, CategoryWaste}

// subCategoryLabels maps each category to its high- and low-performer
// labels, split at subCategoryThresholds.
var subCategoryLabels = map[Category][2]string{
	CategoryHome:      {"Energy Efficiency Expert", "Energy Saver in Training"},
	CategoryTransport: {"Green Mobility Champion", "Conscious Commuter"},
	CategoryFood:      {"Plant-Based Pioneer", "Mindful Eater"},
	CategoryWaste:     {"Zero Waste Warrior", "Waste Reducer"},
}

var subCategoryThresholds = map[Category]int{
	CategoryHome:      7,
	CategoryTransport: 10,
	CategoryFood:      10,
	CategoryWaste:     9,
}

// tierRank maps home tiers onto 3 (best) .. 1, with unanswered as 0.
func tierRank(t survey.Tier) int {
	switch t {
	case survey.TierA:
		return 3
	case survey.TierB:
		return 2
	case survey.TierC:
		return 1
	default:
		return 0
	}
}

// codeRank maps a lettered code onto max (for A) descending to 1, with
// unanswered or out-of-range codes as 0.
func codeRank(c survey.Code, max int) int {
	var idx int
	switch c {
	case survey.CodeA:
		idx = 0
	case survey.CodeB:
		idx = 1
	case survey.CodeC:
		idx = 2
	case survey.CodeD:
		idx = 3
	case survey.CodeE:
		idx = 4
	default:
		return 0
	}
	if idx >= max {
		return 0
	}
	return max - idx
}

func dietRank(d survey.Diet) int {
	switch d {
	case survey.DietVegan:
		return 5
	case survey.DietVegetarian:
		return 4
	case survey.DietFlexitarian:
		return 3
	case survey.DietModerateMeat:
		return 2
	case survey.DietMeatHeavy:
		return 1
	default:
		return 0
	}
}

// categoryScores computes the fixed-weight sub-scores used to pick the
// dominant category. The primary question of each category weighs double.
func categoryScores(r *survey.Responses) map[Category]int {
	return map[Category]int{
		CategoryHome:      2*tierRank(r.HomeEfficiency) + tierRank(r.EnergyManagement),
		CategoryTransport: 2*codeRank(r.PrimaryTransportMode, 4) + codeRank(r.CarProfile, 5),
		CategoryFood:      2*dietRank(r.DietType) + codeRank(r.PlateProfile, 3),
		CategoryWaste:     2*codeRank(r.Waste.Prevention, 4) + codeRank(r.Waste.Management, 3),
	}
}

// dominantCategory picks the highest-scoring category; ties resolve toward
// the earlier entry in categoryOrder.
func dominantCategory(scores map[Category]int) Category {
	best := categoryOrder[0]
	for _, c := range categoryOrder[1:] {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best
}

// subCategoryFor returns the high- or low-performer label for the dominant
// category depending on its score against the category threshold.
func subCategoryFor(c Category, score int) string {
	labels := subCategoryLabels[c]
	if score >= subCategoryThresholds[c] {
		return labels[0]
	}
	return labels[1]
}
