package personality

import "github.com/greenloop/ecotrace/internal/survey"

// Result is the fully resolved personality outcome. It is derived purely
// from the answer record and carries no persisted identity.
type Result struct {
	Personality string            `json:"personality"`
	Emoji       string            `json:"emoji"`
	Story       string            `json:"story"`
	NextAction  string            `json:"nextAction"`
	Badge       string            `json:"badge"`
	Champion    string            `json:"champion"`
	PowerMoves  []string          `json:"powerMoves"`
	SubCategory string            `json:"subCategory"`
	Tally       map[Archetype]int `json:"tally"`
}

// Determine classifies the answer record into an archetype.
//
// Every personality-relevant answer looks up its candidate archetypes and
// increments each by one; unanswered or unmapped values vote for nothing.
// The archetype with the highest tally wins; ties resolve toward the
// earliest entry in Hierarchy. An entirely unanswered record therefore
// resolves to the hierarchy-first archetype, a quirk of the voting scheme
// flagged in DESIGN.md.
//
// Determine is total: it never fails and always returns a complete Result.
func Determine(r *survey.Responses) Result {
	tally := make(map[Archetype]int, len(Hierarchy))
	for _, a := range Hierarchy {
		tally[a] = 0
	}

	vote := func(candidates []Archetype) {
		for _, a := range candidates {
			tally[a]++
		}
	}

	vote(homeEfficiencyCandidates[r.HomeEfficiency])
	vote(energyManagementCandidates[r.EnergyManagement])
	vote(transportModeCandidates[r.PrimaryTransportMode])
	vote(carProfileCandidates[r.CarProfile])
	vote(dietCandidates[r.DietType])
	vote(plateProfileCandidates[r.PlateProfile])
	vote(wastePreventionCandidates[r.Waste.Prevention])
	vote(wasteManagementCandidates[r.Waste.Management])
	vote(airQualityMonitoringCandidates[r.AirQualityMonitoring])
	vote(airQualityImpactCandidates[r.AirQualityImpact])
	vote(wardrobeImpactCandidates[r.WardrobeImpact])
	vote(mindfulUpgradesCandidates[r.MindfulUpgrades])
	vote(consumptionFrequencyCandidates[r.ConsumptionFrequency])
	vote(brandLoyaltyCandidates[r.BrandLoyalty])

	winner := resolveWinner(tally)

	scores := categoryScores(r)
	dominant := dominantCategory(scores)

	profile := ProfileFor(winner)
	return Result{
		Personality: string(winner),
		Emoji:       profile.Emoji,
		Story:       profile.Story,
		NextAction:  profile.NextAction,
		Badge:       profile.Badge,
		Champion:    profile.Champion,
		PowerMoves:  profile.PowerMoves,
		SubCategory: subCategoryFor(dominant, scores[dominant]),
		Tally:       tally,
	}
}

// resolveWinner finds the maximum tally and breaks ties toward the earliest
// archetype in Hierarchy. Deterministic for any tied set.
func resolveWinner(tally map[Archetype]int) Archetype {
	winner := Hierarchy[0]
	best := tally[winner]
	for _, a := range Hierarchy[1:] {
		if tally[a] > best {
			winner = a
			best = tally[a]
		}
	}
	return winner
}
