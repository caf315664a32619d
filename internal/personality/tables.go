package personality

import "github.com/greenloop/ecotrace/internal/survey"

// Candidate tables map each answer code to the archetypes that answer votes
// for. A value maps to zero, one or two candidates; codes absent from a
// table (including the unanswered sentinel) vote for nothing.

var homeEfficiencyCandidates = map[survey.Tier][]Archetype{
	survey.TierA: {SustainabilitySlayer, PlanetsMainCharacter},
	survey.TierB: {SustainabilitySoftLaunch, KindOfConscious},
	survey.TierC: {EcoInProgress, DoingNothing},
}

var energyManagementCandidates = map[survey.Tier][]Archetype{
	survey.TierA: {SustainabilitySlayer},
	survey.TierB: {KindOfConscious},
	survey.TierC: {ClimateSnoozer},
}

var transportModeCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer, PlanetsMainCharacter},
	survey.CodeB: {SustainabilitySoftLaunch},
	survey.CodeC: {KindOfConscious, EcoInProgress},
	survey.CodeD: {ClimateSnoozer},
}

var carProfileCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer},
	survey.CodeB: {PlanetsMainCharacter},
	survey.CodeC: {SustainabilitySoftLaunch},
	survey.CodeD: {EcoInProgress},
	survey.CodeE: {DoingNothing},
}

var dietCandidates = map[survey.Diet][]Archetype{
	survey.DietVegan:        {SustainabilitySlayer, PlanetsMainCharacter},
	survey.DietVegetarian:   {SustainabilitySoftLaunch},
	survey.DietFlexitarian:  {KindOfConscious},
	survey.DietModerateMeat: {EcoInProgress},
	survey.DietMeatHeavy:    {ClimateSnoozer},
}

// plateProfileCandidates covers the food-source question (locally sourced
// through mostly imported).
var plateProfileCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer, PlanetsMainCharacter},
	survey.CodeB: {SustainabilitySoftLaunch, KindOfConscious},
	survey.CodeC: {EcoInProgress, DoingNothing},
}

var wastePreventionCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer, PlanetsMainCharacter},
	survey.CodeB: {SustainabilitySoftLaunch},
	survey.CodeC: {KindOfConscious},
	survey.CodeD: {ClimateSnoozer},
}

var wasteManagementCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer},
	survey.CodeB: {EcoInProgress},
	survey.CodeC: {DoingNothing},
}

var airQualityMonitoringCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer},
	survey.CodeB: {PlanetsMainCharacter},
	survey.CodeC: {KindOfConscious},
	survey.CodeD: {DoingNothing},
}

var airQualityImpactCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {PlanetsMainCharacter},
	survey.CodeB: {SustainabilitySoftLaunch},
	survey.CodeC: {EcoInProgress},
	survey.CodeD: {ClimateSnoozer},
}

var wardrobeImpactCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer},
	survey.CodeB: {KindOfConscious},
	survey.CodeC: {DoingNothing},
}

var mindfulUpgradesCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer, PlanetsMainCharacter},
	survey.CodeB: {SustainabilitySoftLaunch},
	survey.CodeC: {ClimateSnoozer},
}

var consumptionFrequencyCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {SustainabilitySlayer},
	survey.CodeB: {SustainabilitySoftLaunch},
	survey.CodeC: {EcoInProgress},
	survey.CodeD: {ClimateSnoozer},
}

var brandLoyaltyCandidates = map[survey.Code][]Archetype{
	survey.CodeA: {PlanetsMainCharacter},
	survey.CodeB: {KindOfConscious},
	survey.CodeC: {DoingNothing},
	survey.CodeD: {ClimateSnoozer},
}
