// Package personality implements the table-driven eco-personality
// classification: every answered question votes for zero or more archetypes,
// the tally winner takes the label, and weighted category sub-scores pick a
// secondary descriptor.
package personality

// Archetype is one of the seven fixed eco-personality labels.
type Archetype string

// The seven archetypes.
const (
	SustainabilitySlayer     Archetype = "Sustainability Slayer"
	PlanetsMainCharacter     Archetype = "Planet's Main Character"
	SustainabilitySoftLaunch Archetype = "Sustainability Soft Launch"
	KindOfConscious          Archetype = "Kind of Conscious, Kind of Confused"
	EcoInProgress            Archetype = "Eco in Progress"
	DoingNothing             Archetype = "Doing Nothing for the Planet"
	ClimateSnoozer           Archetype = "Certified Climate Snoozer"
)

// Hierarchy lists all archetypes in fixed best-to-worst order. The ordering
// is a first-class artifact: ties in the tally resolve toward the earliest
// entry, and an all-zero tally therefore resolves to the first one.
var Hierarchy = []Archetype{
	SustainabilitySlayer,
	PlanetsMainCharacter,
	SustainabilitySoftLaunch,
	KindOfConscious,
	EcoInProgress,
	DoingNothing,
	ClimateSnoozer,
}
