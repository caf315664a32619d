package personality

// Profile is the static display metadata attached to an archetype.
type Profile struct {
	Emoji      string   `json:"emoji"`
	Story      string   `json:"story"`
	NextAction string   `json:"nextAction"`
	Badge      string   `json:"badge"`
	Champion   string   `json:"champion"`
	PowerMoves []string `json:"powerMoves"`
}

// profiles holds the fixed per-archetype metadata. Read-only after init.
var profiles = map[Archetype]Profile{
	SustainabilitySlayer: {
		Emoji:      "🌟",
		Story:      "You live and breathe sustainability. Your habits are the blueprint your friends quietly copy.",
		NextAction: "Mentor someone starting their eco journey this month.",
		Badge:      "Planet Guardian",
		Champion:   "Greta Thunberg",
		PowerMoves: []string{
			"Audit one hidden emission source in your life",
			"Host a repair café or swap event",
			"Push one local institution toward renewables",
		},
	},
	PlanetsMainCharacter: {
		Emoji:      "🎬",
		Story:      "You treat climate action like the main storyline, not a side quest, and it shows.",
		NextAction: "Turn one personal habit into a group challenge.",
		Badge:      "Green Momentum",
		Champion:   "Jane Goodall",
		PowerMoves: []string{
			"Take your lunch zero-waste for a week",
			"Track your transport emissions for a month",
			"Recruit two friends into a carpool",
		},
	},
	SustainabilitySoftLaunch: {
		Emoji:      "🌱",
		Story:      "You're testing greener choices quietly, and the early results are promising.",
		NextAction: "Pick one trial habit and make it permanent.",
		Badge:      "Rising Sprout",
		Champion:   "Isatou Ceesay",
		PowerMoves: []string{
			"Swap three pantry staples for local versions",
			"Try a car-free weekend",
			"Start a small compost bin",
		},
	},
	KindOfConscious: {
		Emoji:      "🤔",
		Story:      "You care, you recycle (mostly), and you suspect you could do more. You're right.",
		NextAction: "Choose a single category and learn it cold.",
		Badge:      "Curious Recycler",
		Champion:   "Your future self",
		PowerMoves: []string{
			"Learn your city's actual recycling rules",
			"Measure one utility bill against last year",
			"Plan meals for one week to cut food waste",
		},
	},
	EcoInProgress: {
		Emoji:      "🚧",
		Story:      "The intention is there, the systems aren't yet. Small consistent steps beat grand plans.",
		NextAction: "Automate one green choice so it stops needing willpower.",
		Badge:      "Work in Progress",
		Champion:   "Every beginner who kept going",
		PowerMoves: []string{
			"Set the thermostat schedule once and leave it",
			"Keep reusable bags where you'll actually grab them",
			"Batch errands into one trip a week",
		},
	},
	DoingNothing: {
		Emoji:      "🛋️",
		Story:      "The planet hasn't made your to-do list yet. The good news: the first step is tiny.",
		NextAction: "Do exactly one thing this week: skip one single-use plastic.",
		Badge:      "Fresh Start",
		Champion:   "Anyone who started late and showed up",
		PowerMoves: []string{
			"Refuse one disposable item a day",
			"Walk one errand you'd normally drive",
			"Flip one light switch habit",
		},
	},
	ClimateSnoozer: {
		Emoji:      "😴",
		Story:      "Alarm's been ringing a while. Hitting snooze is still a choice — but so is waking up.",
		NextAction: "Take the quiz answers you liked least and change one.",
		Badge:      "Wake-Up Call",
		Champion:   "The version of you that starts today",
		PowerMoves: []string{
			"Read one article about your city's climate plan",
			"Unplug one always-on device",
			"Try meatless Monday once",
		},
	},
}

// ProfileFor returns the static metadata for an archetype. Unknown
// archetypes return the zero Profile; callers only pass Hierarchy members.
func ProfileFor(a Archetype) Profile {
	return profiles[a]
}
