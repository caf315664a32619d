// Package story assembles the shareable "story card" narrative from computed
// results. It is a pure templating layer: string interpolation over static
// per-personality tables plus threshold bucketing, no new computation and no
// randomness.
package story

import (
	"fmt"
	"strings"

	"github.com/greenloop/ecotrace/internal/engine"
	"github.com/greenloop/ecotrace/internal/personality"
)

// Input carries everything the generator interpolates. Callers typically
// populate it from CalculationResults and the personality Result.
type Input struct {
	Name              string                   `json:"name"`
	EcoPersonality    string                   `json:"ecoPersonality"`
	CO2Saved          float64                  `json:"co2Saved"`
	TopCategory       string                   `json:"topCategory"`
	NewHabits         []string                 `json:"newHabits"`
	ImpactEquivalent  string                   `json:"impactEquivalent"`
	NextStep          string                   `json:"nextStep"`
	Badge             string                   `json:"badge"`
	Score             int                      `json:"score"`
	CategoryEmissions engine.CategoryEmissions `json:"categoryEmissions"`
}

// Card is one rendered story card.
type Card struct {
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Emoji   string            `json:"emoji"`
	Stats   map[string]string `json:"stats,omitempty"`
}

// voice holds the per-personality narrative ingredients.
type voice struct {
	tone      string
	narrative string
	trigger   string
}

var voices = map[personality.Archetype]voice{
	personality.SustainabilitySlayer: {
		tone:      "unstoppable",
		narrative: "leads the charge and makes green living look effortless",
		trigger:   "pride",
	},
	personality.PlanetsMainCharacter: {
		tone:      "bold",
		narrative: "puts climate action center stage in every choice",
		trigger:   "momentum",
	},
	personality.SustainabilitySoftLaunch: {
		tone:      "quietly determined",
		narrative: "is testing greener habits and liking the results",
		trigger:   "curiosity",
	},
	personality.KindOfConscious: {
		tone:      "well-meaning",
		narrative: "cares about the planet and is figuring out the how",
		trigger:   "encouragement",
	},
	personality.EcoInProgress: {
		tone:      "steady",
		narrative: "is building green systems one small step at a time",
		trigger:   "persistence",
	},
	personality.DoingNothing: {
		tone:      "untapped",
		narrative: "hasn't started yet, which means every step counts double",
		trigger:   "possibility",
	},
	personality.ClimateSnoozer: {
		tone:      "dormant",
		narrative: "has been hitting snooze on the climate alarm",
		trigger:   "wake-up",
	},
}

// defaultVoice covers personality strings outside the fixed archetype set.
var defaultVoice = voice{
	tone:      "emerging",
	narrative: "is starting an eco journey",
	trigger:   "beginnings",
}

// achievementThreshold marks category emissions low enough to celebrate.
// Compared per category in the category's own (mixed) unit scale.
var achievementThresholds = map[string]float64{
	"home":      0.5,
	"transport": 1.0,
	"food":      600,
	"waste":     10,
}

// attentionThresholds marks category emissions high enough to call out with
// a recommendation card.
var attentionThresholds = map[string]float64{
	"home":      2.0,
	"transport": 4.0,
	"food":      1200,
	"waste":     25,
}

// categoryDisplay orders the category cards deterministically.
var categoryDisplay = []struct {
	key   string
	label string
	emoji string
}{
	{key: "home", label: "Home Energy", emoji: "🏠"},
	{key: "transport", label: "Transport", emoji: "🚲"},
	{key: "food", label: "Food", emoji: "🥦"},
	{key: "waste", label: "Waste", emoji: "♻️"},
}

// Generate produces the ordered story card list: personality, impact,
// per-category achievements, per-category attention calls, then the next
// step. Fully deterministic for a fixed Input.
func Generate(in Input) []Card {
	cards := []Card{personalityCard(in), impactCard(in)}
	cards = append(cards, achievementCards(in)...)
	cards = append(cards, attentionCards(in)...)
	cards = append(cards, nextStepCard(in))
	return cards
}

func voiceFor(p string) voice {
	if v, ok := voices[personality.Archetype(p)]; ok {
		return v
	}
	return defaultVoice
}

// capitalize upper-cases the first byte. Tone words are ASCII.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "This eco explorer"
	}
	return name
}

func personalityCard(in Input) Card {
	v := voiceFor(in.EcoPersonality)
	profile := personality.ProfileFor(personality.Archetype(in.EcoPersonality))

	content := fmt.Sprintf("%s %s. %s is the %s energy this story runs on.",
		displayName(in.Name), v.narrative, capitalize(v.tone), v.trigger)

	return Card{
		Title:   in.EcoPersonality,
		Content: content,
		Emoji:   profile.Emoji,
		Stats: map[string]string{
			"score":       FormatNumber(int64(in.Score)),
			"topCategory": in.TopCategory,
		},
	}
}

func impactCard(in Input) Card {
	equivalent := in.ImpactEquivalent
	if equivalent == "" {
		equivalent = ImpactComparison(in.CO2Saved)
	}

	content := fmt.Sprintf("%s tons of CO2 saved — that's like %s.",
		FormatTons(in.CO2Saved), equivalent)
	if len(in.NewHabits) > 0 {
		content += fmt.Sprintf(" Powered by %d new habits: %s.",
			len(in.NewHabits), strings.Join(in.NewHabits, ", "))
	}

	return Card{
		Title:   "Your Impact",
		Content: content,
		Emoji:   "🌍",
		Stats: map[string]string{
			"co2Saved": FormatTons(in.CO2Saved),
		},
	}
}

func achievementCards(in Input) []Card {
	var cards []Card
	for _, cat := range categoryDisplay {
		value := categoryValue(in.CategoryEmissions, cat.key)
		if value <= achievementThresholds[cat.key] {
			cards = append(cards, Card{
				Title:   fmt.Sprintf("%s Star", cat.label),
				Content: fmt.Sprintf("Your %s footprint sits well below typical — keep it locked in.", strings.ToLower(cat.label)),
				Emoji:   cat.emoji,
				Stats:   map[string]string{"emissions": FormatTons(value)},
			})
		}
	}
	return cards
}

func attentionCards(in Input) []Card {
	var cards []Card
	for _, cat := range categoryDisplay {
		value := categoryValue(in.CategoryEmissions, cat.key)
		if value >= attentionThresholds[cat.key] {
			cards = append(cards, Card{
				Title:   fmt.Sprintf("%s Opportunity", cat.label),
				Content: fmt.Sprintf("%s is your biggest lever right now — one change here moves the whole score.", cat.label),
				Emoji:   "🎯",
				Stats:   map[string]string{"emissions": FormatTons(value)},
			})
		}
	}
	return cards
}

func nextStepCard(in Input) Card {
	next := in.NextStep
	if next == "" {
		next = personality.ProfileFor(personality.Archetype(in.EcoPersonality)).NextAction
	}

	stats := map[string]string{}
	if in.Badge != "" {
		stats["badge"] = in.Badge
	}

	return Card{
		Title:   "What's Next",
		Content: next,
		Emoji:   "🧭",
		Stats:   stats,
	}
}

func categoryValue(c engine.CategoryEmissions, key string) float64 {
	switch key {
	case "home":
		return c.Home
	case "transport":
		return c.Transport
	case "food":
		return c.Food
	case "waste":
		return c.Waste
	default:
		return 0
	}
}
