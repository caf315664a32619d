package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/ecotrace/internal/engine"
	"github.com/greenloop/ecotrace/internal/personality"
	"github.com/greenloop/ecotrace/internal/story"
)

func TestRenderResults(t *testing.T) {
	results := &engine.CalculationResults{
		Score:     82,
		Emissions: 3.53,
		CategoryEmissions: engine.CategoryEmissions{
			Home:      0.28,
			Transport: 2.0,
			Food:      1.0,
			Waste:     0.25,
		},
		Recommendations: []engine.Recommendation{
			{Title: "Switch to Renewable Energy", Difficulty: engine.DifficultyMedium},
		},
	}

	out := RenderResults(results, 80)

	assert.Contains(t, out, "FOOTPRINT SUMMARY")
	assert.Contains(t, out, "82/100")
	assert.Contains(t, out, "home: 0.28")
	assert.Contains(t, out, "Switch to Renewable Energy")
	assert.Contains(t, out, "Medium")
}

func TestRenderResultsNil(t *testing.T) {
	assert.Contains(t, RenderResults(nil, 80), "No results")
}

func TestRenderResultsZeroTotalHasNoNaNShares(t *testing.T) {
	out := RenderResults(&engine.CalculationResults{Score: 100}, 80)

	assert.NotContains(t, out, "NaN")
	assert.Contains(t, out, "home: 0.00 (0.0%)")
}

func TestRenderPersonality(t *testing.T) {
	out := RenderPersonality(personality.Result{
		Personality: "Eco in Progress",
		Emoji:       "🚧",
		Badge:       "Work in Progress",
		SubCategory: "Energy Saver in Training",
		Story:       "The intention is there.",
		NextAction:  "Automate one green choice.",
	}, 80)

	assert.Contains(t, out, "ECO PERSONALITY")
	assert.Contains(t, out, "Eco in Progress")
	assert.Contains(t, out, "Work in Progress")
	assert.Contains(t, out, "Next: Automate one green choice.")
}

func TestRenderStoryCards(t *testing.T) {
	cards := []story.Card{
		{Title: "Your Impact", Content: "6.20 tons saved", Emoji: "🌍", Stats: map[string]string{"co2Saved": "6.20"}},
		{Title: "What's Next", Content: "Keep going", Emoji: "🧭"},
	}

	out := RenderStoryCards(cards, 80)

	assert.Contains(t, out, "Your Impact")
	assert.Contains(t, out, "co2Saved=6.20")
	assert.Contains(t, out, "What's Next")

	require.NotEmpty(t, RenderStoryCards(nil, 80))
	assert.Contains(t, RenderStoryCards(nil, 80), "No story")
}
