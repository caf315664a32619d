package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/greenloop/ecotrace/internal/engine"
	"github.com/greenloop/ecotrace/internal/personality"
	"github.com/greenloop/ecotrace/internal/story"
)

// borderPadding accounts for the box border when sizing content.
const borderPadding = 2

// RenderResults renders a boxed, styled footprint summary: score, total,
// per-category breakdown with shares, then the recommendation list.
func RenderResults(results *engine.CalculationResults, width int) string {
	if results == nil {
		return InfoStyle.Render("No results to display.")
	}

	var content strings.Builder

	content.WriteString(HeaderStyle.Render("FOOTPRINT SUMMARY"))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Score:   "))
	content.WriteString(ValueStyle.Render(strconv.Itoa(results.Score) + "/100"))
	content.WriteString(LabelStyle.Render("    Total: "))
	content.WriteString(ValueStyle.Render(fmt.Sprintf("%.2f", results.Emissions)))
	content.WriteString("\n")

	total := results.Emissions
	parts := make([]string, 0, 4)
	for _, cat := range []struct {
		name  string
		value float64
	}{
		{"home", results.CategoryEmissions.Home},
		{"transport", results.CategoryEmissions.Transport},
		{"food", results.CategoryEmissions.Food},
		{"waste", results.CategoryEmissions.Waste},
	} {
		pct := 0.0
		if total > 0 {
			pct = cat.value / total * 100
		}
		parts = append(parts, fmt.Sprintf("%s: %.2f (%.1f%%)", cat.name, cat.value, pct))
	}
	content.WriteString(LabelStyle.Render(strings.Join(parts, "  ")))
	content.WriteString("\n")

	saved := engine.WorstCaseTons - results.Emissions
	if saved > 0 {
		content.WriteString(SubtleStyle.Render(
			fmt.Sprintf("Ahead of the worst case by %.1f — like %s", saved, story.ImpactComparison(saved))))
		content.WriteString("\n")
	}

	if len(results.Recommendations) > 0 {
		content.WriteString("\n")
		content.WriteString(HeaderStyle.Render("RECOMMENDATIONS"))
		content.WriteString("\n")
		for _, rec := range results.Recommendations {
			content.WriteString(fmt.Sprintf("%s %s %s\n",
				ValueStyle.Render("•"),
				rec.Title,
				SubtleStyle.Render("["+string(rec.Difficulty)+"]")))
		}
	}

	return BoxStyle.Width(width - borderPadding).Render(strings.TrimRight(content.String(), "\n"))
}

// RenderPersonality renders the resolved personality as a styled block.
func RenderPersonality(result personality.Result, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ECO PERSONALITY"))
	content.WriteString("\n")
	content.WriteString(ValueStyle.Render(result.Emoji + " " + result.Personality))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Badge: "))
	content.WriteString(ValueStyle.Render(result.Badge))
	content.WriteString(LabelStyle.Render("    Focus: "))
	content.WriteString(ValueStyle.Render(result.SubCategory))
	content.WriteString("\n\n")
	content.WriteString(result.Story)
	content.WriteString("\n\n")
	content.WriteString(InfoStyle.Render("Next: " + result.NextAction))

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// RenderStoryCards renders the story deck as stacked boxes.
func RenderStoryCards(cards []story.Card, width int) string {
	if len(cards) == 0 {
		return InfoStyle.Render("No story to tell yet.")
	}

	blocks := make([]string, 0, len(cards))
	for _, card := range cards {
		var content strings.Builder
		content.WriteString(HeaderStyle.Render(card.Emoji + " " + card.Title))
		content.WriteString("\n")
		content.WriteString(card.Content)
		if len(card.Stats) > 0 {
			content.WriteString("\n")
			stats := make([]string, 0, len(card.Stats))
			for _, key := range sortedKeys(card.Stats) {
				stats = append(stats, fmt.Sprintf("%s=%s", key, card.Stats[key]))
			}
			content.WriteString(SubtleStyle.Render(strings.Join(stats, "  ")))
		}
		blocks = append(blocks, BoxStyle.Width(width-borderPadding).Render(content.String()))
	}
	return strings.Join(blocks, "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
