package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenloop/ecotrace/internal/engine"
	"github.com/greenloop/ecotrace/internal/personality"
	"github.com/greenloop/ecotrace/internal/story"
	"github.com/greenloop/ecotrace/internal/tui"
)

func newStoryCmd() *cobra.Command {
	var responsesPath string
	var output string
	var habits []string

	cmd := &cobra.Command{
		Use:   "story",
		Short: "Render the shareable story cards",
		Long: `Run the full pipeline — emissions, personality, narrative — and render
the resulting story cards.`,
		Example: `  ecotrace story --responses answers.json
  ecotrace story --responses answers.json --habit "meatless Mondays" --habit "cycling to work"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			responses, err := loadResponses(responsesPath)
			if err != nil {
				return err
			}

			results := engine.NewEngine().Calculate(cmd.Context(), responses)
			persona := personality.Determine(responses)

			saved := engine.WorstCaseTons - results.Emissions
			if saved < 0 {
				saved = 0
			}

			cards := story.Generate(story.Input{
				Name:              responses.Name,
				EcoPersonality:    persona.Personality,
				CO2Saved:          saved,
				TopCategory:       persona.SubCategory,
				NewHabits:         habits,
				NextStep:          persona.NextAction,
				Badge:             persona.Badge,
				Score:             results.Score,
				CategoryEmissions: results.CategoryEmissions,
			})

			switch resolveOutputFormat(output) {
			case "json":
				return printJSON(cmd.Printf, cards)
			case "table":
				cmd.Println(tui.RenderStoryCards(cards, terminalWidth()))
				return nil
			default:
				return fmt.Errorf("unknown output format %q (expected table or json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&responsesPath, "responses", "", "Path to quiz answers JSON file (required)")
	cmd.Flags().StringVar(&output, "output", "", "Output format: table or json (default from configuration)")
	cmd.Flags().StringArrayVar(&habits, "habit", nil, "New habit to celebrate in the story (repeatable)")
	_ = cmd.MarkFlagRequired("responses")

	return cmd
}
