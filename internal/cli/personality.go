package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenloop/ecotrace/internal/personality"
	"github.com/greenloop/ecotrace/internal/tui"
)

func newPersonalityCmd() *cobra.Command {
	var responsesPath string
	var output string

	cmd := &cobra.Command{
		Use:   "personality",
		Short: "Determine the eco personality from quiz answers",
		Example: `  ecotrace personality --responses answers.json
  ecotrace personality --responses answers.json --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			responses, err := loadResponses(responsesPath)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("operation", "personality").
				Str("responses_path", responsesPath).
				Msg("determining eco personality")

			result := personality.Determine(responses)

			switch resolveOutputFormat(output) {
			case "json":
				return printJSON(cmd.Printf, result)
			case "table":
				cmd.Println(tui.RenderPersonality(result, terminalWidth()))
				return nil
			default:
				return fmt.Errorf("unknown output format %q (expected table or json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&responsesPath, "responses", "", "Path to quiz answers JSON file (required)")
	cmd.Flags().StringVar(&output, "output", "", "Output format: table or json (default from configuration)")
	_ = cmd.MarkFlagRequired("responses")

	return cmd
}
