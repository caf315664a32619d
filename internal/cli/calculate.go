package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenloop/ecotrace/internal/config"
	"github.com/greenloop/ecotrace/internal/engine"
	"github.com/greenloop/ecotrace/internal/tui"
)

// calculateParams holds the flag values for the calculate command.
type calculateParams struct {
	responsesPath string
	output        string
}

func newCalculateCmd() *cobra.Command {
	var params calculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate emissions, score, and recommendations",
		Long: `Calculate the carbon footprint from a saved quiz answer file.

The answer file is the JSON record produced by "ecotrace quiz --output" or by
the web quiz. Missing answers are valid and contribute nothing.`,
		Example: `  # Styled summary
  ecotrace calculate --responses answers.json

  # Machine-readable output
  ecotrace calculate --responses answers.json --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalculate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.responsesPath, "responses", "", "Path to quiz answers JSON file (required)")
	cmd.Flags().StringVar(&params.output, "output", "", "Output format: table or json (default from configuration)")
	_ = cmd.MarkFlagRequired("responses")

	return cmd
}

func executeCalculate(cmd *cobra.Command, params calculateParams) error {
	responses, err := loadResponses(params.responsesPath)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("operation", "calculate").
		Str("responses_path", params.responsesPath).
		Msg("starting footprint calculation")

	results := engine.NewEngine().Calculate(cmd.Context(), responses)

	switch resolveOutputFormat(params.output) {
	case "json":
		return printJSON(cmd.Printf, results)
	case "table":
		cmd.Println(tui.RenderResults(results, terminalWidth()))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table or json)", params.output)
	}
}

// resolveOutputFormat applies flag > config > default precedence.
func resolveOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if f := config.GetGlobal().Output.Format; f != "" {
		return f
	}
	return "table"
}
