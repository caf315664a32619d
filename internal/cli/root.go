// Package cli wires the ecotrace commands: calculate, personality, story,
// quiz, serve, and config management.
package cli

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/greenloop/ecotrace/internal/config"
)

// logger is the package-level logger for CLI operations, set during command
// setup.
var logger zerolog.Logger //nolint:gochecknoglobals // Set once in PersistentPreRunE.

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the stdout width, or a sane default when stdout is
// not a terminal.
func terminalWidth() int {
	const defaultWidth = 80
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// NewRootCmd creates the root cobra command for the ecotrace CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ecotrace",
		Short:   "Carbon footprint quiz engine",
		Long:    "ecotrace: compute carbon footprints, eco personalities, and shareable stories from quiz answers",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configFlag, _ := cmd.Flags().GetString("config")

			path, err := config.ResolvePath(configFlag)
			if err != nil {
				return err
			}

			// A missing config file means "use defaults" here; commands that
			// need the file to exist (config validate) check for themselves.
			cfg, err := config.Load(path)
			if err != nil && !errors.Is(err, config.ErrNotFound) {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			config.SetGlobal(cfg)

			setupLogging(cmd, cfg)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.ecotrace/config.yaml)")

	cmd.AddCommand(
		newCalculateCmd(),
		newPersonalityCmd(),
		newStoryCmd(),
		newQuizCmd(),
		newServeCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Calculate a footprint from saved quiz answers
  ecotrace calculate --responses answers.json

  # Classify the eco personality
  ecotrace personality --responses answers.json

  # Render the shareable story cards
  ecotrace story --responses answers.json

  # Take the quiz interactively
  ecotrace quiz --output answers.json

  # Run the HTTP API
  ecotrace serve --port 8080

  # Initialize configuration
  ecotrace config init`
