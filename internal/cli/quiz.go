package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/greenloop/ecotrace/internal/engine"
	"github.com/greenloop/ecotrace/internal/personality"
	"github.com/greenloop/ecotrace/internal/tui"
)

func newQuizCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the footprint quiz interactively",
		Long: `Walk through the quiz in the terminal, then show the computed footprint
and eco personality. With --output, the collected answers are also saved for
later runs of calculate/personality/story.`,
		Example: `  ecotrace quiz
  ecotrace quiz --output answers.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) {
				return errors.New("quiz requires an interactive terminal (use calculate --responses for scripted runs)")
			}

			model, err := tea.NewProgram(tui.NewQuizModel()).Run()
			if err != nil {
				return fmt.Errorf("running quiz: %w", err)
			}

			quiz, ok := model.(tui.QuizModel)
			if !ok || quiz.Aborted() || !quiz.Done() {
				cmd.PrintErrln("Quiz cancelled.")
				return nil
			}

			responses := quiz.Responses()
			if outputPath != "" {
				if err := saveResponses(outputPath, &responses); err != nil {
					return err
				}
				cmd.Printf("Answers saved to %s\n", outputPath)
			}

			results := engine.NewEngine().Calculate(cmd.Context(), &responses)
			persona := personality.Determine(&responses)

			width := terminalWidth()
			cmd.Println(tui.RenderResults(results, width))
			cmd.Println(tui.RenderPersonality(persona, width))
			return nil
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", "", "Save collected answers to this JSON file")

	return cmd
}
