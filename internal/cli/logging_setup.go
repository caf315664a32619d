package cli

import (
	"github.com/spf13/cobra"

	"github.com/greenloop/ecotrace/internal/config"
	"github.com/greenloop/ecotrace/internal/logging"
)

// setupLogging builds the process logger from config plus the --debug flag
// and attaches it to the command context.
func setupLogging(cmd *cobra.Command, cfg config.Config) {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	result := logging.New(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	cmd.SetContext(logging.WithContext(cmd.Context(), result.Logger))
}
