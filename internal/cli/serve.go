package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/greenloop/ecotrace/internal/config"
	"github.com/greenloop/ecotrace/internal/server"
)

func newServeCmd() *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculation HTTP API",
		Long: `Serve the stateless calculation API:

  POST /api/calculate              full emission results
  POST /api/calculate-personality  eco personality classification
  POST /api/story                  story cards
  GET  /healthz                    liveness probe`,
		Example: `  ecotrace serve
  ecotrace serve --host 0.0.0.0 --port 9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverCfg := config.GetGlobal().Server
			if host != "" {
				serverCfg.Host = host
			}
			if port != 0 {
				serverCfg.Port = port
			}

			debug, _ := cmd.Flags().GetBool("debug")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(serverCfg, logger, debug)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Bind host (default from configuration)")
	cmd.Flags().IntVar(&port, "port", 0, "Bind port (default from configuration)")

	return cmd
}
