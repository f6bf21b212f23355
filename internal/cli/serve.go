package cli

import (
	"github.com/spf13/cobra"

	"github.com/OopsException/ghost-followers/pkg/api"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the comparison HTTP API",
		Long: `Serve the comparison over HTTP.

Endpoints:
  GET  /healthz       liveness probe
  POST /v1/compare    body {"followers": <document>, "following": <document>}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			return api.NewServer(cfg, loggerFromContext(cmd.Context())).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default \":8080\")")
	return cmd
}
