package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gduarte/massing/internal/api"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the massing HTTP API",
		Long: `Run the massing HTTP API.

Endpoints:
  GET  /healthz            liveness probe
  POST /v1/massing         solve a room program (JSON body, ?format=csv|html for artifacts)
  POST /v1/classify        classify room names without solving

The server shares the solve command's result cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := api.NewServer(runner, c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
