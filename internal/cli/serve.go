package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seqmap/pkg/server"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout, render, hit-test and selection API over HTTP",
		Long: `Serve the seqmap HTTP API.

Endpoints:
  GET  /healthz
  POST /v1/layout
  POST /v1/render/{format}
  POST /v1/hits
  POST /v1/selection

The server shares the CLI's cache, so layouts computed by 'seqmap layout'
are served from cache and the other way around. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			runner, err := c.newRunner(cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			printInfo("Serving the seqmap API")
			printKeyValue("address", StyleLink.Render(cfg.Server.Addr))
			printKeyValue("cache", backendName(cfg.Cache, noCache))
			printNewline()

			return server.New(runner, c.Logger).ListenAndServe(cmd.Context(), cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
