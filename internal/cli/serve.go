package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashlayout/internal/server"
	"github.com/matzehuels/dashlayout/pkg/scene"
)

// serveCommand creates the serve command exposing a scene over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	addr := server.DefaultAddr

	cmd := &cobra.Command{
		Use:   "serve [scene.toml]",
		Short: "Serve a scene over a JSON HTTP API",
		Long: `Serve a scene over a JSON HTTP API so that a browser or another program
can drive drags, resizes and activations. The engine stays authoritative:
clients send pointer offsets and receive the snapped, clamped result.

Routes live under /api/v1; liveness is reported on /health/live.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			srv, err := server.New(server.Options{Scene: sc, Logger: c.Logger})
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), "Serving %s on %s", args[0], StyleHighlight.Render(addr))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")

	return cmd
}
