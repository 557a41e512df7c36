// Package serve starts the HTTP conversion service
package serve

import (
	"fjacquet/pdf2firefly/cmd/root"
	"fjacquet/pdf2firefly/internal/server"

	"github.com/spf13/cobra"
)

var (
	host string
	port int
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP conversion service",
	Long: `Run an HTTP server that accepts PDF statement uploads on /convert and
/convert-json and returns the converted Firefly III CSV.

Host, port, staging directories and upload limits come from the
configuration file or P2F_* environment variables; --host and --port
override the configured listen address.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "Listen host (overrides config)")
	Cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg
	if host != "" {
		cfg.Server.Host = host
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	srv, err := server.New(
		root.NewConverter(),
		cfg.Server.UploadDir,
		cfg.Server.OutputDir,
		cfg.Server.MaxUploadMB,
		root.GetLogger(),
	)
	if err != nil {
		root.Log.Fatalf("Failed to initialize server: %v", err)
	}

	if err := srv.ListenAndServe(cfg.Addr()); err != nil {
		root.Log.Fatalf("HTTP server stopped: %v", err)
	}
}
