// Command logsviewer serves the LogsViewer navigation shell.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/logsviewer/logsviewer/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logsviewer",
		Short: "Browse must-gather logs from a server-driven UI",
		Long: `LogsViewer serves a server-rendered navigation shell over the
imported must-gather data.

Every page load is rendered on the server. Live navigations travel
over a WebSocket, and the server pushes the document title and focus
changes to a thin client.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to logsviewer.json or logsviewer.toml")

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		versionCmd(),
	)
	return rootCmd
}
