// Command toastdemo serves the toast gallery and HTTP API, and prints the
// usage examples.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toastdemo",
		Short: "Toast notification manager demo",
		Long: `toastdemo runs a small web app around the toast manager.

  serve     gallery page, toast HTTP API, SSE stream and /metrics
  examples  print the usage examples with their code samples`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		serveCmd(),
		examplesCmd(),
		versionCmd(),
	)
	return cmd
}
