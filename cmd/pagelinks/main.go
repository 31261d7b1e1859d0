package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagelinks",
		Short: "Render pagination controls for paged result lists",
		Long: `pagelinks renders a bounded window of page links for a paged list,
either as a demo HTTP server or straight to stdout.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(newServeCmd(), newRenderCmd(), newWindowCmd())
	return cmd
}
