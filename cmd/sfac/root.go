package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for sfac.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sfac",
		Short: "Subdomain finder and accessibility checker",
		Long: `sfac enumerates the subdomains of a domain and checks each one for
HTTP accessibility with a bounded number of concurrent requests.

Well-formed subdomains are written to a CSV report with their status code
and whether they answered 200 OK. Optionally, accessible subdomains are
screenshotted with a headless Chrome and the run is summarized in Markdown.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
