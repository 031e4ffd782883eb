// Package cmd wires the Cobra CLI for the insights service.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights-server",
		Short: "Brand-context extraction service for Shopify storefronts.",
		Long: `insights-server exposes an HTTP API that, given a storefront URL,
fetches the store's public pages and product feed and extracts a
structured brand context: catalog, hero products, policies, FAQs,
social handles, contact details, and key navigation links.`,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional; env vars prefixed INSIGHTS_ otherwise)")
	cmd.AddCommand(newServeCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
