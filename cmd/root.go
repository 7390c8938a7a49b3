// Package cmd implements the CLI commands for boardtext using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boardtext",
	Short: "boardtext — bulk-edit idea board text outside the visual editor",
	Long: `boardtext converts idea board content files between their card-based
HTML form and a plain-text representation that is easy to bulk-edit.

Usage:
  boardtext export <board.json|url> [flags]
  boardtext apply <board.json> [textfile] [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
