// Package cmd implements the newswatch CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "newswatch",
	Short: "newswatch — GDELT news monitoring agent",
	Long: "newswatch polls GDELT news data on an interval, lets an LLM search it\n" +
		"through the newsfresh CLI, and emails notifications for new articles.",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(seenCmd)
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(fetchCmd)
}
