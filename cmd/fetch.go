package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newswatch/newswatch/internal/webfetch"
)

var fetchMaxChars int

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch the readable text of an article URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := webfetch.Fetch(cmd.Context(), args[0], fetchMaxChars)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	fetchCmd.Flags().IntVar(&fetchMaxChars, "max-chars", 0,
		fmt.Sprintf("Maximum characters of extracted text (default %d)", webfetch.DefaultMaxChars))
}
