package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newswatch/newswatch/internal/config"
	"github.com/newswatch/newswatch/internal/seen"
)

var seenIDs []string

var seenCmd = &cobra.Command{
	Use:   "seen --ids <id> [<id> ...]",
	Short: "Dedup check for document IDs",
	Long: "Checks the given identifiers against the 24-hour seen ledger,\n" +
		"marks them all as seen, and prints a JSON result with new_ids,\n" +
		"total_checked, and new_count.",
	RunE: runSeen,
}

func init() {
	seenCmd.Flags().StringSliceVar(&seenIDs, "ids", nil, "Document IDs to check (required)")
	_ = seenCmd.MarkFlagRequired("ids")
}

func runSeen(_ *cobra.Command, args []string) error {
	// Shell-quoted invocations pass extra ids as positional args after
	// the first --ids value; fold them in, preserving order.
	ids := append(seenIDs, args...)
	if len(ids) == 0 {
		return fmt.Errorf("no ids given")
	}

	store := seen.NewStore(config.SeenPath())
	result, err := store.CheckAndMark(ids)
	if err != nil {
		return err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
