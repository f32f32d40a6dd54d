package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/snic/snic/internal/gber"
	"github.com/snic/snic/internal/matchups"
)

var matchupsBase uint64

var matchupsCmd = &cobra.Command{
	Use:   "matchups <n>",
	Short: "Stream every matchup of a network of size n under --base as NDJSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchups,
}

func init() {
	rootCmd.AddCommand(matchupsCmd)
	matchupsCmd.Flags().Uint64VarP(&matchupsBase, "base", "b", 0, "base (defaults to config's ranker.default_base)")
}

func runMatchups(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid n: %w", err)
	}

	base := matchupsBase
	if base == 0 {
		base = GetConfig().Ranker.DefaultBase
	}

	d, err := gber.Decompose(n, base)
	if err != nil {
		return err
	}

	manager := matchups.NewManager(d)
	enc := json.NewEncoder(os.Stdout)
	for {
		items, ok := manager.Next()
		if !ok {
			return nil
		}
		if err := enc.Encode(items); err != nil {
			return err
		}
	}
}
