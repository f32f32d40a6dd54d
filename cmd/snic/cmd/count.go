package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/snic/snic/internal/counting"
	"github.com/snic/snic/internal/gber"
)

var countBase uint64

var countCmd = &cobra.Command{
	Use:   "count <n>",
	Short: "Print closed-form matchup and comparison counts for n under --base",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().Uint64VarP(&countBase, "base", "b", 0, "base (defaults to config's ranker.default_base)")
}

func runCount(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid n: %w", err)
	}

	base := countBase
	if base == 0 {
		base = GetConfig().Ranker.DefaultBase
	}

	d, err := gber.Decompose(n, base)
	if err != nil {
		return err
	}

	var matchupsNumber uint64
	for _, size := range d.StreamComponents() {
		matchupsNumber += counting.MatchupsNumberFor(size, base)
	}

	out := map[string]interface{}{
		"n":                  n,
		"base":               base,
		"matchups_number":    matchupsNumber,
		"comparisons_number": counting.ComparisonsNumberFor(matchupsNumber, base),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
