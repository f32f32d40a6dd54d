package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/snic/snic/internal/gber"
)

var decomposeBase uint64

var decomposeCmd = &cobra.Command{
	Use:   "decompose <n>",
	Short: "Print the GBER of n under --base",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecompose,
}

func init() {
	rootCmd.AddCommand(decomposeCmd)
	decomposeCmd.Flags().Uint64VarP(&decomposeBase, "base", "b", 0, "base to decompose against (defaults to config's ranker.default_base)")
}

func runDecompose(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid n: %w", err)
	}

	base := decomposeBase
	if base == 0 {
		base = GetConfig().Ranker.DefaultBase
	}

	d, err := gber.Decompose(n, base)
	if err != nil {
		return err
	}

	out := map[string]interface{}{
		"base":             d.Base,
		"component_powers": d.ComponentPowers,
		"remainder":        d.Remainder,
		"value":            d.ToDecimal(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
