package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/snic/snic/internal/comparisons"
	"github.com/snic/snic/internal/ranker"
	"github.com/snic/snic/pkg/model"
	"github.com/snic/snic/pkg/utils"
)

var (
	rankInputFile string
	rankDamping   float64
	rankTolerance float64
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank items from a JSON document of ranked matchups",
	Long: `rank reads a JSON document of the form
  {"ranked_matchups": [[items ordered best to worst], ...]}
from --in (or stdin), expands each matchup into its implied pairwise
comparisons via the expansion mould, and prints per-item PageRank scores
plus an ascending-by-score ordering.`,
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().StringVarP(&rankInputFile, "in", "i", "", "input JSON file (defaults to stdin)")
	rankCmd.Flags().Float64Var(&rankDamping, "damping", 0, "PageRank damping factor (defaults to config's ranker.damping)")
	rankCmd.Flags().Float64Var(&rankTolerance, "tolerance", 0, "PageRank convergence tolerance (defaults to config's ranker.tolerance)")
}

func runRank(cmd *cobra.Command, args []string) error {
	var reader io.Reader = os.Stdin
	if rankInputFile != "" {
		f, err := os.Open(rankInputFile)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	timer := utils.NewTimer("rank", utils.WithLogger(GetLogger()), utils.WithEnabled(verbose))

	var req model.RankRequest
	decodePhase := timer.Start("decode")
	err := json.NewDecoder(reader).Decode(&req)
	decodePhase.Stop()
	if err != nil {
		return fmt.Errorf("failed to parse rank request: %w", err)
	}

	damping := rankDamping
	if damping == 0 {
		damping = GetConfig().Ranker.Damping
	}
	tolerance := rankTolerance
	if tolerance == 0 {
		tolerance = GetConfig().Ranker.Tolerance
	}

	cmps := comparisons.ExpandRankedMatchups(req.RankedMatchups)

	var allItems []uint64
	for _, matchup := range req.RankedMatchups {
		allItems = append(allItems, matchup...)
	}

	rankPhase := timer.Start("pagerank")
	result, err := ranker.Rank(allItems, cmps, damping, tolerance)
	rankPhase.Stop()
	if err != nil {
		return err
	}
	timer.PrintSummary()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(model.RankResponse{
		Scores:          result.Scores,
		AscendingByRank: result.AscendingByRank,
	})
}
