package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/snic/snic/internal/counting"
	"github.com/snic/snic/internal/gber"
	"github.com/snic/snic/pkg/model"
	"github.com/snic/snic/pkg/parallel"
)

var batchInputFile string

type batchJob struct {
	N    uint64 `json:"n"`
	Base uint64 `json:"base"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compute closed-form counts for many independent networks concurrently",
	Long: `batch reads a JSON array of {"n": .., "base": ..} jobs from --in
and computes each network's matchup/comparison counts concurrently. Jobs
are independent of each other; this is job-level concurrency across whole
networks, not concurrency within a single network's matchup stream.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchInputFile, "in", "i", "", "input JSON file of jobs (required)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	data, err := os.ReadFile(batchInputFile)
	if err != nil {
		return fmt.Errorf("failed to read batch input: %w", err)
	}

	var jobs []batchJob
	if err := json.Unmarshal(data, &jobs); err != nil {
		return fmt.Errorf("failed to parse batch input: %w", err)
	}

	cfg := GetConfig().Ranker
	poolConfig := parallel.DefaultPoolConfig().WithWorkers(cfg.MaxBatchSize)
	pool := parallel.NewWorkerPool[batchJob, model.CountResponse](poolConfig)

	var tracker *parallel.ProgressTracker
	ctx := context.Background()
	if verbose {
		log := GetLogger()
		tracker = parallel.NewProgressTracker(int64(len(jobs)), func(completed, total int64) {
			log.Info("batch progress: %d/%d jobs done", completed, total)
		}, 500*time.Millisecond)
		tracker.Start(ctx)
		defer tracker.Stop()
	}

	results := pool.ExecuteFunc(ctx, jobs, func(ctx context.Context, job batchJob) (model.CountResponse, error) {
		d, err := gber.Decompose(job.N, job.Base)
		if tracker != nil {
			tracker.Increment()
		}
		if err != nil {
			return model.CountResponse{}, err
		}
		var matchupsNumber uint64
		for _, size := range d.StreamComponents() {
			matchupsNumber += counting.MatchupsNumberFor(size, job.Base)
		}
		return model.CountResponse{
			N:                 job.N,
			Base:              job.Base,
			MatchupsNumber:    matchupsNumber,
			ComparisonsNumber: counting.ComparisonsNumberFor(matchupsNumber, job.Base),
		}, nil
	})

	enc := json.NewEncoder(os.Stdout)
	for _, r := range results {
		if r.Error != nil {
			GetLogger().Warn("job n=%d base=%d failed: %v", r.Input.N, r.Input.Base, r.Error)
			continue
		}
		if err := enc.Encode(r.Result); err != nil {
			return err
		}
	}
	return nil
}
