// Package cmd implements the snic command-line interface.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/snic/snic/pkg/config"
	"github.com/snic/snic/pkg/utils"
)

var (
	verbose    bool
	configPath string

	logger utils.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "snic",
	Short: "Rank items via GBER matchup generation and PageRank",
	Long: `snic computes item rankings from structured tournament-style
comparisons derived from a Generalised Base Exponential Representation
(GBER) of the item count.

It decomposes a network size into GBER components, generates intra- and
inter-subnetwork matchups over those components, expands each matchup into
pairwise comparisons, and ranks items with PageRank over the resulting
directed comparison graph.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := utils.LevelInfo
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewDefaultLogger(logLevel, os.Stdout)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (yaml)")

	binName := BinName()
	rootCmd.Example = `  # Decompose a network size into its GBER
  ` + binName + ` decompose 100 --base 10

  # Stream every matchup of a decomposed network
  ` + binName + ` matchups 100 --base 10

  # Report closed-form matchup/comparison counts
  ` + binName + ` count 100 --base 10

  # Start the HTTP API server
  ` + binName + ` serve --addr :8090`
}

// GetLogger returns the configured logger.
func GetLogger() utils.Logger {
	return logger
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
