package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/snic/snic/internal/apiserver"
	"github.com/snic/snic/pkg/telemetry"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `serve starts an HTTP server exposing decomposition, matchup
streaming, ranking, and counting over JSON, for collaborators that would
otherwise need a foreign-language binding into the core.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (defaults to config's server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := GetLogger()
	cfg := GetConfig()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx := context.Background()
	if cfg.Server.OTelEnabled {
		shutdown, err := telemetry.Init(ctx)
		if err != nil {
			log.Warn("failed to initialize telemetry: %v", err)
		} else {
			defer shutdown(ctx)
		}
	}

	server := apiserver.NewServer(addr, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn("error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	if err := server.Start(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
