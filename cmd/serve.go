package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sproutedu/sprout/internal/app"
	"github.com/sproutedu/sprout/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tutoring engine HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, dbPath)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
