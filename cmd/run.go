package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/berke-bakar/smart-byte-quiz/internal/app"
	"github.com/berke-bakar/smart-byte-quiz/internal/config"
	"github.com/berke-bakar/smart-byte-quiz/internal/logging"
)

// runApp loads configuration, sets up logging and plays until the player
// quits. SIGINT and SIGTERM cancel the game.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{Level: level, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closeLog()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, app.Options{
		Config: cfg,
		Logger: logger,
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
	})
}
