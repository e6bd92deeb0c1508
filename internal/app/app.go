// Package app assembles the game from its configuration and runs it.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
	"github.com/berke-bakar/smart-byte-quiz/internal/config"
	"github.com/berke-bakar/smart-byte-quiz/internal/game"
	"github.com/berke-bakar/smart-byte-quiz/internal/store"
	"github.com/berke-bakar/smart-byte-quiz/internal/trivia"
	"github.com/berke-bakar/smart-byte-quiz/internal/tui"
)

// Options holds the app's dependencies. Zero fields get production values.
type Options struct {
	Config  config.Config
	Catalog *catalog.Catalog
	Logger  *slog.Logger

	// Provider replaces the HTTP trivia client.
	Provider trivia.Provider

	// UI replaces the interactive terminal.
	UI game.UI

	Input  io.Reader
	Output io.Writer
}

// Run builds the settings store, question provider and terminal, then plays
// until the player quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Load(); err != nil {
			return err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path := opts.Config.SettingsPath
	if path == "" {
		var err error
		if path, err = store.DefaultPath(); err != nil {
			return fmt.Errorf("resolve settings path: %w", err)
		}
	}
	settings := store.Open(path, store.Options{Catalog: cat, Logger: logger})
	logger.Debug("settings loaded", "path", settings.Path(), "limit", settings.Limit())

	provider := opts.Provider
	if provider == nil {
		provider = trivia.NewClient(trivia.Config{
			BaseURL: opts.Config.APIURL,
			Timeout: opts.Config.HTTPTimeout,
			Catalog: cat,
			Logger:  logger,
		})
	}

	ui := opts.UI
	if ui == nil {
		ui = tui.New(cat, tui.Options{Input: opts.Input, Output: opts.Output})
	}

	ctrl := game.New(game.Options{
		Store:    settings,
		Provider: provider,
		Catalog:  cat,
		UI:       ui,
		Logger:   logger,
	})
	return ctrl.Run(ctx)
}
