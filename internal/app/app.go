// Package app wires the model-file loader, the evaluation engine, and the
// reporter into the swungdash command.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Telofy/swungdash/internal/config"
	"github.com/Telofy/swungdash/internal/ctxlog"
)

// Config holds everything an App instance needs to run.
type Config struct {
	ModelPath   string
	LogFormat   string
	LogLevel    string
	SampleCount int    // overrides the file's settings when > 0
	CacheRule   string // overrides the file's settings when set
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *config.Model
}

// NewApp is the constructor for the main application. It loads the model
// file eagerly; a failure to load is a fatal startup error, reported by
// panicking (main recovers and exits cleanly).
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	model, err := loader.Load(ctx, cfg.ModelPath)
	if err != nil {
		panic(fmt.Errorf("failed to load model file: %w", err))
	}
	logger.Debug("Model file loaded into unified config.",
		"distributions", len(model.Distributions),
		"mixtures", len(model.Mixtures),
		"models", len(model.Models))

	return &App{outW: outW, logger: logger, config: model}
}

// Model returns the loaded config model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.config
}
