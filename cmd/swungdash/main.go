package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Telofy/swungdash/internal/app"
	"github.com/Telofy/swungdash/internal/cli"
	"github.com/Telofy/swungdash/internal/hcl"
)

// main is the entrypoint for the swungdash command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (e.g. an unreadable model
	// file); recover to report them as ordinary errors.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical startup error occurred: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	swungdashApp := app.NewApp(outW, appConfig, loader)

	return swungdashApp.Run(context.Background(), appConfig)
}
