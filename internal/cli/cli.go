// Package cli parses swungdash command-line arguments.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Telofy/swungdash/evalctx"
	"github.com/Telofy/swungdash/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app
// config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("swungdash", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Swungdash - lazy stochastic expression trees for estimation models.

Usage:
  swungdash [options] [MODEL_PATH]

Arguments:
  MODEL_PATH
    Path to a single .hcl model file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	modelFlag := flagSet.String("model", "", "Path to the model file or directory.")
	mFlag := flagSet.String("m", "", "Path to the model file or directory (shorthand).")
	samplesFlag := flagSet.Int("samples", 0, "Override the sampling budget for every model. 0 keeps the file's setting.")
	cacheRuleFlag := flagSet.String("cache-rule", "", "Override the cache rule. Options: 'never', 'constant' or 'always'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *modelFlag != "" {
		path = *modelFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *samplesFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid samples: must not be negative"}
	}
	if *cacheRuleFlag != "" {
		if _, err := evalctx.ParseRule(*cacheRuleFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: "invalid cache-rule: must be 'never', 'constant' or 'always'"}
		}
	}

	return &app.Config{
		ModelPath:   path,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		SampleCount: *samplesFlag,
		CacheRule:   *cacheRuleFlag,
	}, false, nil
}
