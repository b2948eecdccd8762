package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/vk/stepgrid/internal/app"
	"github.com/vk/stepgrid/internal/report"
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

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("stepgrid", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stepgrid - solves dependency-ordered puzzle sets declared in HCL run files.

Usage:
  stepgrid [options] [RUN_PATH]

Arguments:
  RUN_PATH
    Path to a single .hcl run file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.StringP("config", "c", "", "Path to the run file or directory.")
	dayFlag := flagSet.StringP("day", "d", "", "Only run this puzzle, e.g. 'day07' or '7'.")
	partFlag := flagSet.IntP("part", "p", 0, "Only run this part. 0 runs every part.")
	outputFlag := flagSet.StringP("output", "o", "text", "Result format. Options: 'text', 'json', 'yaml', 'cbor'.")
	colorFlag := flagSet.Bool("color", false, "Style text output for terminals.")
	workersFlag := flagSet.IntP("workers", "w", 1, "Number of puzzle parts solved concurrently.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	paths := flagSet.Args()
	if *configFlag != "" {
		paths = append([]string{*configFlag}, paths...)
	}
	if len(paths) > 1 {
		return nil, false, usageError("expected a single run path, got %d", len(paths))
	}
	path := ""
	if len(paths) == 1 {
		path = paths[0]
	}
	slog.Debug("Run path determined.", "path", path)

	if path == "" {
		slog.Debug("No run path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := app.ParseLogLevel(logLevel); err != nil {
		return nil, false, usageError("%s", err)
	}

	format, err := report.ParseFormat(*outputFlag)
	if err != nil {
		return nil, false, usageError("invalid output: %s", err)
	}

	puzzle, err := PuzzleName(*dayFlag)
	if err != nil {
		return nil, false, usageError("%s", err)
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		RunPath:   path,
		Puzzle:    puzzle,
		Part:      *partFlag,
		Output:    format,
		Color:     *colorFlag,
		Workers:   *workersFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// PuzzleName normalizes a --day value. Bare numbers become "dayNN"; any
// other value is used as-is.
func PuzzleName(day string) (string, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return "", nil
	}
	n, err := strconv.Atoi(day)
	if err != nil {
		return day, nil
	}
	if n < 1 || n > 25 {
		return "", fmt.Errorf("invalid day %d: must be between 1 and 25", n)
	}
	return fmt.Sprintf("day%02d", n), nil
}
