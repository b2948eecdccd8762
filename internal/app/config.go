package app

import (
	"errors"
	"fmt"

	"github.com/vk/stepgrid/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RunPath string // hcl run file or directory

	Puzzle string // only run this puzzle when set
	Part   int    // only run this part when non-zero

	Output  report.Format
	Color   bool
	Workers int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RunPath == "" {
		return nil, errors.New("RunPath is a required configuration field and cannot be empty")
	}
	if cfg.Part < 0 {
		return nil, fmt.Errorf("part must not be negative, got %d", cfg.Part)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Output == "" {
		cfg.Output = report.FormatText
	}
	if _, err := report.ParseFormat(string(cfg.Output)); err != nil {
		return nil, err
	}
	return &cfg, nil
}
