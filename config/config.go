// Package config reads value-iteration settings from the environment and
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidSize      = errors.New("grid size must be at least 2")
	ErrInvalidInterval  = errors.New("report interval must be positive")
	ErrInvalidMaxSweeps = errors.New("max sweeps must not be negative")
)

// Config holds the settings of one run.
type Config struct {
	Size           int
	ReportInterval int
	Output         string
	Chart          string
	MaxSweeps      int
	NoColor        bool
}

// envConfig mirrors Config for the environment. NO_COLOR follows the
// no-color.org convention: any non-empty value disables colors.
type envConfig struct {
	Size           int    `env:"VALUE_ITERATION_SIZE" envDefault:"4"`
	ReportInterval int    `env:"VALUE_ITERATION_REPORT_INTERVAL" envDefault:"100"`
	Output         string `env:"VALUE_ITERATION_OUTPUT"`
	Chart          string `env:"VALUE_ITERATION_CHART"`
	MaxSweeps      int    `env:"VALUE_ITERATION_MAX_SWEEPS" envDefault:"0"`
	NoColor        string `env:"NO_COLOR"`
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		Size:           envCfg.Size,
		ReportInterval: envCfg.ReportInterval,
		Output:         envCfg.Output,
		Chart:          envCfg.Chart,
		MaxSweeps:      envCfg.MaxSweeps,
		NoColor:        envCfg.NoColor != "",
	}

	fs.IntVar(&cfg.Size, "s", cfg.Size, "size of the grid (shorthand)")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "size of the grid")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "file to log results to (shorthand)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "file to log results to")
	fs.IntVar(&cfg.ReportInterval, "interval", cfg.ReportInterval, "sweeps between progress reports")
	fs.StringVar(&cfg.Chart, "chart", cfg.Chart, "write an HTML convergence chart to this path")
	fs.IntVar(&cfg.MaxSweeps, "max-sweeps", cfg.MaxSweeps, "stop after this many sweeps (0 = no limit)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalidSize)
	}
	if c.ReportInterval < 1 {
		return fmt.Errorf("interval %d: %w", c.ReportInterval, ErrInvalidInterval)
	}
	if c.MaxSweeps < 0 {
		return fmt.Errorf("max sweeps %d: %w", c.MaxSweeps, ErrInvalidMaxSweeps)
	}
	return nil
}
