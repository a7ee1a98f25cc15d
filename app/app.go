// Package app runs one value-iteration session end to end: it opens the log
// mirror, prints the banner and tables, drives the engine and writes the
// optional convergence chart.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CodeStranger-Fred/valueiteration/config"
	"github.com/CodeStranger-Fred/valueiteration/mdp"
	"github.com/CodeStranger-Fred/valueiteration/report"
)

const timeLayout = "2006-01-02 15:04:05"

type Option func(*runner)

// WithClock replaces time.Now for the start and end timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *runner) {
		if now != nil {
			r.now = now
		}
	}
}

type runner struct {
	now func() time.Time
}

// Run executes a session described by cfg, writing console output to out.
func Run(ctx context.Context, cfg config.Config, out io.Writer, opts ...Option) (err error) {
	r := runner{now: time.Now}
	for _, opt := range opts {
		opt(&r)
	}

	sinkOpts := []report.SinkOption{report.WithColors(!cfg.NoColor)}
	if cfg.Output != "" {
		f, ferr := os.Create(cfg.Output)
		if ferr != nil {
			return fmt.Errorf("open log %s: %w", cfg.Output, ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close log %s: %w", cfg.Output, cerr)
			}
		}()
		sinkOpts = append(sinkOpts, report.WithLog(f))
	}
	sink := report.NewSink(out, sinkOpts...)

	sink.Printf(report.Plain, "Execution started at: %s", r.now().Format(timeLayout))

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidSize) {
			sink.Println(report.Failure, "Error: Grid size must be at least 2x2")
		} else {
			sink.Printf(report.Failure, "Error: %v", err)
		}
		return err
	}

	world, err := mdp.NewGridWorld(cfg.Size)
	if err != nil {
		return err
	}

	var chart *report.Chart
	reporters := []mdp.Reporter{sink}
	if cfg.Chart != "" {
		chart = report.NewChart(fmt.Sprintf("%dx%d value iteration", cfg.Size, cfg.Size))
		reporters = append(reporters, chart)
	}
	engine := mdp.NewEngine(world,
		mdp.WithReporter(report.Multi(reporters...)),
		mdp.WithReportInterval(cfg.ReportInterval),
		mdp.WithMaxSweeps(cfg.MaxSweeps),
	)

	sink.Println(report.Plain, "")
	sink.Printf(report.Plain, "Starting Value Iteration for %dx%d grid...", cfg.Size, cfg.Size)
	sink.Println(report.Plain, "Initial state values:")
	sink.Println(report.Plain, world.Render(world.Values()))

	sweeps, err := engine.Run(ctx)
	if err != nil {
		sink.Printf(report.Failure, "Stopped after %d iterations: %v", sweeps, err)
		return fmt.Errorf("value iteration: %w", err)
	}

	sink.Println(report.Plain, "")
	sink.Printf(report.Plain, "Converged! Final delta: %.6f", engine.Delta())
	sink.Println(report.Plain, "")
	sink.Printf(report.Plain, "Value Iteration completed after %d iterations", sweeps)
	sink.Println(report.Plain, "")
	sink.Println(report.Success, "Final Value Function:")
	sink.Println(report.Success, world.Render(world.Values()))

	if chart != nil {
		if sweeps%cfg.ReportInterval != 0 {
			chart.Report(mdp.Progress{Sweep: sweeps, Delta: engine.Delta()})
		}
		if err := writeChart(cfg.Chart, chart); err != nil {
			sink.Printf(report.Failure, "Error: %v", err)
			return err
		}
		sink.Printf(report.Plain, "Convergence chart written to %s", cfg.Chart)
	}

	sink.Println(report.Plain, "")
	sink.Printf(report.Plain, "Execution completed at: %s", r.now().Format(timeLayout))

	if err := sink.Err(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func writeChart(path string, chart *report.Chart) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close chart %s: %w", path, cerr)
		}
	}()
	return chart.Render(f)
}
