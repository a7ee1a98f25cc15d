package mdp

import (
	"context"
	"fmt"
	"math"
)

// Status is the engine's run state. StatusConverged is final.
type Status string

const (
	StatusRunning   Status = "running"
	StatusConverged Status = "converged"
)

type Option func(*Engine)

func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// WithReportInterval sets how many sweeps pass between reports. Values below
// one are ignored.
func WithReportInterval(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.interval = n
		}
	}
}

func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithMaxSweeps caps the number of sweeps Run may perform. Zero means no cap.
func WithMaxSweeps(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxSweeps = n
		}
	}
}

// Engine evaluates a policy on a GridWorld by synchronous sweeps. It is the
// sole owner of the world's value array while it runs.
type Engine struct {
	world     *GridWorld
	policy    Policy
	reporter  Reporter
	interval  int
	maxSweeps int

	pdfs   []DiscretePdf[Action]
	sweeps int
	delta  float64
	status Status
}

func NewEngine(world *GridWorld, opts ...Option) *Engine {
	e := &Engine{
		world:    world,
		policy:   PolicyRandom{},
		interval: 1,
		status:   StatusRunning,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Status() Status {
	return e.status
}

// Sweeps counts completed sweeps, including those of earlier Run calls.
func (e *Engine) Sweeps() int {
	return e.sweeps
}

// Delta is the largest value change of the last completed sweep.
func (e *Engine) Delta() float64 {
	return e.delta
}

// World returns the model the engine sweeps. Its values are live: they change
// with every sweep.
func (e *Engine) World() *GridWorld {
	return e.world
}

// Sweep recomputes every non-terminal state from the previous sweep's values
// and then swaps the new array in. It returns the sweep's delta.
func (e *Engine) Sweep() float64 {
	w := e.world
	pdfs := e.policyTable()
	actions := w.Actions()

	prev := w.values
	next := make([]float64, len(prev))
	copy(next, prev)

	var delta float64
	for s := State(0); s < w.Terminal(); s++ {
		r := float64(w.rewards[s])
		var v float64
		for _, a := range actions {
			p := float64(pdfs[s].P(a))
			v += p * (r + w.gamma*prev[w.NextState(s, a)])
		}
		next[s] = v
		delta = math.Max(delta, math.Abs(v-prev[s]))
	}

	w.values = next
	e.sweeps++
	e.delta = delta
	return delta
}

// Run sweeps until the delta drops below the world's theta and returns the
// number of sweeps performed. Cancellation is only observed between sweeps.
func (e *Engine) Run(ctx context.Context) (int, error) {
	if e.status == StatusConverged {
		return e.sweeps, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return e.sweeps, err
		}
		if e.maxSweeps > 0 && e.sweeps >= e.maxSweeps {
			return e.sweeps, fmt.Errorf("after %d sweeps, delta %g: %w", e.sweeps, e.delta, ErrSweepLimit)
		}

		delta := e.Sweep()
		if e.sweeps%e.interval == 0 {
			e.report(delta)
		}
		if delta < e.world.theta {
			e.status = StatusConverged
			return e.sweeps, nil
		}
	}
}

func (e *Engine) report(delta float64) {
	if e.reporter == nil {
		return
	}
	e.reporter.Report(Progress{
		Sweep: e.sweeps,
		Delta: delta,
		Grid:  e.world.Render(e.world.values),
	})
}

// policyTable resolves the policy once per state; the policies used here do
// not depend on the value array.
func (e *Engine) policyTable() []DiscretePdf[Action] {
	if e.pdfs != nil {
		return e.pdfs
	}
	pdfs := make([]DiscretePdf[Action], e.world.nStates)
	for s := range pdfs {
		pdf := e.policy.Act(e.world, State(s))
		pdf.Check()
		pdfs[s] = pdf
	}
	e.pdfs = pdfs
	return pdfs
}
