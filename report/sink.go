// Package report turns engine progress into console text, a plain-text log
// mirror and a convergence chart.
package report

import (
	"fmt"
	"io"

	"github.com/CodeStranger-Fred/valueiteration/mdp"
	"github.com/logrusorgru/aurora"
)

type Tone int

const (
	Plain Tone = iota
	Highlight
	Success
	Failure
)

type SinkOption func(*Sink)

// WithLog mirrors everything written to the terminal into w, without colors.
func WithLog(w io.Writer) SinkOption {
	return func(s *Sink) {
		s.log = w
	}
}

func WithColors(enabled bool) SinkOption {
	return func(s *Sink) {
		s.colors = aurora.NewAurora(enabled)
	}
}

// Sink writes styled text to a terminal and optionally tees it to a log.
// Write failures are kept, not returned, so a broken log never stops a run.
type Sink struct {
	term   io.Writer
	log    io.Writer
	colors aurora.Aurora
	plain  aurora.Aurora
	err    error
}

func NewSink(term io.Writer, opts ...SinkOption) *Sink {
	if term == nil {
		term = io.Discard
	}
	s := &Sink{
		term:   term,
		colors: aurora.NewAurora(true),
		plain:  aurora.NewAurora(false),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sink) Println(tone Tone, text string) {
	s.write(tone, text)
}

func (s *Sink) Printf(tone Tone, format string, args ...any) {
	s.write(tone, fmt.Sprintf(format, args...))
}

// Report prints a progress block for one reported sweep.
func (s *Sink) Report(p mdp.Progress) {
	s.Println(Plain, "")
	s.Printf(Highlight, "Iteration %d:", p.Sweep)
	s.Printf(Highlight, "Maximum change (delta): %.6f", p.Delta)
	s.Println(Highlight, "Current value function:")
	s.Println(Highlight, p.Grid)
}

// Err returns the first write failure, if any.
func (s *Sink) Err() error {
	return s.err
}

func (s *Sink) write(tone Tone, text string) {
	if _, err := io.WriteString(s.term, paint(s.colors, tone, text)+"\n"); err != nil {
		s.fail(fmt.Errorf("write terminal: %w", err))
	}
	if s.log == nil {
		return
	}
	if _, err := io.WriteString(s.log, paint(s.plain, tone, text)+"\n"); err != nil {
		s.fail(fmt.Errorf("write log: %w", err))
	}
}

func (s *Sink) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func paint(a aurora.Aurora, tone Tone, text string) string {
	if text == "" {
		return text
	}
	switch tone {
	case Highlight:
		return a.Yellow(text).String()
	case Success:
		return a.Green(text).String()
	case Failure:
		return a.Red(text).String()
	default:
		return text
	}
}
