package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/CodeStranger-Fred/valueiteration/mdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const escape = "\x1b["

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSinkMirrorsWithoutColors(t *testing.T) {
	var term, log bytes.Buffer
	s := NewSink(&term, WithLog(&log))

	s.Printf(Highlight, "Iteration %d:", 100)
	s.Println(Success, "Final Value Function:")
	s.Println(Failure, "Error: Grid size must be at least 2x2")
	s.Println(Plain, "done")

	assert.Contains(t, term.String(), escape)
	assert.NotContains(t, log.String(), escape)
	assert.Equal(t, "Iteration 100:\nFinal Value Function:\nError: Grid size must be at least 2x2\ndone\n", log.String())
	require.NoError(t, s.Err())
}

func TestSinkWithoutColors(t *testing.T) {
	var term bytes.Buffer
	s := NewSink(&term, WithColors(false))

	s.Println(Success, "ok")

	assert.Equal(t, "ok\n", term.String())
}

func TestSinkReport(t *testing.T) {
	var term, log bytes.Buffer
	s := NewSink(&term, WithLog(&log))

	s.Report(mdp.Progress{Sweep: 200, Delta: 0.0123456, Grid: "[-1 -2]"})

	want := "\nIteration 200:\nMaximum change (delta): 0.012346\nCurrent value function:\n[-1 -2]\n"
	assert.Equal(t, want, log.String())
	assert.Equal(t, 4, strings.Count(term.String(), escape+"33m"))
}

func TestSinkKeepsFirstWriteError(t *testing.T) {
	var term bytes.Buffer
	s := NewSink(&term, WithLog(failingWriter{}))

	s.Println(Plain, "one")
	s.Println(Plain, "two")

	assert.Equal(t, "one\ntwo\n", term.String())
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "write log: disk full")
}

func TestNilTerminalDiscards(t *testing.T) {
	s := NewSink(nil)
	s.Println(Plain, "nowhere")
	assert.NoError(t, s.Err())
}

func TestChartRender(t *testing.T) {
	c := NewChart("4x4 value iteration")
	c.Report(mdp.Progress{Sweep: 100, Delta: 0.5})
	c.Report(mdp.Progress{Sweep: 200, Delta: 0.01})

	var out bytes.Buffer
	require.NoError(t, c.Render(&out))

	assert.Equal(t, 2, c.Len())
	html := out.String()
	assert.Contains(t, html, "4x4 value iteration")
	assert.Contains(t, html, "delta")
	assert.Contains(t, html, "200")
}

func TestChartWithoutData(t *testing.T) {
	var out bytes.Buffer
	err := NewChart("empty").Render(&out)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Zero(t, out.Len())
}

func TestMulti(t *testing.T) {
	var got []int
	first := mdp.ReporterFunc(func(p mdp.Progress) { got = append(got, p.Sweep) })
	second := mdp.ReporterFunc(func(p mdp.Progress) { got = append(got, -p.Sweep) })

	Multi(first, nil, second).Report(mdp.Progress{Sweep: 3})

	assert.Equal(t, []int{3, -3}, got)
}
