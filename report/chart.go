package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/CodeStranger-Fred/valueiteration/mdp"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var ErrNoData = errors.New("no progress recorded")

// Chart records the delta of every reported sweep and renders it as an
// HTML line chart.
type Chart struct {
	title  string
	sweeps []int
	deltas []float64
}

func NewChart(title string) *Chart {
	return &Chart{title: title}
}

func (c *Chart) Report(p mdp.Progress) {
	c.sweeps = append(c.sweeps, p.Sweep)
	c.deltas = append(c.deltas, p.Delta)
}

// Len is the number of recorded points.
func (c *Chart) Len() int {
	return len(c.sweeps)
}

func (c *Chart) Render(w io.Writer) error {
	if len(c.sweeps) == 0 {
		return ErrNoData
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: c.title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "sweep",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "delta",
			Type: "log",
		}),
	)

	steps := make([]string, 0, len(c.sweeps))
	items := make([]opts.LineData, 0, len(c.deltas))
	for i, sweep := range c.sweeps {
		steps = append(steps, fmt.Sprintf("%d", sweep))
		items = append(items, opts.LineData{Value: c.deltas[i]})
	}
	line.SetXAxis(steps).AddSeries("delta", items)

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
