package chart

import (
	"errors"
	"io"

	"nathanbeddoewebdev/ecoprint/internal/emissions"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// ErrNoChart is returned by Canvas.Render when nothing has been drawn.
var ErrNoChart = errors.New("no chart drawn")

// Canvas owns the chart of one presentation surface. Each Draw discards the
// previous chart before building the next, so a Canvas never holds more
// than one. A Canvas is not safe for concurrent use; surfaces that serve
// concurrent requests create one per request.
type Canvas struct {
	opts    Options
	current *gochart.BarChart
	drawn   int
}

// NewCanvas returns an empty canvas rendering with opts.
func NewCanvas(opts Options) *Canvas {
	return &Canvas{opts: opts.withDefaults()}
}

// Draw replaces the current chart with one built from s.
func (c *Canvas) Draw(s emissions.ChartSeries) {
	c.Release()
	c.current = New(s, c.opts)
	c.drawn++
}

// Render writes the current chart to w.
func (c *Canvas) Render(w io.Writer) error {
	if c.current == nil {
		return ErrNoChart
	}
	return renderChart(w, c.current, c.opts.Format)
}

// Release drops the current chart, if any.
func (c *Canvas) Release() {
	c.current = nil
}

// Live reports whether the canvas holds a chart.
func (c *Canvas) Live() bool {
	return c.current != nil
}

// Draws returns how many charts this canvas has built.
func (c *Canvas) Draws() int {
	return c.drawn
}
