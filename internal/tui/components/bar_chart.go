package components

import (
	"fmt"
	"math"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/chart"
	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// minBarChartWidth keeps the four bars distinguishable.
const minBarChartWidth = 24

// BarChart is the terminal rendering of the optimisation comparison. It
// wraps one ntcharts model built for a single series; a new series needs a
// new BarChart.
type BarChart struct {
	model  barchart.Model
	series emissions.ChartSeries
	width  int

	// empty is set when no bar has a positive finite height.
	empty bool
}

// NewBarChart builds and draws a chart of s sized width x height.
func NewBarChart(s emissions.ChartSeries, width, height int) *BarChart {
	width = max(width, minBarChartWidth)
	height = max(height, 4)

	values := s.Values()
	peak := 0.0
	for _, v := range values {
		peak = max(peak, finiteOrZero(v))
	}
	if peak <= 0 {
		return &BarChart{series: s, width: width, empty: true}
	}

	data := make([]barchart.BarData, len(values))
	for i, v := range values {
		data[i] = barchart.BarData{
			Label: fmt.Sprintf("%d", i+1),
			Values: []barchart.BarValue{{
				Name:  s.Labels()[i],
				Value: finiteOrZero(v),
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(chart.Palette[i])),
			}},
		}
	}

	gap := 2
	barWidth := max((width-2-gap*(len(data)-1))/max(len(data), 1), 1)

	m := barchart.New(width, height,
		barchart.WithDataSet(data),
		barchart.WithBarGap(gap),
		barchart.WithBarWidth(barWidth),
		barchart.WithStyles(
			lipgloss.NewStyle().Foreground(styles.DimGray),
			lipgloss.NewStyle().Foreground(styles.Gray),
		),
	)
	m.Draw()

	return &BarChart{model: m, series: s, width: width}
}

// Series returns the data the chart was built from.
func (c *BarChart) Series() emissions.ChartSeries {
	return c.series
}

// View renders the chart followed by a numbered legend.
func (c *BarChart) View() string {
	if c.empty {
		return lipgloss.JoinVertical(lipgloss.Left, styles.MutedText.Render("Nothing to draw yet."), c.legend())
	}
	return lipgloss.JoinVertical(lipgloss.Left, c.model.View(), c.legend())
}

func (c *BarChart) legend() string {
	labels := c.series.Labels()
	values := c.series.Values()

	lines := make([]string, len(labels))
	for i, label := range labels {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(chart.Palette[i])).Render("■")
		lines[i] = fmt.Sprintf("%s %d %s %s", swatch, i+1,
			styles.Value.Render(label),
			styles.MutedText.Render(formatGrams(values[i])))
	}
	return strings.Join(lines, "\n")
}

func formatGrams(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return formatValue(v, " g")
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
