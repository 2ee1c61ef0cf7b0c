// Package chart renders the optimisation comparison as a bar chart image.
//
// Rendering is delegated to go-chart. The package adds the fixed labels,
// palette and titles, and a Canvas type that owns the one live chart of a
// presentation surface.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/emissions"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// Title is printed above the bars.
	Title = "Impact of optimisations on CO2 emissions"

	// YAxisTitle names the value axis.
	YAxisTitle = "CO2 emissions (g/month)"
)

// Palette holds the bar colours, in emissions.ChartSeries label order.
var Palette = []string{"#e74c3c", "#f1c40f", "#2ecc71", "#27ae60"}

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ErrUnsupportedFormat is returned for image formats other than PNG and SVG.
var ErrUnsupportedFormat = errors.New("unsupported chart format")

// ParseFormat accepts "png" or "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (use png or svg)", ErrUnsupportedFormat, s)
	}
}

// FormatForPath infers the format from a file extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Options controls the rendered image.
type Options struct {
	Width  int
	Height int
	Format Format
}

// DefaultOptions returns a 800x480 PNG.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 480, Format: FormatPNG}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Format == "" {
		o.Format = d.Format
	}
	return o
}

// New builds the bar chart for s without rendering it.
func New(s emissions.ChartSeries, opts Options) *gochart.BarChart {
	opts = opts.withDefaults()

	labels := s.Labels()
	values := s.Values()
	bars := make([]gochart.Value, len(values))
	top := 0.0
	for i, v := range values {
		v = finiteOrZero(v)
		top = math.Max(top, v)
		color := hexColor(Palette[i%len(Palette)])
		bars[i] = gochart.Value{
			Label: labels[i],
			Value: v,
			Style: gochart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
	}
	// The value axis always starts at zero; an all-zero chart still needs
	// a non-empty range to draw.
	if top <= 0 {
		top = 1
	}

	return &gochart.BarChart{
		Title:      Title,
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   opts.Width / 8,
		BarSpacing: opts.Width / 16,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: gochart.YAxis{
			Name:  YAxisTitle,
			Range: &gochart.ContinuousRange{Min: 0, Max: top * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}
}

// Render draws s and writes the image to w.
func Render(w io.Writer, s emissions.ChartSeries, opts Options) error {
	opts = opts.withDefaults()
	return renderChart(w, New(s, opts), opts.Format)
}

func renderChart(w io.Writer, bc *gochart.BarChart, format Format) error {
	var provider gochart.RendererProvider
	switch format {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
	if err := bc.Render(provider, w); err != nil {
		return fmt.Errorf("chart: failed to render %s: %w", format, err)
	}
	return nil
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
