package estimate

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/ecoprint/internal/chart"
	"nathanbeddoewebdev/ecoprint/internal/emissions"
)

// writeChart renders the comparison chart to path. The format follows the
// file extension.
func writeChart(path string, s emissions.ChartSeries) (err error) {
	format, err := chart.FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write chart file: %w", cerr)
		}
	}()

	opts := chart.DefaultOptions()
	opts.Format = format

	canvas := chart.NewCanvas(opts)
	defer canvas.Release()
	canvas.Draw(s)
	return canvas.Render(f)
}
