package components

import (
	"math"
	"strings"
	"testing"

	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/tabs"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestHeader(t *testing.T) {
	got := ansi.Strip(Header(60, "results", "42% · red"))

	for _, want := range []string{"ecoprint", "results", "42% · red"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in header %q", want, got)
		}
	}
	if Header(5, "x", "") != "" {
		t.Error("expected empty header for tiny widths")
	}
}

func TestFooter(t *testing.T) {
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	edit := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	hidden := key.NewBinding(key.WithKeys("j"), key.WithHelp("j/k", "scroll"), key.WithDisabled())

	got := ansi.Strip(Footer(60, []key.Binding{quit, edit, hidden}))
	if !strings.Contains(got, "q quit") || !strings.Contains(got, "e edit") {
		t.Errorf("unexpected footer %q", got)
	}
	if strings.Contains(got, "scroll") {
		t.Errorf("disabled binding shown in footer %q", got)
	}
	if Footer(60, nil) != "" {
		t.Error("expected empty footer without bindings")
	}
	if Footer(60, []key.Binding{hidden}) != "" {
		t.Error("expected empty footer when every binding is disabled")
	}
}

func TestFooter_DropsHintsThatDoNotFit(t *testing.T) {
	var bindings []key.Binding
	for _, d := range []string{"first", "second", "third", "fourth", "fifth"} {
		bindings = append(bindings, key.NewBinding(key.WithKeys("x"), key.WithHelp("x", d)))
	}

	got := ansi.Strip(Footer(30, bindings))
	if !strings.Contains(got, "x first") || !strings.Contains(got, "…") {
		t.Errorf("expected first hint and ellipsis, got %q", got)
	}
	if strings.Contains(got, "fifth") {
		t.Errorf("expected trailing hints dropped, got %q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Errorf("line wider than footer: %d %q", w, line)
		}
	}
}

func TestStatusBar(t *testing.T) {
	if StatusBar(60, Status{}) != "" {
		t.Error("expected empty status bar without a message")
	}

	tests := []struct {
		status Status
		want   string
	}{
		{Info("edit cancelled"), "edit cancelled"},
		{Success("saved"), "✓ saved"},
		{Error("unknown region"), "✗ unknown region"},
	}
	for _, tt := range tests {
		if got := ansi.Strip(StatusBar(60, tt.status)); !strings.Contains(got, tt.want) {
			t.Errorf("StatusBar(%+v) = %q, want it to contain %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusBar_TruncatesLongMessage(t *testing.T) {
	got := ansi.Strip(StatusBar(20, Error(strings.Repeat("bad value ", 10))))
	if strings.Contains(got, "\n") {
		t.Errorf("expected a single line, got %q", got)
	}
	if !strings.Contains(got, "…") {
		t.Errorf("expected truncation marker, got %q", got)
	}
}

func TestTabBar(t *testing.T) {
	set := tabs.New("results", "chart").Activate(1)
	got := ansi.Strip(TabBar(60, set))

	if !strings.Contains(got, "1 results") || !strings.Contains(got, "2 chart") {
		t.Errorf("unexpected tab bar %q", got)
	}
	if TabBar(60, tabs.Set{}) != "" {
		t.Error("expected empty tab bar for an empty set")
	}
}

func TestBarChart(t *testing.T) {
	s := emissions.Series(7910.15625, 0.3)
	c := NewBarChart(s, 40, 10)

	if c.Series() != s {
		t.Errorf("expected series to be kept")
	}

	view := ansi.Strip(c.View())
	for _, label := range s.Labels() {
		if !strings.Contains(view, label) {
			t.Errorf("expected legend entry %q", label)
		}
	}
	if !strings.Contains(view, "7.9K g") {
		t.Errorf("expected formatted baseline in legend:\n%s", view)
	}
	if lipgloss.Height(view) < 10 {
		t.Errorf("expected chart plus legend, got %d lines", lipgloss.Height(view))
	}
}

func TestBarChart_ZeroAndOverflowSeries(t *testing.T) {
	for name, s := range map[string]emissions.ChartSeries{
		"zero":     emissions.Series(0, 0),
		"overflow": emissions.Series(math.Inf(1), 1),
	} {
		view := ansi.Strip(NewBarChart(s, 40, 10).View())
		if !strings.Contains(view, "Nothing to draw yet.") {
			t.Errorf("%s: expected placeholder, got:\n%s", name, view)
		}
		if !strings.Contains(view, emissions.LabelBaseline) {
			t.Errorf("%s: expected legend, got:\n%s", name, view)
		}
	}
}

func TestSweepChart(t *testing.T) {
	if got := SweepChart("sweep", nil, 40, " g"); !strings.Contains(got, "no data") {
		t.Errorf("expected placeholder, got %q", got)
	}

	data := emissions.CachingSweep(emissions.Input{
		PageSizeKB: 2048, MonthlyVisits: 10000, AvgSessionSeconds: 2, ServerLocation: 0.5,
	}, 5)
	got := ansi.Strip(SweepChart("sweep", data, 40, " g"))
	if !strings.Contains(got, "no caching: 7.9K g") || !strings.Contains(got, "full caching: 0.0 g") {
		t.Errorf("unexpected summary:\n%s", got)
	}
}

func TestSweepChart_NonFiniteShowsPlaceholder(t *testing.T) {
	data := emissions.CachingSweep(emissions.Input{
		PageSizeKB: 1e300, MonthlyVisits: 1e300, AvgSessionSeconds: 2, ServerLocation: 0.5,
	}, 21)

	got := ansi.Strip(SweepChart("sweep", data, 80, " g"))
	if !strings.Contains(got, "values too large to plot") {
		t.Errorf("expected placeholder for non-finite sweep, got %q", got)
	}

	mixed := ansi.Strip(SweepChart("sweep", []float64{1, math.NaN(), 3}, 80, " g"))
	if !strings.Contains(mixed, "values too large to plot") {
		t.Errorf("expected placeholder for NaN point, got %q", mixed)
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		12.34:         "12.3 g",
		7910.15625:    "7.9K g",
		2_500_000:     "2.5M g",
		3_000_000_000: "3.0G g",
	}
	for in, want := range tests {
		if got := formatValue(in, " g"); got != want {
			t.Errorf("formatValue(%v) = %q, want %q", in, got, want)
		}
	}
}
