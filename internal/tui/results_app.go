package tui

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/form"
	"nathanbeddoewebdev/ecoprint/internal/report"
	"nathanbeddoewebdev/ecoprint/internal/tabs"
	"nathanbeddoewebdev/ecoprint/internal/tui/components"
	"nathanbeddoewebdev/ecoprint/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tab names, in display order.
const (
	tabResults         = "results"
	tabChart           = "chart"
	tabRecommendations = "recommendations"
	tabMethodology     = "methodology"
)

// sweepPoints is the number of caching levels plotted on the chart tab.
const sweepPoints = 21

// sideBySideWidth is the terminal width from which the two charts share a row.
const sideBySideWidth = 100

type resultsModel struct {
	input emissions.Input
	est   emissions.Estimate
	sweep []float64

	tabs     tabs.Set
	keys     resultsKeyMap
	progress progress.Model
	viewport viewport.Model

	// chart is rebuilt from scratch whenever the estimate or the window
	// size changes; chartBuilds counts the rebuilds.
	chart       *components.BarChart
	chartBuilds int

	status components.Status

	editRequested bool
	quitting      bool

	width  int
	height int
}

func newResultsModel(in emissions.Input, active int, status components.Status) resultsModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = recommendationsViewportKeyMap()

	m := resultsModel{
		tabs:     tabs.New(tabResults, tabChart, tabRecommendations, tabMethodology).Activate(active),
		keys:     defaultResultsKeyMap(),
		viewport: vp,
		status:   status,
	}
	m.setInput(in)
	return m
}

// RunResultsApp shows the estimate for in full-screen. Pressing e leaves the
// program, reopens the input form and comes back with the new estimate.
func RunResultsApp(in emissions.Input) error {
	active := 0
	var status components.Status
	for {
		p := tea.NewProgram(newResultsModel(in, active, status), tea.WithAltScreen())
		result, err := p.Run()
		if err != nil {
			return fmt.Errorf("failed to run results view: %w", err)
		}

		final, ok := result.(resultsModel)
		if !ok || !final.editRequested {
			return nil
		}
		active = final.tabs.Active()

		next, err := RunInputForm(final.input)
		switch {
		case errors.Is(err, ErrAborted):
			status = components.Info("Edit cancelled, showing previous inputs")
		case err != nil:
			return err
		default:
			in = next
			status = components.Success("Estimate updated")
		}
	}
}

// setInput recomputes everything derived from in and replaces the chart.
func (m *resultsModel) setInput(in emissions.Input) {
	m.input = in
	m.est = emissions.Calculate(in)
	m.sweep = emissions.CachingSweep(in, sweepPoints)

	m.progress = progress.New(
		progress.WithSolidFill(string(styles.TierColor(m.est.Metrics.Tier()))),
		progress.WithoutPercentage(),
		progress.WithWidth(m.progressWidth()),
	)
	m.viewport.SetContent(renderRecommendations(m.est.Recommendations, m.contentWidth()))
	m.viewport.GotoTop()
	m.rebuildChart()
}

func (m *resultsModel) rebuildChart() {
	m.chart = nil
	if m.width == 0 || m.height == 0 {
		return
	}
	w, h := m.chartSize()
	m.chart = components.NewBarChart(m.est.Chart, w, h)
	m.chartBuilds++
}

// --- Layout ---

func (m resultsModel) contentWidth() int {
	return max(m.width-4, 20)
}

func (m resultsModel) progressWidth() int {
	return min(max(m.contentWidth()-24, 10), 50)
}

// chartSize leaves room for the legend, and below the side-by-side width
// also for the sweep plot stacked underneath.
func (m resultsModel) chartSize() (int, int) {
	if m.width >= sideBySideWidth {
		return m.contentWidth()/2 - 2, max(m.contentHeight()-6, 4)
	}
	return m.contentWidth(), max(m.contentHeight()-17, 4)
}

// chrome returns the header, tab bar, status bar and footer for the
// current state.
func (m resultsModel) chrome() (header, tabBar, status, footer string) {
	score := fmt.Sprintf("%d%% · %s", m.est.Metrics.EcoScore, m.est.Metrics.Tier())
	header = components.Header(m.width, m.tabs.ActiveName(), score)
	tabBar = components.TabBar(m.width, m.tabs)
	status = components.StatusBar(m.width, m.status)
	footer = components.Footer(m.width, m.keys.footer(m.tabs.ActiveName() == tabRecommendations))
	return header, tabBar, status, footer
}

func (m resultsModel) contentHeight() int {
	header, tabBar, status, footer := m.chrome()
	h := m.height - lipgloss.Height(header) - lipgloss.Height(tabBar) - lipgloss.Height(footer)
	if status != "" {
		h -= lipgloss.Height(status)
	}
	return max(h, 1)
}

func (m *resultsModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
	m.viewport.SetContent(renderRecommendations(m.est.Recommendations, m.contentWidth()))
	m.progress.Width = m.progressWidth()
	m.rebuildChart()
}

// --- Bubbletea ---

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.tabs.ActiveName() == tabRecommendations {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m resultsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Edit):
		m.editRequested = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.tabs = m.tabs.Next()
	case key.Matches(msg, m.keys.Prev):
		m.tabs = m.tabs.Prev()
	case key.Matches(msg, m.keys.Jump):
		m.tabs = m.tabs.Activate(int(msg.String()[0] - '1'))
	default:
		if m.tabs.ActiveName() == tabRecommendations {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	m.status = components.Status{}
	m.viewport.Height = m.contentHeight()
	return m, nil
}

func (m resultsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header, tabBar, status, footer := m.chrome()
	contentH := m.contentHeight()

	var content string
	switch m.tabs.ActiveName() {
	case tabResults:
		content = m.renderResults()
	case tabChart:
		content = m.renderChart()
	case tabRecommendations:
		content = m.viewport.View()
	case tabMethodology:
		content = renderMethodology()
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(contentH).
		MaxHeight(contentH).
		Padding(0, 2).
		Render(content)

	sections := []string{header, tabBar, body}
	if status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// --- Tabs ---

func (m resultsModel) renderResults() string {
	d := report.Format(m.est.Metrics)
	labelWidth := 22

	row := func(label, value string) string {
		return styles.Label.Width(labelWidth).Render(label) + styles.Value.Render(value)
	}

	rows := []string{
		row("Per visit", d.PerVisit),
		row("Monthly", d.Monthly),
		row("Yearly", d.Yearly),
		row("Driving equivalent", d.CarKm),
		row("Absorbed by", d.Trees),
	}
	card := styles.Card.Render(strings.Join(rows, "\n"))

	tier := m.est.Metrics.Tier()
	score := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Label.Width(labelWidth).Render("Eco score"),
		m.progress.ViewAs(float64(m.est.Metrics.EcoScore)/100),
		"  ",
		styles.TierIndicator(tier, d.Score),
	)

	inputs := ansi.Truncate(styles.MutedText.Render(inputSummary(m.input)), m.contentWidth(), "…")

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Estimated emissions"),
		"",
		card,
		"",
		score,
		"",
		inputs,
	)
}

func (m resultsModel) renderChart() string {
	bars := styles.MutedText.Render("Resize the window to draw the chart.")
	if m.chart != nil {
		bars = lipgloss.JoinVertical(lipgloss.Left,
			styles.Label.Render("Monthly CO2 by optimisation (g)"),
			m.chart.View(),
		)
	}

	w, _ := m.chartSize()
	sweep := components.SweepChart("Monthly CO2 vs caching level", m.sweep, w, " g")

	if m.width >= sideBySideWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, bars, "    ", sweep)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bars, "", sweep)
}

func renderRecommendations(r emissions.Recommendations, width int) string {
	sections := []struct {
		title string
		style lipgloss.Style
		items []string
	}{
		{"Critical", styles.ErrorText, r.Critical},
		{"Important", styles.WarningText, r.Important},
		{"Optional", styles.SuccessText, r.Optional},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", s.style.Render(fmt.Sprintf("%s (%d)", s.title, len(s.items))))
		if len(s.items) == 0 {
			fmt.Fprintf(&b, "  %s\n", styles.MutedText.Render("(none)"))
			continue
		}
		for _, item := range s.items {
			wrapped := ansi.Wordwrap(item, max(width-4, 10), "")
			wrapped = strings.ReplaceAll(wrapped, "\n", "\n    ")
			fmt.Fprintf(&b, "  • %s\n", wrapped)
		}
	}
	return b.String()
}

func renderMethodology() string {
	n := form.FormatNumber
	lines := []string{
		styles.Title.Render("How the estimate works"),
		"",
		"Data transfer   page size x effective visits x pages per session",
		"                effective visits = visits x (1 - bounce rate / 100)",
		fmt.Sprintf("                pages per session = session seconds / %s, at least 1", n(emissions.SecondsPerPage)),
		fmt.Sprintf("Energy          %s kWh per GB transferred", n(emissions.KWhPerGB)),
		fmt.Sprintf("                x %s with a CDN, x (1 - caching level)", n(emissions.CDNFactor)),
		"Emissions       energy x grid intensity (kg CO2/kWh)",
		fmt.Sprintf("Driving         %s g CO2 per km", n(emissions.GramsCO2PerKm)),
		fmt.Sprintf("Trees           %s kg CO2 absorbed per tree per year", n(emissions.KgCO2PerTreePerYear)),
		"",
		styles.Label.Render("Eco score"),
		fmt.Sprintf("  40%% page size vs %s KB, 30%% traffic vs %s visits,", n(emissions.BaselinePageSizeKB), n(emissions.BaselineVisits)),
		fmt.Sprintf("  30%% infrastructure (CDN and caching); the best reachable score is %d.", emissions.MaxEcoScore),
		fmt.Sprintf("  %s %d and above, %s %d and above, %s below.",
			styles.TierIndicator(emissions.TierGreen, "green"), emissions.GreenThreshold,
			styles.TierIndicator(emissions.TierYellow, "yellow"), emissions.YellowThreshold,
			styles.TierIndicator(emissions.TierRed, "red")),
	}
	return strings.Join(lines, "\n")
}

func inputSummary(in emissions.Input) string {
	n := form.FormatNumber
	cdn := "no CDN"
	if in.CDN {
		cdn = "CDN"
	}
	return fmt.Sprintf("%s KB · %s visits · %s%% bounce · %ss sessions · %s kg/kWh · %s · %s%% cached",
		n(in.PageSizeKB), n(in.MonthlyVisits), n(in.BounceRate), n(in.AvgSessionSeconds),
		n(in.ServerLocation), cdn, n(in.CachingLevel*100))
}
