package tui

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/config"
	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/tui/components"
	"nathanbeddoewebdev/ecoprint/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type configSavedMsg struct {
	key   string
	value string
}

type configSaveErrorMsg struct {
	err error
}

// configViewModel lists every config key and edits one at a time. Values
// are validated with the key's own rules before they are saved.
type configViewModel struct {
	cfg  *config.Config
	keys []config.KeySpec

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status components.Status
}

// Footer hints for browsing and for editing a value.
var (
	configBrowseHints = []key.Binding{
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "navigate")),
		key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "clear")),
		key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
	configEditHints = []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
)

// RunConfigView starts the interactive config viewer/editor TUI.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newConfigViewModel(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(cfg *config.Config) configViewModel {
	return configViewModel{cfg: cfg, keys: config.Keys}
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case configSavedMsg:
		m.editing = false
		if msg.value == "" {
			m.status = components.Success(msg.key + " cleared")
		} else {
			m.status = components.Success(fmt.Sprintf("%s set to %q", msg.key, msg.value))
		}
		return m, nil

	case configSaveErrorMsg:
		m.status = components.Error(msg.err.Error())
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}
	case "x", "delete":
		return m.apply("")
	case "enter", "e":
		spec := m.keys[m.cursor]
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Focus()
		ti.Width = 40
		ti.Placeholder = "empty clears the key"
		m.editor = ti
		m.editing = true
		m.status = components.Status{}
		return m, textinput.Blink
	}
	return m, nil
}

func (m configViewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		return m.apply(m.editor.Value())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// apply validates value for the selected key and saves it.
func (m configViewModel) apply(value string) (tea.Model, tea.Cmd) {
	value = strings.ToLower(strings.TrimSpace(value))
	spec := m.keys[m.cursor]
	if err := spec.Check(value); err != nil {
		m.status = components.Error(err.Error())
		return m, nil
	}
	spec.Set(m.cfg, value)
	return m, saveConfig(m.cfg, spec.Name, value)
}

func saveConfig(cfg *config.Config, key, value string) tea.Cmd {
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{key: key, value: value}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "config", "")

	bindings := configBrowseHints
	if m.editing {
		bindings = configEditHints
	}
	footer := components.Footer(m.width, bindings)
	statusBar := components.StatusBar(m.width, m.status)

	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if statusBar != "" {
		contentH -= lipgloss.Height(statusBar)
	}
	contentH = max(contentH, 1)

	sections := []string{header, m.renderContent(contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m configViewModel) renderContent(height int) string {
	const (
		cardWidth  = 72
		labelWidth = 18
	)
	title := styles.Title.Render("Configuration")

	rows := make([]string, 0, len(m.keys)+2)
	for i, spec := range m.keys {
		selected := i == m.cursor

		value := spec.Get(m.cfg)
		if value == "" {
			value = "(not set)"
		}

		var row string
		switch {
		case selected && m.editing:
			row = styles.AccentText.Render("> ") + styles.Label.Width(labelWidth).Render(spec.Name) + m.editor.View()
		case selected:
			row = styles.AccentText.Render("> ") + styles.Label.Width(labelWidth).Render(spec.Name) + styles.Value.Bold(true).Render(value)
		default:
			row = "  " + styles.MutedText.Width(labelWidth).Render(spec.Name) + styles.MutedText.Render(value)
		}
		rows = append(rows, row)

		if selected && !m.editing {
			hint := spec.Description
			if spec.Name == "region" {
				hint += ": " + strings.Join(emissions.RegionNames(), ", ")
			}
			hint = ansi.Wordwrap(hint, cardWidth-10, ",")
			hint = strings.ReplaceAll(hint, "\n", "\n    ")
			rows = append(rows, "    "+styles.MutedText.Italic(true).Render(hint))
		}
	}

	card := styles.Card.Width(cardWidth).Render(strings.Join(rows, "\n"))

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", card),
	)
}
