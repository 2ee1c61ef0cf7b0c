package components

import (
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// footerPadding is the horizontal padding on each side of the hint line.
const footerPadding = 2

// Footer renders the help hints of the enabled bindings under a rule.
// Hints that do not fit in width are dropped from the end and replaced by
// an ellipsis.
func Footer(width int, bindings []key.Binding) string {
	if width < 10 {
		return ""
	}

	var hints []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		hints = append(hints, styles.FormatKeyBinding(h.Key, h.Desc))
	}
	if len(hints) == 0 {
		return ""
	}

	room := width - 2*footerPadding
	sep := styles.KeySepStyle.Render("  ")
	more := styles.KeySepStyle.Render("…")
	line := hints[0]
	for i, h := range hints[1:] {
		next := line + sep + h
		limit := room
		if i < len(hints)-2 {
			limit -= ansi.StringWidth(sep + more)
		}
		if ansi.StringWidth(next) > limit {
			line += sep + more
			break
		}
		line = next
	}
	if ansi.StringWidth(line) > room {
		line = ansi.Truncate(line, room, "…")
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, footerPadding).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(strings.TrimRight(line, " "))
}
