package components

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/tabs"
	"nathanbeddoewebdev/ecoprint/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// TabBar renders the tab names of set with the active one highlighted.
// Tabs are numbered from 1 to match their shortcut keys.
func TabBar(width int, set tabs.Set) string {
	if width < 10 || set.Len() == 0 {
		return ""
	}

	parts := make([]string, set.Len())
	for i, name := range set.Names() {
		label := fmt.Sprintf("%d %s", i+1, name)
		if set.IsActive(i) {
			parts[i] = styles.TabActive.Render(label)
		} else {
			parts[i] = styles.TabInactive.Render(label)
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(strings.Join(parts, " "))
}
