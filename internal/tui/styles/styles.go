package styles

import (
	"nathanbeddoewebdev/ecoprint/internal/emissions"

	"github.com/charmbracelet/lipgloss"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// Label is used for field names in detail views.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in detail views.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for highlighted interactive elements.
	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// --- Eco score ---

// TierColor returns the colour for an eco score tier.
func TierColor(tier emissions.ScoreTier) lipgloss.Color {
	switch tier {
	case emissions.TierGreen:
		return TierGreen
	case emissions.TierYellow:
		return TierYellow
	default:
		return TierRed
	}
}

// TierStyle returns a bold style in the tier's colour.
func TierStyle(tier emissions.ScoreTier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TierColor(tier)).Bold(true)
}

// TierIndicator returns a coloured dot followed by text.
func TierIndicator(tier emissions.ScoreTier, text string) string {
	style := TierStyle(tier)
	return style.Render("●") + " " + style.Render(text)
}

// --- Layout components ---

var (
	// Border is the default subtle border style.
	Border = lipgloss.RoundedBorder()

	// Card is a rounded-border panel for content sections.
	Card = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(DimGray).
		Padding(1, 2)
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer (e.g. "quit").
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}

// --- Tab bar styles ---

var (
	// TabActive is the label of the visible tab.
	TabActive = lipgloss.NewStyle().
			Foreground(White).
			Background(DarkBlue).
			Bold(true).
			Padding(0, 1)

	// TabInactive is the label of a hidden tab.
	TabInactive = lipgloss.NewStyle().
			Foreground(Gray).
			Padding(0, 1)
)
