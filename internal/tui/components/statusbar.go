package components

import (
	"nathanbeddoewebdev/ecoprint/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tone decides how a status message is coloured and marked.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneError
)

// Status is a one-line message shown between the content and the footer.
type Status struct {
	Text string
	Tone Tone
}

// Info, Success and Error build a Status of the matching tone.
func Info(text string) Status    { return Status{Text: text, Tone: ToneInfo} }
func Success(text string) Status { return Status{Text: text, Tone: ToneSuccess} }
func Error(text string) Status   { return Status{Text: text, Tone: ToneError} }

func (t Tone) mark() (string, lipgloss.Style) {
	switch t {
	case ToneSuccess:
		return "✓ ", styles.SuccessText
	case ToneError:
		return "✗ ", styles.ErrorText
	default:
		return "", styles.MutedText
	}
}

// StatusBar renders s cut to a single line of width. An empty status
// renders nothing so callers can skip the row.
func StatusBar(width int, s Status) string {
	if s.Text == "" {
		return ""
	}

	mark, style := s.Tone.mark()
	text := mark + s.Text
	if room := width - 2*footerPadding; room > 0 && ansi.StringWidth(text) > room {
		text = ansi.Truncate(text, room, "…")
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, footerPadding).
		Render(style.Render(text))
}
