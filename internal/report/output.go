package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/emissions"
)

// Output formats accepted by Write.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrUnknownOutput is returned for an output format other than text or json.
var ErrUnknownOutput = errors.New("unknown output format")

// ParseOutput normalises an output format name. Empty means text.
func ParseOutput(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("%w %q (use %s or %s)", ErrUnknownOutput, s, OutputText, OutputJSON)
	}
}

// Write renders est in the given output format.
func Write(w io.Writer, est emissions.Estimate, output string) error {
	format, err := ParseOutput(output)
	if err != nil {
		return err
	}
	if format == OutputJSON {
		return WriteJSON(w, est)
	}
	return WriteText(w, est)
}
