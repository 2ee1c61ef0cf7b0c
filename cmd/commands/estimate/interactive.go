package estimate

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/ecoprint/internal/config"
	"nathanbeddoewebdev/ecoprint/internal/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// IsTerminal reports whether the command writes to an interactive terminal.
// Redirected output (including test buffers) is never a terminal.
func IsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RunInteractive shows the input form prefilled from flags and config, then
// the full-screen results view. Cancelling the form is not an error.
func RunInteractive(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	prefill, err := resolveInput(cmd, cfg)
	if err != nil {
		return err
	}

	in, err := tui.RunInputForm(prefill)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Estimate cancelled.")
			return nil
		}
		return fmt.Errorf("input form failed: %w", err)
	}

	zerolog.Ctx(cmd.Context()).Debug().Interface("input", in).Msg("inputs parsed")

	if err := tui.RunResultsApp(in); err != nil {
		return fmt.Errorf("results view failed: %w", err)
	}
	return nil
}
