package config

import (
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ecoprint configuration",
		Long: "View and modify persistent ecoprint defaults.\n\n" +
			"Configuration is stored at ~/.config/ecoprint/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}

// normalize trims and lowercases user input. Key names and every accepted
// value (numbers, presets, booleans, levels, formats) are case-insensitive.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
