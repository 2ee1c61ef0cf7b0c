package config

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/form"
	"nathanbeddoewebdev/ecoprint/internal/report"

	"github.com/rs/zerolog"
)

// ErrInvalidValue is returned by KeySpec.Check for a value the key rejects.
var ErrInvalidValue = errors.New("invalid value")

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "caching-level").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate, when non-nil, rejects values that cannot be used. An empty
	// value always clears the key and is never validated.
	Validate func(value string) error
}

// Check runs the key's validator against value.
func (k *KeySpec) Check(value string) error {
	if k.Validate == nil || strings.TrimSpace(value) == "" {
		return nil
	}
	if err := k.Validate(value); err != nil {
		return fmt.Errorf("%s: %w: %w", k.Name, ErrInvalidValue, err)
	}
	return nil
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "server-location",
		Description: "Grid carbon intensity (kg CO2/kWh) used when --server-location is not specified",
		Get:         func(cfg *Config) string { return cfg.ServerLocation },
		Set:         func(cfg *Config, v string) { cfg.ServerLocation = v },
		Validate:    form.ValidateNumber,
	},
	{
		Name:        "region",
		Description: "Grid preset used when neither --server-location nor server-location is set",
		Get:         func(cfg *Config) string { return cfg.Region },
		Set:         func(cfg *Config, v string) { cfg.Region = v },
		Validate: func(v string) error {
			_, err := emissions.LookupRegion(v)
			return err
		},
	},
	{
		Name:        "cdn",
		Description: "Whether the site is served through a CDN (true/false)",
		Get:         func(cfg *Config) string { return cfg.CDN },
		Set:         func(cfg *Config, v string) { cfg.CDN = v },
		Validate:    validateBool,
	},
	{
		Name:        "caching-level",
		Description: "Fraction of requests served from cache (0-1)",
		Get:         func(cfg *Config) string { return cfg.CachingLevel },
		Set:         func(cfg *Config, v string) { cfg.CachingLevel = v },
		Validate:    form.ValidateNumber,
	},
	{
		Name:        "log-level",
		Description: "Log level used when --log-level is not specified",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
		Validate: func(v string) error {
			_, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v)))
			return err
		},
	},
	{
		Name:        "output",
		Description: "Default output format for estimate (text or json)",
		Get:         func(cfg *Config) string { return cfg.Output },
		Set:         func(cfg *Config, v string) { cfg.Output = v },
		Validate: func(v string) error {
			_, err := report.ParseOutput(v)
			return err
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

func validateBool(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "0", "true", "false", "yes", "no", "on", "off":
		return nil
	}
	return fmt.Errorf("%q is not a boolean (use true or false)", v)
}
