package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/form"
)

// ResolveLocation picks the grid intensity text for an estimate. An explicit
// location wins; otherwise a region preset supplies its intensity. Both empty
// yields "", which the form coerces to 0.
func ResolveLocation(location, region string) (string, error) {
	if strings.TrimSpace(location) != "" {
		return location, nil
	}
	if strings.TrimSpace(region) == "" {
		return "", nil
	}
	preset, err := emissions.LookupRegion(region)
	if err != nil {
		return "", err
	}
	return form.FormatNumber(preset.Intensity), nil
}

// Fields returns the estimate defaults stored in c as raw form fields.
// Only keys with a value are present. Stored values are validated first,
// so a hand-edited typo fails loudly instead of coercing to 0.
func (c *Config) Fields() (form.Fields, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	fields := form.Fields{}

	loc, err := ResolveLocation(c.ServerLocation, c.Region)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if loc != "" {
		fields[form.FieldServerLocation] = loc
	}
	if c.CDN != "" {
		fields[form.FieldCDN] = c.CDN
	}
	if c.CachingLevel != "" {
		fields[form.FieldCaching] = c.CachingLevel
	}
	return fields, nil
}
