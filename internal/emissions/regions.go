package emissions

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRegion is returned by LookupRegion for names not in GridPresets.
var ErrUnknownRegion = errors.New("unknown region")

// GridPreset is a named grid carbon intensity.
type GridPreset struct {
	Name      string
	Label     string
	Intensity float64 // kg CO2 per kWh
}

// DefaultRegion is the preset used when nothing else is configured.
const DefaultRegion = "global"

// GridPresets lists carbon intensities for common hosting regions.
//
// Source: Cloud Carbon Footprint grid emission factors (2024 vintage),
// converted from metric tons to kilograms per kWh.
var GridPresets = []GridPreset{
	{Name: "global", Label: "Global average", Intensity: 0.39278},
	{Name: "us-east-1", Label: "US East (Virginia)", Intensity: 0.379},
	{Name: "us-east-2", Label: "US East (Ohio)", Intensity: 0.411},
	{Name: "us-west-1", Label: "US West (N. California)", Intensity: 0.322},
	{Name: "us-west-2", Label: "US West (Oregon)", Intensity: 0.322},
	{Name: "ca-central-1", Label: "Canada (Central)", Intensity: 0.12},
	{Name: "eu-west-1", Label: "Europe (Ireland)", Intensity: 0.2786},
	{Name: "eu-north-1", Label: "Europe (Stockholm)", Intensity: 0.0088},
	{Name: "ap-southeast-1", Label: "Asia Pacific (Singapore)", Intensity: 0.408},
	{Name: "ap-southeast-2", Label: "Asia Pacific (Sydney)", Intensity: 0.79},
	{Name: "ap-northeast-1", Label: "Asia Pacific (Tokyo)", Intensity: 0.506},
	{Name: "ap-south-1", Label: "Asia Pacific (Mumbai)", Intensity: 0.708},
	{Name: "sa-east-1", Label: "South America (Sao Paulo)", Intensity: 0.0617},
}

// LookupRegion finds a preset by name, case-insensitively.
func LookupRegion(name string) (GridPreset, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, p := range GridPresets {
		if p.Name == normalized {
			return p, nil
		}
	}
	return GridPreset{}, fmt.Errorf("%w %q", ErrUnknownRegion, name)
}

// RegionNames returns the names of all presets in display order.
func RegionNames() []string {
	names := make([]string, len(GridPresets))
	for i, p := range GridPresets {
		names[i] = p.Name
	}
	return names
}
