package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/form"
	"nathanbeddoewebdev/ecoprint/internal/report"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels the interactive flow.
var ErrAborted = errors.New("aborted by user")

// customLocation is the location option that reveals the intensity input.
const customLocation = "custom"

// cachingPresets are the caching levels offered by the select.
var cachingPresets = []struct {
	label, value string
}{
	{"None (0%)", "0"},
	{"Low (25%)", "0.25"},
	{"Medium (50%)", "0.5"},
	{"High (75%)", "0.75"},
	{"Full (100%)", "1"},
}

// formValues holds the raw text bound to the form fields.
type formValues struct {
	PageSize  string
	Visits    string
	Bounce    string
	Session   string
	Location  string
	Intensity string
	CDN       bool
	Caching   string
}

func newFormValues(prefill emissions.Input) formValues {
	fields := form.FromInput(prefill)
	v := formValues{
		PageSize:  fields[form.FieldPageSize],
		Visits:    fields[form.FieldMonthlyVisits],
		Bounce:    fields[form.FieldBounceRate],
		Session:   fields[form.FieldSessionSeconds],
		Location:  customLocation,
		Intensity: fields[form.FieldServerLocation],
		CDN:       prefill.CDN,
		Caching:   fields[form.FieldCaching],
	}
	if name, ok := presetFor(prefill.ServerLocation); ok {
		v.Location = name
	}
	return v
}

// presetFor finds the grid preset with exactly the given intensity.
func presetFor(intensity float64) (string, bool) {
	for _, p := range emissions.GridPresets {
		if p.Intensity == intensity {
			return p.Name, true
		}
	}
	return "", false
}

// fields converts the bound text back into raw form fields.
func (v formValues) fields() form.Fields {
	location := v.Intensity
	if v.Location != customLocation {
		if p, err := emissions.LookupRegion(v.Location); err == nil {
			location = form.FormatNumber(p.Intensity)
		}
	}
	cdn := "0"
	if v.CDN {
		cdn = "1"
	}
	return form.Fields{
		form.FieldPageSize:       v.PageSize,
		form.FieldMonthlyVisits:  v.Visits,
		form.FieldBounceRate:     v.Bounce,
		form.FieldSessionSeconds: v.Session,
		form.FieldServerLocation: location,
		form.FieldCDN:            cdn,
		form.FieldCaching:        v.Caching,
	}
}

func (v formValues) input() emissions.Input {
	return form.Parse(v.fields())
}

// numberInput is a free-text numeric field. Nothing is rejected: text that
// is not a number counts as 0 once parsed, and the preview shows it.
func numberInput(title, description string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(description).
		Value(value)
}

// RunInputForm asks for the estimator inputs, starting from prefill.
// Empty or non-numeric fields count as 0.
func RunInputForm(prefill emissions.Input) (emissions.Input, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	v := newFormValues(prefill)

	locationOpts := buildLocationOptions()
	cachingOpts := buildCachingOptions(v.Caching)

	preview := huh.NewNote().
		Title("Preview").
		DescriptionFunc(func() string {
			return buildPreview(v.input())
		}, &v)

	if err := runForm(accessible,
		huh.NewGroup(
			numberInput("Average page size", "Kilobytes per page view", &v.PageSize),
			numberInput("Monthly visits", "Visits per month", &v.Visits),
			numberInput("Bounce rate", "Percent of visits that leave after one page (0-100)", &v.Bounce),
			numberInput("Average session duration", "Seconds per visit", &v.Session),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Server location").
				Description("Grid carbon intensity of the hosting region").
				Options(locationOpts...).
				Value(&v.Location).
				Height(selectHeight(len(locationOpts), 10)),
		),
		huh.NewGroup(
			numberInput("Grid carbon intensity", "kg CO2 per kWh", &v.Intensity),
		).WithHideFunc(func() bool { return v.Location != customLocation }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Served through a CDN?").
				Value(&v.CDN),
			huh.NewSelect[string]().
				Title("Caching level").
				Options(cachingOpts...).
				Value(&v.Caching),
			preview,
		),
	); err != nil {
		return emissions.Input{}, err
	}

	return v.input(), nil
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// --- Option builders ---

func buildLocationOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(emissions.GridPresets)+1)
	for _, p := range emissions.GridPresets {
		label := fmt.Sprintf("%s (%s kg/kWh)", p.Label, form.FormatNumber(p.Intensity))
		options = append(options, huh.NewOption(label, p.Name))
	}
	return append(options, huh.NewOption("Custom intensity", customLocation))
}

func buildCachingOptions(selected string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(cachingPresets)+1)
	labels := make(map[string]string, len(cachingPresets))
	for _, p := range cachingPresets {
		options = append(options, huh.NewOption(p.label, p.value))
		labels[p.value] = p.label
	}
	return ensureOption(options, labels, selected, "Custom: "+selected)
}

func ensureOption(options []huh.Option[string], labels map[string]string, value string, label string) []huh.Option[string] {
	if value == "" {
		return options
	}
	if _, ok := labels[value]; ok {
		return options
	}
	options = append(options, huh.NewOption(label, value))
	labels[value] = label
	return options
}

func selectHeight(optionCount, max int) int {
	if optionCount < max {
		return optionCount
	}
	return max
}

// --- Preview ---

func buildPreview(in emissions.Input) string {
	m := emissions.Compute(in)
	d := report.Format(m)

	var b strings.Builder
	fmt.Fprintf(&b, "Monthly: %s\n", d.Monthly)
	fmt.Fprintf(&b, "Yearly: %s\n", d.Yearly)
	fmt.Fprintf(&b, "Eco score: %s (%s)", d.Score, m.Tier())
	return b.String()
}
