// Package form reads raw, loosely typed field values into an
// emissions.Input. It is the only place where user text becomes numbers.
//
// Parsing never fails: missing, empty, unparsable or non-finite values
// become 0, mirroring a web form that coerces bad input instead of
// rejecting it.
package form

import (
	"math"
	"strconv"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/emissions"
)

// Field names, matching the element ids of the web form.
const (
	FieldPageSize       = "pageSize"
	FieldMonthlyVisits  = "monthlyVisits"
	FieldBounceRate     = "bounceRate"
	FieldSessionSeconds = "avgSessionDuration"
	FieldServerLocation = "serverLocation"
	FieldCDN            = "cdnUsage"
	FieldCaching        = "caching"
)

// Names lists every field in form order.
var Names = []string{
	FieldPageSize,
	FieldMonthlyVisits,
	FieldBounceRate,
	FieldSessionSeconds,
	FieldServerLocation,
	FieldCDN,
	FieldCaching,
}

// Fields maps a field name to its raw text value.
type Fields map[string]string

// Parse converts fields into an Input.
func Parse(fields Fields) emissions.Input {
	return emissions.Input{
		PageSizeKB:        Number(fields[FieldPageSize]),
		MonthlyVisits:     Number(fields[FieldMonthlyVisits]),
		BounceRate:        Number(fields[FieldBounceRate]),
		AvgSessionSeconds: Number(fields[FieldSessionSeconds]),
		ServerLocation:    Number(fields[FieldServerLocation]),
		CDN:               Bool(fields[FieldCDN]),
		CachingLevel:      Number(fields[FieldCaching]),
	}
}

// FromInput renders in back into fields. Parse(FromInput(in)) == in for
// finite inputs.
func FromInput(in emissions.Input) Fields {
	cdn := "0"
	if in.CDN {
		cdn = "1"
	}
	return Fields{
		FieldPageSize:       FormatNumber(in.PageSizeKB),
		FieldMonthlyVisits:  FormatNumber(in.MonthlyVisits),
		FieldBounceRate:     FormatNumber(in.BounceRate),
		FieldSessionSeconds: FormatNumber(in.AvgSessionSeconds),
		FieldServerLocation: FormatNumber(in.ServerLocation),
		FieldCDN:            cdn,
		FieldCaching:        FormatNumber(in.CachingLevel),
	}
}

// Number parses s as a float, returning 0 for anything that is not a
// finite number.
func Number(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Bool reports whether s selects the "yes" option. The form encodes it as
// "1"; common spellings of true are accepted too.
func Bool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// FormatNumber renders v in the shortest form that parses back to v.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValidateNumber accepts empty text or anything Number would parse. Saved
// config defaults use it so a typo is caught once instead of silently
// becoming 0 on every run.
func ValidateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return &NumberError{Value: s}
	}
	return nil
}

// NumberError reports text that is not a number.
type NumberError struct {
	Value string
}

func (e *NumberError) Error() string {
	return strconv.Quote(e.Value) + " is not a number"
}
