// Package report turns an emissions.Estimate into display strings, a plain
// text report and a JSON document.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"nathanbeddoewebdev/ecoprint/internal/emissions"
)

// Display holds the formatted values shown to the user.
type Display struct {
	PerVisit string `json:"perVisit"`
	Monthly  string `json:"monthly"`
	Yearly   string `json:"yearly"`
	CarKm    string `json:"carKm"`
	Trees    string `json:"trees"`
	Score    string `json:"score"`
}

// Format renders the six result displays and the score label. Grams use two
// decimals, kilometres one, trees none.
func Format(m emissions.Metrics) Display {
	return Display{
		PerVisit: Fixed(m.PerVisitCO2Grams, 2) + " g CO2",
		Monthly:  Fixed(m.MonthlyCO2Grams, 2) + " g CO2",
		Yearly:   Fixed(m.YearlyCO2Kg, 2) + " kg CO2",
		CarKm:    Fixed(m.CarKm, 1) + " km",
		Trees:    Fixed(m.TreesNeeded, 0) + " trees",
		Score:    fmt.Sprintf("%d%%", m.EcoScore),
	}
}

// Fixed formats v with the given number of decimals. Non-finite values are
// spelled NaN, Infinity and -Infinity, and exact ties round away from zero,
// so the output matches what a browser shows for the same number.
func Fixed(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if decimals < 0 {
		decimals = 0
	}

	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if !isTie(v, decimals) {
		return s
	}
	return roundUpMagnitude(truncate(v, decimals))
}

// isTie reports whether the exact binary value of v lies precisely half way
// between two decimals-digit numbers.
func isTie(v float64, decimals int) bool {
	// 1100 fractional digits hold any float64 exactly.
	exact := strconv.FormatFloat(math.Abs(v), 'f', 1100, 64)
	dot := strings.IndexByte(exact, '.')
	tail := exact[dot+1+decimals:]
	return tail[0] == '5' && strings.TrimRight(tail[1:], "0") == ""
}

// truncate returns v cut (not rounded) to decimals fraction digits.
func truncate(v float64, decimals int) string {
	exact := strconv.FormatFloat(v, 'f', 1100, 64)
	dot := strings.IndexByte(exact, '.')
	if decimals == 0 {
		return exact[:dot]
	}
	return exact[:dot+1+decimals]
}

// roundUpMagnitude adds one unit in the last place to a decimal string,
// away from zero.
func roundUpMagnitude(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	digits := []byte(s)
	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] == '.' {
			continue
		}
		if digits[i] < '9' {
			digits[i]++
			break
		}
		digits[i] = '0'
	}
	out := string(digits)
	if i < 0 {
		out = "1" + out
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Number renders a raw metric for tables: non-finite values use the same
// spelling as Fixed, finite values the shortest exact form.
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fixed(v, 0)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
