package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/ecoprint/internal/emissions"

	json "github.com/goccy/go-json"
)

// Float is a float64 that encodes NaN and infinities as JSON null.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

// Document is the JSON shape of an estimate.
type Document struct {
	Input           emissions.Input           `json:"input"`
	Metrics         MetricsDocument           `json:"metrics"`
	Display         Display                   `json:"display"`
	EcoScore        int                       `json:"ecoScore"`
	ScoreTier       emissions.ScoreTier       `json:"scoreTier"`
	ScoreColor      string                    `json:"scoreColor"`
	Recommendations emissions.Recommendations `json:"recommendations"`
	Chart           ChartDocument             `json:"chart"`
}

// MetricsDocument mirrors emissions.Metrics with null-safe floats.
type MetricsDocument struct {
	PageSizeGB            Float `json:"pageSizeGB"`
	EffectiveVisits       Float `json:"effectiveVisits"`
	SessionPages          Float `json:"sessionPages"`
	MonthlyDataTransferGB Float `json:"monthlyDataTransferGB"`
	MonthlyEnergyKWh      Float `json:"monthlyEnergyKWh"`
	AdjustedEnergyKWh     Float `json:"adjustedEnergyKWh"`
	MonthlyCO2Grams       Float `json:"monthlyCO2Grams"`
	YearlyCO2Kg           Float `json:"yearlyCO2Kg"`
	PerVisitCO2Grams      Float `json:"perVisitCO2Grams"`
	CarKm                 Float `json:"carKm"`
	TreesNeeded           Float `json:"treesNeeded"`
	SizeScore             Float `json:"sizeScore"`
	VisitsScore           Float `json:"visitsScore"`
	InfrastructureScore   Float `json:"infrastructureScore"`
}

// ChartDocument is the comparison chart as parallel label/value arrays.
type ChartDocument struct {
	Labels []string `json:"labels"`
	Values []Float  `json:"values"`
}

// NewDocument builds the JSON document for est.
func NewDocument(est emissions.Estimate) Document {
	m := est.Metrics
	values := est.Chart.Values()
	chartValues := make([]Float, len(values))
	for i, v := range values {
		chartValues[i] = Float(v)
	}

	return Document{
		Input: est.Input,
		Metrics: MetricsDocument{
			PageSizeGB:            Float(m.PageSizeGB),
			EffectiveVisits:       Float(m.EffectiveVisits),
			SessionPages:          Float(m.SessionPages),
			MonthlyDataTransferGB: Float(m.MonthlyDataTransferGB),
			MonthlyEnergyKWh:      Float(m.MonthlyEnergyKWh),
			AdjustedEnergyKWh:     Float(m.AdjustedEnergyKWh),
			MonthlyCO2Grams:       Float(m.MonthlyCO2Grams),
			YearlyCO2Kg:           Float(m.YearlyCO2Kg),
			PerVisitCO2Grams:      Float(m.PerVisitCO2Grams),
			CarKm:                 Float(m.CarKm),
			TreesNeeded:           Float(m.TreesNeeded),
			SizeScore:             Float(m.SizeScore),
			VisitsScore:           Float(m.VisitsScore),
			InfrastructureScore:   Float(m.InfrastructureScore),
		},
		Display:         Format(m),
		EcoScore:        m.EcoScore,
		ScoreTier:       m.Tier(),
		ScoreColor:      m.Tier().Color(),
		Recommendations: est.Recommendations,
		Chart: ChartDocument{
			Labels: est.Chart.Labels(),
			Values: chartValues,
		},
	}
}

// WriteJSON encodes est as indented JSON.
func WriteJSON(w io.Writer, est emissions.Estimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(est)); err != nil {
		return fmt.Errorf("report: failed to encode estimate: %w", err)
	}
	return nil
}

// scoreBarWidth is the number of cells in the text score bar.
const scoreBarWidth = 20

// WriteText prints a human-readable report.
func WriteText(w io.Writer, est emissions.Estimate) error {
	d := Format(est.Metrics)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Emissions")
	fmt.Fprintf(tw, "  Per visit:\t%s\n", d.PerVisit)
	fmt.Fprintf(tw, "  Monthly:\t%s\n", d.Monthly)
	fmt.Fprintf(tw, "  Yearly:\t%s\n", d.Yearly)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Equivalent to")
	fmt.Fprintf(tw, "  Driving:\t%s\n", d.CarKm)
	fmt.Fprintf(tw, "  Absorbed by:\t%s\n", d.Trees)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Eco score:\t%s %s (%s)\n", ScoreBar(est.Metrics.EcoScore, scoreBarWidth), d.Score, est.Metrics.Tier())
	if err := tw.Flush(); err != nil {
		return err
	}

	writeList(w, "Critical", est.Recommendations.Critical)
	writeList(w, "Important", est.Recommendations.Important)
	writeList(w, "Optional", est.Recommendations.Optional)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Impact of optimisations (g CO2/month)")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	labels := est.Chart.Labels()
	for i, v := range est.Chart.Values() {
		fmt.Fprintf(tw, "  %s:\t%s\n", labels[i], Fixed(v, 2))
	}
	return tw.Flush()
}

func writeList(w io.Writer, title string, items []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	if len(items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

// ScoreBar draws score as a bar of width cells. Scores outside [0, 100]
// are clamped for drawing only.
func ScoreBar(score, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(float64(score) / 100 * float64(width)))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
