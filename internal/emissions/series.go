package emissions

// Category labels of the optimisation chart, in display order.
const (
	LabelBaseline    = "No optimisation"
	LabelWithCDN     = "With CDN"
	LabelWithCaching = "With caching"
	LabelWithBoth    = "With CDN and caching"
)

// ChartSeries compares monthly emissions under hypothetical optimisations.
// Values are grams of CO2 per month.
type ChartSeries struct {
	Baseline    float64
	WithCDN     float64
	WithCaching float64
	WithBoth    float64
}

// Series builds the comparison chart from a monthly total. The CDN saving is
// always applied hypothetically, whether or not the site already uses one.
func Series(monthlyCO2Grams, cachingLevel float64) ChartSeries {
	cacheFactor := 1 - cachingLevel
	return ChartSeries{
		Baseline:    monthlyCO2Grams,
		WithCDN:     monthlyCO2Grams * CDNFactor,
		WithCaching: monthlyCO2Grams * cacheFactor,
		WithBoth:    monthlyCO2Grams * CDNFactor * cacheFactor,
	}
}

// Labels returns the four category labels.
func (ChartSeries) Labels() []string {
	return []string{LabelBaseline, LabelWithCDN, LabelWithCaching, LabelWithBoth}
}

// Values returns the four values in label order.
func (s ChartSeries) Values() []float64 {
	return []float64{s.Baseline, s.WithCDN, s.WithCaching, s.WithBoth}
}

// CachingSweep recomputes the monthly emissions of in for n caching levels
// spread evenly over [0, 1]. Everything except the caching level is kept.
// n below 2 is treated as 2.
func CachingSweep(in Input, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	for i := range out {
		at := in
		at.CachingLevel = float64(i) / float64(n-1)
		out[i] = Compute(at).MonthlyCO2Grams
	}
	return out
}
