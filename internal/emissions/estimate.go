package emissions

import "math"

// Input is the parameter set describing a website's traffic.
type Input struct {
	// PageSizeKB is the average page weight in kilobytes.
	PageSizeKB float64 `json:"pageSize"`

	// MonthlyVisits is the number of visits per month.
	MonthlyVisits float64 `json:"monthlyVisits"`

	// BounceRate is the percentage (0-100) of visits that leave immediately.
	BounceRate float64 `json:"bounceRate"`

	// AvgSessionSeconds is the average session duration.
	AvgSessionSeconds float64 `json:"avgSessionDuration"`

	// ServerLocation is the grid carbon intensity in kg CO2 per kWh.
	ServerLocation float64 `json:"serverLocation"`

	// CDN reports whether static content is served through a CDN.
	CDN bool `json:"cdnUsage"`

	// CachingLevel is the fraction (0-1) of requests served from cache.
	CachingLevel float64 `json:"cachingLevel"`
}

// Metrics holds every value derived from an Input.
type Metrics struct {
	PageSizeGB      float64
	EffectiveVisits float64
	SessionPages    float64

	MonthlyDataTransferGB float64
	MonthlyEnergyKWh      float64
	AdjustedEnergyKWh     float64

	MonthlyCO2Grams  float64
	YearlyCO2Kg      float64
	PerVisitCO2Grams float64

	CarKm float64

	// TreesNeeded is a whole number for finite emissions. It stays a float
	// so that infinite or NaN emissions carry through to the display.
	TreesNeeded float64

	SizeScore           float64
	VisitsScore         float64
	InfrastructureScore float64
	EcoScore            int
}

// Tier returns the display tier of the eco score.
func (m Metrics) Tier() ScoreTier {
	return TierFor(m.EcoScore)
}

// Estimate is the full result of one calculation.
type Estimate struct {
	Input           Input
	Metrics         Metrics
	Recommendations Recommendations
	Chart           ChartSeries
}

// Calculate derives metrics, recommendations and chart series from in.
//
// The per-visit value divides by the effective visit count without a guard:
// zero visits or a 100% bounce rate yield NaN.
func Calculate(in Input) Estimate {
	m := Compute(in)
	return Estimate{
		Input:           in,
		Metrics:         m,
		Recommendations: Recommend(in),
		Chart:           Series(m.MonthlyCO2Grams, in.CachingLevel),
	}
}

// Compute derives the numeric metrics for in.
func Compute(in Input) Metrics {
	var m Metrics

	m.PageSizeGB = in.PageSizeKB / KBPerGB
	m.EffectiveVisits = in.MonthlyVisits * (1 - in.BounceRate/100)
	m.SessionPages = math.Max(1, round(in.AvgSessionSeconds/SecondsPerPage))

	cdnFactor := 1.0
	if in.CDN {
		cdnFactor = CDNFactor
	}
	cacheFactor := 1 - in.CachingLevel

	m.MonthlyDataTransferGB = m.PageSizeGB * m.EffectiveVisits * m.SessionPages
	m.MonthlyEnergyKWh = m.MonthlyDataTransferGB * KWhPerGB
	m.AdjustedEnergyKWh = m.MonthlyEnergyKWh * cdnFactor * cacheFactor
	m.MonthlyCO2Grams = m.AdjustedEnergyKWh * in.ServerLocation * 1000
	m.YearlyCO2Kg = m.MonthlyCO2Grams * 12 / 1000
	m.PerVisitCO2Grams = m.MonthlyCO2Grams / m.EffectiveVisits

	m.CarKm = m.YearlyCO2Kg * 1000 / GramsCO2PerKm
	m.TreesNeeded = treesNeeded(m.YearlyCO2Kg)

	m.SizeScore = math.Max(0, 100-in.PageSizeKB/BaselinePageSizeKB*100)
	m.VisitsScore = math.Max(0, 100-in.MonthlyVisits/BaselineVisits*100)
	m.InfrastructureScore = in.CachingLevel * cachingBonus
	if in.CDN {
		m.InfrastructureScore += cdnBonus
	}
	m.EcoScore = int(round(m.SizeScore*sizeWeight +
		m.VisitsScore*visitsWeight +
		m.InfrastructureScore*infrastructureWeight))

	return m
}

// treesNeeded is the number of trees absorbing yearlyKg in one year,
// rounded up.
func treesNeeded(yearlyKg float64) float64 {
	return math.Ceil(yearlyKg / KgCO2PerTreePerYear)
}

// round rounds half-way values towards positive infinity, unlike math.Round
// which rounds them away from zero. Scores computed in a browser use this
// rule, and negative half values must agree.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
