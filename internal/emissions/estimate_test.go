package emissions

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func referenceInput() Input {
	return Input{
		PageSizeKB:        2048,
		MonthlyVisits:     10000,
		BounceRate:        0,
		AvgSessionSeconds: 2,
		ServerLocation:    0.5,
		CDN:               false,
		CachingLevel:      0,
	}
}

func TestCompute_ReferenceScenario(t *testing.T) {
	got := Compute(referenceInput())

	want := Metrics{
		PageSizeGB:            0.001953125,
		EffectiveVisits:       10000,
		SessionPages:          1,
		MonthlyDataTransferGB: 19.53125,
		MonthlyEnergyKWh:      15.8203125,
		AdjustedEnergyKWh:     15.8203125,
		MonthlyCO2Grams:       7910.15625,
		YearlyCO2Kg:           94.921875,
		PerVisitCO2Grams:      0.791015625,
		CarKm:                 791.015625,
		TreesNeeded:           4,
		SizeScore:             0,
		VisitsScore:           0,
		InfrastructureScore:   0,
		EcoScore:              0,
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_ZeroVisitsKeepsNaN(t *testing.T) {
	in := referenceInput()
	in.MonthlyVisits = 0

	got := Compute(in)

	if got.EffectiveVisits != 0 {
		t.Fatalf("expected 0 effective visits, got %v", got.EffectiveVisits)
	}
	if got.MonthlyCO2Grams != 0 {
		t.Errorf("expected 0 monthly grams, got %v", got.MonthlyCO2Grams)
	}
	if !math.IsNaN(got.PerVisitCO2Grams) {
		t.Errorf("expected NaN per-visit grams, got %v", got.PerVisitCO2Grams)
	}
}

func TestCompute_OverflowKeepsNonFiniteTrees(t *testing.T) {
	in := Input{PageSizeKB: 1e300, MonthlyVisits: 1e300, AvgSessionSeconds: 2, ServerLocation: 0.5}

	got := Compute(in)
	if !math.IsInf(got.YearlyCO2Kg, 1) || !math.IsInf(got.TreesNeeded, 1) {
		t.Errorf("expected +Inf yearly kg and trees, got %v / %v", got.YearlyCO2Kg, got.TreesNeeded)
	}

	in.CachingLevel = 1
	got = Compute(in)
	if !math.IsNaN(got.TreesNeeded) {
		t.Errorf("expected NaN trees when Inf x 0, got %v", got.TreesNeeded)
	}
}

func TestCompute_FullBounceKeepsNaN(t *testing.T) {
	in := referenceInput()
	in.BounceRate = 100

	got := Compute(in)

	if !math.IsNaN(got.PerVisitCO2Grams) {
		t.Errorf("expected NaN per-visit grams, got %v", got.PerVisitCO2Grams)
	}
}

func TestCompute_SessionPages(t *testing.T) {
	tests := []struct {
		seconds float64
		want    float64
	}{
		{0, 1},
		{1, 1}, // round(0.5) = 1
		{2, 1},
		{3, 2}, // round(1.5) = 2
		{4.9, 2},
		{5, 3},
		{120, 60},
	}

	for _, tt := range tests {
		in := referenceInput()
		in.AvgSessionSeconds = tt.seconds
		if got := Compute(in).SessionPages; got != tt.want {
			t.Errorf("SessionPages(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestCompute_BounceReducesEffectiveVisits(t *testing.T) {
	in := referenceInput()
	in.BounceRate = 40

	got := Compute(in)
	if got.EffectiveVisits != 6000 {
		t.Errorf("expected 6000 effective visits, got %v", got.EffectiveVisits)
	}
}

func TestCompute_CachingMonotonic(t *testing.T) {
	in := referenceInput()

	prev := math.Inf(1)
	for _, level := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		in.CachingLevel = level
		got := Compute(in).MonthlyCO2Grams
		if got > prev {
			t.Errorf("caching %v increased emissions: %v > %v", level, got, prev)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("expected zero emissions with full caching, got %v", prev)
	}
}

func TestCompute_CDNReducesEmissions(t *testing.T) {
	in := referenceInput()
	without := Compute(in).MonthlyCO2Grams

	in.CDN = true
	with := Compute(in).MonthlyCO2Grams

	if with >= without {
		t.Fatalf("expected CDN to reduce emissions: %v >= %v", with, without)
	}
	if math.Abs(with-without*CDNFactor) > 1e-9 {
		t.Errorf("expected %v, got %v", without*CDNFactor, with)
	}
}

func TestTreesNeeded(t *testing.T) {
	tests := []struct {
		yearlyKg float64
		want     float64
	}{
		{0, 0},
		{0.001, 1},
		{25, 1},
		{25.01, 2},
		{94.921875, 4},
		{250, 10},
	}

	for _, tt := range tests {
		if got := treesNeeded(tt.yearlyKg); got != tt.want {
			t.Errorf("treesNeeded(%v) = %v, want %v", tt.yearlyKg, got, tt.want)
		}
	}
}

func TestCompute_EcoScore(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want int
	}{
		{
			name: "best possible inputs",
			in:   Input{PageSizeKB: 0, MonthlyVisits: 0, CDN: true, CachingLevel: 1},
			want: MaxEcoScore,
		},
		{
			name: "no infrastructure, tiny site",
			in:   Input{PageSizeKB: 0, MonthlyVisits: 0},
			want: 70,
		},
		{
			name: "half baseline page and traffic",
			in:   Input{PageSizeKB: 1024, MonthlyVisits: 5000, CachingLevel: 0.5},
			// 50*0.4 + 50*0.3 + 15*0.3 = 39.5, rounds up
			want: 40,
		},
		{
			name: "over baseline floors at zero",
			in:   Input{PageSizeKB: 10000, MonthlyVisits: 1e6},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.in).EcoScore; got != tt.want {
				t.Errorf("EcoScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompute_EcoScoreNeverExceedsMax(t *testing.T) {
	sizes := []float64{0, 1, 512, 1024, 2048, 4096}
	visits := []float64{0, 1, 5000, 10000, 50000}
	caching := []float64{0, 0.2, 0.5, 0.8, 1}

	for _, size := range sizes {
		for _, v := range visits {
			for _, c := range caching {
				for _, cdn := range []bool{false, true} {
					in := Input{PageSizeKB: size, MonthlyVisits: v, CachingLevel: c, CDN: cdn}
					score := Compute(in).EcoScore
					if score < 0 || score > MaxEcoScore {
						t.Errorf("score %d out of range for %+v", score, in)
					}
				}
			}
		}
	}
}

func TestRound_HalfTowardsPositiveInfinity(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 1},
		{1.5, 2},
		{2.4999, 2},
		{-0.5, 0},
		{-2.5, -2},
	}
	for _, tt := range tests {
		if got := round(tt.in); got != tt.want {
			t.Errorf("round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCalculate_AssemblesParts(t *testing.T) {
	in := referenceInput()
	in.CachingLevel = 0.5

	est := Calculate(in)

	if est.Input != in {
		t.Errorf("expected input to be echoed, got %+v", est.Input)
	}
	if est.Chart.Baseline != est.Metrics.MonthlyCO2Grams {
		t.Errorf("chart baseline %v != monthly %v", est.Chart.Baseline, est.Metrics.MonthlyCO2Grams)
	}
	if est.Recommendations.Len() == 0 {
		t.Error("expected recommendations")
	}
}
