package emissions

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSeries(t *testing.T) {
	got := Series(1000, 0.4)

	want := ChartSeries{
		Baseline:    1000,
		WithCDN:     700,
		WithCaching: 600,
		WithBoth:    420,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
}

func TestSeries_IgnoresActualCDN(t *testing.T) {
	in := referenceInput()
	in.CDN = true
	est := Calculate(in)

	if est.Chart.WithCDN != est.Metrics.MonthlyCO2Grams*CDNFactor {
		t.Errorf("expected hypothetical CDN saving on top of actual CDN, got %v", est.Chart.WithCDN)
	}
}

func TestChartSeries_LabelsAndValuesAlign(t *testing.T) {
	s := ChartSeries{Baseline: 4, WithCDN: 3, WithCaching: 2, WithBoth: 1}

	if diff := cmp.Diff([]float64{4, 3, 2, 1}, s.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	want := []string{"No optimisation", "With CDN", "With caching", "With CDN and caching"}
	if diff := cmp.Diff(want, s.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCachingSweep(t *testing.T) {
	in := referenceInput()
	in.CachingLevel = 0.9

	got := CachingSweep(in, 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 points, got %d", len(got))
	}
	base := Compute(referenceInput()).MonthlyCO2Grams
	want := []float64{base, base * 0.75, base * 0.5, base * 0.25, 0}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-12, 1e-9)); diff != "" {
		t.Errorf("sweep mismatch (-want +got):\n%s", diff)
	}
}

func TestCachingSweep_MinimumPoints(t *testing.T) {
	if got := CachingSweep(referenceInput(), 0); len(got) != 2 {
		t.Errorf("expected 2 points, got %d", len(got))
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  ScoreTier
		color string
	}{
		{100, TierGreen, "#2ecc71"},
		{80, TierGreen, "#2ecc71"},
		{79, TierYellow, "#f1c40f"},
		{60, TierYellow, "#f1c40f"},
		{59, TierRed, "#e74c3c"},
		{0, TierRed, "#e74c3c"},
	}

	for _, tt := range tests {
		got := TierFor(tt.score)
		if got != tt.want {
			t.Errorf("TierFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
		if got.Color() != tt.color {
			t.Errorf("TierFor(%d).Color() = %q, want %q", tt.score, got.Color(), tt.color)
		}
	}
}

func TestLookupRegion(t *testing.T) {
	p, err := LookupRegion("  EU-North-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Intensity != 0.0088 {
		t.Errorf("expected 0.0088, got %v", p.Intensity)
	}

	_, err = LookupRegion("mars-1")
	if !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("expected ErrUnknownRegion, got %v", err)
	}
}

func TestRegionNames_StartsWithDefault(t *testing.T) {
	names := RegionNames()
	if len(names) != len(GridPresets) {
		t.Fatalf("expected %d names, got %d", len(GridPresets), len(names))
	}
	if names[0] != DefaultRegion {
		t.Errorf("expected %q first, got %q", DefaultRegion, names[0])
	}
}
