package emissions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecommend_LargePageModerateTraffic(t *testing.T) {
	in := Input{PageSizeKB: 3000, MonthlyVisits: 5000, CDN: false, CachingLevel: 0.3}

	got := Recommend(in)

	want := Recommendations{
		Critical:  []string{MsgReducePageSize, MsgCompressImages, MsgMinifyAssets},
		Important: []string{MsgImproveCaching, MsgStaticExpiry, MsgCompression, MsgLazyLoadImages},
		Optional:  []string{MsgGreenHosting, MsgOptimizeQueries, MsgDataCleanup},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestRecommend_PageSizeBoundary(t *testing.T) {
	at := Recommend(Input{PageSizeKB: 2048, CachingLevel: 1})
	for _, msg := range at.Critical {
		if msg == MsgReducePageSize {
			t.Errorf("2048 KB must not trigger the page size rule, got %v", at.Critical)
		}
	}

	over := Recommend(Input{PageSizeKB: 2049, CachingLevel: 1})
	want := []string{MsgReducePageSize, MsgCompressImages, MsgMinifyAssets}
	if diff := cmp.Diff(want, over.Critical); diff != "" {
		t.Errorf("critical mismatch at 2049 KB (-want +got):\n%s", diff)
	}
}

func TestRecommend_CDNRule(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		wantIt bool
	}{
		{"busy site without CDN", Input{MonthlyVisits: 10001, CachingLevel: 1}, true},
		{"exactly baseline traffic", Input{MonthlyVisits: 10000, CachingLevel: 1}, false},
		{"busy site with CDN", Input{MonthlyVisits: 50000, CDN: true, CachingLevel: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.in)
			has := len(got.Critical) == 1 && got.Critical[0] == MsgUseCDN
			if has != tt.wantIt {
				t.Errorf("CDN advice = %v, want %v (critical=%v)", has, tt.wantIt, got.Critical)
			}
		})
	}
}

func TestRecommend_CriticalOrder(t *testing.T) {
	got := Recommend(Input{PageSizeKB: 4096, MonthlyVisits: 20000, CachingLevel: 0.9})

	want := []string{MsgReducePageSize, MsgCompressImages, MsgMinifyAssets, MsgUseCDN}
	if diff := cmp.Diff(want, got.Critical); diff != "" {
		t.Errorf("critical mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{MsgCompression, MsgLazyLoadImages}, got.Important); diff != "" {
		t.Errorf("important mismatch (-want +got):\n%s", diff)
	}
}

func TestRecommend_CachingBoundary(t *testing.T) {
	if got := Recommend(Input{CachingLevel: 0.6}); len(got.Important) != 0 {
		t.Errorf("caching 0.6 must not trigger advice, got %v", got.Important)
	}
	if got := Recommend(Input{CachingLevel: 0.59}); len(got.Important) != 2 {
		t.Errorf("caching 0.59 must trigger two messages, got %v", got.Important)
	}
}

func TestRecommend_OptionalAlwaysPresent(t *testing.T) {
	inputs := []Input{
		{},
		{PageSizeKB: 100, MonthlyVisits: 10, CDN: true, CachingLevel: 1},
		{PageSizeKB: 9000, MonthlyVisits: 1e7},
	}
	want := []string{MsgGreenHosting, MsgOptimizeQueries, MsgDataCleanup}

	for _, in := range inputs {
		if diff := cmp.Diff(want, Recommend(in).Optional); diff != "" {
			t.Errorf("optional mismatch for %+v (-want +got):\n%s", in, diff)
		}
	}
}

func TestRecommend_EmptyTiersAreNotNil(t *testing.T) {
	got := Recommend(Input{CDN: true, CachingLevel: 1})
	if got.Critical == nil || got.Important == nil {
		t.Errorf("expected empty, non-nil tiers, got %#v", got)
	}
	if got.Len() != 3 {
		t.Errorf("expected only the optional tier, got %d messages", got.Len())
	}
}
