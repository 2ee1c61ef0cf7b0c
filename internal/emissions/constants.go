// Package emissions estimates the carbon footprint of website traffic.
//
// Everything in this package is pure. Calculate takes an Input and returns a
// freshly computed Estimate: no I/O, no shared state, no errors. Degenerate
// inputs (zero visits, a 100% bounce rate) flow through the arithmetic and
// may produce NaN or infinite values, which callers are expected to display
// as-is.
package emissions

// Conversion factors used by the estimate.
const (
	// KBPerGB converts a page size in kilobytes to gigabytes.
	KBPerGB = 1024 * 1024

	// KWhPerGB is the energy spent per gigabyte transferred.
	KWhPerGB = 0.81

	// GramsCO2PerKm is the emission of an average car per kilometre driven.
	GramsCO2PerKm = 120.0

	// KgCO2PerTreePerYear is what one tree absorbs in a year.
	KgCO2PerTreePerYear = 25.0

	// SecondsPerPage is the session time assumed per page view.
	SecondsPerPage = 2.0

	// CDNFactor is the share of transfer impact left when a CDN is used.
	CDNFactor = 0.7
)

// Baselines for the eco score and the recommendation thresholds.
const (
	// BaselinePageSizeKB is a 2 MB reference page.
	BaselinePageSizeKB = 2048.0

	// BaselineVisits is the reference monthly traffic.
	BaselineVisits = 10000.0

	// LargePageSizeKB triggers the compression and lazy-loading advice.
	LargePageSizeKB = 1024.0

	// MinCachingLevel is the caching level below which caching advice is given.
	MinCachingLevel = 0.6
)

// Eco score weights and infrastructure bonuses.
const (
	sizeWeight           = 0.4
	visitsWeight         = 0.3
	infrastructureWeight = 0.3

	cdnBonus     = 20.0
	cachingBonus = 30.0
)

// MaxEcoScore is the highest score the weighted sum can produce for inputs
// in their documented ranges: 100*0.4 + 100*0.3 + (20+30)*0.3.
const MaxEcoScore = 85
