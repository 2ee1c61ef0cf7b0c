package emissions

// Recommendation messages, grouped by the rule that emits them.
const (
	MsgReducePageSize  = "Drastically reduce the page size (over 2 MB)"
	MsgCompressImages  = "Optimize and compress every image"
	MsgMinifyAssets    = "Minify all CSS, JavaScript and HTML files"
	MsgUseCDN          = "Put a CDN in front of the site to absorb heavy traffic"
	MsgImproveCaching  = "Improve the caching strategy"
	MsgStaticExpiry    = "Configure expiration headers for static resources"
	MsgCompression     = "Enable Gzip or Brotli compression"
	MsgLazyLoadImages  = "Lazy-load images below the fold"
	MsgGreenHosting    = "Move to an eco-friendly hosting provider"
	MsgOptimizeQueries = "Optimize database queries"
	MsgDataCleanup     = "Set up a data cleanup strategy"
)

// Recommendations holds the advice for an input, split by urgency.
type Recommendations struct {
	Critical  []string `json:"critical"`
	Important []string `json:"important"`
	Optional  []string `json:"optional"`
}

// Recommend selects advice from the raw inputs. The eco score plays no part.
// Tiers are independent of each other and every comparison is strict, so a
// page of exactly 2048 KB is not flagged as critical.
func Recommend(in Input) Recommendations {
	critical := []string{}
	important := []string{}

	if in.PageSizeKB > BaselinePageSizeKB {
		critical = append(critical, MsgReducePageSize, MsgCompressImages, MsgMinifyAssets)
	}
	if !in.CDN && in.MonthlyVisits > BaselineVisits {
		critical = append(critical, MsgUseCDN)
	}

	if in.CachingLevel < MinCachingLevel {
		important = append(important, MsgImproveCaching, MsgStaticExpiry)
	}
	if in.PageSizeKB > LargePageSizeKB {
		important = append(important, MsgCompression, MsgLazyLoadImages)
	}

	return Recommendations{
		Critical:  critical,
		Important: important,
		Optional:  []string{MsgGreenHosting, MsgOptimizeQueries, MsgDataCleanup},
	}
}

// Len returns the total number of messages across all tiers.
func (r Recommendations) Len() int {
	return len(r.Critical) + len(r.Important) + len(r.Optional)
}
