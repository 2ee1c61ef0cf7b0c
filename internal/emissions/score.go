package emissions

// ScoreTier is the colour band an eco score falls into.
type ScoreTier string

const (
	TierGreen  ScoreTier = "green"
	TierYellow ScoreTier = "yellow"
	TierRed    ScoreTier = "red"
)

// Lower bounds (inclusive) of the upper tiers.
const (
	GreenThreshold  = 80
	YellowThreshold = 60
)

// TierFor maps an eco score to its tier.
func TierFor(score int) ScoreTier {
	switch {
	case score >= GreenThreshold:
		return TierGreen
	case score >= YellowThreshold:
		return TierYellow
	default:
		return TierRed
	}
}

// Color returns the hex colour used to paint the score bar.
func (t ScoreTier) Color() string {
	switch t {
	case TierGreen:
		return "#2ecc71"
	case TierYellow:
		return "#f1c40f"
	default:
		return "#e74c3c"
	}
}
