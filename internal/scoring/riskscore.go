package scoring

import "math"

// CalculateRiskScore combines sentiment with keyword evidence.
//
// The asymmetry is intentional: negative tone drives risk (0.6x), positive
// tone suppresses it without zeroing (residual 0.1x), and silence sits at a
// flat 0.2 base. Keywords add 0.1 each capped at 0.4; every detected
// category adds another 0.1. The result is clamped to [0, 1].
func CalculateRiskScore(sentimentScore float64, matchedKeywords, riskCategories int) float64 {
	var base float64
	switch {
	case sentimentScore < 0:
		base = math.Abs(sentimentScore) * 0.6
	case sentimentScore > 0:
		base = math.Abs(sentimentScore) * 0.1
	default:
		base = 0.2
	}

	keywordPenalty := math.Min(0.4, float64(matchedKeywords)*0.1)
	categoryPenalty := float64(riskCategories) * 0.1

	return clamp(base+keywordPenalty+categoryPenalty, 0.0, 1.0)
}

// round2 rounds to exactly two decimals, the precision both scores carry on
// the wire.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
