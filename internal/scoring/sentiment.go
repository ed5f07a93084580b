package scoring

import (
	"strings"

	"riskwatch-pipeline/internal/models"
)

// Polarity lexicons. Matching is substring containment, not word-boundary
// tokenization, so a stem inside a longer word still counts ("crash" in
// "crashed"). Known precision limitation, kept deliberately: tokenized
// matching would shift scores.
var (
	negativeWords = []string{
		"loss", "fail", "decline", "drop", "plunge", "crash", "down",
		"fell", "slump", "weak", "poor", "miss", "delay", "shortage",
		"risk", "threat", "concern", "worry", "problem", "issue",
		"lawsuit", "sue", "fine", "penalty", "ban", "violation",
		"breach", "hack", "attack", "strike", "layoff", "cut",
	}

	positiveWords = []string{
		"gain", "rise", "growth", "increase", "surge", "jump", "up",
		"beat", "strong", "robust", "excellent", "success", "win",
		"profit", "revenue", "expansion", "launch", "innovation",
		"partnership", "deal", "agreement", "boost", "improve",
	}

	neutralWords = []string{
		"stable", "maintain", "hold", "steady", "continue", "remain",
	}
)

// ComputeSentiment scores text against the fixed polarity lexicons.
// raw = (pos - neg) / (pos + neg + neutral); no hits at all is neutral 0.0.
func ComputeSentiment(text string) (string, float64) {
	textLower := strings.ToLower(text)

	negCount := countContained(textLower, negativeWords)
	posCount := countContained(textLower, positiveWords)
	neutralCount := countContained(textLower, neutralWords)

	total := negCount + posCount + neutralCount
	if total == 0 {
		return models.SentimentNeutral, 0.0
	}

	score := float64(posCount-negCount) / float64(total)

	var label string
	switch {
	case score < -0.2:
		label = models.SentimentNegative
	case score > 0.2:
		label = models.SentimentPositive
	default:
		label = models.SentimentNeutral
	}

	return label, clamp(score, -1.0, 1.0)
}

// ApplySentimentHint lets a pre-detected scraper sentiment override the
// locally computed one. The hint replaces the label and maps to a fixed
// score; unrecognized hints leave the local result untouched.
func ApplySentimentHint(hint, label string, score float64) (string, float64) {
	switch strings.ToLower(hint) {
	case models.SentimentPositive:
		return models.SentimentPositive, 0.5
	case models.SentimentNegative:
		return models.SentimentNegative, -0.5
	case models.SentimentNeutral:
		return models.SentimentNeutral, 0.0
	default:
		return label, score
	}
}

func countContained(textLower string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(textLower, word) {
			count++
		}
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
