package scoring

import (
	"fmt"
	"strings"
)

const (
	maxSummarySentences = 4
	maxSummaryLength    = 500
	maxReasoningLength  = 250
	maxReasoningWords   = 3
)

// GenerateSummary builds a short extractive summary: split on sentence
// terminators, drop fragments of 20 characters or fewer, keep the first
// four, rejoin with a trailing period, cap at 500 characters.
func GenerateSummary(text string) string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var sentences []string
	for _, fragment := range fragments {
		if trimmed := strings.TrimSpace(fragment); len(trimmed) > 20 {
			sentences = append(sentences, trimmed)
			if len(sentences) == maxSummarySentences {
				break
			}
		}
	}

	summary := strings.Join(sentences, ". ")
	if summary != "" && !strings.HasSuffix(summary, ".") {
		summary += "."
	}

	return truncate(summary, maxSummaryLength)
}

// GenerateReasoning renders the templated justification string.
func GenerateReasoning(sentimentLabel string, riskCategories, matchedKeywords []string) string {
	parts := []string{fmt.Sprintf("The tone is %s", sentimentLabel)}

	if len(riskCategories) > 0 {
		parts = append(parts, fmt.Sprintf("involves %s concerns", strings.Join(riskCategories, ", ")))
	}

	if len(matchedKeywords) > 0 {
		top := matchedKeywords
		if len(top) > maxReasoningWords {
			top = top[:maxReasoningWords]
		}
		parts = append(parts, fmt.Sprintf("with keywords: %s", strings.Join(top, ", ")))
	}

	return truncate(strings.Join(parts, " and ")+".", maxReasoningLength)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
