package scoring

import (
	"fmt"
	"strings"

	"riskwatch-pipeline/internal/knowledge"
	"riskwatch-pipeline/internal/models"
)

// MatchKeywords scans the full text against the keyword index. Risk keywords
// carry their owning category, sensitive topics map to the "sensitive"
// category, and product keywords count as matches without contributing a
// category. Order is first-detected: index order for keywords, detection
// order for categories.
func MatchKeywords(text string, idx *knowledge.KeywordIndex) (matched []string, categories []string) {
	textLower := strings.ToLower(text)
	seenCategory := make(map[string]bool)

	for _, rk := range idx.RiskKeywords {
		if strings.Contains(textLower, rk.Keyword) {
			matched = append(matched, rk.Keyword)
			if !seenCategory[rk.Category] {
				seenCategory[rk.Category] = true
				categories = append(categories, rk.Category)
			}
		}
	}

	for _, topic := range idx.SensitiveTopics {
		if strings.Contains(textLower, topic) {
			matched = append(matched, topic)
			if !seenCategory[models.RiskCategorySensitive] {
				seenCategory[models.RiskCategorySensitive] = true
				categories = append(categories, models.RiskCategorySensitive)
			}
		}
	}

	for _, product := range idx.ProductKeywords {
		if strings.Contains(textLower, product) {
			matched = append(matched, product)
		}
	}

	return matched, categories
}

// MergeHints folds the scraper's pre-computed hints into the locally matched
// keywords. Risk-tag hints deduplicate case-insensitively and may introduce
// categories through the index; competitor mentions are recorded as
// distinguishable "competitor: X" tokens, never as plain keywords.
func MergeHints(matched, categories []string, article *models.ArticleInput, idx *knowledge.KeywordIndex) ([]string, []string) {
	seen := make(map[string]bool, len(matched))
	for _, kw := range matched {
		seen[strings.ToLower(kw)] = true
	}
	seenCategory := make(map[string]bool, len(categories))
	for _, cat := range categories {
		seenCategory[cat] = true
	}

	for _, tag := range article.RiskTagsDetected {
		tagLower := strings.ToLower(tag)
		if tagLower == "" {
			continue
		}
		if !seen[tagLower] {
			seen[tagLower] = true
			matched = append(matched, tagLower)
		}
		if category, ok := idx.CategoryFor(tagLower); ok && !seenCategory[category] {
			seenCategory[category] = true
			categories = append(categories, category)
		}
	}

	for _, competitor := range article.CompetitorMentions {
		if competitor == "" {
			continue
		}
		if !seen[strings.ToLower(competitor)] {
			matched = append(matched, fmt.Sprintf("competitor: %s", competitor))
		}
	}

	return matched, categories
}
