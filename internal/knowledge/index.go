package knowledge

import (
	"sort"
	"strings"

	"riskwatch-pipeline/internal/models"
)

// RiskKeyword pairs a lowercase keyword with the category that owns it.
type RiskKeyword struct {
	Keyword  string
	Category string
}

// KeywordIndex is the flattened lookup structure derived once from a
// KnowledgeBase and shared read-only by every scoring call. Risk keywords
// keep a deterministic order (canonical category order, then declaration
// order within a category) so repeated runs match keywords identically.
type KeywordIndex struct {
	RiskKeywords    []RiskKeyword
	ProductKeywords []string
	CompetitorNames []string
	SensitiveTopics []string

	riskByKeyword map[string]string
}

// BuildIndex flattens the taxonomy. A keyword listed under two categories
// resolves to the first category encountered; later occurrences are dropped.
func BuildIndex(kb *models.KnowledgeBase) *KeywordIndex {
	idx := &KeywordIndex{
		riskByKeyword: make(map[string]string),
	}

	for _, category := range orderedCategories(kb.RiskKeywords) {
		for _, keyword := range kb.RiskKeywords[category] {
			kw := strings.ToLower(keyword)
			if kw == "" {
				continue
			}
			if _, exists := idx.riskByKeyword[kw]; exists {
				continue
			}
			idx.riskByKeyword[kw] = category
			idx.RiskKeywords = append(idx.RiskKeywords, RiskKeyword{Keyword: kw, Category: category})
		}
	}

	for _, category := range sortedKeys(kb.ProductKeywords) {
		for _, keyword := range kb.ProductKeywords[category] {
			if kw := strings.ToLower(keyword); kw != "" {
				idx.ProductKeywords = append(idx.ProductKeywords, kw)
			}
		}
	}

	for _, competitor := range kb.Competitors {
		if name := strings.ToLower(competitor.Name); name != "" {
			idx.CompetitorNames = append(idx.CompetitorNames, name)
		}
	}

	for _, topic := range kb.SensitiveTopics {
		if t := strings.ToLower(topic); t != "" {
			idx.SensitiveTopics = append(idx.SensitiveTopics, t)
		}
	}

	return idx
}

// CategoryFor resolves a single keyword (hint or otherwise) to its owning
// risk category.
func (idx *KeywordIndex) CategoryFor(keyword string) (string, bool) {
	category, ok := idx.riskByKeyword[strings.ToLower(keyword)]
	return category, ok
}

// orderedCategories yields the canonical categories first, then any extra
// sections in sorted order so the index stays deterministic for unknown
// taxonomies.
func orderedCategories(sections map[string][]string) []string {
	var ordered []string
	seen := make(map[string]bool)

	for _, category := range models.RiskCategories {
		if _, ok := sections[category]; ok {
			ordered = append(ordered, category)
			seen[category] = true
		}
	}

	var extra []string
	for category := range sections {
		if !seen[category] {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)

	return append(ordered, extra...)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
