package scoring

import (
	"fmt"
	"strings"

	"riskwatch-pipeline/internal/knowledge"
	"riskwatch-pipeline/internal/models"
)

// RelevanceMode selects how aggressively the classifier flips the relevance
// boolean. The per-source scraper variants of this check collapsed into one
// classifier parameterized by mode.
type RelevanceMode int

const (
	// ModeLenient accepts industry, product-density and risk-in-context
	// matches in addition to direct company/competitor mentions.
	ModeLenient RelevanceMode = iota
	// ModeStrict requires a company or competitor mention; every other
	// signal is recorded as a reason but does not flip the boolean.
	ModeStrict
)

// Relevance is the classifier verdict. Reason concatenates every applicable
// signal with " | ", primary signal first.
type Relevance struct {
	Relevant    bool
	Reason      string
	Competitors []string
}

type RelevanceClassifier struct {
	kb   *models.KnowledgeBase
	idx  *knowledge.KeywordIndex
	mode RelevanceMode
}

func NewRelevanceClassifier(kb *models.KnowledgeBase, idx *knowledge.KeywordIndex, mode RelevanceMode) *RelevanceClassifier {
	return &RelevanceClassifier{kb: kb, idx: idx, mode: mode}
}

// Classify decides whether an article concerns the tracked company or its
// competitors, over lowercase(title + " " + body).
func (c *RelevanceClassifier) Classify(title, body string) Relevance {
	combined := strings.ToLower(title + " " + body)
	if strings.TrimSpace(combined) == "" {
		return Relevance{Relevant: false, Reason: "no content"}
	}

	companyName := strings.ToLower(c.kb.Company.Name)
	symbol := strings.ToLower(c.kb.Company.StockSymbol)
	industry := strings.ToLower(c.kb.Company.Industry)

	companyMatch := (companyName != "" && strings.Contains(combined, companyName)) ||
		(symbol != "" && strings.Contains(combined, symbol))

	var competitors []string
	for _, competitor := range c.kb.Competitors {
		if name := strings.ToLower(competitor.Name); name != "" && strings.Contains(combined, name) {
			competitors = append(competitors, competitor.Name)
		}
	}

	var products []string
	for _, product := range c.idx.ProductKeywords {
		if strings.Contains(combined, product) {
			products = append(products, product)
		}
	}

	var riskMatches []string
	for _, rk := range c.idx.RiskKeywords {
		if strings.Contains(combined, rk.Keyword) {
			riskMatches = append(riskMatches, rk.Keyword)
		}
	}

	industryMatch := industry != "" && strings.Contains(combined, industry)
	companyContext := companyMatch || len(competitors) > 0

	var reasons []string
	if companyMatch {
		reasons = append(reasons, fmt.Sprintf("Direct mention of %s", c.kb.Company.Name))
	}
	if len(competitors) > 0 {
		reasons = append(reasons, fmt.Sprintf("Competitor mentions: %s", strings.Join(competitors, ", ")))
	}
	if industryMatch {
		reasons = append(reasons, fmt.Sprintf("Industry mention: %s", c.kb.Company.Industry))
	}
	if len(products) >= 2 {
		reasons = append(reasons, fmt.Sprintf("Product-related: %s", strings.Join(firstN(products, 3), ", ")))
	}
	if len(riskMatches) > 0 && companyContext {
		reasons = append(reasons, fmt.Sprintf("Risk keywords with company context: %s", strings.Join(firstN(riskMatches, 3), ", ")))
	}

	relevant := companyContext
	if c.mode == ModeLenient {
		relevant = relevant || industryMatch || len(products) >= 2
	}

	reason := "No direct relevance found"
	if len(reasons) > 0 {
		reason = strings.Join(reasons, " | ")
	}

	return Relevance{Relevant: relevant, Reason: reason, Competitors: competitors}
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
