package models

// Risk categories are fixed. "sensitive" is never a risk_keywords section in
// the knowledge file; it is populated from the sensitive_topics list.
const (
	RiskCategoryFinancial   = "financial"
	RiskCategoryOperational = "operational"
	RiskCategoryCompetitive = "competitive"
	RiskCategoryRegulatory  = "regulatory"
	RiskCategorySensitive   = "sensitive"
)

// RiskCategories lists the categories in canonical declaration order. The
// keyword index iterates this order so that a keyword appearing in two
// categories always resolves to the same one (first occurrence wins).
var RiskCategories = []string{
	RiskCategoryFinancial,
	RiskCategoryOperational,
	RiskCategoryCompetitive,
	RiskCategoryRegulatory,
	RiskCategorySensitive,
}

type Company struct {
	Name        string `json:"name"`
	StockSymbol string `json:"stock_symbol"`
	Industry    string `json:"industry"`
}

type Competitor struct {
	Name        string `json:"name"`
	StockSymbol string `json:"stock_symbol"`
}

// KnowledgeBase is the static company profile every scoring call matches
// against. It is loaded once per process and treated as immutable; the
// engine never writes to it.
type KnowledgeBase struct {
	Company         Company             `json:"company"`
	Competitors     []Competitor        `json:"competitors"`
	RiskKeywords    map[string][]string `json:"risk_keywords"`
	ProductKeywords map[string][]string `json:"product_keywords"`
	SensitiveTopics []string            `json:"sensitive_topics"`
}
