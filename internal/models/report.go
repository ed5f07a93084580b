package models

import "time"

// HighRiskArticle is the trimmed view of an assessment carried in the
// summary report (risk_score >= the high-risk threshold).
type HighRiskArticle struct {
	Title        string   `json:"title"`
	RiskScore    float64  `json:"risk_score"`
	RiskCategory []string `json:"risk_category"`
	Sentiment    string   `json:"sentiment"`
	Source       string   `json:"source"`
}

// SummaryReport aggregates a batch of assessments. Skipped assessments are
// excluded from every count.
type SummaryReport struct {
	ReportID                 string            `json:"report_id"`
	CompanyName              string            `json:"company_name"`
	TotalArticlesAnalyzed    int               `json:"total_articles_analyzed"`
	SkippedArticles          int               `json:"skipped_articles"`
	SentimentDistribution    map[string]int    `json:"sentiment_distribution"`
	RiskCategoryDistribution map[string]int    `json:"risk_category_distribution"`
	AverageRiskScore         float64           `json:"average_risk_score"`
	HighRiskArticlesCount    int               `json:"high_risk_articles_count"`
	TopHighRiskArticles      []HighRiskArticle `json:"top_high_risk_articles"`
	GeneratedAt              time.Time         `json:"generated_at"`
}

// BatchResult pairs the per-article assessments with the run statistics the
// batch analyzer collected while producing them.
type BatchResult struct {
	Assessments []AssessmentResult `json:"assessments"`
	Total       int                `json:"total"`
	Analyzed    int                `json:"analyzed"`
	Skipped     int                `json:"skipped"`
	Failed      int                `json:"failed"`
	Duration    time.Duration      `json:"duration"`
}
