package models

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// ArticleInput is the record handed over by the scraping stage. Content may
// arrive under content_text or the legacy article_text alias; Normalize
// folds both into ContentText. The hint fields (risk tags, sentiment,
// competitor mentions) are pre-computed upstream and merged into the
// assessment rather than discarded.
type ArticleInput struct {
	Title         string `json:"title,omitempty"`
	URL           string `json:"url,omitempty"`
	Source        string `json:"source,omitempty"`
	PublishedTime string `json:"published_time,omitempty"`

	ContentText string `json:"content_text,omitempty"`
	ArticleText string `json:"article_text,omitempty"`

	RelevanceReason    string   `json:"relevance_reason,omitempty"`
	RiskTagsDetected   []string `json:"risk_tags_detected,omitempty"`
	Sentiment          string   `json:"sentiment,omitempty"`
	CompetitorMentions []string `json:"competitor_mentions,omitempty"`
}

// Normalize unifies the two content aliases into ContentText, preferring the
// richer (longer) one when both are present. ArticleText is cleared so the
// alias never leaks into output.
func (a *ArticleInput) Normalize() {
	if len(a.ArticleText) > len(a.ContentText) {
		a.ContentText = a.ArticleText
	}
	a.ArticleText = ""
}

// RiskAnalysis is the nested assessment block appended to every article.
type RiskAnalysis struct {
	Summary         string   `json:"summary"`
	SentimentLabel  string   `json:"sentiment_label"`
	SentimentScore  float64  `json:"sentiment_score"`
	RiskCategory    []string `json:"risk_category"`
	RiskScore       float64  `json:"risk_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	Reasoning       string   `json:"reasoning"`
	Skipped         bool     `json:"skipped,omitempty"`
}

// AssessmentResult re-emits every original article field plus the analysis.
type AssessmentResult struct {
	ArticleInput
	RiskAnalysis RiskAnalysis `json:"risk_analysis"`
}
