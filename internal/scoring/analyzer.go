package scoring

import (
	"strings"

	"riskwatch-pipeline/internal/knowledge"
	"riskwatch-pipeline/internal/models"
	"riskwatch-pipeline/internal/pkg/logger"
)

const (
	maxMatchedKeywords = 10
	errorPageTitle     = "Access Denied"
	errorPageMarker    = "access denied"
	errorPageScanLen   = 100
)

// Analyzer is the relevance & risk scoring engine. It holds only immutable
// state (the knowledge base and its derived index), so a single instance is
// safe for concurrent use and every Analyze call is a pure function of its
// input.
type Analyzer struct {
	kb     *models.KnowledgeBase
	index  *knowledge.KeywordIndex
	logger *logger.Logger
}

func NewAnalyzer(kb *models.KnowledgeBase, log *logger.Logger) *Analyzer {
	analyzer := &Analyzer{
		kb:     kb,
		index:  knowledge.BuildIndex(kb),
		logger: log,
	}

	log.Info("Risk analyzer initialized",
		"company", kb.Company.Name,
		"risk_keywords", len(analyzer.index.RiskKeywords),
		"product_keywords", len(analyzer.index.ProductKeywords),
		"competitors", len(analyzer.index.CompetitorNames),
		"sensitive_topics", len(analyzer.index.SensitiveTopics))

	return analyzer
}

// Index exposes the derived keyword index for collaborators (relevance
// classification, hint resolution).
func (a *Analyzer) Index() *knowledge.KeywordIndex {
	return a.index
}

// KnowledgeBase returns the immutable knowledge the analyzer was built from.
func (a *Analyzer) KnowledgeBase() *models.KnowledgeBase {
	return a.kb
}

// Analyze produces the assessment for one article. It never fails: degenerate
// inputs (empty content, scraper error pages) degrade to a neutral zero-risk
// record instead of returning an error.
func (a *Analyzer) Analyze(article models.ArticleInput) models.AssessmentResult {
	article.Normalize()

	body := article.ContentText
	fullText := article.Title + " " + body

	if isErrorPage(article.Title, body) {
		return models.AssessmentResult{
			ArticleInput: article,
			RiskAnalysis: models.RiskAnalysis{
				Summary:         "Skipped: Access denied error page (not real content)",
				SentimentLabel:  models.SentimentNeutral,
				SentimentScore:  0.0,
				RiskCategory:    []string{},
				RiskScore:       0.0,
				MatchedKeywords: []string{},
				Reasoning:       "Article skipped - scraper encountered access denial",
				Skipped:         true,
			},
		}
	}

	if strings.TrimSpace(fullText) == "" {
		return models.AssessmentResult{
			ArticleInput: article,
			RiskAnalysis: models.RiskAnalysis{
				Summary:         "No content available for analysis.",
				SentimentLabel:  models.SentimentNeutral,
				SentimentScore:  0.0,
				RiskCategory:    []string{},
				RiskScore:       0.0,
				MatchedKeywords: []string{},
				Reasoning:       "No content available for analysis.",
			},
		}
	}

	sentimentLabel, sentimentScore := ComputeSentiment(fullText)
	sentimentLabel, sentimentScore = ApplySentimentHint(article.Sentiment, sentimentLabel, sentimentScore)

	matched, categories := MatchKeywords(fullText, a.index)
	matched, categories = MergeHints(matched, categories, &article, a.index)

	riskScore := CalculateRiskScore(sentimentScore, len(matched), len(categories))

	summaryText := body
	if summaryText == "" {
		summaryText = article.Title
	}

	if categories == nil {
		categories = []string{}
	}
	if matched == nil {
		matched = []string{}
	}

	return models.AssessmentResult{
		ArticleInput: article,
		RiskAnalysis: models.RiskAnalysis{
			Summary:         GenerateSummary(summaryText),
			SentimentLabel:  sentimentLabel,
			SentimentScore:  round2(sentimentScore),
			RiskCategory:    categories,
			RiskScore:       round2(riskScore),
			MatchedKeywords: firstN(matched, maxMatchedKeywords),
			Reasoning:       GenerateReasoning(sentimentLabel, categories, matched),
		},
	}
}

// isErrorPage recognizes the access-denied placeholder a blocked scraper
// produces: the literal title marker, or the marker in the first 100
// lowercase characters of the body.
func isErrorPage(title, body string) bool {
	if strings.Contains(title, errorPageTitle) {
		return true
	}

	head := strings.ToLower(body)
	if len(head) > errorPageScanLen {
		head = head[:errorPageScanLen]
	}
	return strings.Contains(head, errorPageMarker)
}
