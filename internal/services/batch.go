package services

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"riskwatch-pipeline/internal/models"
	"riskwatch-pipeline/internal/pkg/logger"
	"riskwatch-pipeline/internal/scoring"
)

// BatchAnalyzer fans a corpus of articles out over a fixed-size worker pool.
// Results land in a slice keyed by input index, so output order is
// deterministic regardless of completion order. A panic while scoring one
// article is recovered and recorded as a skipped zero-risk result; it never
// aborts the batch.
type BatchAnalyzer struct {
	analyzer   *scoring.Analyzer
	logger     *logger.Logger
	maxWorkers int
}

func NewBatchAnalyzer(analyzer *scoring.Analyzer, maxWorkers int, log *logger.Logger) *BatchAnalyzer {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	return &BatchAnalyzer{
		analyzer:   analyzer,
		logger:     log,
		maxWorkers: maxWorkers,
	}
}

func (b *BatchAnalyzer) AnalyzeAll(ctx context.Context, articles []models.ArticleInput) *models.BatchResult {
	startTime := time.Now()

	results := make([]models.AssessmentResult, len(articles))
	failed := make([]bool, len(articles))

	semaphore := make(chan struct{}, b.maxWorkers)
	var wg sync.WaitGroup

	for i := range articles {
		wg.Add(1)
		go func(index int) {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("Panic while analyzing article", "index", index, "panic", r)
					results[index] = degradedResult(articles[index])
					failed[index] = true
				}
				wg.Done()
			}()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				results[index] = degradedResult(articles[index])
				failed[index] = true
				return
			}

			results[index] = b.analyzer.Analyze(articles[index])
		}(i)
	}

	wg.Wait()

	result := &models.BatchResult{
		Assessments: results,
		Total:       len(articles),
		Duration:    time.Since(startTime),
	}

	for i := range results {
		switch {
		case failed[i]:
			result.Failed++
		case results[i].RiskAnalysis.Skipped:
			result.Skipped++
		default:
			result.Analyzed++
		}
	}

	b.logger.LogBatch(result.Total, result.Analyzed, result.Skipped, result.Failed, result.Duration)

	return result
}

// LoadArticles reads one news JSON file (an array of article records).
func (b *BatchAnalyzer) LoadArticles(path string) ([]models.ArticleInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewExternalError("NEWS_READ_FAILED", "failed to read news file").WithCause(err).WithMetadata("path", path)
	}

	var articles []models.ArticleInput
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, models.NewValidationError("NEWS_PARSE_FAILED", "failed to parse news file").WithCause(err).WithMetadata("path", path)
	}

	return articles, nil
}

// degradedResult is what a failed or cancelled article contributes: the
// original fields with a zeroed, skipped analysis block.
func degradedResult(article models.ArticleInput) models.AssessmentResult {
	article.Normalize()
	return models.AssessmentResult{
		ArticleInput: article,
		RiskAnalysis: models.RiskAnalysis{
			Summary:         "Analysis unavailable for this article.",
			SentimentLabel:  models.SentimentNeutral,
			SentimentScore:  0.0,
			RiskCategory:    []string{},
			RiskScore:       0.0,
			MatchedKeywords: []string{},
			Reasoning:       "Analysis unavailable for this article.",
			Skipped:         true,
		},
	}
}
