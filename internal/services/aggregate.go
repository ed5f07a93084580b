package services

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"riskwatch-pipeline/internal/models"
)

const maxTopHighRisk = 10

// Aggregator condenses a set of assessments into the summary report the
// feed and chart collaborators consume.
type Aggregator struct {
	highRiskThreshold float64
}

func NewAggregator(highRiskThreshold float64) *Aggregator {
	return &Aggregator{highRiskThreshold: highRiskThreshold}
}

func (a *Aggregator) BuildReport(companyName string, assessments []models.AssessmentResult) *models.SummaryReport {
	report := &models.SummaryReport{
		ReportID:    uuid.New().String(),
		CompanyName: companyName,
		SentimentDistribution: map[string]int{
			models.SentimentPositive: 0,
			models.SentimentNeutral:  0,
			models.SentimentNegative: 0,
		},
		RiskCategoryDistribution: map[string]int{},
		TopHighRiskArticles:      []models.HighRiskArticle{},
		GeneratedAt:              time.Now(),
	}
	for _, category := range models.RiskCategories {
		report.RiskCategoryDistribution[category] = 0
	}

	var scoreSum float64
	var highRisk []models.HighRiskArticle

	for _, result := range assessments {
		analysis := result.RiskAnalysis
		if analysis.Skipped {
			report.SkippedArticles++
			continue
		}

		report.TotalArticlesAnalyzed++

		if _, known := report.SentimentDistribution[analysis.SentimentLabel]; known {
			report.SentimentDistribution[analysis.SentimentLabel]++
		}

		for _, category := range analysis.RiskCategory {
			if _, known := report.RiskCategoryDistribution[category]; known {
				report.RiskCategoryDistribution[category]++
			}
		}

		scoreSum += analysis.RiskScore

		if analysis.RiskScore >= a.highRiskThreshold {
			highRisk = append(highRisk, models.HighRiskArticle{
				Title:        result.Title,
				RiskScore:    analysis.RiskScore,
				RiskCategory: analysis.RiskCategory,
				Sentiment:    analysis.SentimentLabel,
				Source:       result.Source,
			})
		}
	}

	if report.TotalArticlesAnalyzed > 0 {
		average := scoreSum / float64(report.TotalArticlesAnalyzed)
		report.AverageRiskScore = math.Round(average*100) / 100
	}

	// Stable sort keeps input order among equal scores, so reports are
	// reproducible for identical batches.
	sort.SliceStable(highRisk, func(i, j int) bool {
		return highRisk[i].RiskScore > highRisk[j].RiskScore
	})

	report.HighRiskArticlesCount = len(highRisk)
	if len(highRisk) > maxTopHighRisk {
		highRisk = highRisk[:maxTopHighRisk]
	}
	if highRisk != nil {
		report.TopHighRiskArticles = highRisk
	}

	return report
}
