package services_test

import (
	"fmt"
	"testing"

	"riskwatch-pipeline/internal/models"
	"riskwatch-pipeline/internal/services"
)

func sampleAssessments() []models.AssessmentResult {
	return []models.AssessmentResult{
		{
			ArticleInput: models.ArticleInput{Title: "Lawsuit filed", Source: "wire"},
			RiskAnalysis: models.RiskAnalysis{
				SentimentLabel: models.SentimentNegative,
				RiskCategory:   []string{"financial", "regulatory"},
				RiskScore:      0.9,
			},
		},
		{
			ArticleInput: models.ArticleInput{Title: "Earnings beat", Source: "wire"},
			RiskAnalysis: models.RiskAnalysis{
				SentimentLabel: models.SentimentPositive,
				RiskCategory:   []string{},
				RiskScore:      0.3,
			},
		},
		{
			ArticleInput: models.ArticleInput{Title: "Access Denied"},
			RiskAnalysis: models.RiskAnalysis{
				SentimentLabel: models.SentimentNeutral,
				Skipped:        true,
			},
		},
	}
}

func TestBuildReportCounts(t *testing.T) {
	aggregator := services.NewAggregator(0.7)

	report := aggregator.BuildReport("Acme Corp", sampleAssessments())

	if report.CompanyName != "Acme Corp" {
		t.Errorf("company = %q", report.CompanyName)
	}
	if report.ReportID == "" {
		t.Error("report ID not assigned")
	}
	if report.TotalArticlesAnalyzed != 2 {
		t.Errorf("analyzed = %d, want 2", report.TotalArticlesAnalyzed)
	}
	if report.SkippedArticles != 1 {
		t.Errorf("skipped = %d, want 1", report.SkippedArticles)
	}
	if report.AverageRiskScore != 0.6 {
		t.Errorf("average = %v, want 0.6", report.AverageRiskScore)
	}
}

func TestBuildReportDistributions(t *testing.T) {
	aggregator := services.NewAggregator(0.7)

	report := aggregator.BuildReport("Acme Corp", sampleAssessments())

	if report.SentimentDistribution[models.SentimentNegative] != 1 ||
		report.SentimentDistribution[models.SentimentPositive] != 1 {
		t.Errorf("sentiment distribution = %v", report.SentimentDistribution)
	}
	// Skipped articles contribute to no distribution.
	if report.SentimentDistribution[models.SentimentNeutral] != 0 {
		t.Errorf("skipped article counted in sentiment distribution: %v", report.SentimentDistribution)
	}
	if report.RiskCategoryDistribution["financial"] != 1 ||
		report.RiskCategoryDistribution["regulatory"] != 1 {
		t.Errorf("category distribution = %v", report.RiskCategoryDistribution)
	}
	// Canonical categories always appear, even at zero.
	if _, ok := report.RiskCategoryDistribution[models.RiskCategorySensitive]; !ok {
		t.Errorf("canonical category missing from distribution: %v", report.RiskCategoryDistribution)
	}
}

func TestBuildReportHighRisk(t *testing.T) {
	aggregator := services.NewAggregator(0.7)

	report := aggregator.BuildReport("Acme Corp", sampleAssessments())

	if report.HighRiskArticlesCount != 1 {
		t.Fatalf("high risk count = %d, want 1", report.HighRiskArticlesCount)
	}
	top := report.TopHighRiskArticles[0]
	if top.Title != "Lawsuit filed" || top.RiskScore != 0.9 {
		t.Errorf("unexpected top article: %+v", top)
	}
}

func TestBuildReportTopTenCap(t *testing.T) {
	var assessments []models.AssessmentResult
	for i := 0; i < 12; i++ {
		assessments = append(assessments, models.AssessmentResult{
			ArticleInput: models.ArticleInput{Title: fmt.Sprintf("article-%d", i)},
			RiskAnalysis: models.RiskAnalysis{
				SentimentLabel: models.SentimentNegative,
				RiskScore:      0.7 + float64(i)*0.02,
			},
		})
	}

	report := services.NewAggregator(0.7).BuildReport("Acme Corp", assessments)

	if report.HighRiskArticlesCount != 12 {
		t.Errorf("count = %d, want 12", report.HighRiskArticlesCount)
	}
	if len(report.TopHighRiskArticles) != 10 {
		t.Fatalf("top list length = %d, want 10", len(report.TopHighRiskArticles))
	}
	for i := 1; i < len(report.TopHighRiskArticles); i++ {
		if report.TopHighRiskArticles[i].RiskScore > report.TopHighRiskArticles[i-1].RiskScore {
			t.Fatal("top articles not sorted by descending risk score")
		}
	}
	if report.TopHighRiskArticles[0].Title != "article-11" {
		t.Errorf("highest scorer should lead, got %q", report.TopHighRiskArticles[0].Title)
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := services.NewAggregator(0.7).BuildReport("Acme Corp", nil)

	if report.TotalArticlesAnalyzed != 0 || report.AverageRiskScore != 0 {
		t.Errorf("unexpected report for empty input: %+v", report)
	}
	if report.TopHighRiskArticles == nil {
		t.Error("top list should be empty, not nil")
	}
}
