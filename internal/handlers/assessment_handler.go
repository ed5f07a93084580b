package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"riskwatch-pipeline/internal/models"
	"riskwatch-pipeline/internal/pkg/logger"
	"riskwatch-pipeline/internal/scoring"
	"riskwatch-pipeline/internal/services"
)

type AssessmentHandler struct {
	analyzer   *scoring.Analyzer
	batch      *services.BatchAnalyzer
	aggregator *services.Aggregator
	logger     *logger.Logger
	startTime  time.Time
}

type BatchRequest struct {
	Articles []models.ArticleInput `json:"articles" binding:"required"`
}

type BatchResponse struct {
	RequestID string                    `json:"request_id"`
	Results   []models.AssessmentResult `json:"results"`
	Report    *models.SummaryReport     `json:"report"`
	Stats     batchStats                `json:"stats"`
}

type batchStats struct {
	Total      int     `json:"total"`
	Analyzed   int     `json:"analyzed"`
	Skipped    int     `json:"skipped"`
	Failed     int     `json:"failed"`
	DurationMs float64 `json:"duration_ms"`
}

func NewAssessmentHandler(analyzer *scoring.Analyzer, batch *services.BatchAnalyzer, aggregator *services.Aggregator, log *logger.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		analyzer:   analyzer,
		batch:      batch,
		aggregator: aggregator,
		logger:     log,
		startTime:  time.Now(),
	}
}

func (h *AssessmentHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/analyze", h.AnalyzeArticle)
		api.POST("/analyze/batch", h.AnalyzeBatch)
		api.POST("/relevance", h.CheckRelevance)
	}
	router.GET("/health", h.Health)
	router.GET("/stats", h.Stats)
}

func (h *AssessmentHandler) AnalyzeArticle(c *gin.Context) {
	requestID := uuid.New().String()
	startTime := time.Now()

	var article models.ArticleInput
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"request_id": requestID,
			"error":      models.NewValidationError("INVALID_ARTICLE", "request body is not a valid article").WithCause(err).Error(),
		})
		return
	}

	result := h.analyzer.Analyze(article)

	h.logger.LogService("handler", "analyze_article", time.Since(startTime), map[string]interface{}{
		"request_id": requestID,
		"title":      article.Title,
		"risk_score": result.RiskAnalysis.RiskScore,
		"skipped":    result.RiskAnalysis.Skipped,
	}, nil)

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"result":     result,
	})
}

func (h *AssessmentHandler) AnalyzeBatch(c *gin.Context) {
	requestID := uuid.New().String()

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"request_id": requestID,
			"error":      models.NewValidationError("INVALID_BATCH", "request body is not a valid article batch").WithCause(err).Error(),
		})
		return
	}

	batchResult := h.batch.AnalyzeAll(c.Request.Context(), req.Articles)
	report := h.aggregator.BuildReport(h.analyzer.KnowledgeBase().Company.Name, batchResult.Assessments)

	c.JSON(http.StatusOK, BatchResponse{
		RequestID: requestID,
		Results:   batchResult.Assessments,
		Report:    report,
		Stats: batchStats{
			Total:      batchResult.Total,
			Analyzed:   batchResult.Analyzed,
			Skipped:    batchResult.Skipped,
			Failed:     batchResult.Failed,
			DurationMs: float64(batchResult.Duration.Milliseconds()),
		},
	})
}

// CheckRelevance runs only the relevance classifier. Strict mode (company
// and competitor mentions only) is opt-in via ?mode=strict.
func (h *AssessmentHandler) CheckRelevance(c *gin.Context) {
	var article models.ArticleInput
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": models.NewValidationError("INVALID_ARTICLE", "request body is not a valid article").WithCause(err).Error(),
		})
		return
	}
	article.Normalize()

	mode := scoring.ModeLenient
	if c.Query("mode") == "strict" {
		mode = scoring.ModeStrict
	}

	classifier := scoring.NewRelevanceClassifier(h.analyzer.KnowledgeBase(), h.analyzer.Index(), mode)
	relevance := classifier.Classify(article.Title, article.ContentText)

	c.JSON(http.StatusOK, gin.H{
		"relevant":            relevance.Relevant,
		"reason":              relevance.Reason,
		"competitor_mentions": relevance.Competitors,
	})
}

func (h *AssessmentHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *AssessmentHandler) Stats(c *gin.Context) {
	index := h.analyzer.Index()

	c.JSON(http.StatusOK, gin.H{
		"service":          "risk-analyzer",
		"uptime_seconds":   time.Since(h.startTime).Seconds(),
		"company":          h.analyzer.KnowledgeBase().Company.Name,
		"risk_keywords":    len(index.RiskKeywords),
		"product_keywords": len(index.ProductKeywords),
		"competitors":      len(index.CompetitorNames),
		"sensitive_topics": len(index.SensitiveTopics),
	})
}
