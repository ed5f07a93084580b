package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"riskwatch-pipeline/internal/config"
	"riskwatch-pipeline/internal/handlers"
	"riskwatch-pipeline/internal/knowledge"
	"riskwatch-pipeline/internal/models"
	"riskwatch-pipeline/internal/pkg/logger"
	"riskwatch-pipeline/internal/scoring"
	"riskwatch-pipeline/internal/services"
)

// newsFiles are the corpus files a batch run picks up from the data
// directory. Missing files are skipped, not errors.
var newsFiles = []string{
	"finance_news.json",
	"market_news.json",
	"industry_news.json",
	"linkedin_news.json",
}

func main() {
	batchMode := flag.Bool("batch", false, "analyze the news corpus from the data directory and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.LogConfig{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Info("Starting risk analysis pipeline",
		"environment", cfg.Environment,
		"batch_mode", *batchMode,
	)

	kb, err := knowledge.Load(cfg.Engine.KnowledgePath)
	if err != nil {
		log.WithError(err).Error("Failed to load knowledge base", "path", cfg.Engine.KnowledgePath)
		os.Exit(1)
	}

	analyzer := scoring.NewAnalyzer(kb, log)
	batch := services.NewBatchAnalyzer(analyzer, cfg.Engine.MaxWorkers, log)
	aggregator := services.NewAggregator(cfg.Engine.HighRiskThreshold)

	var feed *services.FeedPublisher
	if cfg.Redis.StreamsURL != "" {
		feed, err = services.NewFeedPublisher(cfg.Redis, log)
		if err != nil {
			log.WithError(err).Error("Failed to connect alert publisher")
			os.Exit(1)
		}
		defer feed.Close()
	}

	if *batchMode {
		if err := runBatch(cfg, log, kb, batch, aggregator, feed); err != nil {
			log.WithError(err).Error("Batch run failed")
			os.Exit(1)
		}
		return
	}

	runServer(cfg, log, analyzer, batch, aggregator)
}

func runBatch(cfg *config.Config, log *logger.Logger, kb *models.KnowledgeBase, batch *services.BatchAnalyzer, aggregator *services.Aggregator, feed *services.FeedPublisher) error {
	ctx := context.Background()
	startTime := time.Now()

	var articles []models.ArticleInput
	var sourceFiles []string

	for _, name := range newsFiles {
		path := filepath.Join(cfg.Engine.DataDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Debug("News file not present, skipping", "path", path)
			continue
		}

		loaded, err := batch.LoadArticles(path)
		if err != nil {
			return err
		}

		log.Info("Loaded news file", "path", path, "articles", len(loaded))
		articles = append(articles, loaded...)
		sourceFiles = append(sourceFiles, name)
	}

	if len(articles) == 0 {
		return models.NewValidationError("NO_ARTICLES", "no news files found in data directory").
			WithMetadata("data_dir", cfg.Engine.DataDir)
	}

	result := batch.AnalyzeAll(ctx, articles)
	report := aggregator.BuildReport(kb.Company.Name, result.Assessments)

	doc := &services.ResultsDocument{
		Company:         kb.Company.Name,
		GeneratedAt:     time.Now().UTC(),
		SourceFiles:     sourceFiles,
		Summary:         report,
		DetailedResults: result.Assessments,
	}

	if err := services.WriteResults(cfg.Engine.OutputPath, doc); err != nil {
		return err
	}

	if feed != nil {
		published := feed.PublishHighRisk(ctx, result.Assessments, cfg.Engine.HighRiskThreshold)
		log.Info("Published high risk alerts", "count", published)
	}

	log.Info("Batch run complete",
		"output", cfg.Engine.OutputPath,
		"total", result.Total,
		"analyzed", result.Analyzed,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"high_risk", report.HighRiskArticlesCount,
		"duration", time.Since(startTime).String(),
	)

	return nil
}

func runServer(cfg *config.Config, log *logger.Logger, analyzer *scoring.Analyzer, batch *services.BatchAnalyzer, aggregator *services.Aggregator) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler := handlers.NewAssessmentHandler(analyzer, batch, aggregator, log)
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "port", cfg.HTTP.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("HTTP server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}
