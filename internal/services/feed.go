package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"riskwatch-pipeline/internal/config"
	"riskwatch-pipeline/internal/models"
	"riskwatch-pipeline/internal/pkg/logger"
)

// FeedPublisher pushes high-risk assessments onto a Redis stream for the
// downstream feed collaborator. It sits outside the scoring hot path; a
// circuit breaker keeps a flaky Redis from stalling batch runs.
type FeedPublisher struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	logger  *logger.Logger
	config  config.RedisConfig
}

func NewFeedPublisher(cfg config.RedisConfig, log *logger.Logger) (*FeedPublisher, error) {
	opt, err := redis.ParseURL(cfg.StreamsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis streams URL: %w", err)
	}

	opt.PoolSize = cfg.PoolSize
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opt)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "feed-publisher",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Feed publisher breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	publisher := &FeedPublisher{
		client:  client,
		breaker: breaker,
		logger:  log,
		config:  cfg,
	}

	if err := publisher.testConnection(); err != nil {
		return nil, fmt.Errorf("connection to Redis failed: %w", err)
	}

	log.Info("Feed publisher initialized successfully",
		"stream", cfg.AlertStream,
		"pool_size", cfg.PoolSize)

	return publisher, nil
}

func (p *FeedPublisher) testConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, p.client.Ping(ctx).Err()
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(5))

	return err
}

// PublishAlert appends one high-risk assessment to the alert stream.
func (p *FeedPublisher) PublishAlert(ctx context.Context, result *models.AssessmentResult) error {
	startTime := time.Now()
	analysis := result.RiskAnalysis

	values := map[string]interface{}{
		"title":           result.Title,
		"source":          result.Source,
		"published_time":  result.PublishedTime,
		"risk_score":      fmt.Sprintf("%.2f", analysis.RiskScore),
		"sentiment_label": analysis.SentimentLabel,
		"risk_category":   strings.Join(analysis.RiskCategory, ","),
		"reasoning":       analysis.Reasoning,
		"timestamp":       time.Now().Format(time.RFC3339),
	}

	_, err := p.breaker.Execute(func() (interface{}, error) {
		return p.client.XAdd(ctx, &redis.XAddArgs{
			Stream: p.config.AlertStream,
			Values: values,
			MaxLen: 1024,
		}).Result()
	})

	if err != nil {
		p.logger.LogService("feed", "publish_alert", time.Since(startTime), map[string]interface{}{
			"stream": p.config.AlertStream,
			"title":  result.Title,
		}, err)
		return models.NewExternalError("FEED_PUBLISH_FAILED", "failed to publish high-risk alert").WithCause(err)
	}

	p.logger.LogService("feed", "publish_alert", time.Since(startTime), map[string]interface{}{
		"stream":     p.config.AlertStream,
		"risk_score": analysis.RiskScore,
	}, nil)

	return nil
}

// PublishHighRisk walks a batch and publishes every assessment at or above
// the threshold. Failures are logged per article and never abort the walk.
func (p *FeedPublisher) PublishHighRisk(ctx context.Context, assessments []models.AssessmentResult, threshold float64) int {
	published := 0
	for i := range assessments {
		analysis := assessments[i].RiskAnalysis
		if analysis.Skipped || analysis.RiskScore < threshold {
			continue
		}
		if err := p.PublishAlert(ctx, &assessments[i]); err != nil {
			p.logger.WithError(err).Warn("Skipping failed alert publish", "title", assessments[i].Title)
			continue
		}
		published++
	}
	return published
}

func (p *FeedPublisher) HealthCheck(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("feed publisher connection unhealthy: %w", err)
	}
	return nil
}

func (p *FeedPublisher) Close() error {
	p.logger.Info("Closing feed publisher")
	return p.client.Close()
}
