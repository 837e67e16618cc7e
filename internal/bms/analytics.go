// internal/bms/analytics.go
package bms

import (
	"context"
	"net/http"
	"net/url"

	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// StatusDistribution returns per-status counts for the distribution chart.
// GET /bms/analytics/status-distribution
func (c *Client) StatusDistribution(ctx context.Context) ([]models.StatusCount, error) {
	var out []models.StatusCount
	if err := c.do(ctx, http.MethodGet, "/analytics/status-distribution", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AgingAnalysis returns the labeled aging buckets. The backend owns the
// bucket edges; the labels are the contract.
// GET /bms/analytics/aging-analysis
func (c *Client) AgingAnalysis(ctx context.Context) ([]models.AgingBucket, error) {
	var out []models.AgingBucket
	if err := c.do(ctx, http.MethodGet, "/analytics/aging-analysis", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BenchStatusDaily returns the daily bench-status trend.
// GET /bms/analytics/bench-status/daily
func (c *Client) BenchStatusDaily(ctx context.Context) ([]models.TrendPoint, error) {
	var out []models.TrendPoint
	if err := c.do(ctx, http.MethodGet, "/analytics/bench-status/daily", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BenchStatusMonthly returns the monthly bench-status trend.
// GET /bms/analytics/bench-status/monthly
func (c *Client) BenchStatusMonthly(ctx context.Context) ([]models.TrendPoint, error) {
	var out []models.TrendPoint
	if err := c.do(ctx, http.MethodGet, "/analytics/bench-status/monthly", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MainTopicReport returns aggregate scores per subtopic for a main topic.
// GET /bms/analytics/report/main-topic/{topic}
func (c *Client) MainTopicReport(ctx context.Context, topic string) ([]models.TopicReport, error) {
	var out []models.TopicReport
	if err := c.do(ctx, http.MethodGet, "/analytics/report/main-topic/"+url.PathEscape(topic), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopicReport returns aggregate scores for one topic.
// GET /bms/analytics/report/topic/{topic}
func (c *Client) TopicReport(ctx context.Context, topic string) ([]models.TopicReport, error) {
	var out []models.TopicReport
	if err := c.do(ctx, http.MethodGet, "/analytics/report/topic/"+url.PathEscape(topic), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopPerformers returns the overall leaderboard.
// GET /bms/analytics/top-performer/overall
func (c *Client) TopPerformers(ctx context.Context) ([]models.TopPerformer, error) {
	var out []models.TopPerformer
	if err := c.do(ctx, http.MethodGet, "/analytics/top-performer/overall", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopPerformersByTopic returns the leaderboard restricted to one topic.
// GET /bms/analytics/top-performer/topic/{topic}
func (c *Client) TopPerformersByTopic(ctx context.Context, topic string) ([]models.TopPerformer, error) {
	var out []models.TopPerformer
	if err := c.do(ctx, http.MethodGet, "/analytics/top-performer/topic/"+url.PathEscape(topic), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
