package report

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/internal/domain/stats"
	"github.com/seahub/audithub/pkg/logger"
	"github.com/seahub/audithub/pkg/metrics"
)

const defaultTimeout = 30 * time.Second

// generateFunc is the single call boundary to the model API.
type generateFunc func(ctx context.Context, prompt string) (string, error)

// GenAI implements Generator against the Gemini API.
type GenAI struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	generate generateFunc
	logger   logger.Logger
}

// NewGenAI creates a generator backed by the Gemini API.
func NewGenAI(apiKey string, opts ...Option) (*GenAI, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	g := &GenAI{
		client:  client,
		model:   DefaultModel,
		timeout: defaultTimeout,
		logger:  logger.Get().Named("report"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.generate == nil {
		g.generate = g.callModel
	}
	return g, nil
}

// Coaching implements Generator.
func (g *GenAI) Coaching(ctx context.Context, rec session.Record, r *rubric.Rubric) (string, error) {
	text, err := g.run(ctx, coachingPrompt(rec, r))
	if err != nil {
		g.logger.Error(ctx, "coaching generation failed",
			logger.String("recordID", rec.ID),
			logger.Error(err),
		)
		metrics.RecordReportFallback()
		return coachingFallback, nil
	}
	if text == "" {
		metrics.RecordReportFallback()
		return coachingEmpty, nil
	}
	return text, nil
}

// TeamAnalysis implements Generator.
func (g *GenAI) TeamAnalysis(ctx context.Context, d stats.Dashboard) (string, error) {
	if d.TotalAudits == 0 {
		return analysisNoData, nil
	}

	text, err := g.run(ctx, analysisPrompt(d))
	if err != nil {
		g.logger.Error(ctx, "team analysis generation failed", logger.Error(err))
		metrics.RecordReportFallback()
		return analysisFallback, nil
	}
	if text == "" {
		metrics.RecordReportFallback()
		return analysisEmpty, nil
	}
	return text, nil
}

// run executes one generation with latency tracking and a bounded
// deadline.
func (g *GenAI) run(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := g.generate(ctx, prompt)
	metrics.RecordReportLatency(float64(time.Since(start).Milliseconds()))
	return text, err
}

// callModel is the production generateFunc.
func (g *GenAI) callModel(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
