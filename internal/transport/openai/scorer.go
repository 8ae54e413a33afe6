package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/clearstone-io/tradematch/internal/domain"
	"github.com/clearstone-io/tradematch/internal/metrics"
	"github.com/clearstone-io/tradematch/internal/usecase/compare"
)

const scorePrompt = `You compare two values extracted from financial trade documents.
Reply with a single number between 0.0 and 1.0 indicating how likely the two
values refer to the same underlying fact. Reply with the number only.`

// Scorer scores field similarity using an OpenAI-compatible chat API.
// On provider failure it falls back to the local scorer so that a
// comparison never fails because of an upstream outage.
type Scorer struct {
	client   *openai.Client
	model    string
	provider string
	fallback compare.Scorer
	logger   *zap.Logger
}

// Config holds the scoring provider settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Fallback compare.Scorer
	Logger   *zap.Logger
}

// NewScorer creates an OpenAI-compatible scoring provider.
func NewScorer(cfg *Config) *Scorer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	fallback := cfg.Fallback
	if fallback == nil {
		fallback = compare.TokenOverlap{}
	}

	return &Scorer{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		fallback: fallback,
		logger:   cfg.Logger,
	}
}

// Score implements compare.Scorer. Equal values after normalization never
// reach the API.
func (s *Scorer) Score(ctx context.Context, a, b string) float64 {
	if compare.Normalize(a) == compare.Normalize(b) {
		return 1.0
	}

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: scorePrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Value A: %s\nValue B: %s", a, b)},
		},
		Temperature: 0,
		MaxTokens:   8,
	}

	start := time.Now()

	resp, err := s.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.ScoringRequestsTotal.WithLabelValues(s.provider, "error").Inc()
		s.logger.Warn("scoring request failed, using local scorer",
			zap.String("provider", s.provider),
			zap.Error(parseAPIError(err)))
		return s.fallback.Score(ctx, a, b)
	}

	score, ok := parseScore(resp)
	if !ok {
		metrics.ScoringRequestsTotal.WithLabelValues(s.provider, "error").Inc()
		s.logger.Warn("unparseable scoring reply, using local scorer",
			zap.String("provider", s.provider))
		return s.fallback.Score(ctx, a, b)
	}

	metrics.ScoringRequestsTotal.WithLabelValues(s.provider, "success").Inc()
	metrics.ScoringRequestDuration.WithLabelValues(s.provider).Observe(duration.Seconds())

	return score
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (s *Scorer) HealthCheck(ctx context.Context) error {
	if _, err := s.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseScore extracts the numeric score from a chat reply, clamped to [0, 1].
func parseScore(resp openai.ChatCompletionResponse) (float64, bool) {
	if len(resp.Choices) == 0 {
		return 0, false
	}
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, true
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrScoringProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrScoringProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("scoring API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("scoring API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("scoring API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("scoring request failed: %w", wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
