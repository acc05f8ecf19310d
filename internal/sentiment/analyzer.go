package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/ratelimit"
)

const (
	// Reviews shorter than this carry no classifiable signal; skip the LLM.
	minAnalyzableLength = 10

	// Confidence reported when the LLM path degraded to the lexicon.
	degradedConfidence = 0.5

	// Score assigned when the model returns a label without a number.
	labelOnlyMagnitude = 0.7

	// Confidence assumed when the model omits the confidence field.
	defaultAIConfidence = 0.8
)

// Analyzer is the single capability every call site depends on; the fallback
// branch lives in Composite instead of being re-implemented per caller.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (models.SentimentResult, error)
}

// Lexicon adapts the pure lexicon scorer to the Analyzer interface.
// It never returns an error.
type Lexicon struct{}

func (Lexicon) Analyze(_ context.Context, text string) (models.SentimentResult, error) {
	return AnalyzeText(text), nil
}

// AIAnalyzer classifies a single review through the LLM, throttled by the
// shared limiter. It returns an error on any request or parse failure;
// wrap it in Composite to get lexicon fallback.
type AIAnalyzer struct {
	llm     clients.CompletionClient
	limiter *ratelimit.Limiter
}

func NewAIAnalyzer(llm clients.CompletionClient, limiter *ratelimit.Limiter) *AIAnalyzer {
	return &AIAnalyzer{llm: llm, limiter: limiter}
}

func (a *AIAnalyzer) Analyze(ctx context.Context, text string) (models.SentimentResult, error) {
	if len(strings.TrimSpace(text)) < minAnalyzableLength {
		return models.SentimentResult{Label: models.SentimentNeutral}, nil
	}
	if a.llm == nil {
		return models.SentimentResult{}, fmt.Errorf("no completion client configured")
	}

	prompt := classificationPrompt(text)
	raw, err := ratelimit.Throttle(ctx, a.limiter, func(ctx context.Context) (string, error) {
		return a.llm.Complete(ctx, prompt)
	})
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("completion request: %w", err)
	}

	parsed, ok := ExtractJSON(raw)
	if !ok {
		return models.SentimentResult{}, fmt.Errorf("no JSON object in completion response")
	}

	var classification models.AIClassification
	if err := json.Unmarshal([]byte(parsed), &classification); err != nil {
		return models.SentimentResult{}, fmt.Errorf("unmarshal classification: %w", err)
	}

	return resultFromClassification(classification), nil
}

// Composite tries the AI tier and silently degrades to the lexicon with a
// fixed lower confidence. It never returns an error, so one review's failed
// analysis can never abort a batch.
type Composite struct {
	ai Analyzer
}

func NewComposite(ai Analyzer) *Composite {
	return &Composite{ai: ai}
}

func (c *Composite) Analyze(ctx context.Context, text string) (models.SentimentResult, error) {
	result, err := c.ai.Analyze(ctx, text)
	if err == nil {
		return result, nil
	}

	slog.Warn("[SentimentAnalyzer] AI analysis failed, falling back to lexicon",
		slog.String("error", err.Error()))

	result = AnalyzeText(text)
	result.Confidence = degradedConfidence
	return result, nil
}

func classificationPrompt(text string) string {
	return fmt.Sprintf(`Classify the sentiment of this product review.
Respond with ONLY a JSON object, no other text:
{"sentiment": "positive" | "negative" | "neutral", "score": <number between -1 and 1>, "confidence": <number between 0 and 1>, "key_positives": [<short aspect phrases>], "key_negatives": [<short aspect phrases>]}

Review: %q`, text)
}

func resultFromClassification(c models.AIClassification) models.SentimentResult {
	label := normalizeLabel(c.Sentiment)

	var score float64
	if c.Score != nil {
		score = *c.Score
	} else {
		switch label {
		case models.SentimentPositive:
			score = labelOnlyMagnitude
		case models.SentimentNegative:
			score = -labelOnlyMagnitude
		}
	}

	confidence := defaultAIConfidence
	if c.Confidence != nil {
		confidence = *c.Confidence
	}

	return models.SentimentResult{
		Score:         score,
		Label:         label,
		PositiveTerms: c.KeyPositives,
		NegativeTerms: c.KeyNegatives,
		Confidence:    confidence,
	}
}

func normalizeLabel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive":
		return models.SentimentPositive
	case "negative":
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// ExtractJSON pulls the first-`{`-to-last-`}` span out of free-form model
// output. Models wrap JSON in prose and code fences often enough that a
// strict decode of the whole response is a losing strategy.
func ExtractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
