// Package summary produces the narrative portion of a review report: a
// prose summary, pros/cons, key features, and a verdict. The LLM path goes
// through the shared rate limiter; any failure degrades to a template built
// from the raw rating statistics, never to an error.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/ratelimit"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/spacesedan/reviewlens/internal/utils"
)

const (
	// How many reviews the narrative prompt samples.
	sampleSize = 5

	// Fallback pros are first sentences of up to this many reviews.
	fallbackSnippets = 3

	// Reviews shorter than this are skipped when building fallback pros.
	minSnippetLength = 10
)

type Generator struct {
	llm     clients.CompletionClient
	limiter *ratelimit.Limiter
}

func NewGenerator(llm clients.CompletionClient, limiter *ratelimit.Limiter) *Generator {
	return &Generator{llm: llm, limiter: limiter}
}

// Summarize builds the narrative summary for a product. It never fails:
// with no reviews it returns the insufficient-data summary, and any LLM
// failure produces the templated fallback instead.
func (g *Generator) Summarize(ctx context.Context, reviews []models.RawReview, productName, overallRating string, totalReviews int) models.NarrativeSummary {
	if len(reviews) == 0 {
		return models.NarrativeSummary{
			Summary:     "Not enough review data to generate a summary.",
			Pros:        []string{"Not enough data"},
			Cons:        []string{},
			KeyFeatures: []string{},
			Verdict:     "No clear verdict",
		}
	}

	sample := reviews
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	if g.llm == nil {
		return g.fallback(sample, overallRating, totalReviews)
	}

	prompt := narrativePrompt(sample, productName, overallRating, totalReviews)
	raw, err := ratelimit.Throttle(ctx, g.limiter, func(ctx context.Context) (string, error) {
		return g.llm.Complete(ctx, prompt)
	})
	if err != nil {
		slog.Warn("[SummaryGenerator] Completion failed, using templated summary",
			slog.String("error", err.Error()))
		return g.fallback(sample, overallRating, totalReviews)
	}

	parsed, ok := sentiment.ExtractJSON(raw)
	if !ok {
		slog.Warn("[SummaryGenerator] No JSON in completion response, using templated summary")
		return g.fallback(sample, overallRating, totalReviews)
	}

	var narrative models.NarrativeSummary
	if err := json.Unmarshal([]byte(parsed), &narrative); err != nil {
		slog.Warn("[SummaryGenerator] Failed to parse completion response, using templated summary",
			slog.String("error", err.Error()))
		return g.fallback(sample, overallRating, totalReviews)
	}

	return narrative
}

// fallback assembles a summary purely from rating statistics and review
// snippets. Cons and key features are left empty rather than guessed.
func (g *Generator) fallback(sample []models.RawReview, overallRating string, totalReviews int) models.NarrativeSummary {
	var pros []string
	for _, review := range sample {
		if len(pros) == fallbackSnippets {
			break
		}
		text := strings.TrimSpace(review.Text)
		if len(text) <= minSnippetLength {
			continue
		}
		pros = append(pros, utils.FirstSentence(text))
	}
	if pros == nil {
		pros = []string{}
	}

	return models.NarrativeSummary{
		Summary: fmt.Sprintf("Based on %d reviews with an overall rating of %s, customer opinions are summarized from the most recent feedback.",
			totalReviews, overallRating),
		Pros:        pros,
		Cons:        []string{},
		KeyFeatures: []string{},
		Verdict:     "Review the highlighted customer feedback before deciding.",
	}
}

func narrativePrompt(sample []models.RawReview, productName, overallRating string, totalReviews int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Summarize customer reviews for the product %q (overall rating %s from %d reviews).
Respond with ONLY a JSON object, no other text:
{"summary": <2-3 sentence narrative>, "pros": [<short phrases>], "cons": [<short phrases>], "key_features": [<short phrases>], "verdict": <one sentence>}

Reviews:
`, productName, overallRating, totalReviews)

	for i, review := range sample {
		fmt.Fprintf(&b, "%d. %s\n", i+1, utils.Truncate(review.Text, 400))
	}

	return b.String()
}
