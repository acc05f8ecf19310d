// Package processor orchestrates per-review sentiment classification and
// aggregation. A small sample of reviews goes through the AI tier (with
// lexicon fallback built into the composite analyzer); the remainder is
// scored by the lexicon directly to keep LLM spend bounded. No single
// review's failure can abort a batch.
package processor

import (
	"context"
	"log/slog"
	"math"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/spacesedan/reviewlens/internal/summary"
)

const (
	// How many reviews get the AI tier; the rest use the lexicon.
	aiSampleSize = 5

	// Highlighted reviews per bucket in the final report.
	topReviewCount = 3
)

// Result is the summary portion of a review report plus the highlighted
// reviews; product metadata is attached by the caller.
type Result struct {
	Summary     models.AggregateSummary
	TopPositive []models.ScoredReview
	TopNegative []models.ScoredReview
}

type Processor struct {
	analyzer   sentiment.Analyzer // composite: AI with lexicon fallback
	summarizer *summary.Generator
}

func New(analyzer sentiment.Analyzer, summarizer *summary.Generator) *Processor {
	return &Processor{analyzer: analyzer, summarizer: summarizer}
}

// Process classifies every review, aggregates bucket counts and the average
// sentiment, and merges in the generated narrative summary. totalReviews is
// the source-reported figure; bucket counts always sum to len(reviews).
func (p *Processor) Process(ctx context.Context, reviews []models.RawReview, overallRating string, totalReviews int, productName string) Result {
	if len(reviews) == 0 {
		return Result{
			Summary: models.AggregateSummary{
				OverallSentiment: "No data",
				AverageRating:    overallRating,
				TotalReviews:     totalReviews,
				Pros:             []string{"Not enough data"},
				Cons:             []string{},
				KeyFeatures:      []string{},
				Verdict:          "No clear verdict",
				Summary:          "No reviews available to analyze.",
			},
			TopPositive: []models.ScoredReview{},
			TopNegative: []models.ScoredReview{},
		}
	}

	sampleEnd := aiSampleSize
	if sampleEnd > len(reviews) {
		sampleEnd = len(reviews)
	}

	scored := make([]models.ScoredReview, 0, len(reviews))
	for i, review := range reviews {
		var result models.SentimentResult
		if i < sampleEnd {
			r, err := p.analyzer.Analyze(ctx, review.Text)
			if err != nil {
				// The composite analyzer absorbs AI failures itself; this
				// path only fires on analyzer-level bugs, and even then the
				// batch continues on the lexicon.
				slog.Warn("[ReviewProcessor] Analyzer error, substituting lexicon result",
					slog.String("error", err.Error()))
				r = sentiment.AnalyzeText(review.Text)
			}
			result = r
		} else {
			result = sentiment.AnalyzeText(review.Text)
		}
		scored = append(scored, models.ScoredReview{RawReview: review, Sentiment: result})
	}

	var positive, negative []models.ScoredReview
	var positiveCount, negativeCount, neutralCount int
	var scoreSum float64
	for _, s := range scored {
		scoreSum += s.Sentiment.Score
		switch sentiment.LabelForScore(s.Sentiment.Score) {
		case models.SentimentPositive:
			positiveCount++
			positive = append(positive, s)
		case models.SentimentNegative:
			negativeCount++
			negative = append(negative, s)
		default:
			neutralCount++
		}
	}

	averageSentiment := round2(scoreSum / float64(len(scored)))

	narrative := p.summarizer.Summarize(ctx, reviews[:sampleEnd], productName, overallRating, totalReviews)

	// When the narrative came back without pros/cons, fall back to the
	// aspect terms collected during per-review analysis.
	pros := narrative.Pros
	if len(pros) == 0 {
		pros = collectTerms(scored, true)
	}
	cons := narrative.Cons
	if len(cons) == 0 {
		cons = collectTerms(scored, false)
	}

	return Result{
		Summary: models.AggregateSummary{
			OverallSentiment: sentiment.LabelForScore(averageSentiment),
			AverageRating:    overallRating,
			TotalReviews:     totalReviews,
			SentimentScore:   averageSentiment,
			PositiveCount:    positiveCount,
			NegativeCount:    negativeCount,
			NeutralCount:     neutralCount,
			Pros:             orDefault(pros),
			Cons:             orDefault(cons),
			KeyFeatures:      orDefault(narrative.KeyFeatures),
			Verdict:          orDefaultString(narrative.Verdict, "No clear verdict"),
			Summary:          orDefaultString(narrative.Summary, "No summary available"),
		},
		TopPositive: topN(positive, topReviewCount),
		TopNegative: topN(negative, topReviewCount),
	}
}

// collectTerms gathers unique aspect terms across all scored reviews in
// first-seen order, capped at 5.
func collectTerms(scored []models.ScoredReview, positive bool) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, s := range scored {
		source := s.Sentiment.PositiveTerms
		if !positive {
			source = s.Sentiment.NegativeTerms
		}
		for _, term := range source {
			if seen[term] || len(terms) == 5 {
				continue
			}
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}

// topN keeps the first n reviews of a bucket in original order; highlights
// are not re-sorted by score magnitude.
func topN(reviews []models.ScoredReview, n int) []models.ScoredReview {
	if reviews == nil {
		return []models.ScoredReview{}
	}
	if len(reviews) > n {
		reviews = reviews[:n]
	}
	return reviews
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func orDefault(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func orDefaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
