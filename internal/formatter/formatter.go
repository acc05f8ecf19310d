// Package formatter reshapes an internal review report into the externally
// consumed response contract. Pure functions, no side effects.
package formatter

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/utils"
)

// ErrMissingReport signals a nil report reaching the formatter — an internal
// invariant violation, not a user-facing condition.
var ErrMissingReport = errors.New("formatter: nil review report")

const excerptLength = 220

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 January 2006",
	"2 January 2006",
}

// Format converts a report into the external response shape.
func Format(report *models.ReviewReport) (*models.FormattedResponse, error) {
	if report == nil {
		return nil, ErrMissingReport
	}

	return &models.FormattedResponse{
		Product: models.ProductBlock{
			Name:         report.ProductName,
			Image:        report.ProductImage,
			Price:        report.ProductPrice,
			Rating:       report.Summary.AverageRating,
			TotalReviews: report.Summary.TotalReviews,
		},
		Analysis: models.AnalysisBlock{
			Sentiment:   report.Summary.OverallSentiment,
			Score:       report.Summary.SentimentScore,
			Summary:     report.Summary.Summary,
			Verdict:     report.Summary.Verdict,
			Pros:        report.Summary.Pros,
			Cons:        report.Summary.Cons,
			KeyFeatures: report.Summary.KeyFeatures,
		},
		Highlights: models.HighlightsBlock{
			Positive: excerpts(report.TopPositive),
			Negative: excerpts(report.TopNegative),
		},
	}, nil
}

func excerpts(reviews []models.ScoredReview) []models.ReviewExcerpt {
	out := make([]models.ReviewExcerpt, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, models.ReviewExcerpt{
			Text:      utils.Truncate(r.Text, excerptLength),
			Date:      HumanizeDate(r.Date),
			Score:     r.Sentiment.Score,
			Sentiment: r.Sentiment.Label,
		})
	}
	return out
}

// HumanizeDate renders a review date as a relative time ("3 weeks ago").
// Unparseable dates pass through untouched rather than being dropped.
func HumanizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return humanize.Time(t)
		}
	}
	// Flipkart renders "x months ago" already; epoch seconds show up in
	// some structured payloads.
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil && secs > 0 {
		return humanize.Time(time.Unix(secs, 0))
	}
	return raw
}
