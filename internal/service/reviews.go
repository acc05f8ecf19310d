// Package service exposes the one operation the rest of the application
// consumes: GetReviews. It validates input and credentials before any
// external call, runs the fetch/analyze/summarize pipeline, and formats the
// result. AI-tier failures never surface here — the caller always receives a
// complete report when a fallback path can produce one.
package service

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/spacesedan/reviewlens/internal/cache"
	"github.com/spacesedan/reviewlens/internal/fetcher"
	"github.com/spacesedan/reviewlens/internal/formatter"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/processor"
)

// Request identifies one product to aggregate reviews for.
type Request struct {
	URL      string `json:"url"`
	Source   string `json:"source"`
	MaxPages int    `json:"max_pages,omitempty"`
}

// Response is the success envelope around the formatted report.
type Response struct {
	Success bool                      `json:"success"`
	Source  string                    `json:"source"`
	Cached  bool                      `json:"cached,omitempty"`
	Data    *models.FormattedResponse `json:"data"`
}

// Source binds a fetcher to the credential it needs. Credential checks run
// before any external call so a misconfigured deployment fails fast.
type Source struct {
	Fetcher    fetcher.Fetcher
	Credential string // name of the required credential, for the error message
	Configured bool   // whether that credential is present
}

type ReviewService struct {
	sources   map[string]Source
	processor *processor.Processor
	cache     *cache.ReportCache
}

func New(sources map[string]Source, proc *processor.Processor, reportCache *cache.ReportCache) *ReviewService {
	return &ReviewService{
		sources:   sources,
		processor: proc,
		cache:     reportCache,
	}
}

var (
	digits            = regexp.MustCompile(`\d+`)
	reviewCountDigits = regexp.MustCompile(`(?i)(\d+)\s*reviews`)
)

// GetReviews runs the full pipeline for one product URL.
func (s *ReviewService) GetReviews(ctx context.Context, req Request) (*Response, error) {
	if req.URL == "" {
		return nil, &ValidationError{Field: "url", Reason: "is required"}
	}
	src, ok := s.sources[req.Source]
	if !ok {
		return nil, &ValidationError{Field: "source", Reason: "must be one of: amazon, flipkart"}
	}
	if !src.Configured {
		return nil, &ConfigError{Missing: src.Credential}
	}

	key := cache.Key(req.Source, req.URL)
	if cached, hit := s.cache.Get(ctx, key); hit {
		return &Response{Success: true, Source: req.Source, Cached: true, Data: cached}, nil
	}

	slog.Info("[ReviewService] Fetching reviews",
		slog.String("source", req.Source),
		slog.String("url", req.URL))

	fetched, err := src.Fetcher.Fetch(ctx, req.URL, req.MaxPages)
	if err != nil {
		return nil, &FetchError{Source: req.Source, Err: err}
	}

	totalReviews := parseReviewCount(fetched.TotalReviews, len(fetched.Reviews))
	result := s.processor.Process(ctx, fetched.Reviews, fetched.OverallRating, totalReviews, fetched.ProductName)

	report := &models.ReviewReport{
		Source:       req.Source,
		ProductName:  fetched.ProductName,
		ProductImage: fetched.ProductImage,
		ProductPrice: fetched.ProductPrice,
		Summary:      result.Summary,
		TopPositive:  result.TopPositive,
		TopNegative:  result.TopNegative,
	}

	formatted, err := formatter.Format(report)
	if err != nil {
		// Only reachable with a nil report; treat as a bug signal.
		return nil, err
	}

	s.cache.Set(ctx, key, formatted)

	slog.Info("[ReviewService] Report ready",
		slog.String("source", req.Source),
		slog.Int("classified", len(fetched.Reviews)),
		slog.String("sentiment", result.Summary.OverallSentiment))

	return &Response{Success: true, Source: req.Source, Data: formatted}, nil
}

// parseReviewCount extracts the review total from the source-reported text.
// Strings like "12,345 Ratings & 234 Reviews" carry two figures; the number
// adjacent to "Reviews" wins, with the first number as fallback. The
// fetched-sample size is only used when the source reported nothing.
func parseReviewCount(reported string, fetched int) int {
	cleaned := strings.ReplaceAll(reported, ",", "")
	m := digits.FindString(cleaned)
	if sub := reviewCountDigits.FindStringSubmatch(cleaned); sub != nil {
		m = sub[1]
	}
	if m == "" {
		return fetched
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return fetched
	}
	return n
}
