// Package fetcher retrieves raw reviews and product metadata from the
// supported marketplaces. Each source has its own identifier-extraction and
// pagination strategy behind the common Fetcher interface.
package fetcher

import (
	"context"

	"github.com/spacesedan/reviewlens/internal/models"
)

const (
	SourceAmazon   = "amazon"
	SourceFlipkart = "flipkart"
)

// ProductReviews bundles everything a fetch produced. TotalReviews is the
// figure the source site reports, kept verbatim and separate from
// len(Reviews) — the two are never conflated downstream.
type ProductReviews struct {
	ProductName   string
	ProductImage  string
	ProductPrice  string
	OverallRating string
	TotalReviews  string
	Reviews       []models.RawReview
}

// Fetcher maps a product URL to its reviews. maxPages only applies to
// paginated sources and is ignored by single-call ones.
type Fetcher interface {
	Fetch(ctx context.Context, productURL string, maxPages int) (*ProductReviews, error)
}
