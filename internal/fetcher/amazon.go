package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/utils"
)

// asinPattern matches the 10-character product identifier in the URL shapes
// Amazon uses for product pages.
var asinPattern = regexp.MustCompile(`/(?:dp|gp/product|product)/([A-Z0-9]{10})`)

// AmazonFetcher resolves reviews through the structured-data extraction API:
// one call per product, no pagination. Extraction failures abort the fetch;
// there is no partial-result path on this source.
type AmazonFetcher struct {
	structured *clients.StructuredClient
}

func NewAmazonFetcher(structured *clients.StructuredClient) *AmazonFetcher {
	return &AmazonFetcher{structured: structured}
}

// ExtractASIN pulls the product identifier out of an Amazon product URL.
func ExtractASIN(productURL string) (string, error) {
	m := asinPattern.FindStringSubmatch(productURL)
	if m == nil {
		return "", fmt.Errorf("could not extract ASIN from URL %q", productURL)
	}
	return m[1], nil
}

func (f *AmazonFetcher) Fetch(ctx context.Context, productURL string, _ int) (*ProductReviews, error) {
	asin, err := ExtractASIN(productURL)
	if err != nil {
		return nil, err
	}

	slog.Info("[AmazonFetcher] Fetching product reviews",
		slog.String("asin", asin))

	product, err := f.structured.ExtractProduct(ctx, productURL)
	if err != nil {
		return nil, fmt.Errorf("structured extraction for ASIN %s: %w", asin, err)
	}

	reviews := make([]models.RawReview, 0, len(product.Reviews))
	for _, r := range product.Reviews {
		text := utils.CleanReviewText(r.ReviewBody)
		if text == "" {
			continue
		}
		reviews = append(reviews, models.RawReview{
			Text:   text,
			Date:   r.DatePublished,
			Rating: r.RatingValue,
		})
	}

	result := &ProductReviews{
		ProductName:  product.Name,
		ProductImage: product.MainImage.URL,
		ProductPrice: product.Price,
		Reviews:      reviews,
	}
	if product.AggregateRating.RatingValue > 0 {
		result.OverallRating = strconv.FormatFloat(product.AggregateRating.RatingValue, 'f', 1, 64)
	}
	if product.AggregateRating.ReviewCount > 0 {
		result.TotalReviews = strconv.Itoa(product.AggregateRating.ReviewCount)
	}

	slog.Info("[AmazonFetcher] Fetch complete",
		slog.String("asin", asin),
		slog.Int("reviews", len(reviews)))

	return result, nil
}
