package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/utils"
)

const (
	defaultMaxPages = 2
	pageDelay       = 2 * time.Second

	// Upper bound on review fragments parsed per page; listing pages repeat
	// markup and anything past this is noise.
	maxReviewsPerPage = 10
)

// Class names on Flipkart are obfuscated and rotate between deployments, so
// every extraction tries a list of known candidates in order.
var (
	reviewTextSelectors  = []string{"div.t-ZTKy", "div.ZmyHeo", "div._6K-7Co"}
	ratingSelectors      = []string{"div._3LWZlK", "div.XQDdHH"}
	productNameSelectors = []string{"span.B_NuCI", "span.VU-ZEz", "h1._6EBuvT"}
	productImgSelectors  = []string{"img._396cs4", "img.DByuf4"}
	totalReviewSelectors = []string{"span._2_R_DZ", "span.Wphh3N"}
)

// FlipkartFetcher scrapes the paginated review listing through the scraping
// proxy. Pages are fetched strictly sequentially with a fixed delay between
// them; a single page's failure is logged and skipped, and product metadata
// is read from the first page only.
type FlipkartFetcher struct {
	proxy *clients.ScraperProxyClient
	delay time.Duration
}

func NewFlipkartFetcher(proxy *clients.ScraperProxyClient) *FlipkartFetcher {
	return &FlipkartFetcher{proxy: proxy, delay: pageDelay}
}

// ReviewPageURL converts a Flipkart product URL into its review-listing URL
// for the given page. The product path segment and the pid query parameter
// are both required.
func ReviewPageURL(productURL string, page int) (string, error) {
	parsed, err := url.Parse(productURL)
	if err != nil {
		return "", fmt.Errorf("invalid product URL: %w", err)
	}

	if !strings.Contains(parsed.Path, "/p/") {
		return "", fmt.Errorf("URL %q has no product path segment", productURL)
	}
	pid := parsed.Query().Get("pid")
	if pid == "" {
		return "", fmt.Errorf("URL %q has no pid parameter", productURL)
	}

	reviewPath := strings.Replace(parsed.Path, "/p/", "/product-reviews/", 1)
	query := url.Values{}
	query.Set("pid", pid)
	query.Set("page", fmt.Sprintf("%d", page))

	return fmt.Sprintf("%s://%s%s?%s", parsed.Scheme, parsed.Host, reviewPath, query.Encode()), nil
}

func (f *FlipkartFetcher) Fetch(ctx context.Context, productURL string, maxPages int) (*ProductReviews, error) {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	result := &ProductReviews{}

	for page := 1; page <= maxPages; page++ {
		if page > 1 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(f.delay):
			}
		}

		pageURL, err := ReviewPageURL(productURL, page)
		if err != nil {
			return nil, err
		}

		body, err := f.proxy.FetchPage(ctx, pageURL)
		if err != nil {
			slog.Warn("[FlipkartFetcher] Page fetch failed, skipping",
				slog.Int("page", page),
				slog.String("error", err.Error()))
			continue
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			slog.Warn("[FlipkartFetcher] Page parse failed, skipping",
				slog.Int("page", page),
				slog.String("error", err.Error()))
			continue
		}

		if page == 1 {
			result.ProductName = firstText(doc, productNameSelectors)
			result.OverallRating = firstText(doc, ratingSelectors)
			result.TotalReviews = firstText(doc, totalReviewSelectors)
			for _, sel := range productImgSelectors {
				if src, ok := doc.Find(sel).First().Attr("src"); ok {
					result.ProductImage = src
					break
				}
			}
		}

		found := f.parseReviews(doc)
		result.Reviews = append(result.Reviews, found...)

		slog.Info("[FlipkartFetcher] Page parsed",
			slog.Int("page", page),
			slog.Int("reviews", len(found)))
	}

	return result, nil
}

func (f *FlipkartFetcher) parseReviews(doc *goquery.Document) []models.RawReview {
	var reviews []models.RawReview
	for _, sel := range reviewTextSelectors {
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if len(reviews) >= maxReviewsPerPage {
				return false
			}
			text := utils.CleanReviewText(s.Text())
			if text != "" {
				reviews = append(reviews, models.RawReview{Text: text})
			}
			return true
		})
		if len(reviews) > 0 {
			break
		}
	}
	return reviews
}

func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
