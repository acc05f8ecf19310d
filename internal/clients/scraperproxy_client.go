package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ScraperProxyClient fetches raw HTML through a scraping proxy that handles
// rendering and bot mitigation. One GET per page; the response body is the
// target page's markup.
type ScraperProxyClient struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewScraperProxyClient(endpoint, apiKey string) *ScraperProxyClient {
	return &ScraperProxyClient{
		client:   &http.Client{Timeout: FETCH_REQUEST_TIMEOUT},
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// FetchPage returns the HTML body of pageURL.
func (s *ScraperProxyClient) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("url", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("page fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper proxy status %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read page body: %w", err)
	}

	return body, nil
}
