package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/reviewlens/internal/models"
)

// StructuredClient calls the structured-data extraction API: one POST per
// product URL, reviews and metadata come back pre-extracted. Auth is HTTP
// basic with the API key as username, per the provider's contract.
type StructuredClient struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewStructuredClient(endpoint, apiKey string) *StructuredClient {
	return &StructuredClient{
		client:   &http.Client{Timeout: FETCH_REQUEST_TIMEOUT},
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// ExtractProduct fetches structured product data for productURL. Unlike the
// AI tiers there is no fallback here; a failed extraction fails the fetch.
func (s *StructuredClient) ExtractProduct(ctx context.Context, productURL string) (*models.StructuredProduct, error) {
	reqBody := models.StructuredExtractRequest{
		URL:     productURL,
		Product: true,
		ProductOptions: map[string]interface{}{
			"extractFrom": "httpResponseBody",
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(s.apiKey, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction API status %d: %s", resp.StatusCode, preview(respBody))
	}

	var parsed models.StructuredExtractResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	slog.Info("[StructuredClient] Product extraction successful",
		slog.Int("reviews", len(parsed.Product.Reviews)),
		slog.Duration("elapsed", time.Since(start)))

	return &parsed.Product, nil
}
