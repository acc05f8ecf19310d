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

const geminiEndpointTemplate = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// GeminiClient talks to the generateContent completion API over plain HTTP.
type GeminiClient struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		client:   &http.Client{Timeout: LLM_REQUEST_TIMEOUT},
		endpoint: fmt.Sprintf(geminiEndpointTemplate, model),
		apiKey:   apiKey,
	}
}

// Complete sends a single-turn prompt and returns the first candidate's text.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := models.GeminiRequest{
		Contents: []models.GeminiContent{
			{Parts: []models.GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: &models.GeminiGenerationConfig{Temperature: 0.2},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.doWithRetry(req, body)
	if err != nil {
		return "", fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API status %d: %s", resp.StatusCode, preview(respBody))
	}

	var parsed models.GeminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("completion response contained no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiClient) doWithRetry(req *http.Request, body []byte) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		req.Body = io.NopCloser(bytes.NewReader(body))
		resp, err = g.client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		slog.Warn("[GeminiClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		if attempt == MAX_RETRIES-1 {
			break
		}
		if resp != nil {
			resp.Body.Close()
		}

		time.Sleep(backoff)
		backoff *= 2
	}

	return resp, err
}

func preview(respBody []byte) string {
	raw := string(respBody)
	if len(raw) > 120 {
		raw = raw[:120]
	}
	return raw
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
