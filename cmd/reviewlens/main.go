package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/cache"
	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/fetcher"
	"github.com/spacesedan/reviewlens/internal/logging"
	"github.com/spacesedan/reviewlens/internal/processor"
	"github.com/spacesedan/reviewlens/internal/ratelimit"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/spacesedan/reviewlens/internal/service"
	"github.com/spacesedan/reviewlens/internal/summary"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.FromEnv()

	llm := buildCompletionClient(cfg)
	limiter := ratelimit.New(ratelimit.Config{
		MaxRequests: cfg.LLMMaxRequests,
		TimeWindow:  cfg.LLMTimeWindow,
	})

	analyzer := sentiment.NewComposite(sentiment.NewAIAnalyzer(llm, limiter))
	proc := processor.New(analyzer, summary.NewGenerator(llm, limiter))

	var reportCache *cache.ReportCache
	if cfg.ValkeyAddr != "" {
		valkeyClient, err := clients.NewValkeyClient(clients.ValkeyOptions{
			Addr:     cfg.ValkeyAddr,
			Password: cfg.ValkeyPassword,
			UseTLS:   cfg.ValkeyTLS,
		})
		if err != nil {
			slog.Warn("[Main] Valkey unavailable, caching disabled",
				slog.String("error", err.Error()))
		} else {
			defer valkeyClient.Close()
			reportCache = cache.NewReportCache(valkeyClient, cfg.CacheTTL)
		}
	}

	sources := map[string]service.Source{
		fetcher.SourceAmazon: {
			Fetcher:    fetcher.NewAmazonFetcher(clients.NewStructuredClient(cfg.StructuredAPIURL, cfg.StructuredAPIKey)),
			Credential: "STRUCTURED_API_KEY",
			Configured: cfg.StructuredAPIKey != "",
		},
		fetcher.SourceFlipkart: {
			Fetcher:    fetcher.NewFlipkartFetcher(clients.NewScraperProxyClient(cfg.ScraperAPIURL, cfg.ScraperAPIKey)),
			Credential: "SCRAPER_API_KEY",
			Configured: cfg.ScraperAPIKey != "",
		},
	}

	svc := service.New(sources, proc, reportCache)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/reviews", reviewsHandler(svc, cfg.MaxPages))

	slog.Info("[Main] Listening", slog.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		slog.Error("[Main] Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildCompletionClient picks the LLM provider. A missing key is not fatal:
// the pipeline degrades to the lexicon and templated summaries.
func buildCompletionClient(cfg config.Config) clients.CompletionClient {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			slog.Warn("[Main] OPENAI_API_KEY not set, AI analysis disabled")
			return nil
		}
		return clients.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		if cfg.GeminiAPIKey == "" {
			slog.Warn("[Main] GEMINI_API_KEY not set, AI analysis disabled")
			return nil
		}
		return clients.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}

func reviewsHandler(svc *service.ReviewService, defaultMaxPages int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxPages := defaultMaxPages
		if v := r.URL.Query().Get("maxPages"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				maxPages = n
			}
		}

		resp, err := svc.GetReviews(r.Context(), service.Request{
			URL:      r.URL.Query().Get("url"),
			Source:   r.URL.Query().Get("source"),
			MaxPages: maxPages,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	var validationErr *service.ValidationError
	var configErr *service.ConfigError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &configErr):
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("[Main] Failed to encode response", slog.String("error", err.Error()))
	}
}
