package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultLLMMaxRequests = 5
	DefaultLLMTimeWindow  = 60 * time.Second
	DefaultMaxPages       = 2
	DefaultCacheTTL       = 30 * time.Minute
)

// Config collects every tunable the pipeline reads from the environment.
// Credentials are validated lazily, per source, so that a deployment which
// only serves one marketplace does not need the other's key.
type Config struct {
	Port string

	LLMProvider  string // "gemini" (default) or "openai"
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	StructuredAPIURL string
	StructuredAPIKey string
	ScraperAPIURL    string
	ScraperAPIKey    string

	MaxPages       int
	LLMMaxRequests int
	LLMTimeWindow  time.Duration

	ValkeyAddr     string
	ValkeyPassword string
	ValkeyTLS      bool
	CacheTTL       time.Duration
}

// FromEnv builds a Config from environment variables, applying defaults for
// everything except credentials.
func FromEnv() Config {
	return Config{
		Port: envOr("PORT", "8080"),

		LLMProvider:  envOr("LLM_PROVIDER", "gemini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  envOr("OPENAI_MODEL", "gpt-4o-mini"),

		StructuredAPIURL: envOr("STRUCTURED_API_URL", "https://api.zyte.com/v1/extract"),
		StructuredAPIKey: os.Getenv("STRUCTURED_API_KEY"),
		ScraperAPIURL:    envOr("SCRAPER_API_URL", "https://api.scraperapi.com"),
		ScraperAPIKey:    os.Getenv("SCRAPER_API_KEY"),

		MaxPages:       envIntOr("REVIEW_MAX_PAGES", DefaultMaxPages),
		LLMMaxRequests: envIntOr("LLM_MAX_REQUESTS", DefaultLLMMaxRequests),
		LLMTimeWindow:  envDurationOr("LLM_TIME_WINDOW", DefaultLLMTimeWindow),

		ValkeyAddr:     os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:      os.Getenv("VALKEY_TLS") == "true",
		CacheTTL:       envDurationOr("REVIEW_CACHE_TTL", DefaultCacheTTL),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
