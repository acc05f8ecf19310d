package clients

import "context"

// CompletionClient is the one capability the analysis tiers need from an
// LLM provider: prompt in, raw text out. The text is not guaranteed to be
// well-formed JSON; callers extract and validate what they need.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
