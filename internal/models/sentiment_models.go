package models

const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// SentimentResult is the common output shape of every analyzer tier. Score
// carries polarity direction in its sign and intensity in its magnitude;
// Confidence is 0 for skipped analyses and 0.5 for degraded fallbacks.
type SentimentResult struct {
	Score         float64  `json:"score"`
	Label         string   `json:"label"`
	PositiveTerms []string `json:"positive_terms,omitempty"`
	NegativeTerms []string `json:"negative_terms,omitempty"`
	Confidence    float64  `json:"confidence"`
}
