package models

// RawReview is a single review as fetched from a marketplace, before any
// analysis. Reviews are ephemeral and live only for the request that
// fetched them.
type RawReview struct {
	Text   string  `json:"text"`
	Date   string  `json:"date,omitempty"`
	Rating float64 `json:"rating,omitempty"`
}

// ScoredReview attaches a sentiment result to the review it was computed for.
type ScoredReview struct {
	RawReview
	Sentiment SentimentResult `json:"sentiment"`
}
