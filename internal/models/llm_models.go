package models

// AIClassification is the strict-JSON shape the classification prompt asks
// the model for. Score and Confidence are pointers because models routinely
// omit them even when instructed not to.
type AIClassification struct {
	Sentiment    string   `json:"sentiment"`
	Score        *float64 `json:"score"`
	Confidence   *float64 `json:"confidence"`
	KeyPositives []string `json:"key_positives"`
	KeyNegatives []string `json:"key_negatives"`
}

// NarrativeSummary is the strict-JSON shape the summary prompt asks for, and
// doubles as the internal carrier for the templated fallback.
type NarrativeSummary struct {
	Summary     string   `json:"summary"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	KeyFeatures []string `json:"key_features"`
	Verdict     string   `json:"verdict"`
}
