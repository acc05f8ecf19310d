package models

// AggregateSummary is the per-product rollup of every scored review plus the
// narrative summary. TotalReviews is the count reported by the source site;
// PositiveCount+NegativeCount+NeutralCount always equals the number of
// reviews actually fetched and classified, which may be smaller.
type AggregateSummary struct {
	OverallSentiment string   `json:"overall_sentiment"`
	AverageRating    string   `json:"average_rating"`
	TotalReviews     int      `json:"total_reviews"`
	SentimentScore   float64  `json:"sentiment_score"`
	PositiveCount    int      `json:"positive_count"`
	NegativeCount    int      `json:"negative_count"`
	NeutralCount     int      `json:"neutral_count"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	KeyFeatures      []string `json:"key_features"`
	Verdict          string   `json:"verdict"`
	Summary          string   `json:"summary"`
}

// ReviewReport is the terminal output of the processing pipeline, built once
// per request and never mutated after it is returned.
type ReviewReport struct {
	Source       string         `json:"source"`
	ProductName  string         `json:"product_name"`
	ProductImage string         `json:"product_image,omitempty"`
	ProductPrice string         `json:"product_price,omitempty"`
	Summary      AggregateSummary `json:"summary"`
	TopPositive  []ScoredReview `json:"top_positive"`
	TopNegative  []ScoredReview `json:"top_negative"`
}

// FormattedResponse is the externally consumed response contract.
type FormattedResponse struct {
	Product    ProductBlock    `json:"product"`
	Analysis   AnalysisBlock   `json:"analysis"`
	Highlights HighlightsBlock `json:"highlights"`
}

type ProductBlock struct {
	Name         string `json:"name"`
	Image        string `json:"image,omitempty"`
	Price        string `json:"price,omitempty"`
	Rating       string `json:"rating"`
	TotalReviews int    `json:"total_reviews"`
}

type AnalysisBlock struct {
	Sentiment   string   `json:"sentiment"`
	Score       float64  `json:"score"`
	Summary     string   `json:"summary"`
	Verdict     string   `json:"verdict"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	KeyFeatures []string `json:"key_features"`
}

type HighlightsBlock struct {
	Positive []ReviewExcerpt `json:"positive"`
	Negative []ReviewExcerpt `json:"negative"`
}

// ReviewExcerpt is a display-ready slice of a scored review with a
// humanized date.
type ReviewExcerpt struct {
	Text      string  `json:"text"`
	Date      string  `json:"date,omitempty"`
	Score     float64 `json:"score"`
	Sentiment string  `json:"sentiment"`
}
