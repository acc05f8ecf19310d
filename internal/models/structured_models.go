package models

// Wire types for the structured-data extraction API used by the Amazon
// fetcher. One POST per product; reviews come back pre-extracted.

type StructuredExtractRequest struct {
	URL            string                 `json:"url"`
	Product        bool                   `json:"product"`
	ProductOptions map[string]interface{} `json:"productOptions,omitempty"`
}

type StructuredExtractResponse struct {
	Product StructuredProduct `json:"product"`
}

type StructuredProduct struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	MainImage struct {
		URL string `json:"url"`
	} `json:"mainImage"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
		ReviewCount int     `json:"reviewCount"`
	} `json:"aggregateRating"`
	Reviews []StructuredReview `json:"reviews"`
}

type StructuredReview struct {
	ReviewBody    string  `json:"reviewBody"`
	DatePublished string  `json:"datePublished"`
	RatingValue   float64 `json:"ratingValue"`
}
