package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spacesedan/reviewlens/internal/clients"
)

func TestExtractASIN(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"dp path", "https://www.amazon.in/Some-Product/dp/B0ABCD1234?ref=xyz", "B0ABCD1234", false},
		{"gp product path", "https://www.amazon.com/gp/product/B0ABCD1234", "B0ABCD1234", false},
		{"product path", "https://www.amazon.com/product/B0ABCD1234/extra", "B0ABCD1234", false},
		{"no identifier", "https://www.amazon.com/s?k=bottle", "", true},
		{"short identifier", "https://www.amazon.com/dp/B0ABC", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractASIN(tc.url)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ExtractASIN(%q) expected error, got %q", tc.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractASIN(%q) error: %v", tc.url, err)
			}
			if got != tc.want {
				t.Errorf("ExtractASIN(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestAmazonFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if _, _, ok := r.BasicAuth(); !ok {
			t.Error("expected basic auth credentials")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"product": {
				"name": "Eco Bottle",
				"price": "₹799",
				"mainImage": {"url": "https://img.example.com/bottle.jpg"},
				"aggregateRating": {"ratingValue": 4.3, "reviewCount": 1234},
				"reviews": [
					{"reviewBody": "Keeps water cold for hours. Love it.", "datePublished": "2025-06-01", "ratingValue": 5},
					{"reviewBody": "", "datePublished": "2025-06-02", "ratingValue": 1},
					{"reviewBody": "Lid started leaking after a month.", "datePublished": "2025-05-20", "ratingValue": 2}
				]
			}
		}`))
	}))
	defer server.Close()

	f := NewAmazonFetcher(clients.NewStructuredClient(server.URL, "test-key"))

	got, err := f.Fetch(context.Background(), "https://www.amazon.in/eco/dp/B0ABCD1234", 0)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if got.ProductName != "Eco Bottle" {
		t.Errorf("ProductName = %q", got.ProductName)
	}
	if got.ProductPrice != "₹799" {
		t.Errorf("ProductPrice = %q", got.ProductPrice)
	}
	if got.OverallRating != "4.3" {
		t.Errorf("OverallRating = %q, want 4.3", got.OverallRating)
	}
	if got.TotalReviews != "1234" {
		t.Errorf("TotalReviews = %q, want 1234", got.TotalReviews)
	}
	// Empty review bodies are dropped.
	if len(got.Reviews) != 2 {
		t.Fatalf("got %d reviews, want 2", len(got.Reviews))
	}
	if got.Reviews[0].Rating != 5 {
		t.Errorf("Reviews[0].Rating = %v, want 5", got.Reviews[0].Rating)
	}
	if got.Reviews[1].Date != "2025-05-20" {
		t.Errorf("Reviews[1].Date = %q", got.Reviews[1].Date)
	}
}

func TestAmazonFetchBadURL(t *testing.T) {
	f := NewAmazonFetcher(clients.NewStructuredClient("http://unused.invalid", "k"))
	if _, err := f.Fetch(context.Background(), "https://www.amazon.com/s?k=bottle", 0); err == nil {
		t.Fatal("expected error for URL without ASIN")
	}
}

func TestAmazonFetchUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer server.Close()

	f := NewAmazonFetcher(clients.NewStructuredClient(server.URL, "k"))
	if _, err := f.Fetch(context.Background(), "https://www.amazon.in/dp/B0ABCD1234", 0); err == nil {
		t.Fatal("expected error when the extraction API fails")
	}
}
