package sentiment

import (
	"testing"

	"github.com/spacesedan/reviewlens/internal/models"
)

func TestAnalyzeTextLabels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain positive", "good", models.SentimentPositive},
		{"plain negative", "bad", models.SentimentNegative},
		{"negated positive", "This is not good", models.SentimentNegative},
		{"negated negative", "not bad", models.SentimentPositive},
		{"no lexicon words", "The box arrived on a monday", models.SentimentNeutral},
		{"empty input", "", models.SentimentNeutral},
		{"mixed leaning positive", "Great quality and very comfortable, works perfectly", models.SentimentPositive},
		{"strong negative", "Terrible quality, broke after two days. Waste of money.", models.SentimentNegative},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AnalyzeText(tc.text)
			if got.Label != tc.want {
				t.Errorf("AnalyzeText(%q).Label = %q, want %q (score %.3f)",
					tc.text, got.Label, tc.want, got.Score)
			}
		})
	}
}

func TestNegationFlipsScore(t *testing.T) {
	plain := AnalyzeText("good")
	negated := AnalyzeText("not good")

	if plain.Score <= 0 {
		t.Fatalf("baseline score for %q should be positive, got %.3f", "good", plain.Score)
	}
	if negated.Score >= 0 {
		t.Errorf("negated score should be negative, got %.3f", negated.Score)
	}
	if negated.Score == plain.Score {
		t.Errorf("negated token must score differently from its un-negated form")
	}
}

func TestPunctuationClearsNegation(t *testing.T) {
	// "bad" is negated, the period clears the flag, so "good" scores
	// positively again.
	got := AnalyzeText("not bad. good")
	if got.Label != models.SentimentPositive {
		t.Errorf("Label = %q, want %q (score %.3f)", got.Label, models.SentimentPositive, got.Score)
	}
}

func TestTermBuckets(t *testing.T) {
	got := AnalyzeText("Great quality but it broke")

	wantPositive := []string{"great", "quality"}
	wantNegative := []string{"broke"}

	if len(got.PositiveTerms) != len(wantPositive) {
		t.Fatalf("PositiveTerms = %v, want %v", got.PositiveTerms, wantPositive)
	}
	for i, term := range wantPositive {
		if got.PositiveTerms[i] != term {
			t.Errorf("PositiveTerms[%d] = %q, want %q", i, got.PositiveTerms[i], term)
		}
	}
	if len(got.NegativeTerms) != 1 || got.NegativeTerms[0] != wantNegative[0] {
		t.Errorf("NegativeTerms = %v, want %v", got.NegativeTerms, wantNegative)
	}
}

func TestNegatedTermsExcludedFromDisplay(t *testing.T) {
	got := AnalyzeText("not good")
	if len(got.PositiveTerms) != 0 {
		t.Errorf("negated token leaked into PositiveTerms: %v", got.PositiveTerms)
	}
}

func TestComparativeNormalization(t *testing.T) {
	short := AnalyzeText("good")
	long := AnalyzeText("good and also rather long with many plain filler tokens here")

	if long.Score >= short.Score {
		t.Errorf("comparative should shrink with length: short %.3f, long %.3f",
			short.Score, long.Score)
	}
	if short.Score != 3.0 {
		t.Errorf("single-word comparative = %.3f, want 3.0", short.Score)
	}
}

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.5, models.SentimentPositive},
		{0.21, models.SentimentPositive},
		{0.2, models.SentimentNeutral},
		{0, models.SentimentNeutral},
		{-0.2, models.SentimentNeutral},
		{-0.21, models.SentimentNegative},
		{-1, models.SentimentNegative},
	}
	for _, tc := range tests {
		if got := LabelForScore(tc.score); got != tc.want {
			t.Errorf("LabelForScore(%.2f) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
