package sentiment

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/ratelimit"
)

type fakeCompletion struct {
	response string
	err      error
	calls    atomic.Int32
}

func (f *fakeCompletion) Complete(_ context.Context, _ string) (string, error) {
	f.calls.Add(1)
	return f.response, f.err
}

func testLimiter() *ratelimit.Limiter {
	return ratelimit.New(ratelimit.Config{
		MaxRequests: 5,
		TimeWindow:  time.Minute,
		CoolDown:    time.Millisecond,
		Backoff:     time.Millisecond,
		IdleRecheck: time.Millisecond,
	})
}

func TestAIAnalyzerSkipsShortText(t *testing.T) {
	llm := &fakeCompletion{response: `{"sentiment":"positive"}`}
	analyzer := NewAIAnalyzer(llm, testLimiter())

	got, err := analyzer.Analyze(context.Background(), "bad")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if got.Score != 0 || got.Label != models.SentimentNeutral || got.Confidence != 0 {
		t.Errorf("short text result = %+v, want neutral zero-confidence", got)
	}
	if n := llm.calls.Load(); n != 0 {
		t.Errorf("LLM was called %d times for short text, want 0", n)
	}
}

func TestAIAnalyzerParsesProseWrappedJSON(t *testing.T) {
	llm := &fakeCompletion{response: "Sure, here is the classification:\n```json\n" +
		`{"sentiment":"positive","score":0.8,"confidence":0.9,"key_positives":["quality"],"key_negatives":[]}` +
		"\n```\nLet me know if you need anything else."}
	analyzer := NewAIAnalyzer(llm, testLimiter())

	got, err := analyzer.Analyze(context.Background(), "This product exceeded my expectations in every way")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if got.Score != 0.8 {
		t.Errorf("Score = %v, want 0.8", got.Score)
	}
	if got.Label != models.SentimentPositive {
		t.Errorf("Label = %q, want %q", got.Label, models.SentimentPositive)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
	if len(got.PositiveTerms) != 1 || got.PositiveTerms[0] != "quality" {
		t.Errorf("PositiveTerms = %v, want [quality]", got.PositiveTerms)
	}
}

func TestAIAnalyzerLabelOnlyScoreMapping(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"positive", 0.7},
		{"negative", -0.7},
		{"neutral", 0},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			llm := &fakeCompletion{response: `{"sentiment":"` + tc.label + `"}`}
			analyzer := NewAIAnalyzer(llm, testLimiter())

			got, err := analyzer.Analyze(context.Background(), "a sufficiently long review text")
			if err != nil {
				t.Fatalf("Analyze returned error: %v", err)
			}
			if got.Score != tc.want {
				t.Errorf("Score = %v, want %v", got.Score, tc.want)
			}
		})
	}
}

func TestAIAnalyzerErrorsOnGarbage(t *testing.T) {
	llm := &fakeCompletion{response: "I cannot classify that review."}
	analyzer := NewAIAnalyzer(llm, testLimiter())

	if _, err := analyzer.Analyze(context.Background(), "a sufficiently long review text"); err == nil {
		t.Fatal("expected error for response without JSON")
	}
}

func TestCompositeDegradesToLexicon(t *testing.T) {
	text := "This is not good, it broke after a week and support was useless"
	llm := &fakeCompletion{err: errors.New("upstream unavailable")}
	composite := NewComposite(NewAIAnalyzer(llm, testLimiter()))

	got, err := composite.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("composite must not fail when the AI tier fails: %v", err)
	}
	if got.Confidence != 0.5 {
		t.Errorf("degraded Confidence = %v, want 0.5", got.Confidence)
	}

	want := AnalyzeText(text)
	if got.Score != want.Score {
		t.Errorf("degraded Score = %v, want lexicon score %v", got.Score, want.Score)
	}
	if got.Label != want.Label {
		t.Errorf("degraded Label = %q, want lexicon label %q", got.Label, want.Label)
	}
}

func TestCompositePassesThroughAIResult(t *testing.T) {
	llm := &fakeCompletion{response: `{"sentiment":"negative","score":-0.6,"confidence":0.85}`}
	composite := NewComposite(NewAIAnalyzer(llm, testLimiter()))

	got, err := composite.Analyze(context.Background(), "a sufficiently long review text")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if got.Score != -0.6 || got.Confidence != 0.85 {
		t.Errorf("AI result not passed through: %+v", got)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"wrapped in prose", "here you go: {\"a\":1} thanks", `{"a":1}`, true},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{"no object", "nothing here", "", false},
		{"only open brace", "{oops", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSON(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Errorf("ExtractJSON(%q) = (%q, %v), want (%q, %v)",
					tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}
