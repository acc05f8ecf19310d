// Package sentiment classifies review text into Positive, Negative, or
// Neutral buckets.
//
// Three analyzers share one interface: a deterministic lexicon scorer that
// never fails, an LLM-backed classifier, and a composite that tries the LLM
// and degrades to the lexicon with reduced confidence. Every label decision
// across the pipeline uses the same ±0.2 thresholds on the normalized score.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/spacesedan/reviewlens/internal/models"
)

// labelThreshold is the single labeling rule for the whole pipeline:
// score > +0.2 is Positive, score < -0.2 is Negative, anything else Neutral.
const labelThreshold = 0.2

// negationWords set the negation flag when encountered; the flag flips the
// polarity of following tokens until sentence punctuation clears it.
var negationWords = map[string]bool{
	"not":     true,
	"no":      true,
	"don't":   true,
	"doesn't": true,
	"isn't":   true,
	"wasn't":  true,
	"haven't": true,
	"hasn't":  true,
	"didn't":  true,
	"never":   true,
	"cannot":  true,
	"can't":   true,
}

var negationClearers = map[string]bool{
	".": true, "!": true, "?": true, ",": true, ";": true, ":": true,
}

// LabelForScore maps a normalized sentiment score to its bucket label.
func LabelForScore(score float64) string {
	switch {
	case score > labelThreshold:
		return models.SentimentPositive
	case score < -labelThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// AnalyzeText scores text against the polarity lexicon. Pure and offline;
// it never fails and never touches the network.
//
// Score is the comparative (summed polarity / word count), which keeps
// lexicon output on roughly the same scale as LLM scores so the processor
// can average them together. Negated tokens contribute with flipped sign and
// are excluded from the displayed term lists.
func AnalyzeText(text string) models.SentimentResult {
	tokens := tokenize(strings.ToLower(text))

	var sum int
	var wordCount int
	var positiveTerms, negativeTerms []string
	matched := 0
	negated := false

	for _, tok := range tokens {
		if negationClearers[tok] {
			negated = false
			continue
		}
		if !isWord(tok) {
			continue
		}
		wordCount++
		if negationWords[tok] {
			negated = true
			continue
		}

		v, ok := afinn[tok]
		if !ok {
			continue
		}
		matched++
		if negated {
			sum += -v
			continue
		}
		sum += v
		if v > 0 {
			positiveTerms = append(positiveTerms, tok)
		} else {
			negativeTerms = append(negativeTerms, tok)
		}
	}

	var score float64
	if wordCount > 0 {
		score = float64(sum) / float64(wordCount)
	}

	confidence := 0.2
	if matched > 0 {
		confidence = 0.6
	}

	return models.SentimentResult{
		Score:         score,
		Label:         LabelForScore(score),
		PositiveTerms: positiveTerms,
		NegativeTerms: negativeTerms,
		Confidence:    confidence,
	}
}

// tokenize splits lowered text into word tokens (letters, digits, and
// in-word apostrophes, so "don't" survives) and single-rune punctuation
// tokens.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

func isWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
