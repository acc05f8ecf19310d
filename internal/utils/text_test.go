package utils

import "testing"

func TestRemoveLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"markdown link keeps text", "see [the manual](https://example.com/manual) for details", "see the manual for details"},
		{"bare url removed", "bought it here https://example.com/item and it works", "bought it here  and it works"},
		{"www url removed", "check www.example.com for specs", "check  for specs"},
		{"plain text untouched", "no links at all", "no links at all"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemoveLinks(tc.input); got != tc.want {
				t.Errorf("RemoveLinks(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanReviewText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain sentence", "Keeps water cold all day.", "Keeps water cold all day."},
		{"markdown emphasis", "This is **really** good", "This is really good"},
		{"html tags stripped", "Nice <b>bottle</b>, works well", "Nice bottle , works well"},
		{"whitespace collapsed", "too   many\n\n   spaces", "too many spaces"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanReviewText(tc.input); got != tc.want {
				t.Errorf("CleanReviewText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Great phone. Battery lasts two days.", "Great phone."},
		{"Is it worth it? Absolutely.", "Is it worth it?"},
		{"Amazing!", "Amazing!"},
		{"no terminator at all", "no terminator at all"},
		{"  padded. rest", "padded."},
	}

	for _, tc := range tests {
		if got := FirstSentence(tc.input); got != tc.want {
			t.Errorf("FirstSentence(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short stays", "hello", 10, "hello"},
		{"exact stays", "hello", 5, "hello"},
		{"long cut", "hello world", 5, "hello..."},
		{"trailing space trimmed", "hello world", 6, "hello..."},
		{"multibyte runes", "héllo wörld", 5, "héllo..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.input, tc.max); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
			}
		})
	}
}
