package utils

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks strips markdown link syntax (keeping the link text) and bare
// URLs from review text.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// CleanReviewText flattens any markdown a marketplace review may carry into
// plain text, drops leftover tags and links, and collapses whitespace.
func CleanReviewText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := tagPattern.ReplaceAllString(string(output), " ")
	plain = strings.Join(strings.Fields(plain), " ")

	return strings.TrimSpace(RemoveLinks(plain))
}

// FirstSentence returns everything up to and including the first sentence
// terminator, or the whole string when none is found.
func FirstSentence(input string) string {
	input = strings.TrimSpace(input)
	for i, r := range input {
		if r == '.' || r == '!' || r == '?' {
			return strings.TrimSpace(input[:i+1])
		}
	}
	return input
}

// Truncate shortens display text to max runes, appending an ellipsis when
// anything was cut.
func Truncate(input string, max int) string {
	runes := []rune(input)
	if len(runes) <= max {
		return input
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}
