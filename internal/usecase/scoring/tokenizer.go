package scoring

import (
	"strings"
	"unicode"
)

// Words splits a transcript into lowercased word tokens. Surrounding
// punctuation is stripped per token; tokens that are all punctuation are
// dropped. An empty transcript yields no tokens.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w == "" {
			continue
		}
		words = append(words, strings.ToLower(w))
	}
	return words
}

// Sentences splits a transcript on sentence-terminating punctuation.
// Whitespace-only segments are discarded, so an empty transcript yields
// zero sentences, not one.
func Sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
	}
	return sentences
}

// countConjunctions counts whole-token matches against the configured
// conjunction set. Tokens are already lowercased by Words.
func countConjunctions(words []string, conjunctions []string) int {
	set := make(map[string]struct{}, len(conjunctions))
	for _, c := range conjunctions {
		set[strings.ToLower(c)] = struct{}{}
	}
	n := 0
	for _, w := range words {
		if _, ok := set[w]; ok {
			n++
		}
	}
	return n
}

// uniqueCount returns the number of distinct tokens.
func uniqueCount(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}
