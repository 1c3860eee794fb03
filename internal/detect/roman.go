// Package detect implements the rule-based detectors that flag trivia
// questions: numbers (digits, spelled-out numbers, roman numerals), words
// that are not known English, and proper nouns that are rare in the corpus.
package detect

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/triviaflag/internal/nlp"
)

// romanPattern is the canonical roman numeral grammar up to MMMCMXCIX
var romanPattern = regexp.MustCompile(`(?i)^(M{0,3})(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// nonWord matches anything that is not a letter, number, underscore or space.
// Combining marks are stripped too.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// IsValidRoman reports whether token is a well-formed roman numeral.
// The grammar matches the empty string, which is rejected.
func IsValidRoman(token string) bool {
	if token == "" {
		return false
	}
	return romanPattern.MatchString(token)
}

// RomanDetector finds roman numerals in whitespace-split text.
// Short candidates (one or two letters) collide with abbreviations and the
// pronoun "I", so they only count right after a noun, as in "Henry V".
type RomanDetector struct {
	nouns nlp.NounChecker
}

// NewRomanDetector creates a detector using nouns for the short-numeral context check
func NewRomanDetector(nouns nlp.NounChecker) *RomanDetector {
	return &RomanDetector{nouns: nouns}
}

// Find returns the roman numerals in text in order, duplicates kept
func (d *RomanDetector) Find(text string) []string {
	tokens := strings.Fields(text)
	found := []string{}

	for i, token := range tokens {
		if !isUpper(token) {
			continue
		}

		if utf8.RuneCountInString(token) > 2 {
			if IsValidRoman(token) {
				found = append(found, token)
			}
			continue
		}

		// No left context at the start of the text
		if i == 0 {
			continue
		}

		previous := tokens[i-1]
		if strings.HasSuffix(previous, ",") || strings.HasSuffix(previous, ".") ||
			strings.HasSuffix(previous, ";") || strings.HasSuffix(previous, ":") {
			continue
		}

		previous = nonWord.ReplaceAllString(previous, "")
		if d.nouns.IsNoun(previous) && IsValidRoman(token) {
			found = append(found, token)
		}
	}

	return found
}

// isUpper reports whether s has at least one cased letter and no lowercase
// or titlecase letters
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
