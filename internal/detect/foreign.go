package detect

import (
	"strings"
	"unicode"

	"github.com/ppiankov/triviaflag/internal/lexicon"
	"github.com/ppiankov/triviaflag/internal/nlp"
)

// Lemmatizer reduces a lowercase word to its dictionary base form
type Lemmatizer interface {
	Lemmatize(word string) string
}

// StopList answers stopword membership
type StopList interface {
	Contains(word string) bool
}

// ForeignDetector flags content words that no English lexicon knows.
// Proper nouns and closed-class words are never flagged.
type ForeignDetector struct {
	lemmatizer Lemmatizer
	oracle     lexicon.Oracle
	stopwords  StopList
	excluded   nlp.TagSet
}

// NewForeignDetector creates a detector. excluded lists the POS tags to skip.
func NewForeignDetector(lemmatizer Lemmatizer, oracle lexicon.Oracle, stopwords StopList, excluded []string) *ForeignDetector {
	return &ForeignDetector{
		lemmatizer: lemmatizer,
		oracle:     oracle,
		stopwords:  stopwords,
		excluded:   nlp.NewTagSet(excluded),
	}
}

// Find returns the non-English words among tokens tagged in sentence
// context, in order and with original casing
func (d *ForeignDetector) Find(tokens []nlp.Token) []string {
	found := []string{}
	for _, tok := range tokens {
		if !isAlpha(tok.Text) {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if d.stopwords.Contains(lower) || d.excluded.Contains(tok.Tag) {
			continue
		}

		lemma := d.lemmatizer.Lemmatize(lower)
		if !d.oracle.Known(lemma, tok.Text) {
			found = append(found, tok.Text)
		}
	}
	return found
}

// isAlpha reports whether s is non-empty and made only of letters
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
