package detect

import (
	"errors"
	"strings"
)

// UnusualDetector flags proper nouns that are rare across the corpus
type UnusualDetector struct {
	index *FrequencyIndex
}

// NewUnusualDetector requires the corpus index to be built already
func NewUnusualDetector(index *FrequencyIndex) (*UnusualDetector, error) {
	if index == nil {
		return nil, errors.New("unusual proper noun detection needs a built frequency index")
	}
	return &UnusualDetector{index: index}, nil
}

// HasUnusual reports whether any proper noun, lowercased, is in the unusual set
func (d *UnusualDetector) HasUnusual(properNouns []string) bool {
	for _, noun := range properNouns {
		if d.index.IsUnusual(strings.ToLower(noun)) {
			return true
		}
	}
	return false
}

// Unusual returns the proper nouns that are in the unusual set, in order
func (d *UnusualDetector) Unusual(properNouns []string) []string {
	var out []string
	for _, noun := range properNouns {
		if d.index.IsUnusual(noun) {
			out = append(out, noun)
		}
	}
	return out
}
