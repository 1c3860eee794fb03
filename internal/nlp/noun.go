package nlp

import (
	"github.com/ppiankov/triviaflag/internal/cache"
)

// NounChecker decides whether a single word, seen without context, is a noun
type NounChecker interface {
	IsNoun(word string) bool
}

// IsolatedNounChecker tags a word on its own, outside any sentence.
// Results are memoized because the tag depends only on the word.
type IsolatedNounChecker struct {
	tagger Tagger
	cache  cache.Cache
}

// NewIsolatedNounChecker creates a checker; a nil cache disables memoization
func NewIsolatedNounChecker(tagger Tagger, c cache.Cache) *IsolatedNounChecker {
	if c == nil {
		c = cache.Nop{}
	}
	return &IsolatedNounChecker{tagger: tagger, cache: c}
}

// IsNoun reports whether word is tagged as a noun. An empty word or a
// tagging failure counts as not a noun.
func (n *IsolatedNounChecker) IsNoun(word string) bool {
	if word == "" {
		return false
	}

	key := cache.TagKey(word)
	if tag, found := n.cache.Get(key); found {
		return IsNoun(tag)
	}

	tokens, err := n.tagger.Tag([]string{word})
	if err != nil || len(tokens) == 0 {
		return false
	}

	tag := tokens[0].Tag
	n.cache.Set(key, tag, 0)
	return IsNoun(tag)
}
