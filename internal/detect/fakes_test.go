package detect

import (
	"errors"
	"strings"

	"github.com/ppiankov/triviaflag/internal/nlp"
)

var errFakeTagger = errors.New("fake tagger failure")

// fakeTagger splits on whitespace, detaches trailing punctuation and tags
// words from a fixed table (default NN)
type fakeTagger struct {
	tags map[string]string
	fail bool
}

func (f *fakeTagger) Tokenize(text string) ([]string, error) {
	if f.fail {
		return nil, errFakeTagger
	}
	var out []string
	for _, field := range strings.Fields(text) {
		word := strings.TrimRight(field, ".,;:?!")
		if word != "" {
			out = append(out, word)
		}
		for _, r := range field[len(word):] {
			out = append(out, string(r))
		}
	}
	return out, nil
}

func (f *fakeTagger) Tag(words []string) ([]nlp.Token, error) {
	if f.fail {
		return nil, errFakeTagger
	}
	out := make([]nlp.Token, len(words))
	for i, w := range words {
		tag, ok := f.tags[w]
		if !ok {
			tag = "NN"
		}
		out[i] = nlp.Token{Text: w, Tag: tag}
	}
	return out, nil
}

// nounSet is a NounChecker over a fixed set of words
type nounSet map[string]bool

func (n nounSet) IsNoun(word string) bool { return n[word] }
