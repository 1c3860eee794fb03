package detect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/triviaflag/internal/nlp"
)

// DefaultUnusualThreshold is the highest corpus count at which a word is unusual
const DefaultUnusualThreshold = 2

// FrequencyIndex counts lowercase token occurrences over a whole corpus.
// It is immutable once built and safe for concurrent reads.
type FrequencyIndex struct {
	counts    map[string]int
	unusual   map[string]struct{}
	threshold int
	total     int
}

// BuildFrequencyIndex joins texts with spaces, lowercases the result,
// tokenizes it and counts every token. Words with count <= threshold form
// the unusual set.
func BuildFrequencyIndex(tokenizer nlp.Tokenizer, texts []string, threshold int) (*FrequencyIndex, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("unusual threshold must be >= 0, got %d", threshold)
	}

	corpus := strings.ToLower(strings.Join(texts, " "))
	tokens, err := tokenizer.Tokenize(corpus)
	if err != nil {
		return nil, fmt.Errorf("tokenize corpus: %w", err)
	}

	counts := make(map[string]int, len(tokens)/4)
	for _, tok := range tokens {
		counts[tok]++
	}

	unusual := make(map[string]struct{})
	for word, n := range counts {
		if n <= threshold {
			unusual[word] = struct{}{}
		}
	}

	return &FrequencyIndex{
		counts:    counts,
		unusual:   unusual,
		threshold: threshold,
		total:     len(tokens),
	}, nil
}

// Frequency returns how often the lowercase form of word occurs, 0 if never
func (ix *FrequencyIndex) Frequency(word string) int {
	return ix.counts[strings.ToLower(word)]
}

// IsUnusual reports whether the lowercase form of word is in the unusual set
func (ix *FrequencyIndex) IsUnusual(word string) bool {
	_, ok := ix.unusual[strings.ToLower(word)]
	return ok
}

// Unusual returns the unusual set, sorted
func (ix *FrequencyIndex) Unusual() []string {
	words := make([]string, 0, len(ix.unusual))
	for w := range ix.unusual {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// WordCount is a word with its corpus count
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Top returns the n most frequent words, ties broken alphabetically
func (ix *FrequencyIndex) Top(n int) []WordCount {
	all := make([]WordCount, 0, len(ix.counts))
	for w, c := range ix.counts {
		all = append(all, WordCount{Word: w, Count: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Word < all[j].Word
	})
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all
}

// Threshold returns the unusual-count threshold
func (ix *FrequencyIndex) Threshold() int { return ix.threshold }

// Len returns the number of distinct tokens
func (ix *FrequencyIndex) Len() int { return len(ix.counts) }

// Total returns the number of tokens counted
func (ix *FrequencyIndex) Total() int { return ix.total }
