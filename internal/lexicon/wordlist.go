package lexicon

import (
	"bufio"
	"os"
	"strings"
)

// Wordlist is a flat set of English words, stored lowercase
type Wordlist struct {
	words map[string]struct{}
}

// NewWordlist builds a wordlist from words
func NewWordlist(words []string) *Wordlist {
	wl := &Wordlist{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		wl.words[strings.ToLower(w)] = struct{}{}
	}
	return wl
}

// LoadWordlist reads one word per line. Blank lines and lines starting with # are skipped.
func LoadWordlist(path string) (*Wordlist, error) {
	words, err := readLines(path)
	if err != nil {
		return nil, unavailable("wordlist", path, err)
	}
	if len(words) == 0 {
		return nil, unavailable("wordlist", path, errEmpty)
	}
	return NewWordlist(words), nil
}

// Contains reports whether word is in the list, exactly as given
func (wl *Wordlist) Contains(word string) bool {
	_, ok := wl.words[word]
	return ok
}

// Len returns the number of distinct words
func (wl *Wordlist) Len() int {
	return len(wl.words)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
