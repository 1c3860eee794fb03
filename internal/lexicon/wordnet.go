package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// POS is a WordNet part of speech
type POS byte

const (
	Noun      POS = 'n'
	Verb      POS = 'v'
	Adjective POS = 'a'
	Adverb    POS = 'r'
)

// allPOS is the lookup order used by sense queries
var allPOS = []POS{Noun, Verb, Adjective, Adverb}

// posFiles maps each POS to its WordNet file stem
var posFiles = map[POS]string{
	Noun:      "noun",
	Verb:      "verb",
	Adjective: "adj",
	Adverb:    "adv",
}

type substitution struct {
	old, new string
}

// detachments are the morphy suffix rules, tried in order
var detachments = map[POS][]substitution{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
	Adverb: nil,
}

// WordNet is a read-only sense inventory: which lemmas have at least one
// sense for which part of speech, plus the irregular-form exception lists.
type WordNet struct {
	lemmas     map[string]map[POS]struct{}
	exceptions map[POS]map[string][]string
}

// NewWordNet creates an empty inventory; use Add and AddException to fill it
// before sharing it. Intended for tests and tools.
func NewWordNet() *WordNet {
	wn := &WordNet{
		lemmas:     make(map[string]map[POS]struct{}),
		exceptions: make(map[POS]map[string][]string),
	}
	for _, p := range allPOS {
		wn.exceptions[p] = make(map[string][]string)
	}
	return wn
}

// LoadWordNet reads index.{noun,verb,adj,adv} and the optional
// {noun,verb,adj,adv}.exc files from dir
func LoadWordNet(dir string) (*WordNet, error) {
	if dir == "" {
		return nil, unavailable("wordnet", "(unset)", errors.New("no directory configured"))
	}

	wn := NewWordNet()
	for _, p := range allPOS {
		indexPath := filepath.Join(dir, "index."+posFiles[p])
		if err := wn.loadIndex(indexPath, p); err != nil {
			return nil, unavailable("wordnet index", indexPath, err)
		}

		excPath := filepath.Join(dir, posFiles[p]+".exc")
		if err := wn.loadExceptions(excPath, p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, unavailable("wordnet exceptions", excPath, err)
		}
	}

	if len(wn.lemmas) == 0 {
		return nil, unavailable("wordnet", dir, errEmpty)
	}
	return wn, nil
}

// loadIndex reads an index.* file. License lines start with a space.
func (wn *WordNet) loadIndex(path string, pos POS) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == ' ' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		wn.Add(fields[0], pos)
	}
	return sc.Err()
}

// loadExceptions reads a *.exc file: an inflected form followed by its base forms
func (wn *WordNet) loadExceptions(path string, pos POS) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		wn.AddException(fields[0], pos, fields[1:]...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}

// Add records that lemma has a sense for pos
func (wn *WordNet) Add(lemma string, pos POS) {
	lemma = strings.ToLower(lemma)
	set, ok := wn.lemmas[lemma]
	if !ok {
		set = make(map[POS]struct{}, 1)
		wn.lemmas[lemma] = set
	}
	set[pos] = struct{}{}
}

// AddException records irregular base forms for an inflected form
func (wn *WordNet) AddException(form string, pos POS, bases ...string) {
	wn.exceptions[pos][form] = append(wn.exceptions[pos][form], bases...)
}

// Len returns the number of distinct lemmas
func (wn *WordNet) Len() int {
	return len(wn.lemmas)
}

func (wn *WordNet) hasLemma(form string, pos POS) bool {
	set, ok := wn.lemmas[form]
	if !ok {
		return false
	}
	_, ok = set[pos]
	return ok
}

// Morphy returns the base forms of form for pos that exist in the inventory:
// exception list first, then suffix detachment applied repeatedly until a
// known form appears.
func (wn *WordNet) Morphy(form string, pos POS) []string {
	filter := func(forms []string) []string {
		var out []string
		seen := make(map[string]bool, len(forms))
		for _, f := range forms {
			if !seen[f] && wn.hasLemma(f, pos) {
				seen[f] = true
				out = append(out, f)
			}
		}
		return out
	}

	rules := detachments[pos]
	apply := func(forms []string) []string {
		var out []string
		for _, f := range forms {
			for _, r := range rules {
				if strings.HasSuffix(f, r.old) {
					out = append(out, f[:len(f)-len(r.old)]+r.new)
				}
			}
		}
		return out
	}

	if bases, ok := wn.exceptions[pos][form]; ok {
		return filter(append([]string{form}, bases...))
	}

	forms := apply([]string{form})
	if results := filter(append([]string{form}, forms...)); len(results) > 0 {
		return results
	}

	for len(forms) > 0 {
		forms = apply(forms)
		if results := filter(forms); len(results) > 0 {
			return results
		}
	}
	return nil
}

// HasSense reports whether word, or a base form of it under any part of
// speech, has at least one sense
func (wn *WordNet) HasSense(word string) bool {
	word = strings.ReplaceAll(strings.ToLower(word), " ", "_")
	if word == "" {
		return false
	}
	for _, p := range allPOS {
		if len(wn.Morphy(word, p)) > 0 {
			return true
		}
	}
	return false
}

// Lemmatize returns the shortest noun base form of word, or word itself when
// the inventory knows no base form
func (wn *WordNet) Lemmatize(word string) string {
	return wn.LemmatizePOS(word, Noun)
}

// LemmatizePOS is Lemmatize for an explicit part of speech
func (wn *WordNet) LemmatizePOS(word string, pos POS) string {
	lemmas := wn.Morphy(word, pos)
	if len(lemmas) == 0 {
		return word
	}
	best := lemmas[0]
	for _, l := range lemmas[1:] {
		if len(l) < len(best) {
			best = l
		}
	}
	return best
}
