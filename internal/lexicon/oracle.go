package lexicon

import (
	"fmt"
	"strings"
)

// Mode selects which sources an Oracle consults
type Mode int

const (
	ModeSenseOnly Mode = iota + 1
	ModeWordlistOnly
	ModeEither
)

func (m Mode) String() string {
	switch m {
	case ModeSenseOnly:
		return "sense"
	case ModeWordlistOnly:
		return "wordlist"
	case ModeEither:
		return "either"
	default:
		return "unknown"
	}
}

// ParseMode accepts sense|wordnet, wordlist|en_dict and either|combined
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sense", "sense-only", "wordnet":
		return ModeSenseOnly, nil
	case "wordlist", "wordlist-only", "en_dict":
		return ModeWordlistOnly, nil
	case "either", "combined":
		return ModeEither, nil
	default:
		return 0, fmt.Errorf("unknown lexicon mode: %q (supported: sense, wordlist, either)", s)
	}
}

// SenseSource answers whether a word has at least one recorded sense
type SenseSource interface {
	HasSense(word string) bool
}

// WordSource answers exact wordlist membership
type WordSource interface {
	Contains(word string) bool
}

// Oracle judges whether a word is known English.
// lemma is the lowercase base form; surface is the word as it appeared.
type Oracle interface {
	Known(lemma, surface string) bool
}

// NewOracle returns the oracle for mode
func NewOracle(mode Mode, senses SenseSource, words WordSource) (Oracle, error) {
	switch mode {
	case ModeSenseOnly:
		if senses == nil {
			return nil, fmt.Errorf("mode %s: no sense inventory", mode)
		}
		return senseOracle{senses: senses}, nil
	case ModeWordlistOnly:
		if words == nil {
			return nil, fmt.Errorf("mode %s: no wordlist", mode)
		}
		return wordlistOracle{words: words}, nil
	case ModeEither:
		if senses == nil || words == nil {
			return nil, fmt.Errorf("mode %s: needs both sense inventory and wordlist", mode)
		}
		return eitherOracle{senseOracle{senses}, wordlistOracle{words}}, nil
	default:
		return nil, fmt.Errorf("unsupported lexicon mode: %d", mode)
	}
}

type senseOracle struct {
	senses SenseSource
}

func (o senseOracle) Known(lemma, _ string) bool {
	return o.senses.HasSense(lemma)
}

type wordlistOracle struct {
	words WordSource
}

// Known tolerates inconsistent casing in the wordlist source
func (o wordlistOracle) Known(lemma, surface string) bool {
	return o.words.Contains(lemma) ||
		o.words.Contains(strings.ToLower(lemma)) ||
		o.words.Contains(strings.ToUpper(lemma)) ||
		o.words.Contains(strings.ToLower(surface))
}

type eitherOracle struct {
	sense    senseOracle
	wordlist wordlistOracle
}

func (o eitherOracle) Known(lemma, surface string) bool {
	return o.sense.Known(lemma, surface) || o.wordlist.Known(lemma, surface)
}
