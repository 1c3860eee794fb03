// Package lexicon loads the English lexical resources used to decide whether
// a word is known English: a WordNet sense inventory with its morphological
// lemmatizer, a flat English wordlist and a stopword set.
//
// All resources are loaded once at startup and are immutable afterwards, so
// they can be shared by reference across goroutines.
package lexicon

import (
	"errors"
	"fmt"

	"github.com/ppiankov/triviaflag/internal/model"
)

// ErrLexiconUnavailable is returned when a lexical resource cannot be loaded.
// It is fatal: no record may be evaluated without the lexicons.
var ErrLexiconUnavailable = errors.New("lexicon unavailable")

var errEmpty = errors.New("no entries")

// Resources bundles the loaded lexical resources
type Resources struct {
	WordNet   *WordNet
	Wordlist  *Wordlist
	Stopwords Stopwords
}

// Load reads every resource named in cfg. Any failure wraps ErrLexiconUnavailable.
func Load(cfg model.LexiconConfig) (*Resources, error) {
	wn, err := LoadWordNet(cfg.WordNetDir)
	if err != nil {
		return nil, err
	}

	wl, err := LoadWordlist(cfg.WordlistPath)
	if err != nil {
		return nil, err
	}

	stops := DefaultStopwords()
	if cfg.StopwordsPath != "" {
		stops, err = LoadStopwords(cfg.StopwordsPath)
		if err != nil {
			return nil, err
		}
	}

	return &Resources{
		WordNet:   wn,
		Wordlist:  wl,
		Stopwords: stops,
	}, nil
}

// Oracle builds the oracle for mode over the loaded resources
func (r *Resources) Oracle(mode Mode) (Oracle, error) {
	return NewOracle(mode, r.WordNet, r.Wordlist)
}

func unavailable(what, path string, err error) error {
	return fmt.Errorf("load %s from %s: %v: %w", what, path, err, ErrLexiconUnavailable)
}
