package dataset

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/ppiankov/triviaflag/internal/model"
)

// ExportTarget pairs a flag with the file suffix its sample is written to
type ExportTarget struct {
	Flag   model.FlagName
	Suffix string
}

// DefaultTargets are the three exported curation sets
var DefaultTargets = []ExportTarget{
	{Flag: model.FlagNumber, Suffix: "numbers"},
	{Flag: model.FlagNonEnglishWord, Suffix: "non_english"},
	{Flag: model.FlagUnusualProperNoun, Suffix: "unusual_proper_nouns"},
}

// Flagged returns the evaluations whose flag is set, in input order
func Flagged(evals []model.Evaluation, flag model.FlagName) []model.Evaluation {
	var out []model.Evaluation
	for _, e := range evals {
		if e.Flags.Get(flag) {
			out = append(out, e)
		}
	}
	return out
}

// Sample draws up to n flagged evaluations without replacement. The same
// seed over the same input always yields the same sample.
func Sample(evals []model.Evaluation, flag model.FlagName, n int, seed uint64) []model.Evaluation {
	flagged := Flagged(evals, flag)
	if n <= 0 || len(flagged) == 0 {
		return []model.Evaluation{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(flagged), func(i, j int) {
		flagged[i], flagged[j] = flagged[j], flagged[i]
	})

	if n < len(flagged) {
		flagged = flagged[:n]
	}
	return flagged
}

// ExportSamples writes one sample file per target into dir and returns the paths written
func ExportSamples(dir, prefix string, evals []model.Evaluation, targets []ExportTarget, n int, seed uint64) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	var paths []string
	for _, t := range targets {
		sample := Sample(evals, t.Flag, n, seed)

		rows := make([]map[string]json.RawMessage, len(sample))
		for i, e := range sample {
			rows[i] = e.Record.Fields
		}

		path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", prefix, t.Suffix))
		if err := writeJSON(path, rows); err != nil {
			return paths, fmt.Errorf("export %s: %w", t.Flag, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteAnnotated writes every record's original fields merged with its flags
func WriteAnnotated(path string, evals []model.Evaluation) error {
	rows := make([]map[string]any, len(evals))
	for i, e := range evals {
		row := make(map[string]any, len(e.Record.Fields)+9)
		for k, v := range e.Record.Fields {
			row[k] = v
		}

		f := e.Flags
		row["roman_numerals"] = f.RomanNumerals
		row["has_spelled_number"] = f.HasSpelledNumber
		row["has_roman_numeral"] = f.HasRomanNumeral
		row["has_numerical_value"] = f.HasNumericalValue
		row["has_number"] = f.HasNumber
		row["non_english_words"] = f.NonEnglishWords
		row["has_non_english_word"] = f.HasNonEnglishWord
		row["proper_nouns"] = f.ProperNouns
		row["has_unusual_proper_noun"] = f.HasUnusualProperNoun
		rows[i] = row
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return writeJSON(path, rows)
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
