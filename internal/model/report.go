package model

// Evaluation is the outcome of running every detector on one record
type Evaluation struct {
	Record             *Record  `json:"-"`
	Flags              Flags    `json:"flags"`
	UnusualProperNouns []string `json:"unusual_proper_nouns,omitempty"` // Proper nouns rare in the corpus
	Warnings           []string `json:"warnings,omitempty"`             // Recoverable failures (malformed text, tagging)
}

// Summary counts flagged records across a run
type Summary struct {
	Total             int `json:"total"`
	Malformed         int `json:"malformed"`
	Warnings          int `json:"warnings"`
	Number            int `json:"has_number"`
	SpelledNumber     int `json:"has_spelled_number"`
	RomanNumeral      int `json:"has_roman_numeral"`
	NumericalValue    int `json:"has_numerical_value"`
	NonEnglishWord    int `json:"has_non_english_word"`
	UnusualProperNoun int `json:"has_unusual_proper_noun"`
}

// Summarize counts flags over a set of evaluations
func Summarize(evals []Evaluation) Summary {
	s := Summary{Total: len(evals)}
	for _, e := range evals {
		if e.Record != nil && e.Record.Malformed {
			s.Malformed++
		}
		if len(e.Warnings) > 0 {
			s.Warnings++
		}
		f := e.Flags
		if f.HasNumber {
			s.Number++
		}
		if f.HasSpelledNumber {
			s.SpelledNumber++
		}
		if f.HasRomanNumeral {
			s.RomanNumeral++
		}
		if f.HasNumericalValue {
			s.NumericalValue++
		}
		if f.HasNonEnglishWord {
			s.NonEnglishWord++
		}
		if f.HasUnusualProperNoun {
			s.UnusualProperNoun++
		}
	}
	return s
}
