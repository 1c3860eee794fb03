package model

// Flags holds the curation flags derived for one record.
// Every list is non-nil so it serializes as an empty JSON array.
type Flags struct {
	RomanNumerals     []string `json:"roman_numerals"`
	HasSpelledNumber  bool     `json:"has_spelled_number"`
	HasRomanNumeral   bool     `json:"has_roman_numeral"`
	HasNumericalValue bool     `json:"has_numerical_value"`
	HasNumber         bool     `json:"has_number"`

	NonEnglishWords   []string `json:"non_english_words"`
	HasNonEnglishWord bool     `json:"has_non_english_word"`

	ProperNouns          []string `json:"proper_nouns"`
	HasUnusualProperNoun bool     `json:"has_unusual_proper_noun"`
}

// EmptyFlags returns all-false flags with empty lists
func EmptyFlags() Flags {
	return Flags{
		RomanNumerals:   []string{},
		NonEnglishWords: []string{},
		ProperNouns:     []string{},
	}
}

// FlagName identifies one of the exported top-level flags
type FlagName string

const (
	FlagNumber            FlagName = "has_number"
	FlagSpelledNumber     FlagName = "has_spelled_number"
	FlagRomanNumeral      FlagName = "has_roman_numeral"
	FlagNumericalValue    FlagName = "has_numerical_value"
	FlagNonEnglishWord    FlagName = "has_non_english_word"
	FlagUnusualProperNoun FlagName = "has_unusual_proper_noun"
)

// Get returns the value of the named flag
func (f Flags) Get(name FlagName) bool {
	switch name {
	case FlagNumber:
		return f.HasNumber
	case FlagSpelledNumber:
		return f.HasSpelledNumber
	case FlagRomanNumeral:
		return f.HasRomanNumeral
	case FlagNumericalValue:
		return f.HasNumericalValue
	case FlagNonEnglishWord:
		return f.HasNonEnglishWord
	case FlagUnusualProperNoun:
		return f.HasUnusualProperNoun
	default:
		return false
	}
}

// Details returns the matched tokens that explain the named flag, if any
func (f Flags) Details(name FlagName) []string {
	switch name {
	case FlagRomanNumeral:
		return f.RomanNumerals
	case FlagNonEnglishWord:
		return f.NonEnglishWords
	case FlagUnusualProperNoun:
		return f.ProperNouns
	default:
		return nil
	}
}
