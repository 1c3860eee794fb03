package detect

import (
	"strings"
	"unicode"

	"github.com/ppiankov/triviaflag/internal/nlp"
)

// spelledNumbers holds number words, ordinals, multiplicatives and
// collective quantities
var spelledNumbers = newWordSet(
	// cardinals
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen",
	"eighteen", "nineteen", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety", "hundred", "thousand", "million", "billion",
	// ordinals
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth",
	"ninth", "tenth", "eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth",
	"sixteenth", "seventeenth", "eighteenth", "nineteenth", "twentieth", "thirtieth",
	"fortieth", "fiftieth", "sixtieth", "seventieth", "eightieth", "ninetieth",
	"hundredth", "thousandth", "millionth", "billionth",
	// frequency and multiplicatives
	"twice", "thrice", "once",
	"single", "double", "triple", "quadruple", "quintuple", "sextuple", "septuple",
	"octuple", "nonuple", "decuple",
	// collective
	"dozen", "fortnight", "score", "century", "millennium",
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// IsSpelledNumber reports whether word is a number word, ignoring case
func IsSpelledNumber(word string) bool {
	_, ok := spelledNumbers[strings.ToLower(word)]
	return ok
}

// NumberFeatures are the number flags for one text
type NumberFeatures struct {
	RomanNumerals     []string
	HasSpelledNumber  bool
	HasRomanNumeral   bool
	HasNumericalValue bool
	HasNumber         bool
}

// NumberDetector combines spelled-number, digit and roman numeral detection
type NumberDetector struct {
	tokenizer nlp.Tokenizer
	roman     *RomanDetector
}

// NewNumberDetector creates a number detector
func NewNumberDetector(tokenizer nlp.Tokenizer, roman *RomanDetector) *NumberDetector {
	return &NumberDetector{tokenizer: tokenizer, roman: roman}
}

// Detect computes the number flags. It never fails: a tokenizer error leaves
// the token-based flags false.
func (d *NumberDetector) Detect(text string) NumberFeatures {
	f := NumberFeatures{
		RomanNumerals: d.roman.Find(text),
	}
	f.HasRomanNumeral = len(f.RomanNumerals) > 0

	if tokens, err := d.tokenizer.Tokenize(strings.ToLower(text)); err == nil {
		for _, tok := range tokens {
			if IsSpelledNumber(tok) {
				f.HasSpelledNumber = true
				break
			}
		}
	}

	if tokens, err := d.tokenizer.Tokenize(text); err == nil {
		for _, tok := range tokens {
			if containsDigit(tok) {
				f.HasNumericalValue = true
				break
			}
		}
	}

	f.HasNumber = f.HasSpelledNumber || f.HasNumericalValue || f.HasRomanNumeral
	return f
}

func containsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
