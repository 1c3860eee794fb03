package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRoman(t *testing.T) {
	valid := []string{"I", "IV", "IX", "XIV", "XL", "XC", "CD", "CM", "MCMXCIX", "MMMCMXCIX", "viii", "LIV"}
	for _, s := range valid {
		assert.True(t, IsValidRoman(s), s)
	}

	invalid := []string{"", "IIII", "VX", "IC", "MMMM", "VV", "XIVX", "ABC", "XIV,"}
	for _, s := range invalid {
		assert.False(t, IsValidRoman(s), s)
	}
}

func TestRomanDetector_Find(t *testing.T) {
	nouns := nounSet{"Henry": true, "Part": true, "War": true, "Louis": true, "Super": true}
	d := NewRomanDetector(nouns)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"long numeral", "Henry VIII ruled England", []string{"VIII"}},
		{"short numeral after noun", "Part II of the saga", []string{"II"}},
		{"short numeral at start", "I think therefore I am", []string{}},
		{"pronoun after verb", "Then said I to him", []string{}},
		{"after sentence punctuation", "He came home. I stayed", []string{}},
		{"after comma", "In Paris, V was seen", []string{}},
		{"lowercase word", "a mix of civil and vivid", []string{}},
		{"symbols stripped from previous", "(War) II began", []string{"II"}},
		{"duplicates kept", "Louis XIV and Louis XIV again", []string{"XIV", "XIV"}},
		{"long invalid", "the USA and CIA", []string{}},
		{"trailing punctuation on long token", "King George III, the mad", []string{}},
		{"numeral not valid after noun", "Super VV stuff", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Find(tt.text))
		})
	}
}

func TestRomanDetector_EmptyText(t *testing.T) {
	d := NewRomanDetector(nounSet{})
	assert.Empty(t, d.Find(""))
	assert.NotNil(t, d.Find(""))
}

func TestIsUpper(t *testing.T) {
	assert.True(t, isUpper("VIII"))
	assert.True(t, isUpper("VIII,"))
	assert.True(t, isUpper("U.S."))
	assert.False(t, isUpper("Henry"))
	assert.False(t, isUpper("1928"))
	assert.False(t, isUpper(""))
}

func TestRomanDetector_StripsCombiningMarks(t *testing.T) {
	// "Rene" followed by a combining acute accent
	d := NewRomanDetector(nounSet{"Rene": true})
	assert.Equal(t, []string{"II"}, d.Find("Rene\u0301 II"))
	assert.Equal(t, []string{"V"}, d.Find("(Rene\u0301) V"))
}
