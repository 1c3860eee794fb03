package detect

import "github.com/ppiankov/triviaflag/internal/nlp"

// ExtractProperNouns returns the tokens tagged NNP or NNPS, in order
func ExtractProperNouns(tokens []nlp.Token) []string {
	nouns := []string{}
	for _, tok := range tokens {
		if nlp.IsProperNoun(tok.Tag) {
			nouns = append(nouns, tok.Text)
		}
	}
	return nouns
}
