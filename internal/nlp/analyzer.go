// Package nlp wraps the tokenizer and part-of-speech tagger shared by the detectors.
//
// Tokenization follows the Penn Treebank conventions (Punkt sentence split,
// then Treebank word split) and tagging uses an averaged perceptron model
// emitting Penn Treebank tags. Both are loaded once and are safe for
// concurrent use.
package nlp

import (
	"errors"
	"fmt"

	"github.com/jdkato/prose/tag"
	"github.com/jdkato/prose/tokenize"
)

// ErrTagging is returned when tokenization or tagging of a text fails
var ErrTagging = errors.New("tagging failed")

// Token is a word paired with its Penn Treebank part-of-speech tag
type Token struct {
	Text string
	Tag  string
}

// Tokenizer splits text into linguistic word tokens
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Tagger assigns a tag to each word, using the words around it as context
type Tagger interface {
	Tag(words []string) ([]Token, error)
}

// TokenTagger tokenizes and tags in one step
type TokenTagger interface {
	Tokenizer
	Tagger
}

// Analyzer is the production Tokenizer and Tagger
type Analyzer struct {
	sentences *tokenize.PunktSentenceTokenizer
	words     *tokenize.TreebankWordTokenizer
	tagger    *tag.PerceptronTagger
}

// NewAnalyzer loads the sentence model and the perceptron tagger.
// The prose constructors panic when their embedded models fail to load;
// that is reported as an error.
func NewAnalyzer() (a *Analyzer, err error) {
	defer func() {
		if r := recover(); r != nil {
			a = nil
			err = fmt.Errorf("load language models: %v", r)
		}
	}()

	return &Analyzer{
		sentences: tokenize.NewPunktSentenceTokenizer(),
		words:     tokenize.NewTreebankWordTokenizer(),
		tagger:    tag.NewPerceptronTagger(),
	}, nil
}

// Tokenize splits text into sentences, then each sentence into words
func (a *Analyzer) Tokenize(text string) (words []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			words = nil
			err = fmt.Errorf("tokenize: %v: %w", r, ErrTagging)
		}
	}()

	for _, sentence := range a.sentences.Tokenize(text) {
		words = append(words, a.words.Tokenize(sentence)...)
	}
	return words, nil
}

// Tag tags words as one sequence
func (a *Analyzer) Tag(words []string) (tokens []Token, err error) {
	if len(words) == 0 {
		return []Token{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = fmt.Errorf("tag: %v: %w", r, ErrTagging)
		}
	}()

	tagged := a.tagger.Tag(words)
	tokens = make([]Token, len(tagged))
	for i, t := range tagged {
		tokens[i] = Token{Text: t.Text, Tag: t.Tag}
	}
	return tokens, nil
}

// TagText tokenizes text and tags the tokens with full sentence context
func TagText(tt TokenTagger, text string) ([]Token, error) {
	words, err := tt.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return tt.Tag(words)
}
