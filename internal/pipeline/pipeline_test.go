package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/triviaflag/internal/lexicon"
	"github.com/ppiankov/triviaflag/internal/model"
	"github.com/ppiankov/triviaflag/internal/nlp"
)

var errBoom = errors.New("tagger exploded")

// tableTagger splits on whitespace, detaches trailing periods and tags from
// a table (default NN). Tagging fails for any sequence containing "boom".
type tableTagger struct {
	tags map[string]string
}

func (t *tableTagger) Tokenize(text string) ([]string, error) {
	var out []string
	for _, field := range strings.Fields(text) {
		word := strings.TrimRight(field, ".")
		if word != "" {
			out = append(out, word)
		}
		if word != field {
			out = append(out, ".")
		}
	}
	return out, nil
}

func (t *tableTagger) Tag(words []string) ([]nlp.Token, error) {
	out := make([]nlp.Token, len(words))
	for i, w := range words {
		if w == "boom" {
			return nil, errBoom
		}
		tag, ok := t.tags[w]
		if !ok {
			tag = "NN"
		}
		out[i] = nlp.Token{Text: w, Tag: tag}
	}
	return out, nil
}

func newTagger() *tableTagger {
	return &tableTagger{tags: map[string]string{
		"Henry": "NNP", "V": "NNP", "ruled": "VBD", "England": "NNP", "in": "IN",
		"1415": "CD", ".": ".", "The": "DT", "of": "IN", "is": "VBZ", "a": "DT",
		"A": "DT", "from": "IN", "Zanzibar": "NNP", "goes": "VBZ", "the": "DT",
	}}
}

func newResources() *lexicon.Resources {
	return &lexicon.Resources{
		WordNet:   lexicon.NewWordNet(),
		Wordlist:  lexicon.NewWordlist([]string{"ruled", "capital", "city", "dynamite"}),
		Stopwords: lexicon.DefaultStopwords(),
	}
}

func testConfig(workers int) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Lexicon.Mode = "wordlist"
	cfg.Detection.UnusualThreshold = 1
	cfg.Concurrency.Workers = workers
	return cfg
}

func testRecords(t *testing.T) []*model.Record {
	t.Helper()
	texts := []string{
		"Henry V ruled England in 1415.",
		"The capital of England is a city.",
		"A dachshund from Zanzibar",
	}

	var records []*model.Record
	for i, text := range texts {
		raw, err := json.Marshal(text)
		require.NoError(t, err)
		rec, err := model.NewRecord(string(rune('0'+i)), map[string]json.RawMessage{"question": raw}, "question")
		require.NoError(t, err)
		records = append(records, rec)
	}

	malformed, err := model.NewRecord("3", map[string]json.RawMessage{"answer": json.RawMessage(`"x"`)}, "question")
	require.ErrorIs(t, err, model.ErrMalformedRecord)
	return append(records, malformed)
}

func newTestPipeline(t *testing.T, workers int) *Pipeline {
	t.Helper()
	p, err := NewPipeline(testConfig(workers), newResources(), newTagger(), nil)
	require.NoError(t, err)
	return p
}

func TestRun_Flags(t *testing.T) {
	p := newTestPipeline(t, 2)
	records := testRecords(t)

	result, err := p.Run(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, result.Evaluations, len(records))

	henry := result.Evaluations[0].Flags
	assert.Equal(t, []string{"V"}, henry.RomanNumerals)
	assert.True(t, henry.HasRomanNumeral)
	assert.True(t, henry.HasNumericalValue)
	assert.False(t, henry.HasSpelledNumber)
	assert.True(t, henry.HasNumber)
	assert.Empty(t, henry.NonEnglishWords)
	assert.Equal(t, []string{"Henry", "V", "England"}, henry.ProperNouns)
	assert.True(t, henry.HasUnusualProperNoun, "henry occurs once")
	assert.Equal(t, []string{"Henry", "V"}, result.Evaluations[0].UnusualProperNouns)

	capital := result.Evaluations[1].Flags
	assert.False(t, capital.HasNumber)
	assert.False(t, capital.HasNonEnglishWord)
	assert.Equal(t, []string{"England"}, capital.ProperNouns)
	assert.False(t, capital.HasUnusualProperNoun, "england occurs twice")
	assert.Empty(t, result.Evaluations[1].UnusualProperNouns)

	dachshund := result.Evaluations[2].Flags
	assert.Equal(t, []string{"dachshund"}, dachshund.NonEnglishWords)
	assert.True(t, dachshund.HasNonEnglishWord)
	assert.True(t, dachshund.HasUnusualProperNoun)
	assert.Empty(t, dachshund.RomanNumerals, "a leading A has no left context")

	malformed := result.Evaluations[3]
	assert.Equal(t, model.EmptyFlags(), malformed.Flags)
	assert.Len(t, malformed.Warnings, 1)

	assert.Equal(t, 4, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Malformed)
	assert.Equal(t, 1, result.Summary.Number)
	assert.Equal(t, 1, result.Summary.NonEnglishWord)
	assert.Equal(t, 2, result.Summary.UnusualProperNoun)

	assert.Equal(t, 2, result.Index.Frequency("England"))
	assert.Positive(t, p.CachedTags(), "isolated noun checks are memoized")
}

func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	records := testRecords(t)
	for i := 0; i < 50; i++ {
		records = append(records, testRecords(t)...)
	}

	single, err := newTestPipeline(t, 1).Run(context.Background(), records)
	require.NoError(t, err)
	many, err := newTestPipeline(t, 8).Run(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, many.Evaluations, len(single.Evaluations))
	for i := range single.Evaluations {
		assert.Equal(t, single.Evaluations[i].Flags, many.Evaluations[i].Flags, "record %d", i)
	}
	assert.Equal(t, single.Summary, many.Summary)
}

func TestRun_TaggingFailureIsContained(t *testing.T) {
	p := newTestPipeline(t, 2)
	records := []*model.Record{
		{ID: "0", Text: "boom goes the dynamite 3 times"},
		{ID: "1", Text: "A dachshund from Zanzibar"},
	}

	result, err := p.Run(context.Background(), records)
	require.NoError(t, err)

	failed := result.Evaluations[0]
	require.Len(t, failed.Warnings, 1)
	assert.Contains(t, failed.Warnings[0], errBoom.Error())
	assert.True(t, failed.Flags.HasNumericalValue, "number flags do not depend on tagging")
	assert.Empty(t, failed.Flags.NonEnglishWords)
	assert.NotNil(t, failed.Flags.ProperNouns)
	assert.False(t, failed.Flags.HasUnusualProperNoun)

	assert.True(t, result.Evaluations[1].Flags.HasNonEnglishWord)
}

func TestRun_Cancelled(t *testing.T) {
	p := newTestPipeline(t, 1)
	var records []*model.Record
	for i := 0; i < 200; i++ {
		records = append(records, testRecords(t)...)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, records)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	result, err := newTestPipeline(t, 2).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Evaluations)
	assert.Equal(t, 0, result.Index.Len())
}

func TestEvaluator_RequiresIndex(t *testing.T) {
	_, err := newTestPipeline(t, 1).Evaluator(nil)
	assert.Error(t, err)
}

func TestNewPipeline_UnknownMode(t *testing.T) {
	cfg := testConfig(1)
	cfg.Lexicon.Mode = "klingon"
	_, err := NewPipeline(cfg, newResources(), newTagger(), nil)
	assert.Error(t, err)
}

func TestBuildIndex_NegativeThreshold(t *testing.T) {
	cfg := testConfig(1)
	cfg.Detection.UnusualThreshold = -1
	p, err := NewPipeline(cfg, newResources(), newTagger(), nil)
	require.NoError(t, err)

	_, err = p.BuildIndex(testRecords(t))
	assert.Error(t, err)
}
