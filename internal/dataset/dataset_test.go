package dataset

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/triviaflag/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"category": "HISTORY", "air_date": "2004-12-31", "question": "'<i>Henry VIII</i> ruled England'", "value": "$200", "answer": "Tudor", "round": "Jeopardy!", "show_number": "4680"},
  {"category": "SCIENCE", "question": 42, "answer": "x"},
  {"category": "WORDS", "answer": "y"}
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	res, err := Load(writeDataset(t, sampleJSON), "question")
	require.NoError(t, err)
	require.Len(t, res.Records, 3)

	first := res.Records[0]
	assert.Equal(t, "0", first.ID)
	assert.Equal(t, "Henry VIII ruled England", first.Text)
	assert.False(t, first.Malformed)
	assert.Equal(t, "HISTORY", first.Field("category"))

	assert.True(t, res.Records[1].Malformed, "non-string question")
	assert.True(t, res.Records[2].Malformed, "missing question")
	assert.Empty(t, res.Records[2].Text)

	require.Len(t, res.Malformed, 2)
	for _, e := range res.Malformed {
		assert.True(t, errors.Is(e, model.ErrMalformedRecord))
	}
}

func TestLoad_NonObjectElements(t *testing.T) {
	content := `[{"question": "Henry VIII ruled England"}, "oops", {"question": 5}, null, 7, [1, 2]]`
	res, err := Load(writeDataset(t, content), "question")
	require.NoError(t, err, "bad elements must not fail the whole file")
	require.Len(t, res.Records, 6)

	assert.False(t, res.Records[0].Malformed)
	assert.Equal(t, "Henry VIII ruled England", res.Records[0].Text)
	for i, rec := range res.Records[1:] {
		assert.True(t, rec.Malformed, "element %d", i+1)
		assert.Empty(t, rec.Text)
		assert.NotNil(t, rec.Fields)
	}

	require.Len(t, res.Malformed, 5)
	for _, e := range res.Malformed {
		assert.ErrorIs(t, e, model.ErrMalformedRecord)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), "question")
	assert.Error(t, err)

	_, err = Load(writeDataset(t, `{"not": "an array"}`), "question")
	assert.Error(t, err)
}

func evalsWithNumbers(n int) []model.Evaluation {
	evals := make([]model.Evaluation, n)
	for i := range evals {
		raw, _ := json.Marshal(i)
		evals[i] = model.Evaluation{
			Record: &model.Record{ID: string(raw), Fields: map[string]json.RawMessage{"id": raw}},
			Flags:  model.EmptyFlags(),
		}
		evals[i].Flags.HasNumber = i%2 == 0
	}
	return evals
}

func TestSample_Deterministic(t *testing.T) {
	evals := evalsWithNumbers(100)

	a := Sample(evals, model.FlagNumber, 10, 42)
	b := Sample(evals, model.FlagNumber, 10, 42)
	require.Len(t, a, 10)
	assert.Equal(t, a, b)

	for _, e := range a {
		assert.True(t, e.Flags.HasNumber)
	}
}

func TestSample_Bounds(t *testing.T) {
	evals := evalsWithNumbers(10)

	assert.Len(t, Sample(evals, model.FlagNumber, 1000, 1), 5, "capped at flagged count")
	assert.Empty(t, Sample(evals, model.FlagNumber, 0, 1))
	assert.Empty(t, Sample(evals, model.FlagNonEnglishWord, 10, 1))
}

func TestExportSamples(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")
	evals := evalsWithNumbers(6)

	paths, err := ExportSamples(dir, "Q", evals, DefaultTargets, 2, 42)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "Q_numbers.json"), paths[0])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.NotContains(t, row, "has_number", "samples carry original fields only")
	}

	data, err = os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestWriteAnnotated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "annotated.json")
	evals := evalsWithNumbers(2)
	evals[0].Flags.RomanNumerals = []string{"XIV"}
	evals[0].Flags.HasRomanNumeral = true

	require.NoError(t, WriteAnnotated(path, evals))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, float64(0), rows[0]["id"])
	assert.Equal(t, true, rows[0]["has_number"])
	assert.Equal(t, []any{"XIV"}, rows[0]["roman_numerals"])
	assert.Equal(t, []any{}, rows[1]["proper_nouns"])
}
