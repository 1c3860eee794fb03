package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFrequencyIndex(t *testing.T) {
	texts := []string{
		"Mozart wrote this opera",
		"This opera premiered in Vienna",
		"THIS OPERA, said Salieri",
	}

	ix, err := BuildFrequencyIndex(&fakeTagger{}, texts, DefaultUnusualThreshold)
	require.NoError(t, err)

	assert.Equal(t, 3, ix.Frequency("this"))
	assert.Equal(t, 3, ix.Frequency("OPERA"), "lookup is case-insensitive")
	assert.Equal(t, 1, ix.Frequency("mozart"))
	assert.Equal(t, 0, ix.Frequency("bach"))
	assert.Equal(t, 1, ix.Frequency(","))

	assert.False(t, ix.IsUnusual("opera"), "3 occurrences is above threshold 2")
	assert.True(t, ix.IsUnusual("vienna"), "1 occurrence is unusual")
	assert.False(t, ix.IsUnusual("bach"), "absent words are not in the unusual set")

	assert.Equal(t, 2, ix.Threshold())
	assert.Equal(t, 14, ix.Total())
	assert.Equal(t, 10, ix.Len())
}

func TestFrequencyIndex_ThresholdBoundary(t *testing.T) {
	texts := []string{"alpha beta beta gamma gamma gamma"}

	ix, err := BuildFrequencyIndex(&fakeTagger{}, texts, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, ix.Unusual())

	ix, err = BuildFrequencyIndex(&fakeTagger{}, texts, 0)
	require.NoError(t, err)
	assert.Empty(t, ix.Unusual())
}

func TestFrequencyIndex_Top(t *testing.T) {
	ix, err := BuildFrequencyIndex(&fakeTagger{}, []string{"b a b c c c"}, 2)
	require.NoError(t, err)

	assert.Equal(t, []WordCount{{"c", 3}, {"b", 2}}, ix.Top(2))
	assert.Len(t, ix.Top(-1), 3)
}

func TestBuildFrequencyIndex_Errors(t *testing.T) {
	_, err := BuildFrequencyIndex(&fakeTagger{}, nil, -1)
	assert.Error(t, err)

	_, err = BuildFrequencyIndex(&fakeTagger{fail: true}, []string{"x"}, 2)
	assert.ErrorIs(t, err, errFakeTagger)
}

func TestBuildFrequencyIndex_EmptyCorpus(t *testing.T) {
	ix, err := BuildFrequencyIndex(&fakeTagger{}, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Unusual())
}
