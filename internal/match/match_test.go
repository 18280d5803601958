package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var library = []Candidate{
	{ID: 1, TMDBID: 603, Title: "The Matrix", Year: 1999},
	{ID: 2, TMDBID: 0, Title: "Rocky II", Year: 1979},
	{ID: 3, TMDBID: 0, Title: "Amélie", Year: 2001},
	{ID: 4, TMDBID: 0, Title: "Dune", Year: 1984},
}

func TestIndex_FindByTMDBID(t *testing.T) {
	ix := NewIndex(library)
	r, ok := ix.Find(603, "completely different", 0, ConfidenceHigh)
	require.True(t, ok)
	assert.Equal(t, 1, r.ID)
	assert.Equal(t, ConfidenceHigh, r.Confidence)
}

func TestIndex_FindByTitle(t *testing.T) {
	ix := NewIndex(library)

	r, ok := ix.Find(0, "Amelie", 2001, ConfidenceMedium)
	require.True(t, ok)
	assert.Equal(t, 3, r.ID)

	r, ok = ix.Find(99, "Rocky 2", 1979, ConfidenceMedium)
	require.True(t, ok)
	assert.Equal(t, 2, r.ID)
}

func TestIndex_YearPenalty(t *testing.T) {
	ix := NewIndex(library)

	r, ok := ix.Find(0, "Dune", 1985, ConfidenceHigh)
	require.True(t, ok, "one year of drift is tolerated")
	assert.Equal(t, 4, r.ID)

	_, ok = ix.Find(0, "Dune", 2021, ConfidenceHigh)
	assert.False(t, ok, "the 2021 remake is a different film")
}

func TestIndex_SequelNumbers(t *testing.T) {
	ix := NewIndex(library)
	best := ix.Best("Rocky III", 0)
	assert.Less(t, best.Score, 0.95)
}

func TestIndex_NoMatch(t *testing.T) {
	ix := NewIndex(library)
	_, ok := ix.Find(0, "Zzyzx Road", 2006, ConfidenceLow)
	assert.False(t, ok)

	empty := NewIndex(nil)
	assert.Equal(t, 0, empty.Len())
	r := empty.Best("Anything", 0)
	assert.Equal(t, 0, r.ID)
	assert.Equal(t, ConfidenceNone, r.Confidence)
}

func TestConfidence_String(t *testing.T) {
	assert.Equal(t, "high", ConfidenceHigh.String())
	assert.Equal(t, "medium", ConfidenceMedium.String())
	assert.Equal(t, "low", ConfidenceLow.String())
	assert.Equal(t, "none", ConfidenceNone.String())
}
