package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortBy(t *testing.T) {
	p := DefaultListParams()
	assert.Equal(t, ListParams{Key: SortTitle, Direction: Ascending}, p)

	p = p.SortBy(SortTitle)
	assert.Equal(t, Descending, p.Direction, "active key flips direction")

	p = p.SortBy(SortArtist)
	assert.Equal(t, ListParams{Key: SortArtist, Direction: Ascending}, p, "other key resets to ascending")

	p = p.WithQuery("monet").SortBy(SortArtist)
	assert.Equal(t, ListParams{Query: "monet", Key: SortArtist, Direction: Descending}, p)
}

func TestParseSortKey(t *testing.T) {
	for in, want := range map[string]SortKey{
		"":               SortTitle,
		"title":          SortTitle,
		"Artist":         SortArtist,
		"artist_display": SortArtist,
	} {
		got, err := ParseSortKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortKey("date")
	assert.Error(t, err)
}

func TestNewCollator(t *testing.T) {
	c, err := NewCollator("")
	require.NoError(t, err)
	assert.Equal(t, "en", c.Language())
	assert.Negative(t, c.Compare("apple", "Banana"))

	_, err = NewCollator("not a tag!")
	assert.Error(t, err)
}
