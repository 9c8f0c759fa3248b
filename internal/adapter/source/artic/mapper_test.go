package artic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/vitrine/internal/domain"
)

func ptr(s string) *string { return &s }

func TestMapSummaries(t *testing.T) {
	in := []Artwork{
		{ID: 1, Title: ptr("B"), ArtistDisplay: ptr("X"), ArtworkTypeTitle: ptr("Painting"), ImageID: ptr("abc")},
		{ID: 2, Title: ptr("untyped")},
		{ID: 3, Title: ptr("empty type"), ArtworkTypeTitle: ptr("")},
		{ID: 4, ArtworkTypeTitle: ptr("Print")},
	}

	assert.Equal(t, []domain.ArtworkSummary{
		{ID: 1, Title: "B", ArtistDisplay: "X", ArtworkTypeTitle: "Painting", ImageID: "abc"},
		{ID: 4, ArtworkTypeTitle: "Print"},
	}, MapSummaries(in))

	assert.Empty(t, MapSummaries(nil))
}

func TestMapDetailNulls(t *testing.T) {
	d := MapDetail(Artwork{ID: 7, Title: ptr("Study")})
	assert.Equal(t, 7, d.ID)
	assert.Equal(t, "Study", d.Title)
	assert.False(t, d.HasImage())
	assert.False(t, d.HasDescription())
	assert.Empty(t, d.CreditLine)
}
