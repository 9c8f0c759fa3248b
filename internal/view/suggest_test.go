package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/vitrine/internal/domain"
)

func TestSuggest(t *testing.T) {
	raw := []domain.ArtworkSummary{
		{ID: 1, Title: "Water Lilies"},
		{ID: 2, Title: "The Bedroom"},
		{ID: 3, Title: "Water Lilies"},
		{ID: 4, Title: "Nighthawks"},
	}

	got := Suggest(raw, "wtrlil", 3)
	assert.Equal(t, []string{"Water Lilies"}, got, "duplicates collapse")

	assert.Nil(t, Suggest(raw, "", 3))
	assert.Nil(t, Suggest(raw, "water", 0))
	assert.Empty(t, Suggest(raw, "qqq", 3))

	limited := Suggest(raw, "e", 1)
	assert.Len(t, limited, 1)
}
