package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleCategory(t *testing.T) {
	empty := CategorySet{}

	added := ToggleCategory(empty, "Painting")
	assert.True(t, added.Has("Painting"))
	assert.True(t, empty.Empty(), "input must not change")

	removed := ToggleCategory(added, "Painting")
	assert.True(t, removed.Empty())
	assert.True(t, added.Has("Painting"), "input must not change")
}

func TestToggleCategoryInvolution(t *testing.T) {
	sets := []CategorySet{
		{},
		NewCategorySet("Painting"),
		NewCategorySet("Painting", "Print"),
		NewCategorySet("Print", "Sculpture", "Textile"),
	}
	for _, s := range sets {
		for _, c := range []string{"Painting", "Print", "Photograph", ""} {
			twice := ToggleCategory(ToggleCategory(s, c), c)
			assert.Truef(t, twice.Equal(s), "toggle twice %q on %v gave %v", c, s.Sorted(), twice.Sorted())
		}
	}
}

func TestCategorySet(t *testing.T) {
	s := NewCategorySet("Print", "Painting", "Print")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"Painting", "Print"}, s.Sorted())
	assert.False(t, s.Has("Textile"))
	assert.True(t, s.Equal(NewCategorySet("Painting", "Print")))
	assert.False(t, s.Equal(NewCategorySet("Painting")))
	assert.False(t, s.Equal(NewCategorySet("Painting", "Textile")))

	var zero CategorySet
	assert.True(t, zero.Empty())
	assert.False(t, zero.Has("Print"))
	assert.Empty(t, zero.Sorted())
}
