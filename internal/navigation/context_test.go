package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighbors(t *testing.T) {
	ctx := Capture([]int{5, 7, 9})

	tests := []struct {
		name    string
		current int
		want    Neighbors
	}{
		{"middle", 7, Neighbors{Prev: 5, Next: 9, HasPrev: true, HasNext: true}},
		{"first has no prev", 5, Neighbors{Next: 7, HasNext: true}},
		{"last has no next", 9, Neighbors{Prev: 7, HasPrev: true}},
		{"absent id has neither", 8, Neighbors{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ctx.Neighbors(tt.current))
		})
	}
}

func TestNeighborsSingleAndEmpty(t *testing.T) {
	assert.Equal(t, Neighbors{}, Capture([]int{3}).Neighbors(3))
	assert.Equal(t, Neighbors{}, Context{}.Neighbors(3))
}

func TestCaptureCopies(t *testing.T) {
	ids := []int{1, 2, 3}
	ctx := Capture(ids)

	ids[0] = 99
	assert.Equal(t, []int{1, 2, 3}, ctx.IDs())

	out := ctx.IDs()
	out[1] = 42
	assert.Equal(t, []int{1, 2, 3}, ctx.IDs())
}

func TestGotoKeepsContext(t *testing.T) {
	ctx := Capture([]int{5, 7, 9})

	n := ctx.Neighbors(5)
	assert.True(t, n.HasNext)

	// moving to the neighbour walks the same frozen sequence
	n = ctx.Neighbors(n.Next)
	assert.Equal(t, Neighbors{Prev: 5, Next: 9, HasPrev: true, HasNext: true}, n)
	assert.Equal(t, []int{5, 7, 9}, ctx.IDs())
}

func TestPosition(t *testing.T) {
	ctx := Capture([]int{5, 7, 9})

	pos, total, ok := ctx.Position(7)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)
	assert.Equal(t, 3, total)

	_, total, ok = ctx.Position(1)
	assert.False(t, ok)
	assert.Equal(t, 3, total)

	assert.True(t, Context{}.Empty())
	assert.Equal(t, 3, ctx.Len())
}
