// Package navigation holds the id sequence a detail view walks through.
//
// A Context is captured from the browsing view at the moment a record is
// opened. Later changes to search, sort or category selection do not
// affect it, so prev/next always follow the ordering the user saw.
package navigation

import "slices"

// Context is a frozen, ordered sequence of artwork ids.
// The zero value is an empty context, which is what a record reached by
// direct link gets.
type Context struct {
	ids []int
}

// Capture copies ids into a new context
func Capture(ids []int) Context {
	return Context{ids: slices.Clone(ids)}
}

// IDs returns a copy of the captured sequence
func (c Context) IDs() []int {
	return slices.Clone(c.ids)
}

// Len returns the length of the captured sequence
func (c Context) Len() int {
	return len(c.ids)
}

// Empty reports whether the context holds no ids
func (c Context) Empty() bool {
	return len(c.ids) == 0
}

// Index returns the position of id in the sequence, or -1
func (c Context) Index(id int) int {
	return slices.Index(c.ids, id)
}

// Neighbors are the records before and after the current one
type Neighbors struct {
	Prev    int
	Next    int
	HasPrev bool
	HasNext bool
}

// Neighbors looks current up by value. An id that is not in the sequence
// has neither neighbour.
func (c Context) Neighbors(current int) Neighbors {
	i := c.Index(current)
	if i < 0 {
		return Neighbors{}
	}

	var n Neighbors
	if i > 0 {
		n.Prev, n.HasPrev = c.ids[i-1], true
	}
	if i < len(c.ids)-1 {
		n.Next, n.HasNext = c.ids[i+1], true
	}
	return n
}

// Position returns the 1-based position of current and the sequence
// length, for "3 / 17" style indicators. ok is false when current is not
// in the sequence.
func (c Context) Position(current int) (pos, total int, ok bool) {
	i := c.Index(current)
	if i < 0 {
		return 0, len(c.ids), false
	}
	return i + 1, len(c.ids), true
}
