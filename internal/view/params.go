package view

import (
	"fmt"
	"strings"

	"github.com/mmcdole/vitrine/internal/domain"
)

// SortKey selects the field the list view is ordered by
type SortKey int

const (
	SortTitle SortKey = iota
	SortArtist
)

// SortKeys lists the keys in the order they are offered to the user
var SortKeys = []SortKey{SortTitle, SortArtist}

func (k SortKey) String() string {
	switch k {
	case SortArtist:
		return "Artist"
	default:
		return "Title"
	}
}

// value returns the string the key compares on
func (k SortKey) value(a domain.ArtworkSummary) string {
	if k == SortArtist {
		return a.ArtistDisplay
	}
	return a.Title
}

// ParseSortKey accepts the names used on the command line and in config
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "title":
		return SortTitle, nil
	case "artist", "artist_display":
		return SortArtist, nil
	default:
		return SortTitle, fmt.Errorf("unknown sort key %q (want title or artist)", s)
	}
}

// Direction of the list ordering
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Arrow is the indicator shown next to the active sort key
func (d Direction) Arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// ListParams are the user choices that shape the list view.
// Values are replaced, never mutated.
type ListParams struct {
	Query     string
	Key       SortKey
	Direction Direction
}

// DefaultListParams is title ascending with no search
func DefaultListParams() ListParams {
	return ListParams{Key: SortTitle, Direction: Ascending}
}

// WithQuery returns p with a new search query
func (p ListParams) WithQuery(q string) ListParams {
	p.Query = q
	return p
}

// SortBy applies a sort-key selection: choosing the active key flips the
// direction, choosing another key switches to it ascending.
func (p ListParams) SortBy(key SortKey) ListParams {
	if p.Key == key {
		p.Direction = p.Direction.Reverse()
		return p
	}
	p.Key = key
	p.Direction = Ascending
	return p
}

// GalleryParams are the user choices that shape the gallery view
type GalleryParams struct {
	Categories CategorySet
}

// Toggle returns params with category c toggled
func (p GalleryParams) Toggle(c string) GalleryParams {
	return GalleryParams{Categories: ToggleCategory(p.Categories, c)}
}

// Clear returns params with no category selected
func (p GalleryParams) Clear() GalleryParams {
	return GalleryParams{}
}

// DerivedView is a rendered collection and its id ordering.
// IDs[i] is always Items[i].ID.
type DerivedView struct {
	Items []domain.ArtworkSummary
	IDs   []int
}

func newDerivedView(items []domain.ArtworkSummary) DerivedView {
	ids := make([]int, len(items))
	for i, a := range items {
		ids[i] = a.ID
	}
	return DerivedView{Items: items, IDs: ids}
}

// Len returns the number of records in the view
func (v DerivedView) Len() int {
	return len(v.Items)
}
