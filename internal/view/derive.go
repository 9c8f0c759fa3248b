package view

import (
	"slices"
	"sort"
	"strings"

	"github.com/mmcdole/vitrine/internal/domain"
)

// DeriveList filters raw by the search query and orders the result by
// the chosen key. The sort is stable: records with equal keys stay in
// fetch order in both directions. raw is never modified.
func DeriveList(raw []domain.ArtworkSummary, p ListParams, coll *Collator) DerivedView {
	if coll == nil {
		coll = DefaultCollator()
	}

	q := strings.ToLower(p.Query)
	items := make([]domain.ArtworkSummary, 0, len(raw))
	for _, a := range raw {
		if matchesQuery(a, q) {
			items = append(items, a)
		}
	}

	slices.SortStableFunc(items, func(a, b domain.ArtworkSummary) int {
		c := coll.Compare(p.Key.value(a), p.Key.value(b))
		if p.Direction == Descending {
			return -c
		}
		return c
	})

	return newDerivedView(items)
}

// matchesQuery expects q already lowercased; empty q matches everything
func matchesQuery(a domain.ArtworkSummary, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.ArtistDisplay), q)
}

// DeriveGallery keeps the records whose category is selected. An empty
// selection shows the whole collection. Fetch order is preserved.
func DeriveGallery(raw []domain.ArtworkSummary, p GalleryParams) DerivedView {
	if p.Categories.Empty() {
		return newDerivedView(slices.Clone(raw))
	}

	items := make([]domain.ArtworkSummary, 0, len(raw))
	for _, a := range raw {
		if p.Categories.Has(a.ArtworkTypeTitle) {
			items = append(items, a)
		}
	}
	return newDerivedView(items)
}

// Categories returns the distinct artwork types present in raw, in byte order
func Categories(raw []domain.ArtworkSummary) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range raw {
		if _, ok := seen[a.ArtworkTypeTitle]; ok {
			continue
		}
		seen[a.ArtworkTypeTitle] = struct{}{}
		out = append(out, a.ArtworkTypeTitle)
	}
	sort.Strings(out)
	return out
}

// CategoryCounts returns how many records carry each artwork type
func CategoryCounts(raw []domain.ArtworkSummary) map[string]int {
	counts := make(map[string]int)
	for _, a := range raw {
		counts[a.ArtworkTypeTitle]++
	}
	return counts
}
