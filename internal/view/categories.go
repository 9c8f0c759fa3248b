package view

import (
	"maps"
	"slices"
)

// CategorySet is a set of artwork type titles.
// The zero value is an empty set; sets are never mutated after creation.
type CategorySet struct {
	m map[string]struct{}
}

// NewCategorySet builds a set from the given categories
func NewCategorySet(categories ...string) CategorySet {
	m := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		m[c] = struct{}{}
	}
	return CategorySet{m: m}
}

// Has reports membership
func (s CategorySet) Has(c string) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the number of categories in the set
func (s CategorySet) Len() int {
	return len(s.m)
}

// Empty reports whether nothing is selected
func (s CategorySet) Empty() bool {
	return len(s.m) == 0
}

// Sorted returns the members in byte order
func (s CategorySet) Sorted() []string {
	return slices.Sorted(maps.Keys(s.m))
}

// Equal reports whether both sets hold the same members
func (s CategorySet) Equal(o CategorySet) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for c := range s.m {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// ToggleCategory returns a new set with c added when absent and removed
// when present. The input set is left untouched.
func ToggleCategory(s CategorySet, c string) CategorySet {
	next := make(map[string]struct{}, len(s.m)+1)
	for k := range s.m {
		next[k] = struct{}{}
	}
	if _, ok := next[c]; ok {
		delete(next, c)
	} else {
		next[c] = struct{}{}
	}
	return CategorySet{m: next}
}
