package view

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/vitrine/internal/domain"
)

// Suggest offers up to n titles that loosely match query, closest first.
// It is meant for the empty-result case of the list view, where the
// substring search found nothing.
func Suggest(raw []domain.ArtworkSummary, query string, n int) []string {
	query = strings.TrimSpace(query)
	if query == "" || n <= 0 || len(raw) == 0 {
		return nil
	}

	titles := make([]string, len(raw))
	for i, a := range raw {
		titles[i] = a.Title
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.Stable(ranks)

	seen := make(map[string]struct{})
	var out []string
	for _, r := range ranks {
		if _, ok := seen[r.Target]; ok {
			continue
		}
		seen[r.Target] = struct{}{}
		out = append(out, r.Target)
		if len(out) == n {
			break
		}
	}
	return out
}
