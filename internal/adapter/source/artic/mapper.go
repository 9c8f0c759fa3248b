package artic

import (
	"strings"

	"github.com/mmcdole/vitrine/internal/domain"
)

// MapSummaries converts listing records, dropping those without an
// artwork type. API order is kept.
func MapSummaries(items []Artwork) []domain.ArtworkSummary {
	out := make([]domain.ArtworkSummary, 0, len(items))
	for _, a := range items {
		s := MapSummary(a)
		if s.ArtworkTypeTitle == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// MapSummary converts a single record; nulls become empty strings
func MapSummary(a Artwork) domain.ArtworkSummary {
	return domain.ArtworkSummary{
		ID:               a.ID,
		Title:            str(a.Title),
		ImageID:          strings.TrimSpace(str(a.ImageID)),
		ArtistDisplay:    str(a.ArtistDisplay),
		ArtworkTypeTitle: str(a.ArtworkTypeTitle),
	}
}

// MapDetail converts a detail record
func MapDetail(a Artwork) *domain.ArtworkDetail {
	return &domain.ArtworkDetail{
		ArtworkSummary: MapSummary(a),
		DateDisplay:    str(a.DateDisplay),
		MediumDisplay:  str(a.MediumDisplay),
		Description:    str(a.Description),
		Dimensions:     str(a.Dimensions),
		CreditLine:     str(a.CreditLine),
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
