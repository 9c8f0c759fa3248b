package domain

// ArtworkSummary is one record of the collection listing.
// Absent API values are carried as empty strings.
type ArtworkSummary struct {
	ID               int    // Collection-wide unique identifier
	Title            string // Display title
	ImageID          string // IIIF image identifier, empty when the record has no image
	ArtistDisplay    string // Free-form artist line, e.g. "Claude Monet\nFrench, 1840-1926"
	ArtworkTypeTitle string // Category, e.g. "Painting"
}

// HasImage reports whether an image can be requested for the record
func (a ArtworkSummary) HasImage() bool {
	return a.ImageID != ""
}

// Artist returns the first line of ArtistDisplay, which the API uses for
// the name. Nationality and dates follow on later lines.
func (a ArtworkSummary) Artist() string {
	for i := 0; i < len(a.ArtistDisplay); i++ {
		if a.ArtistDisplay[i] == '\n' {
			return a.ArtistDisplay[:i]
		}
	}
	return a.ArtistDisplay
}

// ArtworkDetail is the full record fetched for the detail view
type ArtworkDetail struct {
	ArtworkSummary

	DateDisplay   string
	MediumDisplay string
	Description   string // HTML as delivered by the API; empty when absent
	Dimensions    string
	CreditLine    string
}

// HasDescription reports whether the description block should be shown
func (d ArtworkDetail) HasDescription() bool {
	return PlainText(d.Description) != ""
}
