package artic

import (
	"fmt"
	"strings"
)

const (
	// DefaultImageBaseURL is the IIIF image service
	DefaultImageBaseURL = "https://www.artic.edu/iiif/2"
	// WebsiteURL hosts the public artwork pages
	WebsiteURL = "https://www.artic.edu"

	// GalleryImageWidth is the thumbnail width used for gallery cards
	GalleryImageWidth = 400
	// DetailImageWidth is the width the API recommends for full views
	DetailImageWidth = 843
)

// ImageURL builds the IIIF URL for an image at the given width.
// ok is false when the record has no image; callers show a placeholder.
func ImageURL(base, imageID string, width int) (string, bool) {
	if imageID == "" {
		return "", false
	}
	if base == "" {
		base = DefaultImageBaseURL
	}
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", strings.TrimRight(base, "/"), imageID, width), true
}

// WebURL returns the public page of an artwork
func WebURL(id int) string {
	return fmt.Sprintf("%s/artworks/%d", WebsiteURL, id)
}
