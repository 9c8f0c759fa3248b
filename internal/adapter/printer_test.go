package adapter

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/vitrine/internal/domain"
)

func init() {
	color.NoColor = true
}

func TestPrinterArtworks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	require.NoError(t, p.Artworks([]domain.ArtworkSummary{
		{ID: 1, Title: "Nighthawks", ArtistDisplay: "Edward Hopper\nAmerican, 1882-1967", ArtworkTypeTitle: "Painting", ImageID: "x"},
		{ID: 2, Title: "Fragment", ArtworkTypeTitle: "Textile"},
	}))

	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Nighthawks")
	assert.Contains(t, out, "Edward Hopper")
	assert.NotContains(t, out, "American")
	assert.Contains(t, out, "Textile")
}

func TestPrinterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Artworks(nil))
	assert.Equal(t, "No artworks match.\n", buf.String())
}

func TestPrinterGallery(t *testing.T) {
	var buf bytes.Buffer
	url := func(a domain.ArtworkSummary) (string, bool) {
		if !a.HasImage() {
			return "", false
		}
		return "https://img.test/" + a.ImageID, true
	}

	require.NoError(t, NewPrinter(&buf).Gallery([]domain.ArtworkSummary{
		{ID: 1, Title: "Nighthawks", ArtworkTypeTitle: "Painting", ImageID: "x"},
		{ID: 2, Title: "Fragment", ArtworkTypeTitle: "Textile"},
	}, url))

	out := buf.String()
	assert.Contains(t, out, "https://img.test/x")
	assert.Contains(t, out, "No Image")
}

func TestPrinterDetail(t *testing.T) {
	var buf bytes.Buffer
	d := &domain.ArtworkDetail{
		ArtworkSummary: domain.ArtworkSummary{ID: 3, Title: "Study"},
		MediumDisplay:  "Graphite on paper",
		Description:    "<p>An early <em>sketch</em>.</p>",
	}

	require.NoError(t, NewPrinter(&buf).Detail(d, "", "https://www.artic.edu/artworks/3"))

	out := buf.String()
	assert.Contains(t, out, "Study")
	assert.Contains(t, out, "Graphite on paper")
	assert.Contains(t, out, "No Image")
	assert.Contains(t, out, "An early sketch.")
	assert.NotContains(t, out, "Date")
}

func TestPrinterCategories(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Categories([]string{"Painting", "Print"}, map[string]int{"Painting": 3}))
	assert.Contains(t, buf.String(), "Painting")
	assert.Contains(t, buf.String(), "3")
}
