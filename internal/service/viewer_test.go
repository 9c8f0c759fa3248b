package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/vitrine/internal/adapter/source/artic"
	"github.com/mmcdole/vitrine/internal/domain"
)

type recordingLauncher struct {
	opened []string
}

func (r *recordingLauncher) Open(url string) error {
	r.opened = append(r.opened, url)
	return nil
}

func TestViewerService(t *testing.T) {
	l := &recordingLauncher{}
	svc := NewViewerService(l, "https://images.example/iiif/2", nil)

	err := svc.OpenImage(domain.ArtworkSummary{ID: 1, ImageID: "abc"}, artic.DetailImageWidth)
	require.NoError(t, err)

	err = svc.OpenImage(domain.ArtworkSummary{ID: 2}, artic.DetailImageWidth)
	assert.ErrorIs(t, err, ErrNoImage)

	require.NoError(t, svc.OpenPage(27992))

	assert.Equal(t, []string{
		"https://images.example/iiif/2/abc/full/843,/0/default.jpg",
		"https://www.artic.edu/artworks/27992",
	}, l.opened)
}
