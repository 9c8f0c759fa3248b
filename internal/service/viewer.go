package service

import (
	"errors"
	"log/slog"

	"github.com/mmcdole/vitrine/internal/adapter/source/artic"
	"github.com/mmcdole/vitrine/internal/domain"
)

// launcher abstracts opening URLs outside the terminal (consumer-defined interface)
type launcher interface {
	Open(url string) error
}

// ErrNoImage is returned when an image is requested for a record without one
var ErrNoImage = errors.New("artwork has no image")

// ViewerService opens artwork images and pages in the system browser
type ViewerService struct {
	launcher  launcher
	imageBase string
	logger    *slog.Logger
}

// NewViewerService creates a new viewer service
func NewViewerService(launcher launcher, imageBase string, logger *slog.Logger) *ViewerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewerService{
		launcher:  launcher,
		imageBase: imageBase,
		logger:    logger,
	}
}

// ImageURL returns the image address for a record at the given width
func (s *ViewerService) ImageURL(a domain.ArtworkSummary, width int) (string, bool) {
	return artic.ImageURL(s.imageBase, a.ImageID, width)
}

// OpenImage opens the record's image. Records without an image are never requested.
func (s *ViewerService) OpenImage(a domain.ArtworkSummary, width int) error {
	url, ok := s.ImageURL(a, width)
	if !ok {
		return ErrNoImage
	}
	s.logger.Info("opening image", "id", a.ID, "url", url)
	return s.launcher.Open(url)
}

// OpenPage opens the record's page on the museum website
func (s *ViewerService) OpenPage(id int) error {
	url := artic.WebURL(id)
	s.logger.Info("opening artwork page", "id", id, "url", url)
	return s.launcher.Open(url)
}
