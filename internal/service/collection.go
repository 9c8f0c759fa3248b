package service

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/singleflight"

	"github.com/mmcdole/vitrine/internal/domain"
)

const collectionKey = "collection"

// CollectionService fetches the raw collection and artwork details.
// Callers replace their collection wholesale with each successful load.
type CollectionService struct {
	repo   domain.CollectionRepository
	logger *slog.Logger

	group singleflight.Group
}

// NewCollectionService creates a new collection service
func NewCollectionService(repo domain.CollectionRepository, logger *slog.Logger) *CollectionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollectionService{
		repo:   repo,
		logger: logger,
	}
}

// Load fetches the collection. Concurrent calls share one request; the
// context of the first caller governs it.
// Every caller gets its own copy of the result.
func (s *CollectionService) Load(ctx context.Context) ([]domain.ArtworkSummary, error) {
	v, err, shared := s.group.Do(collectionKey, func() (any, error) {
		return s.repo.FetchCollection(ctx)
	})
	if err != nil {
		s.logger.Error("collection load failed", "error", err, "shared", shared)
		return nil, err
	}

	items := v.([]domain.ArtworkSummary)
	s.logger.Info("collection loaded", "count", len(items), "shared", shared)
	return slices.Clone(items), nil
}

// Detail fetches the full record for one artwork
func (s *CollectionService) Detail(ctx context.Context, id int) (*domain.ArtworkDetail, error) {
	d, err := s.repo.FetchDetail(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			s.logger.Debug("detail request abandoned", "id", id, "error", err)
		} else {
			s.logger.Warn("detail load failed", "id", id, "error", err)
		}
		return nil, err
	}
	return d, nil
}
