package source

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mmcdole/vitrine/internal/adapter"
	"github.com/mmcdole/vitrine/internal/adapter/source/artic"
	"github.com/mmcdole/vitrine/internal/domain"
)

// NewCollection creates the collection repository backed by the public API.
// This factory keeps callers independent of the concrete client.
func NewCollection(cfg *adapter.APIConfig, logger *slog.Logger) (domain.CollectionRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("api config is nil")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", cfg.BaseURL)
	}

	return artic.NewClient(cfg.BaseURL, logger,
		artic.WithLimit(cfg.Limit),
		artic.WithTimeout(cfg.Timeout),
		artic.WithUserAgent(cfg.UserAgent),
	), nil
}

// NewCollectionFromConfig creates a collection repository from the application config
func NewCollectionFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CollectionRepository, error) {
	return NewCollection(&cfg.API, logger)
}
