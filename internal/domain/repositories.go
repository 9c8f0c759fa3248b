package domain

import "context"

// CollectionRepository reads artwork records from the remote collection.
// Implementations make exactly one request per call and never retry.
type CollectionRepository interface {
	// FetchCollection returns up to the configured limit of summaries in
	// API order. Records without an artwork type are dropped.
	FetchCollection(ctx context.Context) ([]ArtworkSummary, error)

	// FetchDetail returns one artwork. A missing record yields an error
	// matching ErrArtworkNotFound.
	FetchDetail(ctx context.Context, id int) (*ArtworkDetail, error)
}
