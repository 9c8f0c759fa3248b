package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for collection operations
var (
	// ErrArtworkNotFound indicates the requested artwork does not exist
	ErrArtworkNotFound = errors.New("artwork not found")

	// ErrServerOffline indicates the collection API is unreachable
	ErrServerOffline = errors.New("collection API is unreachable")

	// ErrUnexpectedStatus indicates the API answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// FetchKind tells which request failed
type FetchKind int

const (
	KindCollection FetchKind = iota
	KindDetail
)

func (k FetchKind) String() string {
	switch k {
	case KindCollection:
		return "collection"
	case KindDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// FetchError is returned by every CollectionRepository call that fails.
// Presentation decides on Kind: a collection failure replaces the whole
// screen, a detail failure only affects the detail view.
type FetchError struct {
	Kind FetchKind
	ID   int // Artwork ID for KindDetail, zero otherwise
	Err  error
}

func (e *FetchError) Error() string {
	if e.Kind == KindDetail {
		return fmt.Sprintf("fetch artwork %d: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("fetch collection: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsCollectionError reports whether err is a failed collection fetch
func IsCollectionError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindCollection
}

// IsDetailError reports whether err is a failed detail fetch
func IsDetailError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindDetail
}
