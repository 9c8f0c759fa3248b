package tui

import "github.com/mmcdole/vitrine/internal/domain"

// Message types for the TUI

// ErrMsg represents an error from a background action
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CollectionLoadedMsg carries a freshly fetched collection
type CollectionLoadedMsg struct {
	Artworks []domain.ArtworkSummary
}

// CollectionFailedMsg signals that the collection could not be fetched
type CollectionFailedMsg struct {
	Err error
}

// DetailLoadedMsg carries the result of a detail request. Seq identifies
// the request; only the most recent one is applied.
type DetailLoadedMsg struct {
	Seq    uint64
	ID     int
	Detail *domain.ArtworkDetail
	Err    error
}

// NavigateMsg requests a route change
type NavigateMsg struct {
	Route Route
}

// URLOpenedMsg signals that a URL was handed to the browser
type URLOpenedMsg struct {
	URL  string
	What string
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
