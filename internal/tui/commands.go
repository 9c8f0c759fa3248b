package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/adapter/source/artic"
	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/service"
)

// Command factories for async operations

// LoadCollectionCmd fetches the artwork collection
func LoadCollectionCmd(svc *service.CollectionService, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		artworks, err := svc.Load(ctx)
		if err != nil {
			return CollectionFailedMsg{Err: err}
		}
		return CollectionLoadedMsg{Artworks: artworks}
	}
}

// LoadDetailCmd fetches one artwork. The caller owns ctx and cancels it
// when the request is superseded.
func LoadDetailCmd(ctx context.Context, svc *service.CollectionService, seq uint64, id int) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.Detail(ctx, id)
		return DetailLoadedMsg{Seq: seq, ID: id, Detail: detail, Err: err}
	}
}

// OpenImageCmd opens the image of an artwork at the given width in the browser
func OpenImageCmd(svc *service.ViewerService, a domain.ArtworkSummary, width int) tea.Cmd {
	return func() tea.Msg {
		if err := svc.OpenImage(a, width); err != nil {
			return ErrMsg{Err: err, Context: "opening image"}
		}
		url, _ := svc.ImageURL(a, width)
		return URLOpenedMsg{URL: url, What: "image"}
	}
}

// OpenPageCmd opens the museum web page of an artwork
func OpenPageCmd(svc *service.ViewerService, id int) tea.Cmd {
	return func() tea.Msg {
		if err := svc.OpenPage(id); err != nil {
			return ErrMsg{Err: err, Context: "opening web page"}
		}
		return URLOpenedMsg{URL: artic.WebURL(id), What: "web page"}
	}
}

// TickCmd creates a tick command for animations
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// navigateCmd delivers a route change through the update loop
func navigateCmd(r Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: r}
	}
}
