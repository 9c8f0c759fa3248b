package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/navigation"
)

// RouteKind identifies a screen
type RouteKind int

const (
	RouteGallery RouteKind = iota
	RouteList
	RouteArtwork
)

func (k RouteKind) String() string {
	switch k {
	case RouteList:
		return "list"
	case RouteArtwork:
		return "artwork"
	default:
		return "gallery"
	}
}

// Route is the current screen. For the artwork screen it carries the
// id sequence captured when the record was opened and the browsing
// screen to return to.
type Route struct {
	Kind      RouteKind
	ArtworkID int
	Context   navigation.Context
	From      RouteKind
}

// ParseRoute resolves a path. "/" resolves to the gallery.
func ParseRoute(path string) (Route, error) {
	p := strings.TrimSuffix(strings.TrimSpace(path), "/")
	switch p {
	case "", "/gallery":
		return Route{Kind: RouteGallery}, nil
	case "/list":
		return Route{Kind: RouteList}, nil
	}

	if rest, ok := strings.CutPrefix(p, "/artwork/"); ok {
		id, err := strconv.Atoi(rest)
		if err != nil || id <= 0 {
			return Route{}, fmt.Errorf("invalid artwork id %q", rest)
		}
		return Route{Kind: RouteArtwork, ArtworkID: id, From: RouteGallery}, nil
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}

// Path renders the route as a path
func (r Route) Path() string {
	switch r.Kind {
	case RouteList:
		return "/list"
	case RouteArtwork:
		return fmt.Sprintf("/artwork/%d", r.ArtworkID)
	default:
		return "/gallery"
	}
}

// openArtwork opens a record from a browsing screen, freezing the ids of
// the view it was opened from
func (m *Model) openArtwork(id int, ids []int) tea.Cmd {
	return m.navigate(Route{
		Kind:      RouteArtwork,
		ArtworkID: id,
		Context:   navigation.Capture(ids),
		From:      m.route.Kind,
	})
}

// gotoArtwork moves the detail screen to another record, keeping the
// captured sequence and origin
func (m *Model) gotoArtwork(id int) tea.Cmd {
	return m.navigate(Route{
		Kind:      RouteArtwork,
		ArtworkID: id,
		Context:   m.route.Context,
		From:      m.route.From,
	})
}

// back leaves the detail screen for the screen it was opened from
func (m *Model) back() tea.Cmd {
	return m.navigate(Route{Kind: m.route.From})
}

// navigate switches screens. Entering the artwork screen starts a new
// detail request and cancels the one in flight.
func (m *Model) navigate(r Route) tea.Cmd {
	m.cancelPendingDetail()
	m.route = r
	m.logger.Debug("navigate", "path", r.Path(), "context", r.Context.Len())

	switch r.Kind {
	case RouteArtwork:
		m.detailSeq++
		ctx, cancel := context.WithTimeout(context.Background(), m.requestTimeout)
		m.cancelDetail = cancel
		m.detail.ShowLoading(r.ArtworkID, r.Context)
		m.updateLayout()
		return LoadDetailCmd(ctx, m.collection, m.detailSeq, r.ArtworkID)
	case RouteList:
		m.list.SetFocused(true)
	case RouteGallery:
		m.panel.SetFocused(false)
		m.gallery.SetFocused(true)
	}
	m.updateLayout()
	return nil
}

func (m *Model) cancelPendingDetail() {
	if m.cancelDetail != nil {
		m.cancelDetail()
		m.cancelDetail = nil
	}
}
