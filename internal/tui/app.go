package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/adapter/source/artic"
	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/service"
	"github.com/mmcdole/vitrine/internal/tui/components"
	"github.com/mmcdole/vitrine/internal/view"
)

// CollectionState tracks the collection fetch
type CollectionState int

const (
	CollectionLoading CollectionState = iota
	CollectionReady
	CollectionFailed
)

// User-facing messages
const (
	CollectionErrorText = "Could not load artworks. Please try again later."
	SuggestionCount     = 3

	tickInterval   = 100 * time.Millisecond
	statusDuration = 3 * time.Second
)

// Options configures the model
type Options struct {
	Collator       *view.Collator
	RequestTimeout time.Duration
	GalleryColumns int
	InitialRoute   Route
	Logger         *slog.Logger
}

// Model is the main Bubble Tea model for the application.
// View parameters are immutable values; every user action replaces them
// and re-derives the rendered collections.
type Model struct {
	collection *service.CollectionService
	viewer     *service.ViewerService
	logger     *slog.Logger
	collator   *view.Collator

	requestTimeout time.Duration
	// direct link held back until the collection has loaded
	pendingRoute *Route

	// Data
	state      CollectionState
	raw        []domain.ArtworkSummary
	categories []string
	counts     map[string]int
	reloading  bool

	// View parameters and their derivations
	listParams    view.ListParams
	galleryParams view.GalleryParams
	listView      view.DerivedView
	galleryView   view.DerivedView

	// Routing
	route        Route
	detailSeq    uint64
	cancelDetail context.CancelFunc

	// UI components
	list      components.ArtworkList
	gallery   components.Gallery
	panel     components.CategoryPanel
	detail    components.DetailView
	sortModal components.SortModal
	help      help.Model
	showHelp  bool

	// Dimensions
	Width  int
	Height int
	Ready  bool

	// Status bar
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int
}

// NewModel creates a new application model
func NewModel(collection *service.CollectionService, viewer *service.ViewerService, opts Options) Model {
	if opts.Collator == nil {
		opts.Collator = view.DefaultCollator()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = artic.DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	m := Model{
		collection:     collection,
		viewer:         viewer,
		logger:         opts.Logger,
		collator:       opts.Collator,
		requestTimeout: opts.RequestTimeout,
		listParams:     view.DefaultListParams(),
		list:           components.NewArtworkList(),
		gallery:        components.NewGallery(opts.GalleryColumns),
		panel:          components.NewCategoryPanel(),
		detail:         components.NewDetailView(),
		sortModal:      components.NewSortModal(),
		help:           help.New(),
	}
	m.route = Route{Kind: opts.InitialRoute.Kind, From: opts.InitialRoute.From}
	if m.route.Kind == RouteArtwork {
		initial := opts.InitialRoute
		m.pendingRoute = &initial
		m.route = Route{Kind: initial.From}
	}
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCollectionCmd(m.collection, m.requestTimeout),
		TickCmd(tickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(tickInterval)

	case CollectionLoadedMsg:
		m.setCollection(msg.Artworks)
		m.StatusMsg = fmt.Sprintf("Loaded %d artworks", len(msg.Artworks))
		m.StatusIsErr = false
		if m.pendingRoute != nil {
			r := *m.pendingRoute
			m.pendingRoute = nil
			return m, tea.Batch(ClearStatusCmd(statusDuration), navigateCmd(r))
		}
		return m, ClearStatusCmd(statusDuration)

	case CollectionFailedMsg:
		m.reloading = false
		if m.state == CollectionReady {
			// a manual reload failed; the loaded collection stays usable
			m.logger.Warn("collection reload failed", "error", msg.Err)
			m.StatusMsg = CollectionErrorText
			m.StatusIsErr = true
			return m, ClearStatusCmd(statusDuration)
		}
		m.logger.Error("collection load failed", "error", msg.Err)
		m.state = CollectionFailed
		return m, nil

	case DetailLoadedMsg:
		m.applyDetail(msg)
		return m, nil

	case NavigateMsg:
		cmd := m.navigate(msg.Route)
		return m, cmd

	case URLOpenedMsg:
		m.StatusMsg = "Opened " + msg.What
		m.StatusIsErr = false
		return m, ClearStatusCmd(statusDuration)

	case ErrMsg:
		m.logger.Error("action failed", "context", msg.Context, "error", msg.Err)
		m.StatusMsg = msg.Error()
		if errors.Is(msg.Err, service.ErrNoImage) {
			m.StatusMsg = "No Image"
		}
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusDuration)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(statusDuration)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// setCollection replaces the raw collection and re-derives every view
func (m *Model) setCollection(artworks []domain.ArtworkSummary) {
	m.raw = artworks
	m.state = CollectionReady
	m.reloading = false
	m.categories = view.Categories(artworks)
	m.counts = view.CategoryCounts(artworks)
	m.panel.SetCategories(m.categories, m.counts, m.galleryParams.Categories)
	m.rederiveList()
	m.rederiveGallery()
}

// setListParams replaces the list parameters and re-derives the list
func (m *Model) setListParams(p view.ListParams) {
	m.listParams = p
	m.rederiveList()
}

// setGalleryParams replaces the gallery parameters and re-derives the gallery
func (m *Model) setGalleryParams(p view.GalleryParams) {
	m.galleryParams = p
	m.panel.SetSelection(p.Categories)
	m.rederiveGallery()
}

func (m *Model) rederiveList() {
	m.listView = view.DeriveList(m.raw, m.listParams, m.collator)
	m.list.SetItems(m.listView, m.listParams, len(m.raw))

	var suggestions []string
	if m.listView.Len() == 0 && m.listParams.Query != "" {
		suggestions = view.Suggest(m.raw, m.listParams.Query, SuggestionCount)
	}
	m.list.SetSuggestions(suggestions)
}

func (m *Model) rederiveGallery() {
	m.galleryView = view.DeriveGallery(m.raw, m.galleryParams)
	m.gallery.SetItems(m.galleryView, m.galleryParams.Categories.Len())
}

// applyDetail applies a detail response when it answers the most recent
// request; anything else is stale and dropped
func (m *Model) applyDetail(msg DetailLoadedMsg) {
	if m.route.Kind != RouteArtwork || msg.Seq != m.detailSeq {
		m.logger.Debug("dropping stale detail response", "id", msg.ID, "seq", msg.Seq, "current", m.detailSeq)
		return
	}
	m.cancelPendingDetail()

	if msg.Err != nil {
		m.logger.Warn("artwork detail unavailable", "id", msg.ID, "not_found", components.IsNotFound(msg.Err), "error", msg.Err)
		m.detail.ShowError(msg.Err)
		return
	}

	imageURL := ""
	if m.viewer != nil {
		imageURL, _ = m.viewer.ImageURL(msg.Detail.ArtworkSummary, artic.DetailImageWidth)
	}
	m.detail.ShowDetail(msg.Detail, imageURL)
}

// reload refetches the collection. Repeated requests while one is running
// share it.
func (m *Model) reload() tea.Cmd {
	if m.state == CollectionFailed {
		m.state = CollectionLoading
	}
	m.reloading = true
	m.StatusMsg = ""
	return LoadCollectionCmd(m.collection, m.requestTimeout)
}

// Route returns the current route
func (m Model) Route() Route {
	return m.route
}

// State returns the collection state
func (m Model) State() CollectionState {
	return m.state
}

// ListParams returns the current list parameters
func (m Model) ListParams() view.ListParams {
	return m.listParams
}

// GalleryParams returns the current gallery parameters
func (m Model) GalleryParams() view.GalleryParams {
	return m.galleryParams
}

// ListView returns the current list derivation
func (m Model) ListView() view.DerivedView {
	return m.listView
}

// GalleryView returns the current gallery derivation
func (m Model) GalleryView() view.DerivedView {
	return m.galleryView
}
