package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/adapter/source/artic"
	"github.com/mmcdole/vitrine/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		m.cancelPendingDetail()
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The collection error replaces the whole interface
	if m.state == CollectionFailed {
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.Reload):
			cmd := m.reload()
			return m, cmd
		}
		return m, nil
	}

	// Route to active modal or text input
	if handled, cmd := m.routeToInput(msg); handled {
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.cancelPendingDetail()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, Keys.Reload):
		cmd := m.reload()
		return m, cmd

	case key.Matches(msg, Keys.Gallery):
		cmd := m.navigate(Route{Kind: RouteGallery})
		return m, cmd

	case key.Matches(msg, Keys.List):
		cmd := m.navigate(Route{Kind: RouteList})
		return m, cmd

	case key.Matches(msg, Keys.SwitchView):
		target := RouteList
		switch m.route.Kind {
		case RouteList:
			target = RouteGallery
		case RouteArtwork:
			target = m.route.From
		}
		cmd := m.navigate(Route{Kind: target})
		return m, cmd
	}

	// Nothing below works until the collection is in
	if m.state != CollectionReady && m.route.Kind != RouteArtwork {
		return m, nil
	}

	switch m.route.Kind {
	case RouteList:
		return m.handleListKey(msg)
	case RouteArtwork:
		return m.handleDetailKey(msg)
	default:
		return m.handleGalleryKey(msg)
	}
}

// routeToInput gives the sort selector and focused text inputs first
// claim on a key
func (m *Model) routeToInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.sortModal.IsVisible() {
		if handled, chosen := m.sortModal.HandleKey(msg); handled {
			if chosen != nil {
				m.setListParams(m.listParams.SortBy(*chosen))
			}
		}
		return true, nil
	}

	if m.route.Kind == RouteList && m.list.IsSearching() {
		changed, cmd := m.list.Update(msg)
		if changed {
			m.setListParams(m.listParams.WithQuery(m.list.Query()))
		}
		return true, cmd
	}

	if m.route.Kind == RouteGallery && m.panel.IsFiltering() {
		_, cmd := m.panel.Update(msg)
		return true, cmd
	}
	return false, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Search):
		cmd := m.list.StartSearch()
		return m, cmd

	case key.Matches(msg, Keys.Sort):
		m.sortModal.Show(m.listParams)
		return m, nil

	case key.Matches(msg, Keys.Open):
		if a, ok := m.list.Selected(); ok {
			cmd := m.openArtwork(a.ID, m.listView.IDs)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.OpenImage):
		if a, ok := m.list.Selected(); ok {
			return m, OpenImageCmd(m.viewer, a, artic.DetailImageWidth)
		}
		return m, nil

	case key.Matches(msg, Keys.OpenPage):
		if a, ok := m.list.Selected(); ok {
			return m, OpenPageCmd(m.viewer, a.ID)
		}
		return m, nil
	}

	changed, cmd := m.list.Update(msg)
	if changed {
		m.setListParams(m.listParams.WithQuery(m.list.Query()))
	}
	return m, cmd
}

func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Categories) {
		m.setPanelFocus(!m.panel.IsFocused())
		return m, nil
	}

	if key.Matches(msg, Keys.Search) && !m.panel.IsFocused() {
		m.setPanelFocus(true)
	}

	if m.panel.IsFocused() {
		// esc with nothing to clear hands focus back to the grid
		if key.Matches(msg, Keys.Back) && msg.String() == "esc" && !m.panel.HasFilter() {
			m.setPanelFocus(false)
			return m, nil
		}

		action, cmd := m.panel.Update(msg)
		switch action.Kind {
		case components.CategoryToggle:
			m.setGalleryParams(m.galleryParams.Toggle(action.Category))
		case components.CategoryClear:
			m.setGalleryParams(m.galleryParams.Clear())
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Open):
		if a, ok := m.gallery.Selected(); ok {
			cmd := m.openArtwork(a.ID, m.galleryView.IDs)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.OpenImage):
		if a, ok := m.gallery.Selected(); ok {
			return m, OpenImageCmd(m.viewer, a, artic.GalleryImageWidth)
		}
		return m, nil

	case key.Matches(msg, Keys.OpenPage):
		if a, ok := m.gallery.Selected(); ok {
			return m, OpenPageCmd(m.viewer, a.ID)
		}
		return m, nil
	}

	m.gallery.Update(msg)
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back):
		cmd := m.back()
		return m, cmd

	case key.Matches(msg, Keys.Prev):
		if n := m.detail.Neighbors(); n.HasPrev {
			cmd := m.gotoArtwork(n.Prev)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Next):
		if n := m.detail.Neighbors(); n.HasNext {
			cmd := m.gotoArtwork(n.Next)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.OpenImage):
		if d := m.detail.Detail(); d != nil {
			return m, OpenImageCmd(m.viewer, d.ArtworkSummary, artic.DetailImageWidth)
		}
		return m, nil

	case key.Matches(msg, Keys.OpenPage):
		return m, OpenPageCmd(m.viewer, m.route.ArtworkID)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *Model) setPanelFocus(focused bool) {
	m.panel.SetFocused(focused)
	m.gallery.SetFocused(!focused)
}
