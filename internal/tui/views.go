package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/vitrine/internal/tui/styles"
)

func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.state == CollectionFailed {
		return m.renderCollectionError()
	}

	contentHeight := max(m.Height-ChromeHeight, 3)

	var content string
	switch {
	case m.route.Kind == RouteArtwork:
		content = m.detail.View()
	case m.state == CollectionLoading:
		msg := styles.RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading artworks...")
		content = lipgloss.Place(m.Width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
	case m.route.Kind == RouteList:
		content = m.list.View()
	default:
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.panel.View(), m.gallery.View())
	}

	if m.sortModal.IsVisible() {
		content = lipgloss.Place(m.Width, contentHeight,
			lipgloss.Center, lipgloss.Center,
			m.sortModal.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
}

// renderHeader renders the brand, the view tabs and the current path
func (m Model) renderHeader() string {
	tab := func(label string, active bool) string {
		if active {
			return styles.AccentStyle.Bold(true).Render(label)
		}
		return styles.DimStyle.Render(label)
	}

	current := m.route.Kind
	if current == RouteArtwork {
		current = m.route.From
	}

	left := styles.BrandStyle.Render(" vitrine ") + "  " +
		tab("1 Gallery", current == RouteGallery) + "  " +
		tab("2 List", current == RouteList)
	right := styles.DimStyle.Render(m.route.Path())

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter renders a single-line footer: status on the left, key
// hints on the right
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.reloading:
		left = styles.RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Reloading...")
	case m.route.Kind == RouteArtwork && m.detail.IsLoading():
		left = styles.RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading...")
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	right := m.help.ShortHelpView(Keys.routeHelp(m.route.Kind))

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	title := styles.ModalTitleStyle.Render("Keys")
	body := m.help.FullHelpView(Keys.FullHelp())
	hint := styles.DimStyle.Render("Press any key to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(title+"\n\n"+body+"\n\n"+hint))
}

// renderCollectionError replaces the whole interface when the collection
// could not be fetched
func (m Model) renderCollectionError() string {
	msg := styles.ErrorStyle.Render(CollectionErrorText) + "\n\n" +
		styles.AccentStyle.Render("r") + styles.DimStyle.Render(" retry   ") +
		styles.AccentStyle.Render("q") + styles.DimStyle.Render(" quit")

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, msg)
}
