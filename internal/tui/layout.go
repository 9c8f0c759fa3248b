package tui

// Layout proportions
const (
	// Header and footer, one line each
	ChromeHeight = 2

	CategoryPanelPercent = 25
	MinPanelWidth        = 20
	MaxPanelWidth        = 32
)

// panelWidth returns the width of the gallery's category panel
func panelWidth(total int) int {
	w := total * CategoryPanelPercent / 100
	return max(MinPanelWidth, min(w, MaxPanelWidth))
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := max(m.Height-ChromeHeight, 3)

	m.list.SetSize(m.Width, contentHeight)

	pw := panelWidth(m.Width)
	m.panel.SetSize(pw, contentHeight)
	m.gallery.SetSize(max(m.Width-pw, 1), contentHeight)

	m.detail.SetSize(m.Width, contentHeight)
	m.help.Width = m.Width
}
