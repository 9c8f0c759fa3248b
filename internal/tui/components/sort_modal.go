package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/vitrine/internal/tui/styles"
	"github.com/mmcdole/vitrine/internal/view"
)

// SortModal is a small popup for choosing the list sort key
type SortModal struct {
	visible   bool
	options   []view.SortKey
	cursor    int
	activeKey view.SortKey
	activeDir view.Direction
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{options: view.SortKeys}
}

// Show displays the modal for the current list parameters
func (m *SortModal) Show(p view.ListParams) {
	m.visible = true
	m.activeKey = p.Key
	m.activeDir = p.Direction
	// Position cursor on the active key
	m.cursor = 0
	for i, opt := range m.options {
		if opt == p.Key {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press and returns (handled, chosen).
// A non-nil chosen key is passed to ListParams.SortBy, which flips the
// direction when the key is already active.
func (m *SortModal) HandleKey(msg tea.KeyMsg) (handled bool, chosen *view.SortKey) {
	if !m.visible {
		return false, nil
	}

	switch {
	case key.Matches(msg, SortKeys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(msg, SortKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, SortKeys.Choose):
		k := m.options[m.cursor]
		m.visible = false
		return true, &k
	case key.Matches(msg, SortKeys.Close):
		m.visible = false
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	const lineWidth = 20

	var lines []string
	for i, opt := range m.options {
		selected := i == m.cursor
		isActive := opt == m.activeKey

		prefix := "  "
		suffix := ""
		if isActive {
			prefix = "✓ "
			suffix = " " + m.activeDir.Arrow()
		}
		text := styles.Pad(prefix+opt.String()+suffix, lineWidth)

		style := lipgloss.NewStyle().Foreground(styles.LightGray)
		switch {
		case selected:
			style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		case isActive:
			style = lipgloss.NewStyle().Foreground(styles.Gold)
		}
		lines = append(lines, style.Render(text))
	}

	hint := styles.DimStyle.Render("enter on active key flips order")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Gold).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n") + "\n\n" + hint)
}
