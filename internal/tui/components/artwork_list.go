package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/tui/styles"
	"github.com/mmcdole/vitrine/internal/view"
)

// Layout constants for bordered panes
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// ArtworkList is the scrollable list view with a search bar.
// It renders an already derived view; searching and sorting happen in
// the owning model.
type ArtworkList struct {
	items       []domain.ArtworkSummary
	params      view.ListParams
	suggestions []string
	total       int // size of the raw collection

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	searchInput textinput.Model
}

// NewArtworkList creates an empty list
func NewArtworkList() ArtworkList {
	ti := textinput.New()
	ti.Placeholder = "title or artist..."
	ti.Prompt = "/ "
	ti.CharLimit = 120
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.PlaceholderStyle = styles.DimStyle

	return ArtworkList{
		params:      view.DefaultListParams(),
		searchInput: ti,
		focused:     true,
	}
}

// SetItems replaces the rendered view. The cursor stays on the same
// artwork when it is still present, otherwise it returns to the top.
func (l *ArtworkList) SetItems(v view.DerivedView, p view.ListParams, total int) {
	selectedID, hadSelection := 0, false
	if a, ok := l.Selected(); ok {
		selectedID, hadSelection = a.ID, true
	}

	l.items = v.Items
	l.params = p
	l.total = total
	l.cursor = 0
	l.offset = 0

	if hadSelection {
		for i, id := range v.IDs {
			if id == selectedID {
				l.cursor = i
				break
			}
		}
	}
	l.ensureVisible()
}

// SetSuggestions sets the "did you mean" titles shown for an empty result
func (l *ArtworkList) SetSuggestions(s []string) {
	l.suggestions = s
}

// SetSize updates the component dimensions
func (l *ArtworkList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.searchInput.Width = max(width-BorderWidth-6, 10)
	l.recalcMaxVisible()
	l.ensureVisible()
}

// SetFocused sets whether the list draws an active border
func (l *ArtworkList) SetFocused(focused bool) {
	l.focused = focused
}

// StartSearch focuses the search input
func (l *ArtworkList) StartSearch() tea.Cmd {
	l.searchInput.SetValue(l.params.Query)
	l.searchInput.CursorEnd()
	return l.searchInput.Focus()
}

// IsSearching returns true while the search input has focus
func (l ArtworkList) IsSearching() bool {
	return l.searchInput.Focused()
}

// Query returns the text currently in the search input
func (l ArtworkList) Query() string {
	return l.searchInput.Value()
}

// Selected returns the artwork under the cursor
func (l ArtworkList) Selected() (domain.ArtworkSummary, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return domain.ArtworkSummary{}, false
	}
	return l.items[l.cursor], true
}

// Cursor returns the selected row index
func (l ArtworkList) Cursor() int {
	return l.cursor
}

// Update handles a key press. queryChanged reports that the search text
// differs from the query the current view was derived with.
func (l *ArtworkList) Update(msg tea.KeyMsg) (queryChanged bool, cmd tea.Cmd) {
	if l.searchInput.Focused() {
		switch {
		case key.Matches(msg, ListKeys.Escape):
			l.searchInput.SetValue("")
			l.searchInput.Blur()
		case key.Matches(msg, ListKeys.Enter):
			// Keep the query, return to navigation
			l.searchInput.Blur()
		default:
			l.searchInput, cmd = l.searchInput.Update(msg)
		}
		return l.searchInput.Value() != l.params.Query, cmd
	}

	if key.Matches(msg, ListKeys.Escape) && l.params.Query != "" {
		l.searchInput.SetValue("")
		return true, nil
	}

	count := len(l.items)
	if count == 0 {
		return false, nil
	}

	switch {
	case key.Matches(msg, ListKeys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(msg, ListKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, ListKeys.Home):
		l.cursor = 0
	case key.Matches(msg, ListKeys.End):
		l.cursor = count - 1
	case key.Matches(msg, ListKeys.HalfDown):
		l.cursor = min(l.cursor+l.maxVisible/2, count-1)
	case key.Matches(msg, ListKeys.HalfUp):
		l.cursor = max(l.cursor-l.maxVisible/2, 0)
	case key.Matches(msg, ListKeys.PageDown):
		l.cursor = min(l.cursor+l.maxVisible, count-1)
	case key.Matches(msg, ListKeys.PageUp):
		l.cursor = max(l.cursor-l.maxVisible, 0)
	}
	l.ensureVisible()
	return false, nil
}

func (l ArtworkList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}

	// Subtract frame (border) size so total rendered size equals l.width x l.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(l.width - frameW).
		Height(l.height - frameH).
		Render(l.renderContent())
}

func (l *ArtworkList) recalcMaxVisible() {
	// title + search bar + scroll indicators
	l.maxVisible = l.height - BorderHeight - ScrollIndicatorLines - 2
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *ArtworkList) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l ArtworkList) renderContent() string {
	itemWidth := max(l.width-BorderWidth, 10)

	sortLabel := fmt.Sprintf("Sort: %s %s", l.params.Key, l.params.Direction.Arrow())
	title := fmt.Sprintf("Artworks  %d/%d", len(l.items), l.total)
	gap := itemWidth - len([]rune(title)) - len([]rune(sortLabel))
	titleLine := styles.AccentStyle.Render(title)
	if gap > 0 {
		titleLine += strings.Repeat(" ", gap) + styles.DimStyle.Render(sortLabel)
	}

	searchLine := l.renderSearchBar()

	if len(l.items) == 0 {
		lines := []string{titleLine, searchLine, " ", styles.DimStyle.Render("No artworks match.")}
		if len(l.suggestions) > 0 {
			lines = append(lines, " ", styles.SubtitleStyle.Render("Did you mean:"))
			for _, s := range l.suggestions {
				lines = append(lines, "  "+styles.AccentStyle.Render(styles.Truncate(s, itemWidth-2)))
			}
		}
		return strings.Join(lines, "\n")
	}

	end := min(l.offset+l.maxVisible, len(l.items))

	titleWidth := itemWidth * 3 / 5
	artistWidth := itemWidth - titleWidth - 4

	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		a := l.items[i]
		selected := i == l.cursor

		artist := styles.FirstLine(a.ArtistDisplay)
		if artist == "" {
			artist = "Unknown artist"
		}
		dim := styles.DimGray
		parts := []styles.RowPart{
			{Text: styles.Pad(a.Title, titleWidth), Bold: selected},
			{Text: "  "},
			{Text: styles.Truncate(artist, artistWidth), Foreground: &dim},
		}
		lines = append(lines, styles.RenderListRow(parts, selected, itemWidth))
	}

	// ALWAYS reserve space for indicators to prevent layout shifts
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < len(l.items) {
		footer = styles.DimStyle.Render("↓ more")
	}

	return titleLine + "\n" + searchLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

func (l ArtworkList) renderSearchBar() string {
	if l.searchInput.Focused() {
		return l.searchInput.View()
	}
	if l.params.Query != "" {
		return styles.FilterPromptStyle.Render("/ ") + styles.FilterStyle.Render(l.params.Query) +
			styles.DimStyle.Render("  (esc to clear)")
	}
	return styles.DimStyle.Render("/ to search")
}
