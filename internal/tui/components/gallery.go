package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/tui/styles"
	"github.com/mmcdole/vitrine/internal/view"
)

// Card geometry. Each card shows title, artist, type and image status.
const (
	MinCardWidth   = 24
	cardBodyLines  = 4
	cardFrameLines = 2
	cardHeight     = cardBodyLines + cardFrameLines
)

// Gallery renders the gallery view as a grid of cards
type Gallery struct {
	items      []domain.ArtworkSummary
	selected   int // number of selected categories, for the header
	maxColumns int

	cursor    int
	rowOffset int

	width   int
	height  int
	focused bool
}

// NewGallery creates an empty gallery with at most maxColumns cards per row
func NewGallery(maxColumns int) Gallery {
	if maxColumns < 1 {
		maxColumns = 1
	}
	return Gallery{maxColumns: maxColumns, focused: true}
}

// SetItems replaces the rendered view, keeping the cursor on the same
// artwork when it is still present
func (g *Gallery) SetItems(v view.DerivedView, selectedCategories int) {
	selectedID, hadSelection := 0, false
	if a, ok := g.Selected(); ok {
		selectedID, hadSelection = a.ID, true
	}

	g.items = v.Items
	g.selected = selectedCategories
	g.cursor = 0
	g.rowOffset = 0
	if hadSelection {
		for i, id := range v.IDs {
			if id == selectedID {
				g.cursor = i
				break
			}
		}
	}
	g.ensureVisible()
}

// SetSize updates the component dimensions
func (g *Gallery) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetFocused sets whether the grid receives movement keys
func (g *Gallery) SetFocused(focused bool) {
	g.focused = focused
}

// IsFocused reports whether the grid has focus
func (g Gallery) IsFocused() bool {
	return g.focused
}

// Selected returns the artwork under the cursor
func (g Gallery) Selected() (domain.ArtworkSummary, bool) {
	if g.cursor < 0 || g.cursor >= len(g.items) {
		return domain.ArtworkSummary{}, false
	}
	return g.items[g.cursor], true
}

// Columns returns how many cards fit in one row
func (g Gallery) Columns() int {
	inner := g.width - BorderWidth
	cols := inner / MinCardWidth
	return max(1, min(cols, g.maxColumns))
}

func (g Gallery) visibleRows() int {
	// header + scroll indicators
	return max(1, (g.height-BorderHeight-ScrollIndicatorLines-1)/cardHeight)
}

// Update moves the cursor
func (g *Gallery) Update(msg tea.KeyMsg) {
	count := len(g.items)
	if count == 0 {
		return
	}
	cols := g.Columns()

	switch {
	case key.Matches(msg, GridKeys.Right):
		if g.cursor < count-1 {
			g.cursor++
		}
	case key.Matches(msg, GridKeys.Left):
		if g.cursor > 0 {
			g.cursor--
		}
	case key.Matches(msg, GridKeys.Down):
		if g.cursor+cols < count {
			g.cursor += cols
		} else if g.cursor/cols < (count-1)/cols {
			// partial last row
			g.cursor = count - 1
		}
	case key.Matches(msg, GridKeys.Up):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case key.Matches(msg, GridKeys.Home):
		g.cursor = 0
	case key.Matches(msg, GridKeys.End):
		g.cursor = count - 1
	}
	g.ensureVisible()
}

func (g *Gallery) ensureVisible() {
	if g.width == 0 {
		return
	}
	row := g.cursor / g.Columns()
	rows := g.visibleRows()
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+rows {
		g.rowOffset = row - rows + 1
	}
}

func (g Gallery) View() string {
	style := styles.InactiveBorder
	if g.focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(g.width - frameW).
		Height(g.height - frameH).
		Render(g.renderContent())
}

func (g Gallery) renderContent() string {
	inner := max(g.width-BorderWidth, MinCardWidth)

	filter := "all categories"
	if g.selected > 0 {
		filter = fmt.Sprintf("%d categories", g.selected)
	}
	titleLine := styles.AccentStyle.Render(fmt.Sprintf("Gallery  %d", len(g.items))) +
		styles.DimStyle.Render("  · "+filter)

	if len(g.items) == 0 {
		return titleLine + "\n \n" + styles.DimStyle.Render("No artworks in the selected categories.")
	}

	cols := g.Columns()
	cardWidth := inner / cols
	rows := g.visibleRows()
	totalRows := (len(g.items) + cols - 1) / cols
	lastRow := min(g.rowOffset+rows, totalRows)

	var rendered []string
	for r := g.rowOffset; r < lastRow; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(g.items) {
				break
			}
			cards = append(cards, renderCard(g.items[i], i == g.cursor && g.focused, cardWidth))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	header := " "
	if g.rowOffset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if lastRow < totalRows {
		footer = styles.DimStyle.Render("↓ more")
	}

	return titleLine + "\n" + header + "\n" + strings.Join(rendered, "\n") + "\n" + footer
}

// renderCard draws one artwork card of the given outer width
func renderCard(a domain.ArtworkSummary, selected bool, width int) string {
	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	frameW, _ := style.GetFrameSize()
	inner := max(width-frameW, 4)

	titleStyle := styles.SubtitleStyle
	if selected {
		titleStyle = styles.TitleStyle
	}

	artist := styles.FirstLine(a.ArtistDisplay)
	if artist == "" {
		artist = "Unknown artist"
	}

	image := styles.SuccessStyle.Render("▣ image")
	if !a.HasImage() {
		image = styles.PlaceholderStyle.Render("No Image")
	}

	body := strings.Join([]string{
		titleStyle.Render(styles.Truncate(a.Title, inner)),
		styles.DimStyle.Render(styles.Truncate(artist, inner)),
		styles.AccentStyle.Render(styles.Truncate(a.ArtworkTypeTitle, inner)),
		image,
	}, "\n")

	// Width covers content and padding, not the border
	return style.Width(width - style.GetHorizontalBorderSize()).Render(body)
}
