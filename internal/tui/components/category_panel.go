package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/vitrine/internal/tui/styles"
	"github.com/mmcdole/vitrine/internal/view"
)

// CategoryActionKind tells the model how to change the selection
type CategoryActionKind int

const (
	CategoryNone CategoryActionKind = iota
	CategoryToggle
	CategoryClear
)

// CategoryAction is returned by CategoryPanel.Update
type CategoryAction struct {
	Kind     CategoryActionKind
	Category string
}

// CategoryPanel lists the artwork types with their selection state.
// The panel never changes the selection itself; it reports actions and
// the model produces new gallery parameters.
type CategoryPanel struct {
	categories []string
	counts     map[string]int
	selected   view.CategorySet

	// Filter narrows what is shown, not what is selected
	filterInput textinput.Model
	matches     []fuzzy.Match // nil when no filter is applied

	cursor     int
	offset     int
	maxVisible int

	width   int
	height  int
	focused bool
}

// NewCategoryPanel creates an empty panel
func NewCategoryPanel() CategoryPanel {
	ti := textinput.New()
	ti.Placeholder = "category..."
	ti.Prompt = "/ "
	ti.CharLimit = 60
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.PlaceholderStyle = styles.DimStyle

	return CategoryPanel{filterInput: ti}
}

// SetCategories replaces the list and the current selection
func (p *CategoryPanel) SetCategories(categories []string, counts map[string]int, selected view.CategorySet) {
	p.categories = categories
	p.counts = counts
	p.selected = selected
	p.applyFilter()
}

// SetSelection updates only which categories are checked
func (p *CategoryPanel) SetSelection(selected view.CategorySet) {
	p.selected = selected
}

// SetSize updates the component dimensions
func (p *CategoryPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.filterInput.Width = max(width-BorderWidth-4, 6)
	p.maxVisible = max(height-BorderHeight-ScrollIndicatorLines-2, 1)
	p.ensureVisible()
}

// SetFocused sets whether the panel receives keys
func (p *CategoryPanel) SetFocused(focused bool) {
	p.focused = focused
	if !focused {
		p.filterInput.Blur()
	}
}

// IsFocused reports whether the panel has focus
func (p CategoryPanel) IsFocused() bool {
	return p.focused
}

// HasFilter reports whether a filter narrows the list
func (p CategoryPanel) HasFilter() bool {
	return p.filterInput.Value() != ""
}

// IsFiltering returns true while the filter input has focus
func (p CategoryPanel) IsFiltering() bool {
	return p.filterInput.Focused()
}

// visible returns the categories currently listed, in display order
func (p CategoryPanel) visible() []string {
	if p.matches == nil {
		return p.categories
	}
	out := make([]string, len(p.matches))
	for i, m := range p.matches {
		out[i] = m.Str
	}
	return out
}

// Current returns the category under the cursor
func (p CategoryPanel) Current() (string, bool) {
	v := p.visible()
	if p.cursor < 0 || p.cursor >= len(v) {
		return "", false
	}
	return v[p.cursor], true
}

// Update handles a key press and reports the requested selection change
func (p *CategoryPanel) Update(msg tea.KeyMsg) (CategoryAction, tea.Cmd) {
	if p.filterInput.Focused() {
		switch {
		case key.Matches(msg, CategoryKeys.Escape):
			p.filterInput.SetValue("")
			p.filterInput.Blur()
			p.applyFilter()
		case key.Matches(msg, CategoryKeys.Enter):
			p.filterInput.Blur()
		default:
			var cmd tea.Cmd
			p.filterInput, cmd = p.filterInput.Update(msg)
			p.applyFilter()
			return CategoryAction{}, cmd
		}
		return CategoryAction{}, nil
	}

	count := len(p.visible())

	switch {
	case key.Matches(msg, CategoryKeys.Filter):
		return CategoryAction{}, p.filterInput.Focus()
	case key.Matches(msg, CategoryKeys.Escape):
		if p.filterInput.Value() != "" {
			p.filterInput.SetValue("")
			p.applyFilter()
		}
	case key.Matches(msg, CategoryKeys.Down):
		if p.cursor < count-1 {
			p.cursor++
		}
	case key.Matches(msg, CategoryKeys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, CategoryKeys.Toggle):
		if c, ok := p.Current(); ok {
			return CategoryAction{Kind: CategoryToggle, Category: c}, nil
		}
	case key.Matches(msg, CategoryKeys.Clear):
		if !p.selected.Empty() {
			return CategoryAction{Kind: CategoryClear}, nil
		}
	}
	p.ensureVisible()
	return CategoryAction{}, nil
}

func (p *CategoryPanel) applyFilter() {
	query := strings.TrimSpace(p.filterInput.Value())
	if query == "" {
		p.matches = nil
	} else {
		p.matches = fuzzy.Find(query, p.categories)
		if p.matches == nil {
			p.matches = fuzzy.Matches{}
		}
	}
	p.cursor = min(p.cursor, max(len(p.visible())-1, 0))
	p.offset = 0
	p.ensureVisible()
}

func (p *CategoryPanel) ensureVisible() {
	if p.maxVisible <= 0 {
		return
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.maxVisible {
		p.offset = p.cursor - p.maxVisible + 1
	}
}

func (p CategoryPanel) View() string {
	style := styles.InactiveBorder
	if p.focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(p.width - frameW).
		Height(p.height - frameH).
		Render(p.renderContent())
}

func (p CategoryPanel) renderContent() string {
	itemWidth := max(p.width-BorderWidth, 10)

	title := "Categories"
	if n := p.selected.Len(); n > 0 {
		title = fmt.Sprintf("Categories (%d)", n)
	}
	titleLine := styles.AccentStyle.Render(styles.Truncate(title, itemWidth))

	filterLine := styles.DimStyle.Render("/ to find")
	if p.filterInput.Focused() || p.filterInput.Value() != "" {
		filterLine = p.filterInput.View()
	}

	visible := p.visible()
	if len(visible) == 0 {
		return titleLine + "\n" + filterLine + "\n \n" + styles.DimStyle.Render("No categories")
	}

	end := min(p.offset+p.maxVisible, len(visible))
	var lines []string
	for i := p.offset; i < end; i++ {
		lines = append(lines, p.renderRow(i, itemWidth))
	}

	header := " "
	if p.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < len(visible) {
		footer = styles.DimStyle.Render("↓ more")
	}

	return titleLine + "\n" + filterLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

func (p CategoryPanel) renderRow(i, width int) string {
	var name string
	var matched []int
	if p.matches != nil {
		name = p.matches[i].Str
		matched = p.matches[i].MatchedIndexes
	} else {
		name = p.categories[i]
	}

	mark := styles.UncheckedChar
	if p.selected.Has(name) {
		mark = styles.CheckedChar
	}
	count := fmt.Sprintf(" %d", p.counts[name])
	nameWidth := width - 2 - len(count) - 2

	selected := i == p.cursor && p.focused
	markColor := styles.DimGray
	if p.selected.Has(name) {
		markColor = styles.Gold
	}
	dim := styles.DimGray

	parts := []styles.RowPart{{Text: mark + " ", Foreground: &markColor}}
	parts = append(parts, highlightParts(styles.Pad(name, nameWidth), matched)...)
	parts = append(parts, styles.RowPart{Text: count, Foreground: &dim})

	return styles.RenderListRow(parts, selected, width)
}

// highlightParts splits s into row parts, emphasising the runes at the
// given byte offsets
func highlightParts(s string, matched []int) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: s}}
	}
	hit := make(map[int]bool, len(matched))
	for _, idx := range matched {
		hit[idx] = true
	}

	gold := styles.Gold
	var parts []styles.RowPart
	var run strings.Builder
	runHit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		part := styles.RowPart{Text: run.String()}
		if runHit {
			part.Foreground = &gold
			part.Bold = true
		}
		parts = append(parts, part)
		run.Reset()
	}
	for i, r := range s {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run.WriteRune(r)
	}
	flush()
	return parts
}
