package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/navigation"
	"github.com/mmcdole/vitrine/internal/tui/styles"
)

// Messages shown in place of a record
const (
	DetailLoadingText  = "Loading details..."
	DetailNotFoundText = "Artwork not found."
)

type detailState int

const (
	detailLoading detailState = iota
	detailLoaded
	detailFailed
)

// DetailView shows one artwork: a fixed header, a scrollable body
// rendered from markdown, and a fixed navigation footer.
type DetailView struct {
	state    detailState
	id       int
	detail   *domain.ArtworkDetail
	imageURL string
	err      error

	neighbors navigation.Neighbors
	pos       int
	total     int

	body     viewport.Model
	renderer *glamour.TermRenderer
	wrap     int

	width  int
	height int
}

// NewDetailView creates an empty detail view
func NewDetailView() DetailView {
	return DetailView{body: viewport.New(0, 0)}
}

// ShowLoading resets the view for a record that is being fetched
func (d *DetailView) ShowLoading(id int, ctx navigation.Context) {
	d.state = detailLoading
	d.id = id
	d.detail = nil
	d.imageURL = ""
	d.err = nil
	d.neighbors = ctx.Neighbors(id)
	d.pos, d.total, _ = ctx.Position(id)
	d.body.SetContent("")
	d.body.GotoTop()
}

// ShowDetail displays a fetched record. imageURL is empty when the
// record has no image.
func (d *DetailView) ShowDetail(detail *domain.ArtworkDetail, imageURL string) {
	d.state = detailLoaded
	d.detail = detail
	d.imageURL = imageURL
	d.err = nil
	d.refreshBody()
	d.body.GotoTop()
}

// ShowError displays the failure of a detail fetch
func (d *DetailView) ShowError(err error) {
	d.state = detailFailed
	d.err = err
	d.detail = nil
}

// ID returns the artwork being shown or loaded
func (d DetailView) ID() int {
	return d.id
}

// Detail returns the loaded record, or nil
func (d DetailView) Detail() *domain.ArtworkDetail {
	return d.detail
}

// IsLoading reports whether the record is still being fetched
func (d DetailView) IsLoading() bool {
	return d.state == detailLoading
}

// Neighbors returns the prev/next ids of the captured sequence
func (d DetailView) Neighbors() navigation.Neighbors {
	return d.neighbors
}

// SetSize updates the component dimensions and re-wraps the body
func (d *DetailView) SetSize(width, height int) {
	d.width = width
	d.height = height

	contentWidth := max(width-BorderWidth-2, 20)
	d.body.Width = contentWidth
	d.body.Height = max(height-BorderHeight-d.chromeLines(), 1)

	if contentWidth != d.wrap {
		d.wrap = contentWidth
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(contentWidth),
		)
		if err == nil {
			d.renderer = r
		} else {
			d.renderer = nil
		}
		d.refreshBody()
	}
}

// chromeLines is the number of fixed lines around the scrollable body:
// title, artist, blank, scroll hint, blank, navigation footer
func (d DetailView) chromeLines() int {
	return 6
}

// Update scrolls the body
func (d DetailView) Update(msg tea.Msg) (DetailView, tea.Cmd) {
	if d.state != detailLoaded {
		return d, nil
	}
	var cmd tea.Cmd
	d.body, cmd = d.body.Update(msg)
	return d, cmd
}

func (d *DetailView) refreshBody() {
	if d.detail == nil {
		return
	}
	md := DetailMarkdown(d.detail, d.imageURL)
	out := md
	if d.renderer != nil {
		if rendered, err := d.renderer.Render(md); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}
	d.body.SetContent(out)
}

func (d DetailView) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()
	innerWidth := max(d.width-frameW, 10)

	var content string
	switch d.state {
	case detailLoading:
		content = d.renderMessage(styles.DimStyle.Render(DetailLoadingText), innerWidth)
	case detailFailed:
		content = d.renderMessage(styles.ErrorStyle.Render(DetailNotFoundText), innerWidth)
	default:
		content = d.renderLoaded(innerWidth)
	}

	return style.
		Width(d.width - frameW).
		Height(d.height - frameH).
		Render(content)
}

func (d DetailView) renderMessage(msg string, width int) string {
	bodyHeight := max(d.height-BorderHeight-1, 1)
	centered := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, msg)
	return centered + "\n" + d.renderNav(width)
}

func (d DetailView) renderLoaded(width int) string {
	a := d.detail

	title := styles.TitleStyle.Render(styles.Truncate(a.Title, width))
	artist := styles.SubtitleStyle.Render(styles.Truncate(strings.ReplaceAll(a.ArtistDisplay, "\n", " · "), width))

	hint := " "
	if d.body.TotalLineCount() > d.body.Height {
		hint = styles.DimStyle.Render(fmt.Sprintf("%3.f%%  j/k scroll", d.body.ScrollPercent()*100))
	}

	return strings.Join([]string{
		title,
		artist,
		"",
		d.body.View(),
		hint,
		"",
		d.renderNav(width),
	}, "\n")
}

// renderNav draws "← Previous   Back to Gallery   3 / 17   Next →"
func (d DetailView) renderNav(width int) string {
	prev := styles.DimStyle.Render("← Previous")
	if d.neighbors.HasPrev {
		prev = styles.AccentStyle.Render("←") + styles.SubtitleStyle.Render(" Previous")
	}
	next := styles.DimStyle.Render("Next →")
	if d.neighbors.HasNext {
		next = styles.SubtitleStyle.Render("Next ") + styles.AccentStyle.Render("→")
	}

	middle := styles.AccentStyle.Render("esc") + styles.DimStyle.Render(" back")
	if d.total > 0 && d.pos > 0 {
		middle += styles.DimStyle.Render(fmt.Sprintf("   %d / %d", d.pos, d.total))
	}

	gap := width - lipgloss.Width(prev) - lipgloss.Width(middle) - lipgloss.Width(next)
	if gap < 2 {
		return prev + " " + middle + " " + next
	}
	left := gap / 2
	return prev + strings.Repeat(" ", left) + middle + strings.Repeat(" ", gap-left) + next
}

// DetailMarkdown renders the record body as markdown. Empty fields are
// left out and the description block is hidden when absent.
func DetailMarkdown(a *domain.ArtworkDetail, imageURL string) string {
	var b strings.Builder

	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "**%s:** %s  \n", label, escapeMarkdown(value))
	}
	field("Artist", strings.ReplaceAll(a.ArtistDisplay, "\n", ", "))
	field("Date", a.DateDisplay)
	field("Medium", a.MediumDisplay)
	field("Dimensions", a.Dimensions)
	field("Type", a.ArtworkTypeTitle)
	field("Credit", a.CreditLine)

	b.WriteString("\n")
	if imageURL == "" {
		b.WriteString("_No Image_\n")
	} else {
		fmt.Fprintf(&b, "Image: %s  \n_press o to open the image, w for the web page_\n", imageURL)
	}

	if text := domain.PlainText(a.Description); text != "" {
		b.WriteString("\n## About\n\n")
		for _, p := range strings.Split(text, "\n\n") {
			b.WriteString(escapeMarkdown(p))
			b.WriteString("\n\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// IsNotFound reports whether a detail error should read as a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrArtworkNotFound)
}
