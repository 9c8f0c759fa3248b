package adapter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/mmcdole/vitrine/internal/domain"
)

const maxColWidth = 48

var (
	headerColor = color.New(color.Bold, color.FgHiWhite)
	labelColor  = color.New(color.FgYellow)
	dimColor    = color.New(color.Faint)
)

// Printer renders collection data as plain text tables
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func newTable() *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = maxColWidth
	t.Separator = "  "
	return t
}

// Artworks prints one row per record in the order given
func (p *Printer) Artworks(items []domain.ArtworkSummary) error {
	if len(items) == 0 {
		_, err := dimColor.Fprintln(p.out, "No artworks match.")
		return err
	}

	t := newTable()
	t.AddRow(headerColor.Sprint("ID"), headerColor.Sprint("TITLE"), headerColor.Sprint("ARTIST"), headerColor.Sprint("TYPE"), headerColor.Sprint("IMAGE"))
	for _, a := range items {
		image := "yes"
		if !a.HasImage() {
			image = dimColor.Sprint("no")
		}
		t.AddRow(strconv.Itoa(a.ID), a.Title, a.Artist(), a.ArtworkTypeTitle, image)
	}
	_, err := fmt.Fprintln(p.out, t)
	return err
}

// Gallery prints artworks with their gallery image URLs.
// imageURL reports false for records without an image.
func (p *Printer) Gallery(items []domain.ArtworkSummary, imageURL func(domain.ArtworkSummary) (string, bool)) error {
	if len(items) == 0 {
		_, err := dimColor.Fprintln(p.out, "No artworks match.")
		return err
	}

	t := newTable()
	t.AddRow(headerColor.Sprint("ID"), headerColor.Sprint("TITLE"), headerColor.Sprint("TYPE"), headerColor.Sprint("IMAGE"))
	for _, a := range items {
		image, ok := imageURL(a)
		if !ok {
			image = dimColor.Sprint("No Image")
		}
		t.AddRow(strconv.Itoa(a.ID), a.Title, a.ArtworkTypeTitle, image)
	}
	_, err := fmt.Fprintln(p.out, t)
	return err
}

// Categories prints the category list with counts
func (p *Printer) Categories(categories []string, counts map[string]int) error {
	t := newTable()
	t.AddRow(headerColor.Sprint("CATEGORY"), headerColor.Sprint("COUNT"))
	for _, c := range categories {
		t.AddRow(c, strconv.Itoa(counts[c]))
	}
	_, err := fmt.Fprintln(p.out, t)
	return err
}

// Detail prints a single artwork. imageURL is empty for records without an image.
func (p *Printer) Detail(d *domain.ArtworkDetail, imageURL, webURL string) error {
	if _, err := headerColor.Fprintln(p.out, d.Title); err != nil {
		return err
	}

	t := uitable.New()
	t.MaxColWidth = 72
	t.Wrap = true
	row := func(label, value string) {
		if value != "" {
			t.AddRow(labelColor.Sprint(label), value)
		}
	}
	row("Artist", strings.ReplaceAll(d.ArtistDisplay, "\n", ", "))
	row("Date", d.DateDisplay)
	row("Medium", d.MediumDisplay)
	row("Dimensions", d.Dimensions)
	row("Credit", d.CreditLine)
	if imageURL == "" {
		t.AddRow(labelColor.Sprint("Image"), dimColor.Sprint("No Image"))
	} else {
		t.AddRow(labelColor.Sprint("Image"), imageURL)
	}
	row("Web", webURL)

	if _, err := fmt.Fprintln(p.out, t); err != nil {
		return err
	}

	if text := domain.PlainText(d.Description); text != "" {
		if _, err := fmt.Fprintf(p.out, "\n%s\n", text); err != nil {
			return err
		}
	}
	return nil
}
