package domain

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicy     = bluemonday.StrictPolicy()
	paragraphBreak = regexp.MustCompile(`(?i)</p\s*>|<br\s*/?>`)
)

// PlainText strips markup from an API description and returns its
// paragraphs separated by blank lines. Whitespace inside a paragraph is
// collapsed.
func PlainText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	s = paragraphBreak.ReplaceAllString(s, "\n\n")
	s = html.UnescapeString(textPolicy.Sanitize(s))

	var paragraphs []string
	for _, p := range strings.Split(s, "\n\n") {
		p = strings.Join(strings.Fields(p), " ")
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
