package view

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no UI language is configured
const DefaultLanguage = "en"

// Collator compares strings using locale rules.
// collate.Collator keeps scratch buffers, so access is serialized.
type Collator struct {
	mu  sync.Mutex
	c   *collate.Collator
	tag language.Tag
}

// NewCollator creates a collator for a BCP 47 language tag such as "en" or "fr-CA"
func NewCollator(lang string) (*Collator, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	return &Collator{c: collate.New(tag), tag: tag}, nil
}

var (
	defaultOnce     sync.Once
	defaultCollator *Collator
)

// DefaultCollator returns a shared English collator
func DefaultCollator() *Collator {
	defaultOnce.Do(func() {
		defaultCollator = &Collator{c: collate.New(language.English), tag: language.English}
	})
	return defaultCollator
}

// Compare returns -1, 0 or 1
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}

// Language returns the tag the collator was built for
func (c *Collator) Language() string {
	return c.tag.String()
}
