package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "…", Truncate("hello", 1))
	assert.Equal(t, "Éd…", Truncate("Édouard", 3))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", Pad("ab", 4))
	assert.Equal(t, 4, lipgloss.Width(Pad("abcdef", 4)))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Claude Monet", FirstLine("Claude Monet\nFrench"))
	assert.Equal(t, "x", FirstLine("x"))
}

func TestRenderListRowWidth(t *testing.T) {
	row := RenderListRow([]RowPart{{Text: "Nighthawks"}}, true, 30)
	assert.Equal(t, 30, lipgloss.Width(row))
}
