package style_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/cmini/internal/ui/style"
)

func TestConfirm(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "✓ `qwerty` has been removed", style.Confirm("`qwerty` has been removed"))
	assert.Equal(t, "- mt-quotes", style.Bullet("mt-quotes"))
}

func TestCard(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := style.Card.Render("q w e\na s d")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "│ q w e │")
	assert.Contains(t, lines[2], "│ a s d │")
	assert.True(t, strings.HasPrefix(lines[3], "╰"))
}
