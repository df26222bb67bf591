package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// upperHalf draws the top pixel of a cell in the foreground and the bottom
// pixel in the background.
const upperHalf = '▀'

type cellStyle struct {
	fg, bg core.Color
}

// styleCache avoids rebuilding lipgloss styles for colors seen earlier in
// the same frame.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(cs cellStyle) lipgloss.Style {
	if st, ok := c[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.fg.Hex())).
		Background(lipgloss.Color(cs.bg.Hex()))
	c[cs] = st
	return st
}

// RenderScreen converts the surface to a styled string, one line per cell row.
// Pixel cells become half blocks; overlay glyphs are drawn over the average of
// the two pixels behind them. Adjacent cells with the same colors are grouped
// to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	cache := make(styleCache)
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Cols()*s.Rows()*4 + s.Rows())

	var run strings.Builder
	for row := range s.Rows() {
		if row > 0 {
			sb.WriteRune('\n')
		}

		var cur cellStyle
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(cache.get(cur).Render(run.String()))
				run.Reset()
			}
		}

		for col := 0; col < s.Cols(); {
			r, cs, w := cellAt(s, col, row)
			if cs != cur {
				flush()
				cur = cs
			}
			run.WriteRune(r)
			col += w
		}
		flush()
	}
	return sb.String()
}

// cellAt returns the rune and colors for one cell and how many columns it
// covers.
func cellAt(s *core.Screen, col, row int) (rune, cellStyle, int) {
	top, bottom, g, ok := s.Cell(col, row)
	if !ok {
		return upperHalf, cellStyle{fg: top, bg: bottom}, 1
	}
	w := runewidth.RuneWidth(g.Rune)
	if w < 1 || col+w > s.Cols() {
		w = 1
	}
	return g.Rune, cellStyle{fg: g.Color, bg: core.Mix(top, bottom)}, w
}
