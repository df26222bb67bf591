package core

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PixelsPerCell is the number of vertical pixels packed into one terminal cell.
// Presenters draw each cell as an upper half block, top pixel as foreground and
// bottom pixel as background.
const PixelsPerCell = 2

// Glyph is a text overlay character occupying one terminal cell.
type Glyph struct {
	Rune  rune
	Color Color
}

// Screen is the off-screen surface games render into.
// It holds a pixel raster of Width x Height plus a text overlay of Cols x Rows,
// where every cell covers PixelsPerCell vertically stacked pixels. The platform
// presents the whole surface at once after rendering finishes.
type Screen struct {
	cols   int
	rows   int
	width  int
	height int
	pixels []Color
	glyphs []Glyph // Rune 0 means "no glyph"
}

// NewScreen creates a surface covering cols x rows terminal cells.
// Dimensions below one cell are raised to one.
func NewScreen(cols, rows int) *Screen {
	s := &Screen{}
	s.allocate(cols, rows)
	return s
}

// allocate discards any previous storage and creates fresh buffers.
func (s *Screen) allocate(cols, rows int) {
	s.cols = max(cols, 1)
	s.rows = max(rows, 1)
	s.width = s.cols
	s.height = s.rows * PixelsPerCell
	s.pixels = make([]Color, s.width*s.height)
	s.glyphs = make([]Glyph, s.cols*s.rows)
}

// Width returns the raster width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the raster height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Cols returns the overlay width in cells.
func (s *Screen) Cols() int {
	return s.cols
}

// Rows returns the overlay height in cells.
func (s *Screen) Rows() int {
	return s.rows
}

// Resize discards the surface and recreates it at the new cell size.
// Content is not preserved; the next render repaints everything.
func (s *Screen) Resize(cols, rows int) {
	s.allocate(cols, rows)
}

// Clear fills every pixel with c and removes all glyphs.
func (s *Screen) Clear(c Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
	for i := range s.glyphs {
		s.glyphs[i] = Glyph{}
	}
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = c
}

// At returns the pixel at (x, y), or black when out of bounds.
func (s *Screen) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}
	}
	return s.pixels[y*s.width+x]
}

// FillRect fills the half-open pixel rectangle [x0, x1) x [y0, y1), clipped to the surface.
func (s *Screen) FillRect(x0, y0, x1, y1 int, c Color) {
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, s.width)
	y1 = min(y1, s.height)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for y := y0; y < y1; y++ {
		row := s.pixels[y*s.width+x0 : y*s.width+x1]
		for i := range row {
			row[i] = c
		}
	}
}

// FillRectR fills r.
func (s *Screen) FillRectR(r Rect, c Color) {
	s.FillRect(r.X0, r.Y0, r.X1, r.Y1, c)
}

// FillEllipse fills the ellipse inscribed in the bounding box [x0, x1) x [y0, y1).
func (s *Screen) FillEllipse(x0, y0, x1, y1 int, c Color) {
	rx := float64(x1-x0) * 0.5
	ry := float64(y1-y0) * 0.5
	if rx <= 0 || ry <= 0 {
		return
	}
	s.fillEllipse(float64(x0)+rx, float64(y0)+ry, rx, ry, c)
}

// FillCircle fills the circle of radius r centred on (cx, cy).
func (s *Screen) FillCircle(cx, cy, r float64, c Color) {
	if r <= 0 {
		return
	}
	s.fillEllipse(cx, cy, r, r, c)
}

// fillEllipse paints every pixel whose centre lies inside the ellipse.
func (s *Screen) fillEllipse(cx, cy, rx, ry float64, c Color) {
	y0 := max(int(math.Floor(cy-ry)), 0)
	y1 := min(int(math.Ceil(cy+ry)), s.height)
	x0 := max(int(math.Floor(cx-rx)), 0)
	x1 := min(int(math.Ceil(cx+rx)), s.width)

	for y := y0; y < y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := x0; x < x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1.0 {
				s.pixels[y*s.width+x] = c
			}
		}
	}
}

// DrawText writes text into the overlay starting at cell (col, row).
// Wide runes occupy two cells. Characters outside the overlay are clipped.
func (s *Screen) DrawText(col, row int, text string, fg Color) {
	if row < 0 || row >= s.rows {
		return
	}
	x := col
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x < s.cols {
			s.glyphs[row*s.cols+x] = Glyph{Rune: r, Color: fg}
		}
		// Continuation cell of a wide rune renders nothing on its own.
		for i := 1; i < w; i++ {
			if x+i >= 0 && x+i < s.cols {
				s.glyphs[row*s.cols+x+i] = Glyph{}
			}
		}
		x += w
	}
}

// DrawTextCentered draws text centred horizontally on the given row.
func (s *Screen) DrawTextCentered(row int, text string, fg Color) {
	col := (s.cols - runewidth.StringWidth(text)) / 2
	s.DrawText(col, row, text, fg)
}

// Cell returns the two pixels and the glyph of an overlay cell.
// ok is false when the cell has no glyph.
func (s *Screen) Cell(col, row int) (top, bottom Color, g Glyph, ok bool) {
	top = s.At(col, row*PixelsPerCell)
	bottom = s.At(col, row*PixelsPerCell+1)
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return top, bottom, Glyph{}, false
	}
	g = s.glyphs[row*s.cols+col]
	return top, bottom, g, g.Rune != 0
}

// Equal reports whether two surfaces hold identical pixels and glyphs.
func (s *Screen) Equal(other *Screen) bool {
	if s.cols != other.cols || s.rows != other.rows {
		return false
	}
	for i := range s.pixels {
		if s.pixels[i] != other.pixels[i] {
			return false
		}
	}
	for i := range s.glyphs {
		if s.glyphs[i] != other.glyphs[i] {
			return false
		}
	}
	return true
}

// lit reports whether a pixel is bright enough to show in a monochrome dump.
func lit(c Color) bool {
	return (299*int(c.R)+587*int(c.G)+114*int(c.B))/1000 > 90
}

// Row returns one overlay row as plain text.
// Glyphs are printed as-is; pixels become block characters by brightness.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	var sb strings.Builder
	for col := 0; col < s.cols; col++ {
		top, bottom, g, ok := s.Cell(col, row)
		switch {
		case ok:
			sb.WriteRune(g.Rune)
		case lit(top) && lit(bottom):
			sb.WriteRune('█')
		case lit(top):
			sb.WriteRune('▀')
		case lit(bottom):
			sb.WriteRune('▄')
		default:
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// String converts the surface into a monochrome text dump, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows + s.rows)
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(row))
	}
	return sb.String()
}
