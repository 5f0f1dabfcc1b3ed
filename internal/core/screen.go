package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// continuation marks the right half of a double-width rune.
const continuation rune = 0

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal: the game draws runes and
// colors, the platform turns the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with default-colored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a default-colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetColored places a rune with a foreground color.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	s.SetCell(x, y, Cell{Rune: r, Color: c})
}

// SetCell places a cell at the given position. A double-width rune also
// claims the cell to its right; if there is no room it is replaced by a space.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.breakWide(x, y)

	if runewidth.RuneWidth(c.Rune) == 2 {
		if x+1 >= s.width {
			c.Rune = ' '
		} else {
			s.breakWide(x+1, y)
			s.cells[y][x+1] = Cell{Rune: continuation, Color: c.Color}
		}
	}
	s.cells[y][x] = c
}

// breakWide clears any double-width rune that overlaps (x, y).
func (s *Screen) breakWide(x, y int) {
	row := s.cells[y]
	switch {
	case row[x].Rune == continuation && x > 0:
		row[x-1] = Cell{Rune: ' '}
	case runewidth.RuneWidth(row[x].Rune) == 2 && x+1 < s.width:
		row[x+1] = Cell{Rune: ' '}
	}
	row[x] = Cell{Rune: ' '}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a default-colored space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// IsContinuation reports whether (x, y) is the right half of a wide rune.
func (s *Screen) IsContinuation(x, y int) bool {
	return s.inBounds(x, y) && s.cells[y][x].Rune == continuation
}

// DrawText writes a string horizontally starting at (x, y) and returns the
// number of columns it occupied. Characters beyond the screen are clipped.
func (s *Screen) DrawText(x, y int, text string) int {
	return s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored is DrawText with a foreground color.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetColored(col, y, r, c)
		col += w
	}
	return col - x
}

// DrawRect fills a rectangular area with the given rune and color.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(r.Right()-1, r.Y, '┐', c)
	s.SetColored(r.X, r.Bottom()-1, '└', c)
	s.SetColored(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(r.Right()-1, y, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x, y+i, r, c)
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune == continuation {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// TextWidth returns the number of terminal columns text occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}
