package core

import "github.com/lixenwraith/invaders/constants"

// Point represents a 2D cell coordinate, X is the column and Y the row
type Point struct {
	X, Y int
}

// Frame is a fixed-size grid of printable cells, one per terminal position
// A frame is built once per tick and handed to the render worker, the builder must not touch it afterwards
type Frame struct {
	width  int
	height int
	cells  []rune
}

// NewFrame creates a frame with every cell set to the empty glyph
func NewFrame(width, height int) Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = constants.GlyphEmpty
	}
	return Frame{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewEmptyFrame creates a frame sized to the play field
func NewEmptyFrame() Frame {
	return NewFrame(constants.FieldWidth, constants.FieldHeight)
}

// Width returns the frame width
func (f Frame) Width() int {
	return f.width
}

// Height returns the frame height
func (f Frame) Height() int {
	return f.height
}

// InBounds reports whether the point lies inside the frame
func (f Frame) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a glyph, out-of-bounds writes are ignored
func (f *Frame) Set(x, y int, r rune) {
	if !f.InBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = r
}

// At returns the glyph at a cell, the empty glyph when out of bounds
func (f Frame) At(x, y int) rune {
	if !f.InBounds(x, y) {
		return constants.GlyphEmpty
	}
	return f.cells[y*f.width+x]
}

// SameSize reports whether two frames share dimensions
func (f Frame) SameSize(o Frame) bool {
	return f.width == o.width && f.height == o.height
}

// Drawable is anything that can paint itself into a frame
// Implementations write only their own cells and never read what others wrote
type Drawable interface {
	Draw(frame *Frame)
}
