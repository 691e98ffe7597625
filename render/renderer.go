package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/core"
)

// Screen is the terminal output sink, satisfied by tcell.Screen
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
	Sync()
}

// Renderer writes frames to a screen, emitting only cells that differ from the previous frame
type Renderer struct {
	screen  Screen
	palette *Palette
}

// NewRenderer creates a renderer over a screen, a nil palette renders every glyph with the default style
func NewRenderer(screen Screen, palette *Palette) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: palette,
	}
}

// Render draws curr and returns the number of cells written
// forceFull clears the screen and writes every cell, also taken when prev and curr differ in size
// Otherwise only cells that changed since prev are written, and nothing is flushed if none did
func (r *Renderer) Render(prev, curr core.Frame, forceFull bool) int {
	if forceFull || !prev.SameSize(curr) {
		return r.renderFull(curr)
	}

	written := 0
	for y := 0; y < curr.Height(); y++ {
		for x := 0; x < curr.Width(); x++ {
			c := curr.At(x, y)
			if c == prev.At(x, y) {
				continue
			}
			r.screen.SetContent(x, y, c, nil, r.palette.Style(c))
			written++
		}
	}

	if written > 0 {
		r.screen.Show()
	}
	return written
}

func (r *Renderer) renderFull(curr core.Frame) int {
	r.screen.Clear()
	written := 0
	for y := 0; y < curr.Height(); y++ {
		for x := 0; x < curr.Width(); x++ {
			c := curr.At(x, y)
			r.screen.SetContent(x, y, c, nil, r.palette.Style(c))
			written++
		}
	}
	r.screen.Sync()
	return written
}
