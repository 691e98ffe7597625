package render

import (
	"github.com/lixenwraith/invaders/core"
)

type drawableEntry struct {
	drawable core.Drawable
	priority DrawPriority
	index    int // registration order for stable sort
}

// Composer builds a fresh frame per tick by painting registered drawables in priority order
type Composer struct {
	width     int
	height    int
	drawables []drawableEntry
	regCount  int
}

// NewComposer creates a composer producing frames of the given dimensions
func NewComposer(width, height int) *Composer {
	return &Composer{
		width:     width,
		height:    height,
		drawables: make([]drawableEntry, 0, 4),
	}
}

// Register adds a drawable at the specified priority. Maintains sorted order via insertion sort
func (c *Composer) Register(d core.Drawable, priority DrawPriority) {
	entry := drawableEntry{
		drawable: d,
		priority: priority,
		index:    c.regCount,
	}
	c.regCount++

	pos := len(c.drawables)
	for i, e := range c.drawables {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	c.drawables = append(c.drawables, drawableEntry{})
	copy(c.drawables[pos+1:], c.drawables[pos:])
	c.drawables[pos] = entry
}

// Compose allocates an empty frame and paints every drawable into it
// The returned frame is owned by the caller and shares nothing with earlier frames
func (c *Composer) Compose() core.Frame {
	frame := core.NewFrame(c.width, c.height)
	for _, e := range c.drawables {
		e.drawable.Draw(&frame)
	}
	return frame
}
