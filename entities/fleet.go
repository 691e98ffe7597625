package entities

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// Fleet is the invader grid moving in lockstep on a shared timer
// Identity is positional: an invader is its slot in the collection
type Fleet struct {
	invaders  []core.Point
	initial   int
	direction int
	elapsed   time.Duration
	width     int
	bottom    int
	altGlyph  bool
}

// NewFleet creates the full starting grid on the default play field
func NewFleet() *Fleet {
	var grid []core.Point
	for y := constants.FleetMinRow + 1; y < constants.FleetMaxRow; y++ {
		if y%constants.FleetSpacing != 0 {
			continue
		}
		for x := constants.FleetMinColumn + 1; x < constants.FleetMaxColumn; x++ {
			if x%constants.FleetSpacing != 0 {
				continue
			}
			grid = append(grid, core.Point{X: x, Y: y})
		}
	}
	return NewFleetFrom(grid, constants.FieldWidth, constants.BottomRow)
}

// NewFleetFrom creates a fleet from explicit positions on a field of the given width and loss row
func NewFleetFrom(positions []core.Point, width, bottom int) *Fleet {
	invaders := make([]core.Point, len(positions))
	copy(invaders, positions)
	return &Fleet{
		invaders:  invaders,
		initial:   len(invaders),
		direction: 1,
		width:     width,
		bottom:    bottom,
	}
}

// Len returns the surviving invader count
func (f *Fleet) Len() int {
	return len(f.invaders)
}

// Direction returns the shared horizontal direction, +1 right or -1 left
func (f *Fleet) Direction() int {
	return f.direction
}

// Positions returns a copy of the surviving invader cells
func (f *Fleet) Positions() []core.Point {
	out := make([]core.Point, len(f.invaders))
	copy(out, f.invaders)
	return out
}

// MovePeriod returns the current move interval, proportional to the surviving share of the fleet
func (f *Fleet) MovePeriod() time.Duration {
	if f.initial == 0 {
		return constants.FleetMinMovePeriod
	}
	period := time.Duration(int64(constants.FleetBaseMovePeriod) * int64(len(f.invaders)) / int64(f.initial))
	if period < constants.FleetMinMovePeriod {
		return constants.FleetMinMovePeriod
	}
	return period
}

// Update accumulates elapsed time and moves the fleet when the period expires
// If any invader would leave the field the whole fleet reverses and descends one row instead
// Returns true only on ticks where the fleet moved
func (f *Fleet) Update(delta time.Duration) bool {
	if len(f.invaders) == 0 {
		return false
	}

	f.elapsed += delta
	if f.elapsed < f.MovePeriod() {
		return false
	}
	f.elapsed = 0

	blocked := false
	for _, inv := range f.invaders {
		nx := inv.X + f.direction
		if nx < 0 || nx >= f.width {
			blocked = true
			break
		}
	}

	if blocked {
		f.direction = -f.direction
		for i := range f.invaders {
			f.invaders[i].Y++
		}
	} else {
		for i := range f.invaders {
			f.invaders[i].X += f.direction
		}
	}

	f.altGlyph = !f.altGlyph
	return true
}

// KillAt removes the invader at exactly the given cell, reporting whether one was there
func (f *Fleet) KillAt(p core.Point) bool {
	for i, inv := range f.invaders {
		if inv == p {
			f.invaders = append(f.invaders[:i], f.invaders[i+1:]...)
			return true
		}
	}
	return false
}

// AllKilled reports whether the fleet is empty
func (f *Fleet) AllKilled() bool {
	return len(f.invaders) == 0
}

// ReachedBottom reports whether any invader is at or below the loss row
func (f *Fleet) ReachedBottom() bool {
	for _, inv := range f.invaders {
		if inv.Y >= f.bottom {
			return true
		}
	}
	return false
}

// Draw paints every surviving invader, the glyph alternating with each move
func (f *Fleet) Draw(frame *core.Frame) {
	glyph := rune(constants.GlyphInvader)
	if f.altGlyph {
		glyph = constants.GlyphInvaderAlt
	}
	for _, inv := range f.invaders {
		frame.Set(inv.X, inv.Y, glyph)
	}
}
