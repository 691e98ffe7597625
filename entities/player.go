package entities

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// Player is the ship on the bottom row
// At most one shot is in flight at a time, firing while one is active does nothing
type Player struct {
	x     int
	y     int
	width int
	shot  Shot
	blast explosion
}

// NewPlayer creates a player centred on the bottom row of the play field
func NewPlayer() *Player {
	return NewPlayerAt(constants.PlayerStartX, constants.PlayerRow, constants.FieldWidth)
}

// NewPlayerAt creates a player at a column and row of a field of the given width
func NewPlayerAt(x, y, width int) *Player {
	p := &Player{y: y, width: width}
	p.x = p.clamp(x)
	return p
}

func (p *Player) clamp(x int) int {
	if x < 0 {
		return 0
	}
	if x >= p.width {
		return p.width - 1
	}
	return x
}

// Position returns the ship cell
func (p *Player) Position() core.Point {
	return core.Point{X: p.x, Y: p.y}
}

// MoveLeft shifts the ship one column left, stopping at column 0
func (p *Player) MoveLeft() {
	p.x = p.clamp(p.x - 1)
}

// MoveRight shifts the ship one column right, stopping at the last column
func (p *Player) MoveRight() {
	p.x = p.clamp(p.x + 1)
}

// Shoot spawns a shot above the ship and returns true, or returns false if a shot is already in flight
func (p *Player) Shoot() bool {
	if p.shot.Active {
		return false
	}
	p.shot.launch(core.Point{X: p.x, Y: p.y - 1})
	return true
}

// Shot returns the projectile position and whether it is in flight
func (p *Player) Shot() (core.Point, bool) {
	return p.shot.Pos, p.shot.Active
}

// Update advances the projectile and any hit marker by elapsed time
// Every row the shot enters is checked against the fleet before the fleet itself moves
// Returns true if the shot struck an invader on the way, nil fleet disables the check
func (p *Player) Update(delta time.Duration, fleet *Fleet) bool {
	p.blast.update(delta)

	var hit func(core.Point) bool
	if fleet != nil {
		hit = fleet.KillAt
	}
	if !p.shot.update(delta, hit) {
		return false
	}
	p.explode()
	return true
}

// DetectHits removes the invader sharing the shot's cell
// Run after the fleet moves, it catches an invader stepping onto a resting shot
// Returns true on a hit, the shot is spent and a hit marker is left behind
func (p *Player) DetectHits(fleet *Fleet) bool {
	if !p.shot.Active || fleet == nil {
		return false
	}
	if !fleet.KillAt(p.shot.Pos) {
		return false
	}
	p.explode()
	return true
}

// explode spends the shot and leaves a hit marker at its cell
func (p *Player) explode() {
	p.blast = explosion{pos: p.shot.Pos, remaining: constants.ExplosionDuration}
	p.shot.Active = false
}

// Draw paints the ship, then the shot and hit marker over whatever lies beneath
func (p *Player) Draw(frame *core.Frame) {
	frame.Set(p.x, p.y, constants.GlyphPlayer)
	if p.shot.Active {
		frame.Set(p.shot.Pos.X, p.shot.Pos.Y, constants.GlyphShot)
	}
	if p.blast.visible() {
		frame.Set(p.blast.pos.X, p.blast.pos.Y, constants.GlyphExplosion)
	}
}
