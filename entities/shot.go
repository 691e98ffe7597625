package entities

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// Shot is the player's projectile, climbing one row per ShotStepInterval
type Shot struct {
	Pos     core.Point
	Active  bool
	elapsed time.Duration
}

// launch activates the shot at the given cell with a fresh step timer
func (s *Shot) launch(at core.Point) {
	s.Pos = at
	s.Active = true
	s.elapsed = 0
}

// update advances the shot by elapsed time, deactivating it once it leaves the top row
// hit is checked on every row entered, so a long delta cannot carry the shot past a target
// Stepping stops at the first cell where hit reports true, and update returns true
func (s *Shot) update(delta time.Duration, hit func(core.Point) bool) bool {
	if !s.Active {
		return false
	}
	s.elapsed += delta
	for s.elapsed >= constants.ShotStepInterval {
		s.elapsed -= constants.ShotStepInterval
		if s.Pos.Y == 0 {
			s.Active = false
			s.elapsed = 0
			return false
		}
		s.Pos.Y--
		if hit != nil && hit(s.Pos) {
			return true
		}
	}
	return false
}

// explosion marks a hit cell for a short time after the shot is spent
type explosion struct {
	pos       core.Point
	remaining time.Duration
}

func (e *explosion) update(delta time.Duration) {
	if e.remaining <= 0 {
		return
	}
	e.remaining -= delta
}

func (e *explosion) visible() bool {
	return e.remaining > 0
}
