package constants

import "time"

// Play field dimensions in terminal cells
const (
	FieldWidth  = 40
	FieldHeight = 20
)

// Player placement
const (
	// PlayerRow is the fixed row of the player ship
	PlayerRow = FieldHeight - 1

	// PlayerStartX is the starting column of the player ship
	PlayerStartX = FieldWidth / 2
)

// Fleet layout and boundaries
const (
	// FleetMinColumn and FleetMaxColumn bound the initial grid (exclusive)
	FleetMinColumn = 1
	FleetMaxColumn = FieldWidth - 2

	// FleetMinRow and FleetMaxRow bound the initial grid (exclusive)
	FleetMinRow = 0
	FleetMaxRow = 9

	// FleetSpacing is the gap between neighbouring invaders on both axes
	FleetSpacing = 2

	// BottomRow is the loss boundary, one row above the player
	BottomRow = FieldHeight - 2
)

// Game Loop Timing Constants
const (
	// FrameYield is the sleep at the end of every tick, capping the tick rate
	FrameYield = time.Millisecond

	// ShotStepInterval is the elapsed time for a projectile to climb one row
	ShotStepInterval = 50 * time.Millisecond

	// ExplosionDuration is how long a hit marker stays on screen
	ExplosionDuration = 250 * time.Millisecond

	// FleetBaseMovePeriod is the move period of a full fleet
	FleetBaseMovePeriod = 2 * time.Second

	// FleetMinMovePeriod is the floor the move period shrinks to
	FleetMinMovePeriod = 250 * time.Millisecond
)

// FrameQueueDepth is the capacity of the frame channel between the game loop and the render worker
const FrameQueueDepth = 64
