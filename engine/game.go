package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/entities"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

// IntentSource delivers pending input without blocking
type IntentSource interface {
	Poll() (input.IntentType, bool)
}

// CuePlayer starts a sound cue and returns immediately
type CuePlayer interface {
	Play(cue audio.Cue)
}

// FrameSink is the producing side of the frame channel
// Close ends the stream and returns once every accepted frame is rendered
type FrameSink interface {
	Submit(frame core.Frame) bool
	RequestRedraw()
	Close()
}

// Config wires a game to its collaborators, zero values pick defaults
type Config struct {
	Player *entities.Player
	Fleet  *entities.Fleet
	Input  IntentSource
	Audio  CuePlayer
	Frames FrameSink
	Clock  TimeProvider

	// Yield is the sleep at the end of each tick, zero disables it
	Yield time.Duration
}

// Game owns the simulation state and drives it from a single goroutine
type Game struct {
	player   *entities.Player
	fleet    *entities.Fleet
	input    IntentSource
	audio    CuePlayer
	frames   FrameSink
	clock    TimeProvider
	composer *render.Composer
	yield    time.Duration

	state GameState
	stats Stats
}

type silentPlayer struct{}

func (silentPlayer) Play(audio.Cue) {}

type noInput struct{}

func (noInput) Poll() (input.IntentType, bool) { return input.IntentNone, false }

// NewGame creates a game in StateRunning
func NewGame(cfg Config) *Game {
	g := &Game{
		player: cfg.Player,
		fleet:  cfg.Fleet,
		input:  cfg.Input,
		audio:  cfg.Audio,
		frames: cfg.Frames,
		clock:  cfg.Clock,
		yield:  cfg.Yield,
		state:  StateRunning,
	}
	if g.player == nil {
		g.player = entities.NewPlayer()
	}
	if g.fleet == nil {
		g.fleet = entities.NewFleet()
	}
	if g.input == nil {
		g.input = noInput{}
	}
	if g.audio == nil {
		g.audio = silentPlayer{}
	}
	if g.clock == nil {
		g.clock = NewMonotonicTimeProvider()
	}

	g.composer = render.NewComposer(constants.FieldWidth, constants.FieldHeight)
	g.composer.Register(g.fleet, render.PriorityFleet)
	g.composer.Register(g.player, render.PriorityPlayer)
	return g
}

// State returns the current state
func (g *Game) State() GameState {
	return g.state
}

// Stats returns the session counters
func (g *Game) Stats() Stats {
	return g.stats
}

// Player returns the player entity
func (g *Game) Player() *entities.Player {
	return g.player
}

// Fleet returns the invader fleet
func (g *Game) Fleet() *entities.Fleet {
	return g.fleet
}

// Run loops until a terminal state, then closes the frame sink and waits for it to drain
func (g *Game) Run() GameState {
	defer func() {
		if g.frames != nil {
			g.frames.Close()
		}
		log.Printf("game: %s after %d ticks, %d kills, %d frames sent, %d dropped",
			g.state, g.stats.Ticks, g.stats.Kills, g.stats.FramesSent, g.stats.FramesDropped)
	}()

	last := g.clock.Now()
	for !g.state.Terminal() {
		now := g.clock.Now()
		delta := now.Sub(last)
		last = now

		if !g.Tick(delta) {
			break
		}

		if g.yield > 0 {
			time.Sleep(g.yield)
		}

		g.checkOutcome()
	}
	return g.state
}

// Tick runs one iteration without the yield or the outcome check
// Returns false when input ended the game, in which case nothing is simulated or drawn
func (g *Game) Tick(delta time.Duration) bool {
	g.stats.Ticks++
	g.stats.Elapsed += delta

	if !g.drainInput() {
		return false
	}

	// The shot climbs first, checking each row against the fleet before it moves
	if g.player.Update(delta, g.fleet) {
		g.recordKill()
	}
	if g.fleet.Update(delta) {
		g.audio.Play(audio.CueMove)
	}
	if g.player.DetectHits(g.fleet) {
		g.recordKill()
	}

	g.sendFrame(g.composer.Compose())
	return true
}

// drainInput applies every pending intent, returning false on quit
func (g *Game) drainInput() bool {
	for {
		intent, ok := g.input.Poll()
		if !ok {
			return true
		}

		switch intent {
		case input.IntentQuit:
			g.transition(StateQuit)
			g.audio.Play(audio.CueLose)
			return false
		case input.IntentLeft:
			g.player.MoveLeft()
		case input.IntentRight:
			g.player.MoveRight()
		case input.IntentFire:
			if g.player.Shoot() {
				g.audio.Play(audio.CuePew)
			}
		case input.IntentResize:
			if g.frames != nil {
				g.frames.RequestRedraw()
			}
		}
	}
}

// sendFrame hands a frame to the sink, a refused frame is counted and otherwise ignored
func (g *Game) sendFrame(frame core.Frame) {
	if g.frames == nil {
		return
	}
	if g.frames.Submit(frame) {
		g.stats.FramesSent++
	} else {
		g.stats.FramesDropped++
	}
}

func (g *Game) recordKill() {
	g.stats.Kills++
	g.audio.Play(audio.CueExplode)
}

func (g *Game) checkOutcome() {
	switch {
	case g.fleet.AllKilled():
		g.transition(StateWon)
		g.audio.Play(audio.CueWin)
	case g.fleet.ReachedBottom():
		g.transition(StateLost)
		g.audio.Play(audio.CueLose)
	}
}

func (g *Game) transition(to GameState) {
	log.Printf("game: %s -> %s", g.state, to)
	g.state = to
}
