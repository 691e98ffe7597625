package audio

import (
	"errors"
	"fmt"
)

// Cue names a sound effect triggered by the game loop
type Cue int

const (
	CueStartup Cue = iota // Game start
	CueMove               // Fleet step
	CuePew                // Player fires
	CueExplode            // Invader hit
	CueWin                // Fleet destroyed
	CueLose               // Fleet landed or player quit
	cueCount
)

var cueNames = [cueCount]string{
	CueStartup: "startup",
	CueMove:    "move",
	CuePew:     "pew",
	CueExplode: "explode",
	CueWin:     "win",
	CueLose:    "lose",
}

// String returns the cue name, also the base name of its asset file
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// FileName returns the wav asset name for the cue
func (c Cue) FileName() string {
	return c.String() + ".wav"
}

// AllCues returns the full cue vocabulary in declaration order
func AllCues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

// ParseCue resolves a cue by name
func ParseCue(name string) (Cue, error) {
	for c := Cue(0); c < cueCount; c++ {
		if cueNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCue, name)
}

// Sentinel errors
var (
	ErrUnknownCue     = errors.New("unknown audio cue")
	ErrNotInitialized = errors.New("audio not initialized")
)
