package constants

import "time"

// Audio Engine Setup
const (
	// DefaultSampleRate is the playback rate when none is configured
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length, trading latency for stability
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultAssetDir holds the cue wav files
	DefaultAssetDir = "./audio"
)

// Startup Cue Timing
const (
	StartupNoteDuration = 90 * time.Millisecond
	StartupNoteAttack   = 5 * time.Millisecond
	StartupNoteRelease  = 40 * time.Millisecond
)

// Move Cue Timing
const (
	MoveSoundDuration = 60 * time.Millisecond
	MoveSoundAttack   = 2 * time.Millisecond
	MoveSoundRelease  = 30 * time.Millisecond
)

// Pew Cue Timing
const (
	PewSoundDuration = 120 * time.Millisecond
	PewSoundAttack   = 2 * time.Millisecond
	PewSoundRelease  = 100 * time.Millisecond
)

// Explode Cue Timing
const (
	ExplodeSoundDuration = 300 * time.Millisecond
	ExplodeSoundAttack   = 5 * time.Millisecond
	ExplodeSoundRelease  = 250 * time.Millisecond
)

// Win/Lose Cue Timing
const (
	JingleNoteDuration = 160 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 80 * time.Millisecond
)
