package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/invaders/constants"
)

// SoundManager plays named cues fire-and-forget and can wait for the ones in flight
// All methods are safe on an uninitialized or disabled manager, playback is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	rate        beep.SampleRate
	buffers     map[Cue]*beep.Buffer
	pending     sync.WaitGroup
	initialized bool
}

// NewSoundManager creates a sound manager for the given configuration, nil uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:  cfg,
		rate: beep.SampleRate(cfg.SampleRate),
	}
}

// Initialize loads every cue and opens the speaker
// A disabled configuration succeeds without touching the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	buffers, err := loadCues(sm.cfg.AssetDir, sm.rate)
	if err != nil {
		return fmt.Errorf("load audio cues: %w", err)
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.buffers = buffers
	sm.initialized = true
	return nil
}

// Enabled reports whether cues will actually be heard
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play starts a cue and returns immediately
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf, ok := sm.buffers[cue]
	if !ok {
		return
	}

	sm.pending.Add(1)
	stream := newVolume(buf.Streamer(0, buf.Len()), sm.cfg.Volume(cue))
	speaker.Play(beep.Seq(stream, beep.Callback(sm.pending.Done)))
}

// Wait blocks until every cue started so far has finished playing
func (sm *SoundManager) Wait() {
	sm.pending.Wait()
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.buffers = nil
	sm.initialized = false
}
