package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/invaders/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping and cuts the stream at its duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a stream with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream in a linear volume control
// math.Log2(0) is -Inf, so 0 volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped oscillator tone
func note(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// jingle plays notes back to back with the jingle timing
func jingle(freqs []float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, note(f, wave, constants.JingleNoteDuration, constants.JingleNoteAttack, constants.JingleNoteRelease, rate))
	}
	return beep.Seq(notes...)
}

// CreateStartupSound generates a rising arpeggio
func CreateStartupSound(rate beep.SampleRate) beep.Streamer {
	freqs := []float64{261.63, 329.63, 392.00, 523.25}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, note(f, WaveSquare, constants.StartupNoteDuration, constants.StartupNoteAttack, constants.StartupNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.4)
}

// CreateMoveSound generates the low fleet step thump
func CreateMoveSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(note(110.0, WaveSquare, constants.MoveSoundDuration, constants.MoveSoundAttack, constants.MoveSoundRelease, rate), 0.4)
}

// CreatePewSound generates the firing blip from a sine tone
func CreatePewSound(rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, 880)
	if err != nil {
		tone = NewOscillator(880, constants.PewSoundDuration, WaveSine, rate)
	}
	return NewEnvelope(tone, constants.PewSoundDuration, constants.PewSoundAttack, constants.PewSoundRelease, rate)
}

// CreateExplodeSound generates a noise burst with a low rumble
func CreateExplodeSound(rate beep.SampleRate) beep.Streamer {
	noise := note(0, WaveNoise, constants.ExplodeSoundDuration, constants.ExplodeSoundAttack, constants.ExplodeSoundRelease, rate)
	rumble := note(70, WaveSine, constants.ExplodeSoundDuration, constants.ExplodeSoundAttack, constants.ExplodeSoundRelease, rate)
	return beep.Mix(
		newVolume(noise, 0.5),
		newVolume(rumble, 0.5),
	)
}

// CreateWinSound generates an ascending fanfare
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(jingle([]float64{523.25, 659.25, 783.99, 1046.50}, WaveSquare, rate), 0.4)
}

// CreateLoseSound generates a descending saw line
func CreateLoseSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(jingle([]float64{392.00, 311.13, 261.63, 196.00}, WaveSaw, rate), 0.4)
}

// SynthesizeCue returns the built-in sound for a cue, nil for an unknown cue
func SynthesizeCue(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueStartup:
		return CreateStartupSound(rate)
	case CueMove:
		return CreateMoveSound(rate)
	case CuePew:
		return CreatePewSound(rate)
	case CueExplode:
		return CreateExplodeSound(rate)
	case CueWin:
		return CreateWinSound(rate)
	case CueLose:
		return CreateLoseSound(rate)
	default:
		return nil
	}
}
