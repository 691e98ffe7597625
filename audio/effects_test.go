package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain counts samples until a streamer is exhausted, failing past limit
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0001 || buf[i][0] > 1.0001 {
				t.Fatalf("Sample out of range: %f", buf[i][0])
			}
		}
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("Streamer did not drain within %d samples", limit)
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Errorf("Expected 100 samples ok=true, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(220.0, 50*time.Millisecond, wave, rate)
		if got := drain(t, osc, rate.N(time.Second)); got != rate.N(50*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(50*time.Millisecond), got)
		}
	}
}

// TestEnvelopeCutsInfiniteStream shapes an endless source to a fixed length
func TestEnvelopeCutsInfiniteStream(t *testing.T) {
	rate := beep.SampleRate(44100)
	long := NewOscillator(440, time.Hour, WaveSquare, rate)
	env := NewEnvelope(long, 20*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(20*time.Millisecond)+100)
	n, _ := env.Stream(samples)
	if n != rate.N(20*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(20*time.Millisecond), n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	if _, ok := env.Stream(samples); ok {
		t.Error("Expected envelope to report drained")
	}
}

func TestSynthesizedCuesDrain(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, cue := range AllCues() {
		s := SynthesizeCue(cue, rate)
		if s == nil {
			t.Errorf("Expected synthesized sound for %s", cue)
			continue
		}
		if n := drain(t, s, rate.N(5*time.Second)); n == 0 {
			t.Errorf("Expected %s to produce samples", cue)
		}
	}
	if SynthesizeCue(Cue(42), rate) != nil {
		t.Error("Expected nil for unknown cue")
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, rate), 0)

	samples := make([][2]float64, 64)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence at zero volume, got %f", samples[i][0])
		}
	}
}
