package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/invaders/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	AssetDir      string
	EffectVolumes map[Cue]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		AssetDir:     constants.DefaultAssetDir,
		EffectVolumes: map[Cue]float64{
			CueStartup: 0.8,
			CueMove:    0.5,
			CuePew:     0.6,
			CueExplode: 0.8,
			CueWin:     1.0,
			CueLose:    1.0,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Invalid values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("INVADERS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("INVADERS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON object keyed by cue name
	if effectVols := os.Getenv("INVADERS_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				cue, err := ParseCue(name)
				if err != nil {
					log.Printf("audio config: %v", err)
					continue
				}
				cfg.EffectVolumes[cue] = clampUnit(v)
			}
		} else {
			log.Printf("audio config: INVADERS_SFX_VOLUMES: %v", err)
		}
	}

	if sampleRate := os.Getenv("INVADERS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if dir := os.Getenv("INVADERS_ASSET_DIR"); dir != "" {
		cfg.AssetDir = dir
	}

	return cfg
}

// Volume returns the effective volume of a cue
func (c *AudioConfig) Volume(cue Cue) float64 {
	v, ok := c.EffectVolumes[cue]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
