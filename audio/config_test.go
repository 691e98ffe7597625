package audio

import (
	"testing"

	"github.com/lixenwraith/invaders/constants"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != constants.DefaultSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", constants.DefaultSampleRate, cfg.SampleRate)
	}
	if cfg.AssetDir != constants.DefaultAssetDir {
		t.Errorf("Expected default asset dir %q, got %q", constants.DefaultAssetDir, cfg.AssetDir)
	}
	for _, cue := range AllCues() {
		if _, ok := cfg.EffectVolumes[cue]; !ok {
			t.Errorf("Expected default volume for %s", cue)
		}
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("INVADERS_AUDIO_ENABLED", "false")
	t.Setenv("INVADERS_MASTER_VOLUME", "80")
	t.Setenv("INVADERS_SFX_VOLUMES", `{"pew": 0.25, "boing": 1.0, "win": 7}`)
	t.Setenv("INVADERS_SAMPLE_RATE", "22050")
	t.Setenv("INVADERS_ASSET_DIR", "/tmp/sounds")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[CuePew] != 0.25 {
		t.Errorf("Expected pew volume 0.25, got %f", cfg.EffectVolumes[CuePew])
	}
	if cfg.EffectVolumes[CueWin] != 1.0 {
		t.Errorf("Expected win volume clamped to 1.0, got %f", cfg.EffectVolumes[CueWin])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
	if cfg.AssetDir != "/tmp/sounds" {
		t.Errorf("Expected asset dir /tmp/sounds, got %q", cfg.AssetDir)
	}
}

func TestLoadAudioConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("INVADERS_AUDIO_ENABLED", "maybe")
	t.Setenv("INVADERS_MASTER_VOLUME", "loud")
	t.Setenv("INVADERS_SFX_VOLUMES", "{not json")
	t.Setenv("INVADERS_SAMPLE_RATE", "-5")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Error("Expected invalid enabled flag to keep default")
	}
	if cfg.MasterVolume != def.MasterVolume {
		t.Errorf("Expected default master volume, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected default sample rate, got %d", cfg.SampleRate)
	}
}

func TestMasterVolumeClamped(t *testing.T) {
	t.Setenv("INVADERS_MASTER_VOLUME", "250")
	if v := LoadAudioConfig().MasterVolume; v != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", v)
	}
}

func TestConfigVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.5
	cfg.EffectVolumes[CueMove] = 0.5

	if v := cfg.Volume(CueMove); v != 0.25 {
		t.Errorf("Expected 0.25, got %f", v)
	}

	delete(cfg.EffectVolumes, CueMove)
	if v := cfg.Volume(CueMove); v != 0.5 {
		t.Errorf("Expected missing effect volume to default to full, got %f", v)
	}
}
