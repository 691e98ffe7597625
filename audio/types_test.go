package audio

import (
	"errors"
	"testing"
)

func TestCueNames(t *testing.T) {
	expected := map[Cue]string{
		CueStartup: "startup",
		CueMove:    "move",
		CuePew:     "pew",
		CueExplode: "explode",
		CueWin:     "win",
		CueLose:    "lose",
	}

	if len(AllCues()) != len(expected) {
		t.Fatalf("Expected %d cues, got %d", len(expected), len(AllCues()))
	}
	for cue, name := range expected {
		if cue.String() != name {
			t.Errorf("Expected %q, got %q", name, cue.String())
		}
		if cue.FileName() != name+".wav" {
			t.Errorf("Expected file %q, got %q", name+".wav", cue.FileName())
		}
	}
	if Cue(99).String() != "cue(99)" {
		t.Errorf("Expected out-of-range cue to print its number, got %q", Cue(99).String())
	}
}

func TestParseCue(t *testing.T) {
	for _, cue := range AllCues() {
		got, err := ParseCue(cue.String())
		if err != nil {
			t.Errorf("ParseCue(%q) failed: %v", cue.String(), err)
		}
		if got != cue {
			t.Errorf("ParseCue(%q) = %v, expected %v", cue.String(), got, cue)
		}
	}

	if _, err := ParseCue("boing"); !errors.Is(err, ErrUnknownCue) {
		t.Errorf("Expected ErrUnknownCue, got %v", err)
	}
}
