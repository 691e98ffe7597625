package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the interpolation quality when an asset's rate differs from the speaker's
const resampleQuality = 4

// bufferFormat returns the in-memory format every cue is stored in
func bufferFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// loadCues fills one buffer per cue from the asset directory
// A missing asset falls back to the synthesized cue, an unreadable one is an error
func loadCues(dir string, rate beep.SampleRate) (map[Cue]*beep.Buffer, error) {
	buffers := make(map[Cue]*beep.Buffer, cueCount)
	for _, cue := range AllCues() {
		buf, err := loadCue(dir, cue, rate)
		if err != nil {
			return nil, err
		}
		buffers[cue] = buf
	}
	return buffers, nil
}

func loadCue(dir string, cue Cue, rate beep.SampleRate) (*beep.Buffer, error) {
	buf := beep.NewBuffer(bufferFormat(rate))
	path := filepath.Join(dir, cue.FileName())

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("audio: %s not found, using synthesized %s cue", path, cue)
		buf.Append(SynthesizeCue(cue, rate))
		return buf, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := decodeInto(buf, f, rate); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Printf("audio: loaded %s (%d samples)", path, buf.Len())
	return buf, nil
}

// decodeInto appends a wav stream to buf, resampling to rate when needed
func decodeInto(buf *beep.Buffer, f *os.File, rate beep.SampleRate) error {
	streamer, format, err := wav.Decode(f)
	if err != nil {
		return err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}
	buf.Append(s)
	return streamer.Err()
}
