package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/terminal"
)

// inputQueueDepth buffers terminal events between the reader goroutine and the game loop
const inputQueueDepth = 64

func main() {
	os.Exit(run())
}

// run plays one session and returns the process exit code
// Every game outcome exits 0, setup failures and a failed terminal restore exit 1
func run() (code int) {
	if logFile := setupLogging(debugEnabled()); logFile != nil {
		defer logFile.Close()
	}

	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sounds.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize audio: %v\n", err)
		return 1
	}
	defer sounds.Cleanup()
	log.Printf("audio ready (enabled=%v)", sounds.Enabled())

	sounds.Play(audio.CueStartup)

	session, err := terminal.Open(constants.FieldWidth, constants.FieldHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashRestore(func() { session.Close() })

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen := session.Screen()

	worker := render.NewWorker(render.NewRenderer(screen, render.DefaultPalette()), constants.FrameQueueDepth)
	worker.Start()

	events := input.NewSource(screen, input.DefaultKeyTable(), inputQueueDepth)
	events.Start()

	game := engine.NewGame(engine.Config{
		Input:  events,
		Audio:  sounds,
		Frames: worker,
		Yield:  constants.FrameYield,
	})

	// Run closes the worker and waits for its last frame
	state := game.Run()
	log.Printf("session over: %s, %d frames rendered, %d cells written", state, worker.Rendered(), worker.CellsWritten())

	// Let the final cue finish before the terminal is handed back
	sounds.Wait()

	// Nobody polls from here on, Fini below unblocks the reader
	events.Stop()

	if err := session.Close(); err != nil {
		log.Printf("terminal teardown: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to restore terminal: %v\n", err)
		code = 1
	}

	fmt.Println(summary(state, game.Stats()))
	return code
}
