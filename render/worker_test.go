package render

import (
	"testing"
	"time"

	"github.com/lixenwraith/invaders/core"
)

func TestWorkerRendersFramesInOrder(t *testing.T) {
	screen := &recordingScreen{}
	w := NewWorker(NewRenderer(screen, nil), 16)
	w.Start()

	for i := 0; i < 5; i++ {
		f := core.NewFrame(6, 1)
		f.Set(i, 0, 'x')
		if !w.Submit(f) {
			t.Fatalf("Submit %d refused", i)
		}
	}
	w.Close()

	if w.Rendered() != 5 {
		t.Fatalf("Expected 5 frames rendered, got %d", w.Rendered())
	}

	// First frame full (6 cells), then each step clears one cell and fills the next
	if got := w.CellsWritten(); got != 6+4*2 {
		t.Errorf("Expected %d cells written, got %d", 6+4*2, got)
	}

	writes := screen.snapshot()
	last := writes[len(writes)-1]
	if last.x != 4 || last.r != 'x' {
		t.Errorf("Expected last write to place 'x' at column 4, got %q at %d", last.r, last.x)
	}
}

func TestWorkerCloseDrainsQueue(t *testing.T) {
	screen := &recordingScreen{}
	w := NewWorker(NewRenderer(screen, nil), 8)

	// Queue before the loop starts, Close must still wait for all of them
	for i := 0; i < 3; i++ {
		w.Submit(core.NewFrame(2, 2))
	}
	w.Start()
	w.Close()

	if w.Rendered() != 3 {
		t.Errorf("Expected 3 queued frames rendered before Close returned, got %d", w.Rendered())
	}
}

func TestWorkerSubmitAfterCloseIsDropped(t *testing.T) {
	w := NewWorker(NewRenderer(&recordingScreen{}, nil), 1)
	w.Start()
	w.Close()

	if w.Submit(core.NewFrame(1, 1)) {
		t.Error("Expected submit after close to be refused")
	}
	if w.Dropped() != 1 {
		t.Errorf("Expected 1 dropped frame, got %d", w.Dropped())
	}

	// Second close is a no-op
	w.Close()
}

func TestWorkerSubmitFullQueueIsDropped(t *testing.T) {
	w := NewWorker(NewRenderer(&recordingScreen{}, nil), 1)

	if !w.Submit(core.NewFrame(1, 1)) {
		t.Fatal("Expected first submit to fit the queue")
	}
	if w.Submit(core.NewFrame(1, 1)) {
		t.Error("Expected submit to a full queue to be refused")
	}
	if w.Dropped() != 1 {
		t.Errorf("Expected 1 dropped frame, got %d", w.Dropped())
	}

	w.Start()
	w.Close()
}

func TestWorkerRedrawForcesFullPath(t *testing.T) {
	screen := &recordingScreen{}
	w := NewWorker(NewRenderer(screen, nil), 4)
	frame := core.NewFrame(3, 3)

	w.Start()
	w.Submit(frame)

	deadline := time.Now().Add(2 * time.Second)
	for w.Rendered() < 1 {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for first frame")
		}
		time.Sleep(time.Millisecond)
	}

	// Identical frame would normally write nothing
	w.RequestRedraw()
	w.Submit(frame)
	w.Close()

	if screen.clears != 2 {
		t.Errorf("Expected redraw request to take the full path, got %d clears", screen.clears)
	}
	if screen.writeCount() != 18 {
		t.Errorf("Expected two full redraws of 9 cells, got %d writes", screen.writeCount())
	}
}
