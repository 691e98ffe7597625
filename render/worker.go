package render

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/invaders/core"
)

// Worker owns the consuming end of the frame channel and performs all screen writes
// Frames are rendered in send order, each diffed against the one rendered before it
type Worker struct {
	renderer *Renderer
	frames   chan core.Frame
	redraw   chan struct{}

	running   atomic.Bool
	closed    atomic.Bool
	closeOnce sync.Once
	wg        sync.WaitGroup

	rendered atomic.Uint64
	dropped  atomic.Uint64
	cells    atomic.Uint64
}

// NewWorker creates a worker with a frame queue of the given depth
func NewWorker(renderer *Renderer, depth int) *Worker {
	if depth < 1 {
		depth = 1
	}
	return &Worker{
		renderer: renderer,
		frames:   make(chan core.Frame, depth),
		redraw:   make(chan struct{}, 1),
	}
}

// Start launches the render loop
func (w *Worker) Start() {
	if w.running.CompareAndSwap(false, true) {
		w.wg.Add(1)
		core.Go(w.loop)
	}
}

// Submit hands a frame to the worker without blocking
// The queue is bounded at the depth given to NewWorker rather than growing without limit:
// once the worker falls that far behind, frames are dropped and counted instead of queued
// The next accepted frame is still diffed against the last rendered one, so the screen stays correct
// Returns false when the frame was dropped because the queue is full or the worker is closed
// The caller must not modify the frame after a successful submit
func (w *Worker) Submit(frame core.Frame) bool {
	if w.closed.Load() {
		w.dropped.Add(1)
		return false
	}
	select {
	case w.frames <- frame:
		return true
	default:
		w.dropped.Add(1)
		return false
	}
}

// RequestRedraw makes the next rendered frame take the full redraw path
func (w *Worker) RequestRedraw() {
	select {
	case w.redraw <- struct{}{}:
	default:
	}
}

// Close closes the frame queue and waits for the worker to render what is left
// Safe to call multiple times, but only from the goroutine that calls Submit
func (w *Worker) Close() {
	w.closeOnce.Do(func() {
		w.closed.Store(true)
		close(w.frames)
		if w.running.Load() {
			w.wg.Wait()
		}
	})
}

// Rendered returns the number of frames rendered
func (w *Worker) Rendered() uint64 {
	return w.rendered.Load()
}

// Dropped returns the number of frames refused by Submit
func (w *Worker) Dropped() uint64 {
	return w.dropped.Load()
}

// CellsWritten returns the total number of cells written to the screen
func (w *Worker) CellsWritten() uint64 {
	return w.cells.Load()
}

func (w *Worker) loop() {
	defer w.wg.Done()

	var last core.Frame
	full := true

	for frame := range w.frames {
		select {
		case <-w.redraw:
			full = true
		default:
		}

		n := w.renderer.Render(last, frame, full)
		w.cells.Add(uint64(n))
		w.rendered.Add(1)

		last = frame
		full = false
	}
}
