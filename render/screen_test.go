package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

type write struct {
	x, y  int
	r     rune
	style tcell.Style
}

// recordingScreen captures every call made by the renderer
type recordingScreen struct {
	mu     sync.Mutex
	writes []write
	clears int
	shows  int
	syncs  int
}

func (s *recordingScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, write{x: x, y: y, r: primary, style: style})
}

func (s *recordingScreen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
}

func (s *recordingScreen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows++
}

func (s *recordingScreen) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncs++
}

func (s *recordingScreen) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = nil
	s.clears, s.shows, s.syncs = 0, 0, 0
}

func (s *recordingScreen) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

func (s *recordingScreen) snapshot() []write {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]write, len(s.writes))
	copy(out, s.writes)
	return out
}
