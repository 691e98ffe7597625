package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// Sentinel errors
var (
	ErrNotTerminal = errors.New("stdin/stdout is not a terminal")
	ErrTooSmall    = errors.New("terminal too small")
	ErrRestore     = errors.New("terminal restore failed")
)

// Session holds the terminal in raw mode on the alternate screen with the cursor hidden
// Close releases all of it and is safe to call on every exit path, any number of times
type Session struct {
	screen tcell.Screen

	mu     sync.Mutex
	closed bool
}

// Open acquires the process terminal, requiring at least minWidth x minHeight cells
func Open(minWidth, minHeight int) (*Session, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Acquire(screen, minWidth, minHeight)
}

// Acquire initializes an existing screen and checks its size
// On failure the screen is already released
func Acquire(screen tcell.Screen, minWidth, minHeight int) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	s := &Session{screen: screen}

	if w, h := screen.Size(); w < minWidth || h < minHeight {
		s.Close()
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, minWidth, minHeight, w, h)
	}
	return s, nil
}

// Screen returns the underlying screen for rendering and event polling
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Size returns the current terminal dimensions
func (s *Session) Size() (width, height int) {
	return s.screen.Size()
}

// Close restores the cursor, leaves the alternate screen and disables raw mode
// Only the first call does work, a panic during restore is reported as ErrRestore
func (s *Session) Close() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRestore, r)
		}
	}()

	s.screen.ShowCursor(0, 0)
	s.screen.Fini()
	return nil
}
