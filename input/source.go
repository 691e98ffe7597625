package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/core"
)

// EventPoller is the blocking event reader of a terminal screen, satisfied by tcell.Screen
// PollEvent returns nil once the screen is finalized
type EventPoller interface {
	PollEvent() tcell.Event
}

// Source buffers terminal events on a background goroutine so the game loop can poll without blocking
type Source struct {
	poller EventPoller
	keys   *KeyTable
	events chan tcell.Event

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// NewSource creates a source reading from poller, translated through keys
func NewSource(poller EventPoller, keys *KeyTable, depth int) *Source {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if depth < 1 {
		depth = 1
	}
	return &Source{
		poller: poller,
		keys:   keys,
		events: make(chan tcell.Event, depth),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the reader goroutine, it exits when the poller returns nil
func (s *Source) Start() {
	s.startOnce.Do(func() {
		core.Go(s.readLoop)
	})
}

// Stop releases a reader blocked on a full queue once nobody polls any more
// The reader exits before its next poll, or when the poller returns nil. Safe to call multiple times
func (s *Source) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Done is closed when the reader goroutine has exited
func (s *Source) Done() <-chan struct{} {
	return s.done
}

// Poll returns the next pending intent without blocking
// ok is false when no event is pending, events that map to no intent are skipped
func (s *Source) Poll() (intent IntentType, ok bool) {
	for {
		select {
		case ev, open := <-s.events:
			if !open {
				return IntentNone, false
			}
			if intent := s.keys.Translate(ev); intent != IntentNone {
				return intent, true
			}
		default:
			return IntentNone, false
		}
	}
}

func (s *Source) readLoop() {
	defer close(s.done)
	defer close(s.events)
	for {
		select {
		case <-s.stop:
			return
		default:
		}

		ev := s.poller.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stop:
			return
		}
	}
}
