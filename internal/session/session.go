// Package session drives the interactive typing-test loop.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/termitype/termitype/internal/model"
	"github.com/termitype/termitype/internal/stats"
)

// ErrInterrupted reports a user-cancelled session. It is not a failure:
// the caller exits cleanly without rendering results.
var ErrInterrupted = errors.New("session interrupted")

// EventKind tags a decoded input event.
type EventKind int

// Input event kinds.
const (
	EventPrintable EventKind = iota
	EventBackspace
	EventEnter
	EventInterrupt
	EventOther
)

// Event is one decoded keystroke. Rune is set for EventPrintable only.
type Event struct {
	Kind EventKind
	Rune rune
}

// InputSource reads one raw input event at a time, blocking until a key
// arrives.
type InputSource interface {
	ReadEvent() (Event, error)
}

// Renderer draws the test screens. Every live render is a full redraw.
type Renderer interface {
	RenderIntro()
	RenderLive(target, typed []rune, live model.LiveStats)
	RenderFinal(target, typed []rune, final model.LiveStats)
}

// State is the session lifecycle phase.
type State int

// Session states.
const (
	NotStarted State = iota
	Running
	Finished
)

// InputState records what the user has typed plus session timestamps.
// StartedAt is set once before any character is appended; EndedAt is set
// once when the session reaches a terminal condition.
type InputState struct {
	Typed     []rune
	StartedAt time.Time
	EndedAt   time.Time
}

// Session owns the input state and runs the read/render loop.
type Session struct {
	target   []rune
	input    InputState
	state    State
	source   InputSource
	renderer Renderer
	now      func() time.Time
}

// New constructs a session for the given target text.
func New(target string, source InputSource, renderer Renderer) *Session {
	return &Session{
		target:   []rune(target),
		source:   source,
		renderer: renderer,
		now:      time.Now,
	}
}

// Run executes the session to completion: wait for the starting keystroke,
// loop render/read/apply until the text is finished or the user presses
// Enter, then render final results. Returns ErrInterrupted on cancellation.
func (s *Session) Run() error {
	s.renderer.RenderIntro()

	// The starting keystroke only arms the clock; it is never recorded
	// as typed input.
	ev, err := s.source.ReadEvent()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if ev.Kind == EventInterrupt {
		return ErrInterrupted
	}
	s.input.StartedAt = s.now()
	s.state = Running

	for s.state == Running {
		s.renderer.RenderLive(s.target, s.input.Typed, s.liveStats())

		if len(s.input.Typed) >= len(s.target) {
			s.finish()
			break
		}

		ev, err := s.source.ReadEvent()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		switch ev.Kind {
		case EventInterrupt:
			return ErrInterrupted
		case EventEnter:
			s.finish()
		case EventBackspace:
			if len(s.input.Typed) > 0 {
				s.input.Typed = s.input.Typed[:len(s.input.Typed)-1]
			}
		case EventPrintable:
			s.input.Typed = append(s.input.Typed, ev.Rune)
		case EventOther:
			// Ignored: unmapped keys leave the state untouched.
		}
	}

	final := stats.Metrics(s.target, s.input.Typed, s.input.EndedAt.Sub(s.input.StartedAt))
	s.renderer.RenderFinal(s.target, s.input.Typed, final)
	return nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Input returns a copy of the current input state.
func (s *Session) Input() InputState {
	return s.input
}

func (s *Session) finish() {
	s.input.EndedAt = s.now()
	s.state = Finished
}

func (s *Session) liveStats() model.LiveStats {
	return stats.Metrics(s.target, s.input.Typed, s.now().Sub(s.input.StartedAt))
}
