// Package terminal reads raw keystrokes and decodes them into input events.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode"

	"golang.org/x/term"

	"github.com/termitype/termitype/internal/session"
)

// RawReader reads events from a TTY. Each read toggles the terminal into
// raw mode (no echo, no line buffering) and restores the prior mode before
// returning, on every exit path.
type RawReader struct {
	f  *os.File
	br *bufio.Reader

	mu    sync.Mutex
	saved *term.State
}

// NewRawReader wraps a terminal file, typically os.Stdin.
func NewRawReader(f *os.File) *RawReader {
	return &RawReader{f: f, br: bufio.NewReader(f)}
}

// ReadEvent blocks until one keystroke is available and decodes it.
// Ctrl+C arrives in-band as 0x03 while raw mode is active and decodes to
// an interrupt event.
func (r *RawReader) ReadEvent() (session.Event, error) {
	state, err := term.MakeRaw(int(r.f.Fd()))
	if err != nil {
		return session.Event{}, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	r.mu.Lock()
	r.saved = state
	r.mu.Unlock()
	defer r.Restore()

	return decodeEvent(r.br)
}

// Restore puts the terminal back into its prior mode if a raw read is in
// flight. Safe to call from a signal-handling goroutine; a no-op otherwise.
func (r *RawReader) Restore() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saved == nil {
		return
	}
	if err := term.Restore(int(r.f.Fd()), r.saved); err != nil {
		logErrf("failed to restore terminal mode: %v\n", err)
	}
	r.saved = nil
}

// PipeReader reads events from a plain byte stream without mode toggling,
// for non-TTY stdin such as pipes and tests.
type PipeReader struct {
	br *bufio.Reader
}

// NewPipeReader wraps any reader.
func NewPipeReader(rd io.Reader) *PipeReader {
	return &PipeReader{br: bufio.NewReader(rd)}
}

// ReadEvent blocks until one keystroke is available and decodes it.
func (p *PipeReader) ReadEvent() (session.Event, error) {
	return decodeEvent(p.br)
}

// NewReader selects the input source for the file: raw-mode reads for a
// TTY, buffered reads otherwise.
func NewReader(f *os.File) session.InputSource {
	if term.IsTerminal(int(f.Fd())) {
		return NewRawReader(f)
	}
	return NewPipeReader(f)
}

// decodeEvent maps one keystroke to an event. Invalid UTF-8 decodes
// permissively to the replacement rune rather than failing the read.
func decodeEvent(br *bufio.Reader) (session.Event, error) {
	r, _, err := br.ReadRune()
	if err != nil {
		return session.Event{}, err
	}
	switch {
	case r == 0x03:
		return session.Event{Kind: session.EventInterrupt}, nil
	case r == '\r' || r == '\n':
		return session.Event{Kind: session.EventEnter}, nil
	case r == 0x7f || r == '\b':
		return session.Event{Kind: session.EventBackspace}, nil
	case r == 0x1b:
		drainEscape(br)
		return session.Event{Kind: session.EventOther}, nil
	case unicode.IsPrint(r):
		return session.Event{Kind: session.EventPrintable, Rune: r}, nil
	default:
		return session.Event{Kind: session.EventOther}, nil
	}
}

// drainEscape consumes the remainder of a buffered escape sequence so
// arrow keys and similar do not leak printable bytes into the next read.
// Only already-buffered bytes are consumed; a lone ESC never blocks.
func drainEscape(br *bufio.Reader) {
	if br.Buffered() == 0 {
		return
	}
	b, err := br.ReadByte()
	if err != nil {
		return
	}
	if b != '[' && b != 'O' {
		return
	}
	for br.Buffered() > 0 {
		c, err := br.ReadByte()
		if err != nil {
			return
		}
		// CSI sequences end with a byte in 0x40..0x7E.
		if c >= 0x40 && c <= 0x7e {
			return
		}
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
