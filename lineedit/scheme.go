package lineedit

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrUnknownScheme is returned when a key scheme name is not recognised.
var ErrUnknownScheme = errors.New("unknown key scheme")

// Event represents the result of handling a key press.
type Event struct {
	Consumed    bool // true if the scheme handled the key
	TextChanged bool // true if cursor content was modified
	Submit      bool // true if user wants to submit (Enter)
	Cancel      bool // true if user wants to cancel/exit
}

// KeyScheme interprets key presses and translates them to cursor commands.
type KeyScheme interface {
	// Name returns the scheme name for display/config.
	Name() string

	// HandleKey processes a key press and performs cursor commands.
	// buf contains the raw bytes read, n is the number of bytes.
	// Returns an Event describing what happened.
	HandleKey(c *Cursor, buf []byte, n int) Event

	// InInsertMode returns true if the scheme is currently accepting text input.
	InInsertMode() bool
}

// SchemeByName returns a fresh key scheme for a configured name.
func SchemeByName(name string) (KeyScheme, error) {
	switch name {
	case "", "emacs":
		return NewEmacsScheme(), nil
	case "vim":
		return NewVimScheme(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// textInput inserts typed text, holding back a UTF-8 character whose bytes
// are split across two reads until the rest arrives.
type textInput struct {
	pending []byte
}

// continues reports whether in completes a held-back character.
func (t *textInput) continues(in []byte) bool {
	return len(t.pending) > 0 && len(in) > 0 && !utf8.RuneStart(in[0])
}

// reset drops a held-back partial character.
func (t *textInput) reset() {
	t.pending = t.pending[:0]
}

// insert writes the printable runes of in to c.
func (t *textInput) insert(c *Cursor, in []byte) Event {
	if len(t.pending) > 0 {
		in = append(t.pending, in...)
		t.pending = nil
	}

	inserted := false
	for len(in) > 0 {
		if !utf8.FullRune(in) {
			t.pending = append(t.pending, in...)
			break
		}
		r, size := utf8.DecodeRune(in)
		in = in[size:]
		if r < 32 || r == 127 {
			continue
		}
		c.Insert(r)
		inserted = true
	}
	return Event{Consumed: inserted || len(t.pending) > 0, TextChanged: inserted}
}
