package lineedit

// EmacsScheme implements emacs-style keybindings.
// Always in "insert mode" - all printable characters go to the cursor.
type EmacsScheme struct {
	text textInput
}

// NewEmacsScheme creates a new emacs keybinding scheme.
func NewEmacsScheme() *EmacsScheme {
	return &EmacsScheme{}
}

// Name returns the scheme name.
func (s *EmacsScheme) Name() string {
	return "emacs"
}

// InInsertMode returns true - emacs is always ready for text input.
func (s *EmacsScheme) InInsertMode() bool {
	return true
}

// HandleKey processes a key press using emacs keybindings.
func (s *EmacsScheme) HandleKey(c *Cursor, buf []byte, n int) Event {
	if n == 0 {
		return Event{}
	}
	in := buf[:n]

	if s.text.continues(in) {
		return s.text.insert(c, in)
	}
	if in[0] < 32 || in[0] == 127 {
		s.text.reset()
	}

	// Escape sequences (Alt+key, arrows, Home/End, Delete)
	if in[0] == 27 && n >= 2 {
		return s.handleEscape(c, string(in[1:]))
	}

	switch in[0] {
	case 27: // Escape
		return Event{Consumed: true, Cancel: true}
	case 3: // Ctrl+C
		return Event{Consumed: true, Cancel: true}
	case 13, 10: // Enter
		return Event{Consumed: true, Submit: true}
	case 1: // Ctrl+A
		c.Home()
		return Event{Consumed: true}
	case 5: // Ctrl+E
		c.End()
		return Event{Consumed: true}
	case 6: // Ctrl+F
		c.Right()
		return Event{Consumed: true}
	case 2: // Ctrl+B
		c.Left()
		return Event{Consumed: true}
	case 4: // Ctrl+D
		_, ok := c.DeleteForward()
		return Event{Consumed: true, TextChanged: ok}
	case 11: // Ctrl+K
		return Event{Consumed: true, TextChanged: c.KillToEnd() != ""}
	case 21: // Ctrl+U
		return Event{Consumed: true, TextChanged: c.KillToStart() != ""}
	case 8, 23: // Ctrl+Backspace, Ctrl+W
		return Event{Consumed: true, TextChanged: c.DeleteWordBackward() != ""}
	case 20: // Ctrl+T
		return Event{Consumed: true, TextChanged: c.Transpose()}
	case 12: // Ctrl+L
		changed := c.Len() > 0
		c.Clear()
		return Event{Consumed: true, TextChanged: changed}
	case 127: // Backspace
		_, ok := c.Backspace()
		return Event{Consumed: true, TextChanged: ok}
	}

	if in[0] < 32 {
		return Event{Consumed: false}
	}

	// Printable input: one read may carry several runes (paste, IME)
	return s.text.insert(c, in)
}

// handleEscape handles the bytes following an ESC.
func (s *EmacsScheme) handleEscape(c *Cursor, seq string) Event {
	switch seq {
	case "\x7f": // Alt+Backspace
		return Event{Consumed: true, TextChanged: c.DeleteWordBackward() != ""}
	case "b", "B", "[1;5D", "[1;3D", "[5D": // Alt+B, Ctrl+Left, Alt+Left
		c.PrevWord()
		return Event{Consumed: true}
	case "f", "F", "[1;5C", "[1;3C", "[5C": // Alt+F, Ctrl+Right, Alt+Right
		c.NextWord()
		return Event{Consumed: true}
	case "d", "D", "[3;5~", "[3;3~": // Alt+D, Ctrl+Delete
		return Event{Consumed: true, TextChanged: c.DeleteWordForward() != ""}
	case "[C", "OC": // Right
		c.Right()
		return Event{Consumed: true}
	case "[D", "OD": // Left
		c.Left()
		return Event{Consumed: true}
	case "[H", "OH", "[1~", "[7~": // Home
		c.Home()
		return Event{Consumed: true}
	case "[F", "OF", "[4~", "[8~": // End
		c.End()
		return Event{Consumed: true}
	case "[3~": // Delete
		_, ok := c.DeleteForward()
		return Event{Consumed: true, TextChanged: ok}
	}
	// Up/Down and anything else belong to the caller
	return Event{Consumed: false}
}
