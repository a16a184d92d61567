package lineedit

// VimMode represents the current vim mode.
type VimMode int

const (
	VimNormal VimMode = iota
	VimInsert
	VimOperatorPending // Waiting for motion after d or c
)

// VimOperator represents a pending operator.
type VimOperator int

const (
	OpNone   VimOperator = iota
	OpDelete             // d
	OpChange             // c
)

// VimScheme implements vim-style modal keybindings.
// Word motions use the same word rule as the emacs scheme.
type VimScheme struct {
	mode     VimMode
	operator VimOperator // Pending operator (d, c)
	count    int         // Numeric prefix (0 = no count)
	text     textInput
}

// NewVimScheme creates a new vim keybinding scheme in normal mode.
func NewVimScheme() *VimScheme {
	return &VimScheme{mode: VimNormal}
}

// Name returns the scheme name.
func (s *VimScheme) Name() string {
	return "vim"
}

// Mode returns the current vim mode.
func (s *VimScheme) Mode() VimMode {
	return s.mode
}

// SetMode explicitly sets the vim mode (useful for programmatic control).
func (s *VimScheme) SetMode(mode VimMode) {
	s.resetState()
	s.mode = mode
}

// InInsertMode returns true if in insert mode.
func (s *VimScheme) InInsertMode() bool {
	return s.mode == VimInsert
}

// HandleKey processes a key press using vim keybindings.
func (s *VimScheme) HandleKey(c *Cursor, buf []byte, n int) Event {
	if n == 0 {
		return Event{}
	}
	in := buf[:n]

	if s.mode == VimInsert {
		return s.handleInsertMode(c, in)
	}
	return s.handleNormalMode(c, in)
}

func (s *VimScheme) handleInsertMode(c *Cursor, in []byte) Event {
	if s.text.continues(in) {
		return s.text.insert(c, in)
	}
	if in[0] < 32 || in[0] == 127 {
		s.text.reset()
	}

	// Escape sequences (arrows, Ctrl+arrows, Delete)
	if in[0] == 27 && len(in) >= 2 {
		switch string(in[1:]) {
		case "[C", "OC":
			c.Right()
			return Event{Consumed: true}
		case "[D", "OD":
			c.Left()
			return Event{Consumed: true}
		case "[1;5C":
			c.NextWord()
			return Event{Consumed: true}
		case "[1;5D":
			c.PrevWord()
			return Event{Consumed: true}
		case "[3~":
			_, ok := c.DeleteForward()
			return Event{Consumed: true, TextChanged: ok}
		case "[3;5~":
			return Event{Consumed: true, TextChanged: c.DeleteWordForward() != ""}
		}
		return Event{Consumed: false}
	}

	switch in[0] {
	case 27: // Escape - return to normal mode
		s.mode = VimNormal
		// Move cursor back one (vim behavior on escape)
		c.Left()
		return Event{Consumed: true}
	case 3: // Ctrl+C
		return Event{Consumed: true, Cancel: true}
	case 13, 10: // Enter
		return Event{Consumed: true, Submit: true}
	case 127: // Backspace
		_, ok := c.Backspace()
		return Event{Consumed: true, TextChanged: ok}
	case 8, 23: // Ctrl+Backspace, Ctrl+W
		return Event{Consumed: true, TextChanged: c.DeleteWordBackward() != ""}
	case 21: // Ctrl+U
		return Event{Consumed: true, TextChanged: c.KillToStart() != ""}
	}

	if in[0] < 32 {
		return Event{Consumed: false}
	}
	return s.text.insert(c, in)
}

// resetState clears count and operator state.
func (s *VimScheme) resetState() {
	s.operator = OpNone
	s.count = 0
}

// getCount returns the effective count (1 if no count specified).
func (s *VimScheme) getCount() int {
	if s.count == 0 {
		return 1
	}
	return s.count
}

func (s *VimScheme) handleNormalMode(c *Cursor, in []byte) Event {
	// Arrow keys move the cursor
	if in[0] == 27 && len(in) >= 2 {
		s.resetState()
		s.mode = VimNormal
		switch string(in[1:]) {
		case "[C", "OC":
			c.Right()
			return Event{Consumed: true}
		case "[D", "OD":
			c.Left()
			return Event{Consumed: true}
		}
		return Event{Consumed: false}
	}

	ch := in[0]

	// Escape cancels a pending operation, otherwise the whole input
	if ch == 27 || ch == 3 {
		if ch == 27 && (s.mode == VimOperatorPending || s.count != 0) {
			s.resetState()
			s.mode = VimNormal
			return Event{Consumed: true}
		}
		return Event{Consumed: true, Cancel: true}
	}

	// Enter always submits
	if ch == 13 || ch == 10 {
		s.resetState()
		s.mode = VimNormal
		return Event{Consumed: true, Submit: true}
	}

	// Count prefix (digits 1-9, or 0 if count already started)
	if ch >= '1' && ch <= '9' || (ch == '0' && s.count != 0) {
		s.count = s.count*10 + int(ch-'0')
		return Event{Consumed: true}
	}

	// Operators
	if ch == 'd' || ch == 'c' {
		op := OpDelete
		if ch == 'c' {
			op = OpChange
		}
		if s.mode == VimOperatorPending {
			if s.operator == op {
				// Doubled operator (dd, cc) - operate on the whole line
				return s.executeLineOperation(c)
			}
		}
		s.operator = op
		s.mode = VimOperatorPending
		return Event{Consumed: true}
	}

	if ev, handled := s.handleMotion(c, ch); handled {
		return ev
	}

	// Unknown key cancels a pending operator
	if s.mode == VimOperatorPending {
		s.resetState()
		s.mode = VimNormal
		return Event{Consumed: true}
	}

	cnt := s.getCount()
	s.resetState()

	switch ch {
	case 'i': // Insert before cursor
		s.mode = VimInsert
		return Event{Consumed: true}
	case 'a': // Append after cursor
		c.Right()
		s.mode = VimInsert
		return Event{Consumed: true}
	case 'I': // Insert at beginning
		c.Home()
		s.mode = VimInsert
		return Event{Consumed: true}
	case 'A': // Append at end
		c.End()
		s.mode = VimInsert
		return Event{Consumed: true}
	case 'x': // Delete char at cursor
		changed := false
		for i := 0; i < cnt; i++ {
			if _, ok := c.DeleteForward(); ok {
				changed = true
			}
		}
		return Event{Consumed: true, TextChanged: changed}
	case 'X': // Delete char before cursor
		changed := false
		for i := 0; i < cnt; i++ {
			if _, ok := c.Backspace(); ok {
				changed = true
			}
		}
		return Event{Consumed: true, TextChanged: changed}
	case 'D': // Delete to end of line
		return Event{Consumed: true, TextChanged: c.KillToEnd() != ""}
	case 'C': // Change to end of line
		changed := c.KillToEnd() != ""
		s.mode = VimInsert
		return Event{Consumed: true, TextChanged: changed}
	case 'S': // Substitute line
		changed := c.Len() > 0
		c.Clear()
		s.mode = VimInsert
		return Event{Consumed: true, TextChanged: changed}
	case 's': // Substitute char
		changed := false
		for i := 0; i < cnt; i++ {
			if _, ok := c.DeleteForward(); ok {
				changed = true
			}
		}
		s.mode = VimInsert
		return Event{Consumed: true, TextChanged: changed}
	}

	// j/k and the rest belong to the caller (history, result list)
	return Event{Consumed: false}
}

// handleMotion processes motion commands, with or without a pending operator.
func (s *VimScheme) handleMotion(c *Cursor, ch byte) (Event, bool) {
	cnt := s.getCount()

	var motion func()
	switch ch {
	case 'h':
		motion = func() { c.Left() }
	case 'l':
		motion = func() { c.Right() }
	case 'w':
		motion = c.NextWord
	case 'b':
		motion = c.PrevWord
	case '0', '^':
		motion = c.Home
		cnt = 1
	case '$':
		motion = c.End
		cnt = 1
	default:
		return Event{}, false
	}

	if s.mode != VimOperatorPending {
		s.resetState()
		for i := 0; i < cnt; i++ {
			motion()
		}
		return Event{Consumed: true}, true
	}

	// Operator pending - apply the operator over the motion's range
	start := c.index
	for i := 0; i < cnt; i++ {
		motion()
	}
	end := c.index
	if start > end {
		start, end = end, start
	}

	changed := c.cut(start, end) != ""
	c.index = start

	op := s.operator
	s.resetState()
	s.mode = VimNormal
	if op == OpChange {
		s.mode = VimInsert
	}
	return Event{Consumed: true, TextChanged: changed}, true
}

// executeLineOperation handles dd and cc (operate on the entire line).
func (s *VimScheme) executeLineOperation(c *Cursor) Event {
	op := s.operator
	s.resetState()
	s.mode = VimNormal

	changed := c.Len() > 0
	c.Clear()
	if op == OpChange {
		s.mode = VimInsert
	}
	return Event{Consumed: true, TextChanged: changed}
}
