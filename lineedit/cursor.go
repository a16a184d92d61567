// Package lineedit provides a single-line text cursor with emacs-style keybindings.
//
// The cursor addresses its buffer by byte offset but only ever rests on rune
// boundaries, so multi-byte UTF-8 characters are stepped over, inserted and
// removed as a unit.
package lineedit

import (
	"slices"
	"unicode/utf8"
)

// Cursor is an editable UTF-8 buffer with a cursor position.
type Cursor struct {
	text  []byte
	index int // byte offset, always on a rune boundary
}

// New creates a Cursor over text with the cursor at the start.
func New(text string) *Cursor {
	return &Cursor{text: []byte(text)}
}

// Text returns the full buffer.
func (c *Cursor) Text() string {
	return string(c.text)
}

// Take returns the buffer and leaves the cursor empty.
// Call it once editing is finished.
func (c *Cursor) Take() string {
	s := string(c.text)
	c.text = nil
	c.index = 0
	return s
}

// Index returns the cursor's byte offset.
func (c *Cursor) Index() int {
	return c.index
}

// Len returns the length of the buffer in bytes.
func (c *Cursor) Len() int {
	return len(c.text)
}

// BeforeCursor returns text before the cursor.
func (c *Cursor) BeforeCursor() string {
	return string(c.text[:c.index])
}

// AfterCursor returns text from cursor to end.
func (c *Cursor) AfterCursor() string {
	return string(c.text[c.index:])
}

// Char returns the rune under the cursor.
// ok is false when the cursor is at the end of the buffer.
func (c *Cursor) Char() (r rune, ok bool) {
	if c.index >= len(c.text) {
		return 0, false
	}
	r, _ = utf8.DecodeRune(c.text[c.index:])
	return r, true
}

// Set replaces the buffer and moves the cursor to the end.
func (c *Cursor) Set(text string) {
	c.text = append(c.text[:0], text...)
	c.index = len(c.text)
}

// Clear empties the buffer.
func (c *Cursor) Clear() {
	c.text = c.text[:0]
	c.index = 0
}

// Right moves the cursor one character right.
// Returns true if the cursor moved.
func (c *Cursor) Right() bool {
	if c.index >= len(c.text) {
		return false
	}
	_, size := utf8.DecodeRune(c.text[c.index:])
	c.index += size
	return true
}

// Left moves the cursor one character left.
// Returns true if the cursor moved.
func (c *Cursor) Left() bool {
	if c.index == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(c.text[:c.index])
	c.index -= size
	return true
}

// Home moves the cursor to the beginning of the line.
func (c *Cursor) Home() {
	c.index = 0
}

// End moves the cursor to the end of the line.
func (c *Cursor) End() {
	c.index = len(c.text)
}

// NextWord moves the cursor to the start of the next word.
func (c *Cursor) NextWord() {
	c.index = NextWordPosition(string(c.text), c.index)
}

// PrevWord moves the cursor to the start of the previous word.
func (c *Cursor) PrevWord() {
	c.index = PrevWordPosition(string(c.text), c.index)
}

// Insert adds r at the cursor and moves the cursor past it.
func (c *Cursor) Insert(r rune) {
	var buf [utf8.UTFMax]byte
	enc := utf8.AppendRune(buf[:0], r)
	c.text = slices.Insert(c.text, c.index, enc...)
	c.index += len(enc)
}

// InsertString adds s at the cursor, one rune at a time.
func (c *Cursor) InsertString(s string) {
	for _, r := range s {
		c.Insert(r)
	}
}

// DeleteForward removes the rune under the cursor (delete).
// The cursor stays put and now points at what followed.
func (c *Cursor) DeleteForward() (rune, bool) {
	if c.index >= len(c.text) {
		return 0, false
	}
	r, size := utf8.DecodeRune(c.text[c.index:])
	c.text = slices.Delete(c.text, c.index, c.index+size)
	return r, true
}

// Backspace removes the rune before the cursor.
func (c *Cursor) Backspace() (rune, bool) {
	if !c.Left() {
		return 0, false
	}
	return c.DeleteForward()
}

// DeleteWordForward deletes from the cursor to the start of the next word
// and returns the removed text.
func (c *Cursor) DeleteWordForward() string {
	end := NextWordPosition(string(c.text), c.index)
	return c.cut(c.index, end)
}

// DeleteWordBackward deletes from the start of the previous word to the
// cursor and returns the removed text.
func (c *Cursor) DeleteWordBackward() string {
	start := PrevWordPosition(string(c.text), c.index)
	removed := c.cut(start, c.index)
	c.index = start
	return removed
}

// KillToEnd deletes from cursor to end of line (Ctrl+K).
func (c *Cursor) KillToEnd() string {
	return c.cut(c.index, len(c.text))
}

// KillToStart deletes from beginning to cursor (Ctrl+U).
func (c *Cursor) KillToStart() string {
	removed := c.cut(0, c.index)
	c.index = 0
	return removed
}

// Transpose swaps the character before the cursor with the one under it and
// moves the cursor past both (Ctrl+T). At the end of the line the last two
// characters are swapped. Returns true if anything changed.
func (c *Cursor) Transpose() bool {
	if c.index == 0 || utf8.RuneCount(c.text) < 2 {
		return false
	}
	s := string(c.text)
	pos := c.index
	if pos == len(s) {
		pos = prevCharBoundary(s, pos)
	}
	start := prevCharBoundary(s, pos)
	end := nextCharBoundary(s, pos)

	swapped := s[pos:end] + s[start:pos]
	copy(c.text[start:end], swapped)
	if c.index < len(c.text) {
		c.index = end
	}
	return true
}

// cut removes text[start:end] and returns it. The cursor is not moved.
func (c *Cursor) cut(start, end int) string {
	if start >= end {
		return ""
	}
	removed := string(c.text[start:end])
	c.text = slices.Delete(c.text, start, end)
	return removed
}
