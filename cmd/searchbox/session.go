package main

import (
	"io"

	"searchbox/config"
	"searchbox/lineedit"
	"searchbox/render"
)

// session is one prompt: a cursor, the scheme editing it and the line it is
// drawn on.
type session struct {
	cursor      *lineedit.Cursor
	scheme      lineedit.KeyScheme
	prompt      string
	placeholder string
	out         io.Writer
	width       int
}

func newSession(initial string, scheme lineedit.KeyScheme, cfg *config.Config, out io.Writer) *session {
	c := lineedit.New(initial)
	c.End()
	return &session{
		cursor:      c,
		scheme:      scheme,
		prompt:      cfg.Prompt.Symbol,
		placeholder: cfg.Prompt.Placeholder,
		out:         out,
		width:       defaultWidth,
	}
}

// handle feeds one terminal read to the scheme and redraws.
// done is set once the user submitted or cancelled.
func (s *session) handle(buf []byte) (done, submitted bool) {
	ev := s.scheme.HandleKey(s.cursor, buf, len(buf))
	switch {
	case ev.Submit:
		return true, true
	case ev.Cancel:
		return true, false
	case ev.Consumed:
		s.redraw()
	}
	return false, false
}

func (s *session) redraw() {
	io.WriteString(s.out, render.Frame(s.prompt, s.placeholder, s.cursor.BeforeCursor(), s.cursor.AfterCursor(), s.width))
}

// finish wipes the prompt line so the terminal is left clean.
func (s *session) finish() {
	io.WriteString(s.out, "\r"+render.ClearLine)
}
