package main

import (
	"bytes"
	"strings"
	"testing"

	"searchbox/config"
	"searchbox/lineedit"
	"searchbox/render"
)

func newTestSession(initial string) (*session, *bytes.Buffer) {
	var out bytes.Buffer
	s := newSession(initial, lineedit.NewEmacsScheme(), config.Default(), &out)
	return s, &out
}

func feed(s *session, keys ...string) (done, submitted bool) {
	for _, k := range keys {
		if done, submitted = s.handle([]byte(k)); done {
			return
		}
	}
	return
}

func TestSessionSubmit(t *testing.T) {
	s, out := newTestSession("")
	done, submitted := feed(s, "g", "i", "t", " ", "lög", "\x1b[1;5D", "\x1b[3;5~", "\r")
	if !done || !submitted {
		t.Fatalf("expected submit, got done=%v submitted=%v", done, submitted)
	}
	if got := s.cursor.Take(); got != "git " {
		t.Errorf("expected 'git ', got %q", got)
	}
	if !strings.Contains(render.StripANSI(out.String()), "> git lög") {
		t.Errorf("prompt was not drawn: %q", out.String())
	}
}

func TestSessionInitialText(t *testing.T) {
	s, _ := newTestSession("cargo build")
	if s.cursor.Index() != len("cargo build") {
		t.Errorf("initial cursor should be at end, got %d", s.cursor.Index())
	}
	feed(s, "\x17")
	if s.cursor.Text() != "cargo " {
		t.Errorf("expected 'cargo ', got %q", s.cursor.Text())
	}
}

func TestSessionVimScheme(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.Scheme = "vim"
	scheme, err := lineedit.SchemeByName(cfg.Editor.Scheme)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	s := newSession("docker ps", scheme, cfg, &out)

	done, submitted := feed(s, "b", "D", "A", "images", "\r")
	if !done || !submitted {
		t.Fatalf("expected submit, got done=%v submitted=%v", done, submitted)
	}
	if got := s.cursor.Text(); got != "docker images" {
		t.Errorf("expected 'docker images', got %q", got)
	}
}

func TestSessionCancel(t *testing.T) {
	s, _ := newTestSession("query")
	done, submitted := feed(s, "\x1b")
	if !done || submitted {
		t.Errorf("expected cancel, got done=%v submitted=%v", done, submitted)
	}
}

func TestSessionUnhandledKeyDoesNotRedraw(t *testing.T) {
	s, out := newTestSession("query")
	feed(s, "\x1b[A")
	if out.Len() != 0 {
		t.Errorf("unhandled key redrew the prompt: %q", out.String())
	}
}

func TestReadKeys(t *testing.T) {
	keys := make(chan []byte)
	go readKeys(strings.NewReader("abc"), 2, keys)

	var got []string
	for k := range keys {
		got = append(got, string(k))
	}
	if strings.Join(got, "|") != "ab|c" {
		t.Errorf("got chunks %q", got)
	}
}
