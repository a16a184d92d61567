package render

import "testing"

func TestPromptLine(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		before   string
		after    string
		width    int
		wantLine string
		wantCol  int
	}{
		{"cursor at end", "> ", "hello", "", 80, "> hello", 7},
		{"cursor inside", "> ", "he", "llo", 80, "> hello", 4},
		{"empty", "> ", "", "", 80, "> ", 2},
		{"scrolls to keep cursor visible", "> ", "abcdefghij", "", 8, "> fghij", 7},
		{"scrolled text continues after cursor", "> ", "abc", "defghij", 8, "> abcde", 5},
		{"long text cursor at start", "> ", "", "abcdefghij", 8, "> abcde", 2},
		{"wide characters", "", "日本", "語", 80, "日本語", 4},
		{"multi-byte narrow", "> ", "öa", "ö", 80, "> öaö", 4},
		{"no room for text", "search> ", "abc", "", 5, "searc", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := PromptLine(tt.prompt, tt.before, tt.after, tt.width)
			if line != tt.wantLine {
				t.Errorf("line = %q, want %q", line, tt.wantLine)
			}
			if col != tt.wantCol {
				t.Errorf("col = %d, want %d", col, tt.wantCol)
			}
		})
	}
}

func TestFrame(t *testing.T) {
	got := StripANSI(Frame("> ", "Search...", "hi", "", 80))
	if got != "\r> hi\r" {
		t.Errorf("got %q", got)
	}

	got = StripANSI(Frame("> ", "Search...", "", "", 80))
	if got != "\r> Search...\r" {
		t.Errorf("got %q", got)
	}

	got = Frame("> ", "", "", "", 80)
	if got != CursorHide+"\r"+ClearLine+"> \r\033[2C"+CursorShow {
		t.Errorf("got %q", got)
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"abc", 3},
		{"ö", 1},
		{"日本", 4},
		{"\033[1m>\033[0m ", 2},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.in); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := TruncateToWidth("日本語", 5); got != "日本" {
		t.Errorf("got %q, want %q", got, "日本")
	}
	if got := TruncateToWidth("abc", 0); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
