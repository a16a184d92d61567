package lineedit

import "testing"

const wordFixture = "   aaa   ((()))bbb   ((()))   "

func TestNextWordPosition(t *testing.T) {
	tests := []struct {
		from, want int
	}{
		{0, 3},
		{1, 3},
		{3, 9},
		{9, 15},
		{15, 21},
		{21, 30},
		{30, 30},
	}
	for _, tt := range tests {
		if got := NextWordPosition(wordFixture, tt.from); got != tt.want {
			t.Errorf("NextWordPosition(fixture, %d) = %d, want %d", tt.from, got, tt.want)
		}
	}
	if got := NextWordPosition("", 0); got != 0 {
		t.Errorf("NextWordPosition(\"\", 0) = %d, want 0", got)
	}
}

func TestPrevWordPosition(t *testing.T) {
	tests := []struct {
		from, want int
	}{
		{30, 21},
		{21, 15},
		{15, 9},
		{9, 3},
		{3, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := PrevWordPosition(wordFixture, tt.from); got != tt.want {
			t.Errorf("PrevWordPosition(fixture, %d) = %d, want %d", tt.from, got, tt.want)
		}
	}
	if got := PrevWordPosition("", 0); got != 0 {
		t.Errorf("PrevWordPosition(\"\", 0) = %d, want 0", got)
	}
}

func TestWordPositionNoBoundary(t *testing.T) {
	if got := NextWordPosition("abc", 0); got != 3 {
		t.Errorf("NextWordPosition(abc, 0) = %d, want 3", got)
	}
	if got := PrevWordPosition("abc", 3); got != 0 {
		t.Errorf("PrevWordPosition(abc, 3) = %d, want 0", got)
	}
	if got := PrevWordPosition("   ", 3); got != 0 {
		t.Errorf("PrevWordPosition(spaces, 3) = %d, want 0", got)
	}
	if got := NextWordPosition("a", 0); got != 1 {
		t.Errorf("NextWordPosition(a, 0) = %d, want 1", got)
	}
}

func TestWordPositionMultiByte(t *testing.T) {
	// "héllo wörld": é and ö are 2 bytes
	s := "héllo wörld"
	if got := NextWordPosition(s, 0); got != 7 {
		t.Errorf("NextWordPosition = %d, want 7", got)
	}
	if got := PrevWordPosition(s, len(s)); got != 7 {
		t.Errorf("PrevWordPosition = %d, want 7", got)
	}
	if got := PrevWordPosition(s, 7); got != 0 {
		t.Errorf("PrevWordPosition from 7 = %d, want 0", got)
	}
}

func TestPrevWordPositionSingleRuneWord(t *testing.T) {
	if got := PrevWordPosition("ab c", 4); got != 3 {
		t.Errorf("PrevWordPosition(\"ab c\", 4) = %d, want 3", got)
	}
}

func TestIsWordBoundary(t *testing.T) {
	tests := []struct {
		c, next rune
		want    bool
	}{
		{'a', 'b', false},
		{' ', ' ', false},
		{'(', ')', false},
		{'a', ' ', true},
		{' ', 'a', true},
		{'a', '.', true},
		{'.', 'a', true},
		{' ', '(', true},
		{')', ' ', true},
		{'ö', 'a', false},
		{'_', 'a', false},
		{'\t', ' ', false},
	}
	for _, tt := range tests {
		if got := isWordBoundary(tt.c, tt.next); got != tt.want {
			t.Errorf("isWordBoundary(%q, %q) = %v, want %v", tt.c, tt.next, got, tt.want)
		}
	}
}

func TestCharBoundaries(t *testing.T) {
	s := "aö€"
	if got := nextCharBoundary(s, 0); got != 1 {
		t.Errorf("nextCharBoundary(0) = %d, want 1", got)
	}
	if got := nextCharBoundary(s, 1); got != 3 {
		t.Errorf("nextCharBoundary(1) = %d, want 3", got)
	}
	if got := nextCharBoundary(s, 3); got != 6 {
		t.Errorf("nextCharBoundary(3) = %d, want 6", got)
	}
	if got := nextCharBoundary(s, 6); got != 6 {
		t.Errorf("nextCharBoundary(6) = %d, want 6", got)
	}
	if got := prevCharBoundary(s, 6); got != 3 {
		t.Errorf("prevCharBoundary(6) = %d, want 3", got)
	}
	if got := prevCharBoundary(s, 3); got != 1 {
		t.Errorf("prevCharBoundary(3) = %d, want 1", got)
	}
	if got := prevCharBoundary(s, 0); got != 0 {
		t.Errorf("prevCharBoundary(0) = %d, want 0", got)
	}
}

func TestPrevWordPositionTrailingSeparator(t *testing.T) {
	// The separator run right before the cursor is a word of its own
	if got := PrevWordPosition("foo.", 4); got != 3 {
		t.Errorf("PrevWordPosition(\"foo.\", 4) = %d, want 3", got)
	}
	if got := PrevWordPosition("foo.", 3); got != 0 {
		t.Errorf("PrevWordPosition(\"foo.\", 3) = %d, want 0", got)
	}
}

func TestWordPositionOutOfRange(t *testing.T) {
	if got := NextWordPosition(wordFixture, -5); got != 3 {
		t.Errorf("NextWordPosition(fixture, -5) = %d, want 3", got)
	}
	if got := PrevWordPosition(wordFixture, -5); got != 0 {
		t.Errorf("PrevWordPosition(fixture, -5) = %d, want 0", got)
	}
	if got := NextWordPosition(wordFixture, 99); got != 30 {
		t.Errorf("NextWordPosition(fixture, 99) = %d, want 30", got)
	}
	if got := PrevWordPosition(wordFixture, 99); got != 21 {
		t.Errorf("PrevWordPosition(fixture, 99) = %d, want 21", got)
	}
}
