// Package render draws the search prompt line on a raw-mode terminal.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	ClearLine  = "\033[2K"
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
	Dim        = "\033[2m"
	Reset      = "\033[0m"
)

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// TruncateToWidth truncates a string to fit within the specified width.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// PromptLine lays out prompt followed by the input in at most width cells.
// The input is given as the text before and after the cursor; it scrolls
// horizontally so the cursor stays visible. col is the 0-based screen column
// of the cursor.
func PromptLine(prompt, before, after string, width int) (line string, col int) {
	pw := StringWidth(prompt)
	// One cell is kept free for the cursor when it sits at the end.
	avail := width - pw - 1
	if avail <= 0 {
		return TruncateToWidth(prompt, width), max(min(pw, width-1), 0)
	}

	start, w := len(before), 0
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(before[:start])
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		w += rw
		start -= size
	}

	return prompt + TruncateToWidth(before[start:]+after, avail), pw + w
}

// Frame returns the escape sequence that redraws the prompt line in place
// and parks the terminal cursor at the edit position. The cursor is hidden
// while the line is rewritten. When the input is empty the placeholder is
// shown dimmed.
func Frame(prompt, placeholder, before, after string, width int) string {
	var sb strings.Builder
	sb.WriteString(CursorHide + "\r" + ClearLine)

	line, col := PromptLine(prompt, before, after, width)
	sb.WriteString(line)
	if before == "" && after == "" && placeholder != "" {
		if hint := TruncateToWidth(placeholder, width-StringWidth(line)-1); hint != "" {
			sb.WriteString(Dim + hint + Reset)
		}
	}

	sb.WriteString("\r")
	if col > 0 {
		fmt.Fprintf(&sb, "\033[%dC", col)
	}
	sb.WriteString(CursorShow)
	return sb.String()
}

// StripANSI removes ANSI escape sequences from a string.
func StripANSI(s string) string {
	var sb strings.Builder
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}
