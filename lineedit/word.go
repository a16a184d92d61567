package lineedit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordSeparators are punctuation and symbols that form their own word class.
const wordSeparators = "./\\()\"'-:,.;<>~!@#$%^&*|+=[]{}`~?"

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(wordSeparators, r)
}

// isWordBoundary reports whether a word boundary lies between c and next.
// The whitespace and separator transitions are checked independently:
// either one changing makes a boundary.
func isWordBoundary(c, next rune) bool {
	return isSpace(c) != isSpace(next) || isSeparator(c) != isSeparator(next)
}

// nextCharBoundary returns the offset of the rune following the one at i.
// At or past the end it returns len(s).
func nextCharBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

// prevCharBoundary returns the offset of the rune preceding i, or 0.
func prevCharBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:i])
	return i - size
}

// NextWordPosition returns the byte offset the cursor lands on when jumping
// forward one word from index: past the next word boundary and any
// whitespace that follows it. Returns len(text) when there is nothing left.
func NextWordPosition(text string, index int) int {
	if text == "" {
		return 0
	}
	index = max(index, 0)

	for i := index; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		j := i + size
		if j >= len(text) {
			break
		}
		next, _ := utf8.DecodeRuneInString(text[j:])
		if isWordBoundary(c, next) {
			// Skip the whitespace after the boundary
			for j < len(text) {
				r, n := utf8.DecodeRuneInString(text[j:])
				if !isSpace(r) {
					return j
				}
				j += n
			}
			return len(text)
		}
		i = j
	}
	return len(text)
}

// PrevWordPosition returns the byte offset the cursor lands on when jumping
// back one word from index: the start of the word-like run containing the
// first non-whitespace rune before index. Returns 0 when there is none.
func PrevWordPosition(text string, index int) int {
	if text == "" {
		return 0
	}
	index = min(max(index, 0), len(text))

	// Skip whitespace before the cursor
	i := index
	found := false
	for i > 0 {
		i = prevCharBoundary(text, i)
		r, _ := utf8.DecodeRuneInString(text[i:])
		if !isSpace(r) {
			found = true
			break
		}
	}
	if !found {
		return 0
	}

	for i > 0 {
		cur, _ := utf8.DecodeRuneInString(text[i:])
		prev := prevCharBoundary(text, i)
		c, _ := utf8.DecodeRuneInString(text[prev:])
		if isWordBoundary(c, cur) {
			return i
		}
		i = prev
	}
	return 0
}
