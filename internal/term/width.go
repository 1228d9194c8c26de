package term

import "github.com/unilibs/uniwidth"

// runeWidth returns 2 for wide runes (CJK, emoji), 1 for normal runes and 0
// for zero-width runes (combining marks, control characters).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of s.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
