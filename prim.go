package rawheader

import "strings"

// findFirstOf returns the lowest index >= from of any byte of chars in s,
// or -1.
func findFirstOf(s, chars string, from int) int {
	for i := from; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) >= 0 {
			return i
		}
	}
	return -1
}

// findFirstNotOf returns the lowest index >= from of a byte of s that is not
// in chars, or -1.
func findFirstNotOf(s, chars string, from int) int {
	for i := from; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) < 0 {
			return i
		}
	}
	return -1
}

// indexFrom returns the lowest index >= from of c in s, or -1.
func indexFrom(s string, c byte, from int) int {
	if from >= len(s) {
		return -1
	}
	if i := strings.IndexByte(s[from:], c); i >= 0 {
		return from + i
	}
	return -1
}

// skipLeadingLWS returns s from its first non-LWS byte on, keeping any
// trailing whitespace. Empty if s is all LWS.
func skipLeadingLWS(s string) string {
	for i := 0; i < len(s); i++ {
		if !IsLWS(s[i]) {
			return s[i:]
		}
	}
	return ""
}

func isQuoteChar(c byte) bool {
	return c == '"'
}
