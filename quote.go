package rawheader

import "strings"

// Quote returns s wrapped in double quotes, with any embedded quote marks
// and backslashes escaped (RFC 7230 Section 3.2.6 quoted-string).
func Quote(s string) string {
	b := &strings.Builder{}
	b.Grow(2 + len(s))
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote removes the surrounding quote marks from s and resolves
// quoted-pair escapes (RFC 2616 Section 2.2). If s is not a quoted string
// (no surrounding quotes, or mismatched ones), Unquote returns s unchanged.
func Unquote(s string) string {
	out, ok := unquote(s, false)
	if !ok {
		return s
	}
	return out
}

// StrictUnquote is like Unquote but rejects, rather than passes through,
// anything that is not a well-formed quoted string: missing or mismatched
// surrounding quotes, an unescaped quote mark inside the string, or an
// escape left dangling before the closing quote.
func StrictUnquote(s string) (string, bool) {
	return unquote(s, true)
}

func unquote(s string, strict bool) (string, bool) {
	if s == "" {
		return "", false
	}
	// Nothing to unquote.
	if !isQuoteChar(s[0]) {
		return "", false
	}
	// No terminal quote mark.
	if len(s) < 2 || s[0] != s[len(s)-1] {
		return "", false
	}
	s = s[1 : len(s)-1]
	b := &strings.Builder{}
	b.Grow(len(s))
	prevEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && !prevEscape {
			prevEscape = true
			continue
		}
		if strict && !prevEscape && isQuoteChar(c) {
			return "", false
		}
		prevEscape = false
		b.WriteByte(c)
	}
	// Terminal quote is escaped.
	if strict && prevEscape {
		return "", false
	}
	return b.String(), true
}
