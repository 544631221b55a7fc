package rawheader

import "strings"

// stringTokenizer splits a string on a set of delimiter bytes. Bytes listed
// in quotes open a quoted span within which delimiters are inert and a
// backslash escapes the next byte. With returnEmpty set, every delimiter
// yields a token even if empty; otherwise empty tokens are skipped, so runs
// of delimiters collapse.
type stringTokenizer struct {
	str         string
	delims      string
	quotes      string
	returnEmpty bool
	pos         int
	token       string
}

func newStringTokenizer(s, delims string) *stringTokenizer {
	return &stringTokenizer{str: s, delims: delims}
}

func (t *stringTokenizer) next() bool {
	if t.str == "" {
		return false
	}
	for {
		if t.pos > len(t.str) {
			return false
		}
		start := t.pos
		i := t.pos
		inQuote := false
		var quoteChar byte
	scan:
		for i < len(t.str) {
			c := t.str[i]
			switch {
			case inQuote:
				if c == '\\' {
					i++ // skip the escaped byte
				} else if c == quoteChar {
					inQuote = false
				}
			case strings.IndexByte(t.delims, c) >= 0:
				break scan
			case strings.IndexByte(t.quotes, c) >= 0:
				inQuote = true
				quoteChar = c
			}
			i++
		}
		t.token = t.str[start:min(i, len(t.str))]
		if i < len(t.str) {
			t.pos = i + 1 // past the delimiter
		} else {
			t.pos = len(t.str) + 1 // exhausted
		}
		if t.token != "" || t.returnEmpty {
			return true
		}
	}
}
