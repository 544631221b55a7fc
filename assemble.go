package rawheader

import "strings"

// LocateStartOfStatusLine finds the "http" of a status line in buf, allowing
// for a few bytes of network-injected slop before it. Returns the offset of
// the match, or -1 if no status line starts within the first 4 bytes.
func LocateStartOfStatusLine(buf []byte) int {
	const slop = 4
	const httpLen = 4
	if len(buf) >= httpLen {
		iMax := min(len(buf)-httpLen, slop)
		for i := 0; i <= iMax; i++ {
			if strings.EqualFold(string(buf[i:i+httpLen]), "http") {
				return i
			}
		}
	}
	return -1 // Not found
}

func locateEndOfHeadersHelper(buf []byte, start int, acceptEmptyHeaderList bool) int {
	var lastC byte
	wasLF := false
	if acceptEmptyHeaderList {
		// Normally two line breaks signal the end of a header list. An
		// empty header list ends with a single line break at the start of
		// the buffer.
		lastC = '\n'
		wasLF = true
	}
	for i := start; i < len(buf); i++ {
		c := buf[i]
		if c == '\n' {
			if wasLF {
				return i + 1
			}
			wasLF = true
		} else if c != '\r' || lastC != '\n' {
			wasLF = false
		}
		lastC = c
	}
	return -1
}

// LocateEndOfHeaders scans buf from start for the end of a header block: the
// offset just past two consecutive line breaks (CRLFCRLF, LFLF, or a mix; a
// bare CR never counts toward a break). Returns -1 when the buffer ends
// first, meaning the caller must retry with more data.
func LocateEndOfHeaders(buf []byte, start int) int {
	return locateEndOfHeadersHelper(buf, start, false)
}

// LocateEndOfAdditionalHeaders is like LocateEndOfHeaders but treats start
// as already preceded by a line break, so a single following break
// terminates the block. Used for 1xx and trailer blocks found mid-stream.
func LocateEndOfAdditionalHeaders(buf []byte, start int) int {
	return locateEndOfHeadersHelper(buf, start, true)
}

// In order for a line to be continuable, it must specify a non-blank
// header-name. Line continuations are specifically for header values --
// do not allow header names to span lines.
func isLineSegmentContinuable(line string) bool {
	if line == "" {
		return false
	}
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return false
	}
	name := line[:colon]
	if name == "" {
		return false
	}
	// Can't start with LWS (this would imply the segment is a continuation).
	if IsLWS(name[0]) {
		return false
	}
	return true
}

func findStatusLineEnd(s string) int {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return i
	}
	return len(s)
}

// AssembleRawHeaders canonicalizes a raw header block: leading slop before
// the status line is dropped, arbitrary CR/LF line terminators are
// normalized, continuation lines are folded into the previous line's value
// with a single space, and each logical line is terminated with a single NUL
// byte, with a final empty line marking the end. Any NUL bytes already in
// the input are stripped first, so the delimiter is unambiguous; the output
// contains no raw CR or LF.
func AssembleRawHeaders(input []byte) string {
	b := &strings.Builder{}
	b.Grow(len(input))
	// Skip any leading slop, since the consumers of this output don't deal
	// with it.
	if i := LocateStartOfStatusLine(input); i >= 0 {
		input = input[i:]
	}
	// Copy the status line.
	s := string(input)
	statusLineEnd := findStatusLineEnd(s)
	b.WriteString(s[:statusLineEnd])
	// After the status line, every subsequent line is a header line segment.
	// Should a segment start with LWS, it is a continuation of the previous
	// line's field-value.
	lines := newStringTokenizer(s[statusLineEnd:], "\r\n")
	prevLineContinuable := false
	for lines.next() {
		line := lines.token
		if prevLineContinuable && IsLWS(line[0]) {
			// Join continuation; reduce the leading LWS to a single SP.
			b.WriteByte(' ')
			b.WriteString(skipLeadingLWS(line))
		} else {
			// Terminate the previous line and copy the raw data to output.
			b.WriteByte('\n')
			b.WriteString(line)
			prevLineContinuable = isLineSegmentContinuable(line)
		}
	}
	b.WriteString("\n\n")
	// Use NUL as the canonical line terminator. Embedded NULs are stripped
	// first so they cannot be confused with line breaks.
	raw := b.String()
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case 0:
		case '\n':
			out = append(out, 0)
		default:
			out = append(out, raw[i])
		}
	}
	return string(out)
}

// ConvertHeadersBackToHTTPResponse is the inverse of AssembleRawHeaders: it
// replaces the NUL line terminators with CRLF and appends the final CRLF
// that ends the header block on the wire.
func ConvertHeadersBackToHTTPResponse(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s) + 4)
	t := newStringTokenizer(s, "\x00")
	for t.next() {
		b.WriteString(t.token)
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	return b.String()
}
