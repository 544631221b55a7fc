package rawheader

import "strings"

// ParseAcceptEncoding parses an Accept-Encoding value into the set of
// acceptable content codings. Entries are comma-separated tokens, each
// optionally weighted with a ;q= parameter. An entry with q=0 is excluded
// from the set but does not fail the parse. An empty value yields {"*"}
// (RFC 7231 Section 5.3.4: no preference expressed); a non-empty set always
// gains "identity", and the gzip/x-gzip and compress/x-compress aliases are
// mirrored for easier matching. Embedded quote marks, whitespace inside a
// token, or a parameter other than q fail the parse.
func ParseAcceptEncoding(acceptEncoding string) (map[string]bool, bool) {
	if strings.IndexByte(acceptEncoding, '"') >= 0 {
		return nil, false
	}
	allowed := make(map[string]bool)
	t := newStringTokenizer(acceptEncoding, ",")
	for t.next() {
		entry := TrimLWS(t.token)
		semicolon := strings.IndexByte(entry, ';')
		if semicolon < 0 {
			if findFirstOf(entry, httpLWS, 0) >= 0 {
				return nil, false
			}
			allowed[strings.ToLower(entry)] = true
			continue
		}
		encoding := TrimLWS(entry[:semicolon])
		if findFirstOf(encoding, httpLWS, 0) >= 0 {
			return nil, false
		}
		params := TrimLWS(entry[semicolon+1:])
		equals := strings.IndexByte(params, '=')
		if equals < 0 {
			return nil, false
		}
		if !strings.EqualFold(TrimLWS(params[:equals]), "q") {
			return nil, false
		}
		qvalue := TrimLWS(params[equals+1:])
		if qvalue == "" {
			return nil, false
		}
		if qvalue[0] == '1' {
			// Accept any prefix of "1.000"; anything longer, such as
			// "1.0000", is out of grammar.
			if strings.HasPrefix("1.000", qvalue) {
				allowed[strings.ToLower(encoding)] = true
				continue
			}
			return nil, false
		}
		if qvalue[0] != '0' {
			return nil, false
		}
		if len(qvalue) == 1 {
			continue // q=0: excluded, not an error
		}
		if len(qvalue) <= 2 || len(qvalue) > 5 {
			return nil, false
		}
		if qvalue[1] != '.' {
			return nil, false
		}
		nonzero := false
		for i := 2; i < len(qvalue); i++ {
			if !isASCIIDigit(qvalue[i]) {
				return nil, false
			}
			if qvalue[i] != '0' {
				nonzero = true
			}
		}
		if nonzero {
			allowed[strings.ToLower(encoding)] = true
		}
	}
	// A request without an Accept-Encoding header implies that the user
	// agent has no preferences regarding content codings.
	if len(allowed) == 0 {
		allowed["*"] = true
		return allowed, true
	}
	// Any browser must support "identity".
	allowed["identity"] = true
	// RFC says gzip == x-gzip; mirror it here for easier matching.
	if allowed["gzip"] {
		allowed["x-gzip"] = true
	}
	if allowed["x-gzip"] {
		allowed["gzip"] = true
	}
	// RFC says compress == x-compress; mirror it here for easier matching.
	if allowed["compress"] {
		allowed["x-compress"] = true
	}
	if allowed["x-compress"] {
		allowed["compress"] = true
	}
	return allowed, true
}

// ParseContentEncoding parses a Content-Encoding value into the set of
// content codings applied to the payload, lower-cased. Content-Encoding
// admits no parameters at all: a quote mark, equals sign, semicolon or
// asterisk anywhere in the value fails the parse, as does whitespace inside
// a token.
func ParseContentEncoding(contentEncoding string) (map[string]bool, bool) {
	if findFirstOf(contentEncoding, `"=;*`, 0) >= 0 {
		return nil, false
	}
	used := make(map[string]bool)
	t := newStringTokenizer(contentEncoding, ",")
	for t.next() {
		encoding := TrimLWS(t.token)
		if findFirstOf(encoding, httpLWS, 0) >= 0 {
			return nil, false
		}
		used[strings.ToLower(encoding)] = true
	}
	return used, true
}
