package rawheader

import "strings"

// The rules for parsing content-types were borrowed from Firefox:
// http://lxr.mozilla.org/mozilla/source/netwerk/base/src/nsURLHelper.cpp#834

const httpLWS = " \t"

// A ContentType accumulates the media type, charset and boundary parsed from
// one or more Content-Type header values. Parse may be called repeatedly,
// for example once per occurrence of the header; an occurrence that repeats
// the current media type only refreshes the charset, and never erases a
// known charset with an absent one.
type ContentType struct {
	// MimeType is the lower-cased type/subtype, without parameters.
	MimeType string
	// Charset is the lower-cased value of the charset parameter.
	Charset string
	// HadCharset reports whether any parsed value carried a charset, even
	// an empty one.
	HadCharset bool
	// Boundary is the value of the boundary parameter, as written.
	Boundary string
}

// Parse parses one Content-Type header value into c. Empty values, "*/*"
// and values without a "/" are ignored, leaving c untouched. Parameters are
// scanned by hand rather than with a NameValuePairsIterator because some
// historical servers send unterminated quoted parameter values; stray junk
// after the parameters is tolerated. The first charset and boundary
// parameters win; parameter names are case-insensitive.
func (c *ContentType) Parse(contentType string) {
	typeVal := findFirstNotOf(contentType, httpLWS, 0)
	if typeVal < 0 {
		typeVal = len(contentType)
	}
	// We include '(' in the trailing delimiter set to catch media-type
	// comments, which are not at all standard, but may occur in rare cases.
	typeEnd := findFirstOf(contentType, httpLWS+";(", typeVal)
	if typeEnd < 0 {
		typeEnd = len(contentType)
	}

	var charsetValue string
	typeHasCharset := false
	typeHasBoundary := false

	// Iterate over parameters. Can't split the string around semicolons
	// preemptively because quoted strings may include semicolons. Mostly
	// matches the logic in https://mimesniff.spec.whatwg.org/, except that
	// characters are not validated as HTTP token code points, and spaces
	// after "=" are ignored.
	offset := indexFrom(contentType, ';', typeEnd)
	for offset >= 0 && offset < len(contentType) {
		// Trim off the semicolon and any following spaces.
		offset = findFirstNotOf(contentType, httpLWS, offset+1)
		if offset < 0 {
			break
		}
		paramNameStart := offset
		// Extend the parameter name until we run into a semicolon or equals
		// sign. Per spec, trailing spaces are not removed.
		offset = findFirstOf(contentType, ";=", offset)
		// Nothing more to do at the end of the string, or if there's no
		// parameter value, since names without values aren't allowed.
		if offset < 0 {
			break
		}
		if contentType[offset] == ';' {
			continue
		}
		paramName := contentType[paramNameStart:offset]
		// Now parse the value. Trim off the '=' and any leading spaces.
		// Removing the spaces violates the spec, but matches long-standing
		// behavior.
		offset = findFirstNotOf(contentType, httpLWS, offset+1)
		var paramValue string
		switch {
		case offset < 0 || contentType[offset] == ';':
			// An unquoted string of only whitespace; skip it.
			continue
		case contentType[offset] != '"':
			// Not a quotation mark: copy the data directly.
			valueStart := offset
			offset = indexFrom(contentType, ';', offset)
			valueEnd := offset
			if valueEnd < 0 {
				valueEnd = len(contentType)
			}
			// Remove terminal whitespace.
			for valueEnd > valueStart && IsLWS(contentType[valueEnd-1]) {
				valueEnd--
			}
			paramValue = contentType[valueStart:valueEnd]
		default:
			// Append data, resolving backslash escapes, until a close quote
			// -- or the end of the string, for the benefit of broken servers
			// that never send one.
			offset++ // skip open quote
			b := &strings.Builder{}
			for offset < len(contentType) && contentType[offset] != '"' {
				if contentType[offset] == '\\' && offset+1 < len(contentType) {
					offset++
				}
				b.WriteByte(contentType[offset])
				offset++
			}
			paramValue = TrimLWS(b.String())
			offset = indexFrom(contentType, ';', offset)
		}
		if !typeHasCharset && strings.EqualFold(paramName, "charset") {
			typeHasCharset = true
			charsetValue = paramValue
			continue
		}
		if !typeHasBoundary && strings.EqualFold(paramName, "boundary") {
			typeHasBoundary = true
			c.Boundary = paramValue
			continue
		}
	}

	// If the server sent "*/*", it is meaningless, so do not store it.
	// Also reject a mime type without a slash. Some servers give junk after
	// the charset parameter, which may include a comma, so this check makes
	// us a bit more tolerant.
	if contentType == "" || contentType == "*/*" ||
		!strings.Contains(contentType, "/") {
		return
	}

	// If the type is unchanged, only update the charset. However, if the
	// new value has no charset and the type hasn't changed, don't wipe out
	// an existing charset. It is common for MimeType to be empty here.
	eq := c.MimeType != "" &&
		strings.EqualFold(contentType[typeVal:typeEnd], c.MimeType)
	if !eq {
		c.MimeType = strings.ToLower(contentType[typeVal:typeEnd])
	}
	if (!eq && c.HadCharset) || typeHasCharset {
		c.HadCharset = true
		c.Charset = strings.ToLower(charsetValue)
	}
}
