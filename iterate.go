package rawheader

import "strings"

// A HeadersIterator walks the logical header lines of a canonical header
// block, such as produced by AssembleRawHeaders. Lines with no colon, an
// empty name, a name starting with LWS (a continuation that should already
// have been joined upstream), or a name that is not a valid token are
// silently skipped. Malformed values are not skipped.
//
// Name and Value return LWS-trimmed substrings of the block; the iterator
// never copies.
//
// BNF from section 4.2 of RFC 2616:
//
//	message-header = field-name ":" [ field-value ]
//	field-name     = token
//	field-value    = *( field-content | LWS )
type HeadersIterator struct {
	lines *stringTokenizer
	name  string
	value string
}

// NewHeadersIterator returns an iterator over the lines of headers,
// delimited by lineDelimiter (NUL for blocks from AssembleRawHeaders).
func NewHeadersIterator(headers string, lineDelimiter byte) *HeadersIterator {
	return &HeadersIterator{
		lines: newStringTokenizer(headers, string(lineDelimiter)),
	}
}

// Next advances to the next well-formed header line, reporting whether one
// was found. Once Next returns false, it keeps returning false.
func (it *HeadersIterator) Next() bool {
	for it.lines.next() {
		line := it.lines.token
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue // skip malformed header
		}
		name := line[:colon]
		// If the name starts with LWS, it is an invalid line.
		// Leading LWS implies a line continuation, and these should have
		// already been joined by AssembleRawHeaders.
		if name == "" || IsLWS(name[0]) {
			continue
		}
		name = TrimLWS(name)
		if !IsToken(name) {
			continue // skip malformed header
		}
		it.name = name
		it.value = TrimLWS(line[colon+1:])
		return true
	}
	return false
}

// AdvanceTo advances to the next header line whose name equals name,
// compared ASCII case-insensitively, reporting whether one was found.
// name must already be lower-case; passing anything else is a programming
// error and panics.
func (it *HeadersIterator) AdvanceTo(name string) bool {
	if name != strings.ToLower(name) {
		panic("rawheader: AdvanceTo requires a lower-case name: " + name)
	}
	for it.Next() {
		if strings.EqualFold(it.name, name) {
			return true
		}
	}
	return false
}

// Name returns the name of the current header line.
func (it *HeadersIterator) Name() string { return it.name }

// Value returns the value of the current header line.
func (it *HeadersIterator) Value() string { return it.value }

// A ValuesIterator splits a field value on a delimiter byte, ignoring
// delimiters inside quoted strings. Each piece is LWS-trimmed; empty pieces
// are skipped unless the iterator was constructed to keep them.
type ValuesIterator struct {
	values      *stringTokenizer
	ignoreEmpty bool
	value       string
}

// NewValuesIterator returns an iterator over the pieces of values separated
// by delimiter. With ignoreEmpty, pieces that are empty after trimming are
// skipped.
func NewValuesIterator(values string, delimiter byte, ignoreEmpty bool) *ValuesIterator {
	t := newStringTokenizer(values, string(delimiter))
	t.quotes = `"`
	t.returnEmpty = !ignoreEmpty
	return &ValuesIterator{values: t, ignoreEmpty: ignoreEmpty}
}

// Next advances to the next piece, reporting whether one was found.
func (it *ValuesIterator) Next() bool {
	for it.values.next() {
		it.value = TrimLWS(it.values.token)
		if !it.ignoreEmpty || it.value != "" {
			return true
		}
	}
	return false
}

// Value returns the current piece.
func (it *ValuesIterator) Value() string { return it.value }

// Values selects whether NameValuePairsIterator requires every property to
// carry a value.
type Values int

const (
	ValuesRequired Values = iota
	ValuesNotRequired
)

// Quotes selects how NameValuePairsIterator treats quoted values: strict
// mode insists on well-formed quoting (StrictUnquote), lenient mode
// tolerates a missing close quote.
type Quotes int

const (
	QuotesNotStrict Quotes = iota
	QuotesStrict
)

// A NameValuePairsIterator parses delimiter-separated name=value properties
// out of a field value. Properties are expected to be formatted as one of:
//
//	name="value"
//	name=value
//	name = value
//	name (if values are ValuesNotRequired)
//
// Due to buggy implementations found in some embedded devices, in lenient
// mode it also accepts values with a missing close quotemark:
//
//	name="value
//
// Malformed input invalidates the iterator permanently: every subsequent
// Next returns false and Valid reports false.
type NameValuePairsIterator struct {
	props          *ValuesIterator
	valid          bool
	name           string
	value          string
	unquotedValue  string
	valueIsQuoted  bool
	valuesOptional bool
	strictQuotes   bool
}

// NewNameValuePairsIterator returns an iterator over the properties of value
// separated by delimiter, in the given value and quote modes.
func NewNameValuePairsIterator(value string, delimiter byte, optionalValues Values, strictQuotes Quotes) *NameValuePairsIterator {
	return &NameValuePairsIterator{
		props:          NewValuesIterator(value, delimiter, true),
		valid:          true,
		valuesOptional: optionalValues == ValuesNotRequired,
		strictQuotes:   strictQuotes == QuotesStrict,
	}
}

// Next advances to the next name=value pair, reporting whether one was
// found. A malformed pair makes Next return false now and on every
// subsequent call.
func (it *NameValuePairsIterator) Next() bool {
	if !it.valid || !it.props.Next() {
		return false
	}
	prop := it.props.Value()
	// Scan for the equals sign.
	equals := strings.IndexByte(prop, '=')
	if equals == 0 {
		return it.fail() // Malformed, no name
	}
	if equals < 0 && !it.valuesOptional {
		return it.fail() // Malformed, no equals sign and values are required
	}
	// If an equals sign was found, verify that it wasn't inside of quote
	// marks.
	if equals > 0 {
		for i := 0; i < equals; i++ {
			if isQuoteChar(prop[i]) {
				return it.fail() // Malformed, quote appears before equals sign
			}
		}
	}
	if equals < 0 {
		it.name = TrimLWS(prop)
		it.value = ""
	} else {
		it.name = TrimLWS(prop[:equals])
		it.value = TrimLWS(prop[equals+1:])
	}
	it.valueIsQuoted = false
	it.unquotedValue = ""
	if equals >= 0 && it.value == "" {
		return it.fail() // Malformed; value is empty
	}
	if it.value != "" && isQuoteChar(it.value[0]) {
		it.valueIsQuoted = true
		if it.strictQuotes {
			unquoted, ok := StrictUnquote(it.value)
			if !ok {
				return it.fail()
			}
			it.unquotedValue = unquoted
			return true
		}
		if it.value[0] != it.value[len(it.value)-1] || len(it.value) == 1 {
			// Gracefully recover from a mismatching quote by treating the
			// leading quote as content. This is not as graceful as it
			// sounds: quoted-pairs are no longer unquoted ("\"hello gives
			// \"hello), and an escaped final quote is not detected ("value\"
			// gives value"). Kept for compatibility.
			it.valueIsQuoted = false
			it.value = it.value[1:]
		} else {
			it.unquotedValue = Unquote(it.value)
		}
	}
	return true
}

func (it *NameValuePairsIterator) fail() bool {
	it.valid = false
	return false
}

// Valid reports whether the iterator has not yet encountered malformed
// input.
func (it *NameValuePairsIterator) Valid() bool { return it.valid }

// Name returns the name of the current property.
func (it *NameValuePairsIterator) Name() string { return it.name }

// Value returns the value of the current property, unquoted if it was
// written as a quoted string.
func (it *NameValuePairsIterator) Value() string {
	if it.valueIsQuoted {
		return it.unquotedValue
	}
	return it.value
}

// RawValue returns the value of the current property as written, quotes and
// escapes included.
func (it *NameValuePairsIterator) RawValue() string { return it.value }

// ValueIsQuoted reports whether the current property's value was written as
// a quoted string.
func (it *NameValuePairsIterator) ValueIsQuoted() bool { return it.valueIsQuoted }
