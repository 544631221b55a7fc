package rawheader

import "strings"

// positionNotSpecified marks an absent position in a ByteRange.
const positionNotSpecified = -1

// A ByteRange is one element of a Range header (RFC 2616 Section 14.35.1):
// either a bounded or right-unbounded span of byte positions, or a suffix
// length counting from the end of the entity. Construct with NewByteRange
// and the setters, or with one of the shorthand constructors; the zero
// ByteRange is not meaningful.
type ByteRange struct {
	firstBytePosition int64
	lastBytePosition  int64
	suffixLength      int64
}

// NewByteRange returns a ByteRange with no positions specified.
func NewByteRange() ByteRange {
	return ByteRange{
		firstBytePosition: positionNotSpecified,
		lastBytePosition:  positionNotSpecified,
		suffixLength:      positionNotSpecified,
	}
}

// BoundedByteRange returns the range first-last.
func BoundedByteRange(first, last int64) ByteRange {
	r := NewByteRange()
	r.SetFirstBytePosition(first)
	r.SetLastBytePosition(last)
	return r
}

// RightUnboundedByteRange returns the range from first to the end of the
// entity.
func RightUnboundedByteRange(first int64) ByteRange {
	r := NewByteRange()
	r.SetFirstBytePosition(first)
	return r
}

// SuffixByteRange returns the range covering the final length bytes of the
// entity.
func SuffixByteRange(length int64) ByteRange {
	r := NewByteRange()
	r.SetSuffixLength(length)
	return r
}

// FirstBytePosition returns the first byte position, or -1 if unspecified.
func (r ByteRange) FirstBytePosition() int64 { return r.firstBytePosition }

// LastBytePosition returns the last byte position, or -1 if unspecified.
func (r ByteRange) LastBytePosition() int64 { return r.lastBytePosition }

// SuffixLength returns the suffix length, or -1 if unspecified.
func (r ByteRange) SuffixLength() int64 { return r.suffixLength }

// SetFirstBytePosition sets the first byte position.
func (r *ByteRange) SetFirstBytePosition(v int64) { r.firstBytePosition = v }

// SetLastBytePosition sets the last byte position.
func (r *ByteRange) SetLastBytePosition(v int64) { r.lastBytePosition = v }

// SetSuffixLength sets the suffix length.
func (r *ByteRange) SetSuffixLength(v int64) { r.suffixLength = v }

// HasFirstBytePosition reports whether the first byte position is specified.
func (r ByteRange) HasFirstBytePosition() bool {
	return r.firstBytePosition != positionNotSpecified
}

// HasLastBytePosition reports whether the last byte position is specified.
func (r ByteRange) HasLastBytePosition() bool {
	return r.lastBytePosition != positionNotSpecified
}

// IsSuffixByteRange reports whether the range is a suffix-byte-range-spec.
func (r ByteRange) IsSuffixByteRange() bool {
	return r.suffixLength != positionNotSpecified
}

// IsValid reports whether the range satisfies the grammar's invariants: a
// positive suffix length, or a non-negative first byte position with the
// last byte position either unspecified or not before it.
func (r ByteRange) IsValid() bool {
	if r.suffixLength > 0 {
		return true
	}
	return r.firstBytePosition >= 0 &&
		(r.lastBytePosition == positionNotSpecified ||
			r.lastBytePosition >= r.firstBytePosition)
}

// ParseRangeHeader parses a Range header value such as
// "bytes=0-499,500-999". The unit must be "bytes"; every comma-separated
// range must contain a "-" and satisfy ByteRange.IsValid; the set must be
// non-empty. On any violation the whole header is rejected and ok is false.
func ParseRangeHeader(rangesSpecifier string) (ranges []ByteRange, ok bool) {
	equal := strings.IndexByte(rangesSpecifier, '=')
	if equal < 0 {
		return nil, false
	}
	// Try to extract the bytes-unit part.
	if !strings.EqualFold(TrimLWS(rangesSpecifier[:equal]), "bytes") {
		return nil, false
	}
	it := NewValuesIterator(rangesSpecifier[equal+1:], ',', true)
	for it.Next() {
		value := it.Value()
		minus := strings.IndexByte(value, '-')
		if minus < 0 {
			return nil, false
		}
		r := NewByteRange()
		// Try to obtain first-byte-pos.
		if firstBytePos := TrimLWS(value[:minus]); firstBytePos != "" {
			n, err := ParseInt64(firstBytePos, ParseIntAny)
			if err != nil {
				return nil, false
			}
			r.SetFirstBytePosition(n)
		}
		// We have last-byte-pos or a suffix-byte-range-spec in this case.
		if lastBytePos := TrimLWS(value[minus+1:]); lastBytePos != "" {
			n, err := ParseInt64(lastBytePos, ParseIntAny)
			if err != nil {
				return nil, false
			}
			if r.HasFirstBytePosition() {
				r.SetLastBytePosition(n)
			} else {
				r.SetSuffixLength(n)
			}
		} else if !r.HasFirstBytePosition() {
			return nil, false
		}
		if !r.IsValid() {
			return nil, false
		}
		ranges = append(ranges, r)
	}
	if len(ranges) == 0 {
		return nil, false
	}
	return ranges, true
}

// ParseContentRangeHeaderFor206 parses a Content-Range value as sent with a
// 206 response, which must take the strict form
//
//	bytes SP first-last/length
//
// with 0 <= first <= last < length (RFC 2616 Section 14.16; the "*" forms
// are not acceptable in a 206). On failure all three positions are -1.
func ParseContentRangeHeaderFor206(contentRangeSpec string) (firstBytePosition, lastBytePosition, instanceLength int64, ok bool) {
	s := TrimLWS(contentRangeSpec)
	space := strings.IndexByte(s, ' ')
	if space < 0 {
		return -1, -1, -1, false
	}
	// Invalid header if it doesn't contain the bytes-unit.
	if !strings.EqualFold(TrimLWS(s[:space]), "bytes") {
		return -1, -1, -1, false
	}
	minus := indexFrom(s, '-', space+1)
	if minus < 0 {
		return -1, -1, -1, false
	}
	slash := indexFrom(s, '/', minus+1)
	if slash < 0 {
		return -1, -1, -1, false
	}
	first, errFirst := ParseInt64(TrimLWS(s[space+1:minus]), ParseIntAny)
	last, errLast := ParseInt64(TrimLWS(s[minus+1:slash]), ParseIntAny)
	length, errLength := ParseInt64(TrimLWS(s[slash+1:]), ParseIntAny)
	if errFirst == nil && first >= 0 &&
		errLast == nil && last >= first &&
		errLength == nil && length > last {
		return first, last, length, true
	}
	return -1, -1, -1, false
}
