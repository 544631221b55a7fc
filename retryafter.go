package rawheader

import "time"

// ParseRetryAfterHeader parses a Retry-After value expressed as a delay:
// a non-negative 32-bit count of seconds. HTTP-date values are not resolved
// here (this package does not interpret dates) and fail the parse.
func ParseRetryAfterHeader(retryAfter string) (time.Duration, bool) {
	seconds, err := ParseUint32(retryAfter)
	if err != nil {
		return 0, false
	}
	interval := time.Duration(seconds) * time.Second
	// Negative delays are rejected. Unreachable while the parse above is
	// unsigned.
	if interval < 0 {
		return 0, false
	}
	return interval, true
}
