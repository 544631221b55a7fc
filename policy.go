package rawheader

import "strings"

// Requests with any of the following headers will cause an error. The list
// comes from the fetch standard.
var forbiddenHeaders = map[string]bool{
	"accept-charset":                 true,
	"accept-encoding":                true,
	"access-control-request-headers": true,
	"access-control-request-method":  true,
	"connection":                     true,
	"content-length":                 true,
	"cookie":                         true,
	"cookie2":                        true,
	"date":                           true,
	"dnt":                            true,
	"expect":                         true,
	"host":                           true,
	"keep-alive":                     true,
	"origin":                         true,
	"referer":                        true,
	"te":                             true,
	"trailer":                        true,
	"transfer-encoding":              true,
	"upgrade":                        true,
	"user-agent":                     true,
	"via":                            true,
}

// Headers whose semantics forbid merging repeated occurrences with a comma.
// The format of auth challenges mixes space-separated tokens with
// comma-separated properties, so coalescing on comma won't work for them;
// STS specifies that only the first header is to be processed.
var nonCoalescingHeaders = map[string]bool{
	"date":                      true,
	"expires":                   true,
	"last-modified":             true,
	"location":                  true,
	"retry-after":               true,
	"set-cookie":                true,
	"www-authenticate":          true,
	"proxy-authenticate":        true,
	"strict-transport-security": true,
}

// IsMethodSafe reports whether method is safe as per RFC 7231 Section 4.2.1.
// The comparison is exact: method names are case-sensitive.
func IsMethodSafe(method string) bool {
	return method == "GET" || method == "HEAD" || method == "OPTIONS" ||
		method == "TRACE"
}

// IsMethodIdempotent reports whether method is idempotent as per RFC 7231
// Section 4.2.2.
func IsMethodIdempotent(method string) bool {
	return IsMethodSafe(method) || method == "PUT" || method == "DELETE"
}

// IsSafeHeader reports whether a caller may set the named request header:
// false for the fetch standard's forbidden header names and for any name
// prefixed "proxy-" or "sec-", compared case-insensitively.
func IsSafeHeader(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "proxy-") || strings.HasPrefix(lower, "sec-") {
		return false
	}
	return !forbiddenHeaders[lower]
}

// IsNonCoalescingHeader reports whether repeated occurrences of the named
// header must be kept separate rather than joined with a comma.
func IsNonCoalescingHeader(name string) bool {
	return nonCoalescingHeaders[strings.ToLower(name)]
}

// IsValidHeaderName reports whether name is an RFC 2616-compliant header
// name, i.e. a token.
func IsValidHeaderName(name string) bool {
	return IsToken(name)
}

// IsValidHeaderValue reports whether value is free of NUL, CR and LF, the
// bytes that enable header injection.
func IsValidHeaderValue(value string) bool {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case 0, '\r', '\n':
			return false
		}
	}
	return true
}
