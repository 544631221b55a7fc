package rawheader

// IsLWS reports whether c is linear whitespace (SP or HTAB), the filler
// allowed between tokens in the HTTP grammar.
func IsLWS(c byte) bool {
	return c == ' ' || c == '\t'
}

// TrimLWS returns s with leading and trailing linear whitespace removed.
// The result is a substring of s.
func TrimLWS(s string) string {
	begin, end := 0, len(s)
	for begin < end && IsLWS(s[begin]) {
		begin++
	}
	for begin < end && IsLWS(s[end-1]) {
		end--
	}
	return s[begin:end]
}

var (
	isTchar    [256]bool
	isParmChar [256]bool
)

func init() {
	for i := 0x21; i <= 0x7E; i++ {
		isTchar[i] = true
	}
	// Separators from RFC 7230 Section 3.2.6.
	for _, c := range "()<>@,;:\\\"/[]?={}" {
		isTchar[c] = false
	}
	for i := range isParmChar {
		isParmChar[i] = isTchar[i]
	}
	// parmname (RFC 5987 Section 3.2.1) further excludes these.
	for _, c := range "*'%" {
		isParmChar[c] = false
	}
}

// IsTokenChar reports whether c is a tchar as per RFC 7230 Section 3.2.6.
func IsTokenChar(c byte) bool {
	return isTchar[c]
}

// IsToken reports whether s is a valid token (RFC 7230 Section 3.2.6):
// non-empty and built entirely of tchars.
func IsToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isTchar[s[i]] {
			return false
		}
	}
	return s != ""
}

// IsParmName reports whether s is a valid parmname as per
// RFC 5987 Section 3.2.1.
func IsParmName(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isParmChar[s[i]] {
			return false
		}
	}
	return s != ""
}
