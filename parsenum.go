package rawheader

import (
	"errors"
	"strconv"
)

// ParseIntFormat constrains the inputs ParseInt32 and ParseInt64 accept.
type ParseIntFormat int

const (
	// ParseIntNonNegative accepts only strings of ASCII digits.
	ParseIntNonNegative ParseIntFormat = iota
	// ParseIntAny additionally accepts a leading minus. A leading plus is
	// never accepted.
	ParseIntAny
)

// Errors returned by the integer parsers. ErrOverflow and ErrUnderflow are
// reported only when the input is otherwise a well-formed number, so callers
// can tell a syntactic failure from an out-of-range one.
var (
	ErrParse     = errors.New("rawheader: invalid number")
	ErrOverflow  = errors.New("rawheader: number overflows")
	ErrUnderflow = errors.New("rawheader: number underflows")
)

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// checkIntFormat validates the lead byte rules shared by all the parsers:
// a number must start with a digit, or with a minus where format allows it.
func checkIntFormat(input string, format ParseIntFormat) error {
	if input == "" {
		return ErrParse
	}
	if isASCIIDigit(input[0]) {
		return nil
	}
	if format == ParseIntNonNegative || input[0] != '-' {
		return ErrParse
	}
	return nil
}

func rangeError(input string) error {
	if input[0] == '-' {
		return ErrUnderflow
	}
	return ErrOverflow
}

// ParseInt32 parses input as a base-10 32-bit signed integer.
func ParseInt32(input string, format ParseIntFormat) (int32, error) {
	n, err := parseInt(input, format, 32)
	return int32(n), err
}

// ParseInt64 parses input as a base-10 64-bit signed integer.
func ParseInt64(input string, format ParseIntFormat) (int64, error) {
	return parseInt(input, format, 64)
}

func parseInt(input string, format ParseIntFormat, bitSize int) (int64, error) {
	if err := checkIntFormat(input, format); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(input, 10, bitSize)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, rangeError(input)
	}
	return 0, ErrParse
}

// ParseUint32 parses input as a base-10 32-bit unsigned integer. A leading
// minus or plus is never accepted.
func ParseUint32(input string) (uint32, error) {
	n, err := parseUint(input, 32)
	return uint32(n), err
}

// ParseUint64 parses input as a base-10 64-bit unsigned integer. A leading
// minus or plus is never accepted.
func ParseUint64(input string) (uint64, error) {
	return parseUint(input, 64)
}

func parseUint(input string, bitSize int) (uint64, error) {
	if err := checkIntFormat(input, ParseIntNonNegative); err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(input, 10, bitSize)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrOverflow
	}
	return 0, ErrParse
}
