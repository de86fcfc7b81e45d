package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"fortio.org/safecast"
)

// ParseHex parses a hex color: "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA",
// case-insensitive. Every '#' is stripped before counting digits. Short
// forms double each digit; the optional fourth byte becomes alpha/255.
func ParseHex(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, ErrEmptyInput
	}
	hex := strings.ReplaceAll(s, "#", "")
	for _, r := range hex {
		if !isHexDigit(r) {
			return Value{}, fmt.Errorf("%w: invalid hex color %q: non-hex character %q", ErrMalformedInput, s, r)
		}
	}

	var raw [4]uint8
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			raw[i] = hexByte(hex[i], hex[i])
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			raw[i] = hexByte(hex[2*i], hex[2*i+1])
		}
	default:
		return Value{}, fmt.Errorf("%w: invalid hex color %q: must be 3, 4, 6 or 8 hex digits", ErrMalformedInput, s)
	}

	v := RGB(raw[0], raw[1], raw[2])
	if len(hex) == 4 || len(hex) == 8 {
		v.Alpha = WithAlpha(float64(raw[3]) / 255)
	}
	return v, nil
}

// ParseTuple parses "R,G,B" or "R,G,B,A". All whitespace is ignored.
// Channels must be base-10 integers in [0, 255] and alpha a decimal in
// [0, 1]; values outside these domains are rejected, never clamped.
func ParseTuple(s string) (Value, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if compact == "" {
		return Value{}, ErrEmptyInput
	}

	fields := strings.Split(compact, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return Value{}, fmt.Errorf("%w: invalid color tuple %q: want 3 or 4 fields, got %d", ErrMalformedInput, s, len(fields))
	}

	var ch [3]uint8
	for i := range ch {
		c, err := parseChannel(fields[i])
		if err != nil {
			return Value{}, fmt.Errorf("invalid color tuple %q: field %d: %w", s, i+1, err)
		}
		ch[i] = c
	}

	v := RGB(ch[0], ch[1], ch[2])
	if len(fields) == 4 {
		a, err := parseAlpha(fields[3])
		if err != nil {
			return Value{}, fmt.Errorf("invalid color tuple %q: alpha: %w", s, err)
		}
		v.Alpha = WithAlpha(a)
	}
	return v, nil
}

func parseChannel(field string) (uint8, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is not in [0, 255]", ErrOutOfRange, field)
		}
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, field)
	}
	c, err := safecast.Conv[uint8](n)
	if err != nil {
		return 0, fmt.Errorf("%w: %d is not in [0, 255]", ErrOutOfRange, n)
	}
	return c, nil
}

// parseAlpha accepts plain decimals only; hex floats, underscores, NaN and
// Inf spellings are malformed.
func parseAlpha(field string) (float64, error) {
	if field == "" || strings.ContainsFunc(field, func(r rune) bool { return !isDecimalRune(r) }) {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrMalformedInput, field)
	}
	a, err := strconv.ParseFloat(field, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is not in [0, 1]", ErrOutOfRange, field)
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, field)
	}
	if math.IsNaN(a) || a < 0 || a > 1 {
		return 0, fmt.Errorf("%w: %q is not in [0, 1]", ErrOutOfRange, field)
	}
	return a, nil
}

func isDecimalRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '+' || r == '-' || r == 'e' || r == 'E'
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

// hexNibble assumes c was validated by isHexDigit.
func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
