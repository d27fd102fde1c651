package numstr

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedRadix = errors.New("unsupported radix")
	ErrUnsupportedPad   = errors.New("unsupported padding mode")
	ErrInvalidTemplate  = errors.New("invalid template")
)

// Radix represents a numeric base for string conversion.
type Radix string

const (
	Base2       Radix = "binary"
	Base8       Radix = "octal"
	Base16Lower Radix = "hex-lower"
	Base16Upper Radix = "hex-upper"
)

var radixes = []Radix{Base2, Base8, Base16Lower, Base16Upper}

// String returns the radix name.
func (r Radix) String() string { return string(r) }

// Radixes returns all supported radix names.
func Radixes() []Radix {
	out := make([]Radix, len(radixes))
	copy(out, radixes)
	return out
}

// ParseRadix parses a radix string. "hex" is accepted as an alias for
// Base16Lower.
func ParseRadix(s string) (Radix, error) {
	if s == "hex" {
		return Base16Lower, nil
	}
	for _, r := range radixes {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedRadix, s)
}

// Pad controls how output is padded to a minimum width.
type Pad int

const (
	PadNone  Pad = iota // minimal-length representation
	PadZero             // left-pad with '0'
	PadSpace            // left-pad with ' '
)

// ParsePad parses a padding mode name: "none", "zero", or "space".
func ParsePad(s string) (Pad, error) {
	switch s {
	case "none":
		return PadNone, nil
	case "zero":
		return PadZero, nil
	case "space":
		return PadSpace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPad, s)
}

// Integer is the set of fixed-width integer types the radix converters
// accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Format converts v in the given radix and applies the padding mode. It is
// the parameterized form of the named converters, intended for call sites
// that select radix and padding at runtime (e.g. from CLI flags via
// [ParseRadix] and [ParsePad]).
func Format[T Integer](v T, r Radix, p Pad, width int) (string, error) {
	var s string
	switch r {
	case Base2:
		s = Binary(v)
	case Base8:
		s = Octal(v)
	case Base16Lower:
		s = HexLower(v)
	case Base16Upper:
		s = HexUpper(v)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRadix, r)
	}
	switch p {
	case PadNone:
	case PadZero:
		s = ZeroPad(s, width)
	case PadSpace:
		s = SpacePad(s, width)
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedPad, p)
	}
	return s, nil
}

// Padded returns a converter with the radix, padding mode, and width bound
// up front, shaped for iterator mapping. The radix and pad are validated
// once; the returned converter is total.
func Padded[T Integer](r Radix, p Pad, width int) (func(T) string, error) {
	var zero T
	if _, err := Format(zero, r, p, width); err != nil {
		return nil, err
	}
	return func(v T) string {
		s, _ := Format(v, r, p, width)
		return s
	}, nil
}
