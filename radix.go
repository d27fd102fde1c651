package numstr

import "unsafe"

const (
	digitsLower = "0123456789abcdef"
	digitsUpper = "0123456789ABCDEF"
)

// bitPattern returns the two's-complement bit pattern of v at the storage
// width of T. Signed negative values sign-extend during the uint64
// conversion, so narrower widths are masked back down.
func bitPattern[T Integer](v T) uint64 {
	u := uint64(v)
	if bits := 8 * unsafe.Sizeof(v); bits < 64 {
		u &= uint64(1)<<bits - 1
	}
	return u
}

// formatBits renders u in base 1<<shift, assembling digits in reverse into
// a fixed buffer. shift is 1, 3, or 4, so no digit index can exceed the
// digit map and no value/width combination can fail.
func formatBits(u uint64, shift uint, digits string) string {
	var b [64]byte
	mask := uint64(1)<<shift - 1
	i := len(b)
	for {
		i--
		b[i] = digits[u&mask]
		u >>= shift
		if u == 0 {
			break
		}
	}
	return string(b[i:])
}

// Binary converts an integer to its shortest binary representation.
// Negative values render the two's-complement bit pattern of the value's
// storage width: Binary(int8(-1)) is "11111111".
//
// Use with [Map] to convert a sequence of integers:
//
//	numstr.Map(seq, numstr.Binary)
func Binary[T Integer](v T) string {
	return formatBits(bitPattern(v), 1, digitsLower)
}

// Octal converts an integer to its shortest octal representation. Negative
// values follow the same two's-complement convention as [Binary].
func Octal[T Integer](v T) string {
	return formatBits(bitPattern(v), 3, digitsLower)
}

// HexLower converts an integer to its shortest lowercase hexadecimal
// representation. Negative values follow the same two's-complement
// convention as [Binary].
func HexLower[T Integer](v T) string {
	return formatBits(bitPattern(v), 4, digitsLower)
}

// HexUpper converts an integer to its shortest uppercase hexadecimal
// representation. Negative values follow the same two's-complement
// convention as [Binary].
func HexUpper[T Integer](v T) string {
	return formatBits(bitPattern(v), 4, digitsUpper)
}

// BinaryZeroPad is [Binary] left-padded with '0' to a minimum total width.
// A width at or below the natural length leaves the output unchanged;
// output is never truncated.
func BinaryZeroPad[T Integer](v T, width int) string {
	return ZeroPad(Binary(v), width)
}

// BinarySpacePad is [Binary] left-padded with spaces to a minimum total
// width, no truncation.
func BinarySpacePad[T Integer](v T, width int) string {
	return SpacePad(Binary(v), width)
}

// OctalZeroPad is [Octal] left-padded with '0' to a minimum total width.
func OctalZeroPad[T Integer](v T, width int) string {
	return ZeroPad(Octal(v), width)
}

// OctalSpacePad is [Octal] left-padded with spaces to a minimum total width.
func OctalSpacePad[T Integer](v T, width int) string {
	return SpacePad(Octal(v), width)
}

// HexLowerZeroPad is [HexLower] left-padded with '0' to a minimum total
// width.
func HexLowerZeroPad[T Integer](v T, width int) string {
	return ZeroPad(HexLower(v), width)
}

// HexLowerSpacePad is [HexLower] left-padded with spaces to a minimum total
// width.
func HexLowerSpacePad[T Integer](v T, width int) string {
	return SpacePad(HexLower(v), width)
}

// HexUpperZeroPad is [HexUpper] left-padded with '0' to a minimum total
// width.
func HexUpperZeroPad[T Integer](v T, width int) string {
	return ZeroPad(HexUpper(v), width)
}

// HexUpperSpacePad is [HexUpper] left-padded with spaces to a minimum total
// width.
func HexUpperSpacePad[T Integer](v T, width int) string {
	return SpacePad(HexUpper(v), width)
}
