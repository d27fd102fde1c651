// Package numstr converts values into formatted strings.
//
// Two families of converters are provided. Display/debug converters turn
// any value into its human-readable or developer-oriented rendering. Radix
// converters turn fixed-width integers into binary, octal, or hexadecimal
// strings with optional zero or space padding. Every converter is a pure
// function with the shape func(T) string, so it can be passed directly to
// [Map] (or any other sequence-mapping operation) without a closure:
//
//	binary := numstr.Collect(numstr.Map(seq, numstr.Binary))
//
// # Radix Conversion
//
// [Binary], [Octal], [HexLower], and [HexUpper] return the shortest
// representation. Negative values render the two's-complement bit pattern
// of the value's storage width, matching how the bits are stored rather
// than prefixing a minus sign:
//
//	numstr.Binary(uint8(5))    // "101"
//	numstr.HexLower(int8(-1))  // "ff"
//	numstr.HexLower(int32(-1)) // "ffffffff"
//
// # Padding
//
// Each radix has a ZeroPad and a SpacePad variant that left-pads to a
// minimum total width. Padding never truncates; a width at or below the
// natural length returns the unpadded form:
//
//	numstr.BinaryZeroPad(uint8(5), 8)   // "00000101"
//	numstr.BinarySpacePad(uint8(5), 8)  // "     101"
//	numstr.BinaryZeroPad(uint8(255), 2) // "11111111"
//
// The exported [ZeroPad] and [SpacePad] helpers pad arbitrary strings to a
// minimum display width, counting wide runes as two columns.
//
// # Runtime Selection
//
// When the radix and padding mode come from user input, use [ParseRadix]
// and [ParsePad] to convert flag strings, then [Format] to dispatch, or
// [Padded] to bind the choice into a mappable converter:
//
//	r, err := numstr.ParseRadix(flagValue)
//	fn, err := numstr.Padded[uint8](r, numstr.PadZero, 8)
//	lines := numstr.Collect(numstr.Map(seq, fn))
//
// # Display and Debug
//
// [String] renders via [fmt.Stringer] when implemented, otherwise "%v".
// [Debug] renders "%#v"; [DebugPretty] produces an indented multi-line
// dump. [YAML] renders the value's YAML document, and [Template] binds a
// Go text/template into a converter.
//
// # Errors
//
// All converters are total. Only the runtime-selection surface returns
// errors, wrapping the sentinels [ErrUnsupportedRadix], [ErrUnsupportedPad],
// and [ErrInvalidTemplate] for use with [errors.Is].
//
// # Chunking
//
// The optional subpackage chunk groups the characters of a string into
// fixed-size separator-joined chunks ("FEEDC0FFEE" into "FE ED C0 FF EE").
// The root package does not depend on it.
package numstr
