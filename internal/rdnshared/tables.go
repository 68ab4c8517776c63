// Package rdnshared holds the leaf-level helpers the tokenizer, writer,
// and document packages all depend on: byte classification tables, the
// ISO 8601 date/time/duration parsers, UTF-8 validation, and base64/hex
// codecs. Nothing in this package depends on tokenizer, writer, or
// document, which keeps the dependency graph a DAG as required.
package rdnshared

// Delimiter is a 256-entry table marking which bytes terminate a bare
// number/temporal scan: separators, closing brackets, and whitespace.
var Delimiter [256]bool

// Whitespace marks the bytes treated as insignificant whitespace between
// tokens: space, tab, CR, LF, and the JSON5-style U+000B/U+000C control
// whitespace is deliberately excluded (RDN follows strict JSON here).
var Whitespace [256]bool

func init() {
	for _, b := range []byte{',', '}', ']', ')', ' ', '\t', '\r', '\n'} {
		Delimiter[b] = true
	}
	for _, b := range []byte{' ', '\t', '\r', '\n'} {
		Whitespace[b] = true
	}
}

// IsWhitespace reports whether b is insignificant whitespace between
// tokens.
func IsWhitespace(b byte) bool {
	return Whitespace[b]
}

// IsDelimiter reports whether b terminates a number or bare-@ temporal
// scan.
func IsDelimiter(b byte) bool {
	return Delimiter[b]
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsHexDigit reports whether b is an ASCII hex digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexValue returns the numeric value of an ASCII hex digit. The caller
// must have checked IsHexDigit first.
func HexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
