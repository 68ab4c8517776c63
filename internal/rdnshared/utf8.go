package rdnshared

import "unicode/utf8"

// ValidateUTF8 reports whether b is entirely well-formed UTF-8. It is a
// thin wrapper so call sites read as domain vocabulary ("validate this
// source span") rather than a raw stdlib call, and so the one place that
// would need to change if a faster vectorized validator is swapped in
// later is this file.
func ValidateUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// DecodeRune decodes the first rune in b, same contract as
// utf8.DecodeRune (returns utf8.RuneError/size 0 on empty input,
// utf8.RuneError/size 1 on invalid encoding).
func DecodeRune(b []byte) (rune, int) {
	return utf8.DecodeRune(b)
}

// UTF16ToUTF8 transcodes a UTF-16 (native endian, as produced by
// decoding \uXXXX escapes) code unit sequence to UTF-8.
func UTF16ToUTF8(units []uint16) []byte {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) {
			lo := units[i+1]
			if lo >= 0xDC00 && lo <= 0xDFFF {
				r := ((rune(u) - 0xD800) << 10) | (rune(lo) - 0xDC00)
				runes = append(runes, r+0x10000)
				i++
				continue
			}
		}
		runes = append(runes, rune(u))
	}
	return []byte(string(runes))
}
