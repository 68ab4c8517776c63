package tokenizer

import (
	"github.com/rdnfmt/rdn/internal/rdnshared"
	"github.com/rdnfmt/rdn/token"
)

// startNumber begins scanning a Number or BigInteger literal, or routes to
// the `-Infinity` keyword when a '-' is immediately followed by 'I'.
// Numbers never contain a delimiter byte, so the extent can be found
// independent of the grammar; validation happens once the whole literal
// has been collected.
func (r *Reader) startNumber(window []byte, pos int, isFinal bool) (bool, error) {
	if window[pos] == '-' {
		if pos+1 >= len(window) {
			if !isFinal {
				return false, ErrNeedMoreData
			}
		} else if window[pos+1] == 'I' {
			return r.matchKeyword(window, pos, isFinal, "-Infinity", token.Number)
		}
	}
	end, hit := scanNumberExtent(window, pos)
	if !hit {
		if isFinal {
			end = len(window)
		} else {
			r.advance(end - pos)
			r.beginCarry(window[pos:end])
			r.subState = stateNumber
			return false, ErrNeedMoreData
		}
	}
	candidate := window[pos:end]
	kind, verr := validateNumber(candidate)
	if verr != nil {
		verr.Pos = r.pos()
		return false, verr
	}
	r.advance(end - pos)
	r.finishValue(candidate, len(candidate))
	r.kind = kind
	r.prevKind = r.kind
	return true, nil
}

func (r *Reader) resumeNumber(window []byte, isFinal bool) (bool, error) {
	end, hit := scanNumberExtent(window, 0)
	if !hit {
		if isFinal {
			end = len(window)
		} else {
			r.advance(end)
			r.beginCarry(window[:end])
			return false, ErrNeedMoreData
		}
	}
	r.advance(end)
	candidate := append(append([]byte(nil), r.carry...), window[:end]...)
	kind, verr := validateNumber(candidate)
	r.subState = stateNone
	if verr != nil {
		verr.Pos = r.pos()
		return false, verr
	}
	r.finishValue(window[:end], end)
	r.kind = kind
	r.prevKind = r.kind
	return true, nil
}

func scanNumberExtent(window []byte, pos int) (end int, hitDelimiter bool) {
	i := pos
	for i < len(window) {
		if rdnshared.IsDelimiter(window[i]) {
			return i, true
		}
		i++
	}
	return i, false
}

// validateNumber checks the full captured extent of a Number/BigInteger
// literal against [-]?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?n? and reports
// which kind it is.
func validateNumber(s []byte) (token.Kind, *Error) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) {
		return 0, newError(InvalidNumber, Pos{}, "number has no digits")
	}
	switch {
	case s[i] == '0':
		i++
		if i < len(s) && rdnshared.IsDigit(s[i]) {
			return 0, newError(InvalidLeadingZeroInNumber, Pos{}, "leading zero followed by a digit")
		}
	case s[i] >= '1' && s[i] <= '9':
		i++
		for i < len(s) && rdnshared.IsDigit(s[i]) {
			i++
		}
	default:
		return 0, newByteError(InvalidNumber, Pos{}, s[i], "expected a digit")
	}
	isFloat := false
	if i < len(s) && s[i] == '.' {
		isFloat = true
		i++
		start := i
		for i < len(s) && rdnshared.IsDigit(s[i]) {
			i++
		}
		if i == start {
			return 0, newError(InvalidNumber, Pos{}, "missing fraction digits")
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		isFloat = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && rdnshared.IsDigit(s[i]) {
			i++
		}
		if i == start {
			return 0, newError(InvalidNumber, Pos{}, "missing exponent digits")
		}
	}
	isBig := false
	if i < len(s) && s[i] == 'n' {
		if isFloat {
			return 0, newError(InvalidNumber, Pos{}, "BigInteger literal cannot have a fraction or exponent")
		}
		isBig = true
		i++
	}
	if i != len(s) {
		return 0, newByteError(InvalidNumber, Pos{}, s[i], "unexpected trailing byte in number")
	}
	if isBig {
		return token.BigInteger, nil
	}
	return token.Number, nil
}
