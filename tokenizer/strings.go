package tokenizer

import (
	"github.com/rdnfmt/rdn/internal/rdnshared"
	"github.com/rdnfmt/rdn/token"
)

// startString begins scanning a String or PropertyName literal. pos points
// just past the opening quote, which the caller has not yet accounted for
// in position tracking; startString folds it into the byte count it
// advances.
func (r *Reader) startString(window []byte, pos int, isFinal bool, isProp bool) (bool, error) {
	r.scratchIsProp = isProp
	r.scratchEscaping = false
	r.scratchHexLeft = 0
	r.valueEscaped = false
	end, complete, err := r.scanStringBody(window, pos)
	if err != nil {
		return false, err
	}
	if !complete {
		if isFinal {
			return false, newError(UnexpectedEndOfData, r.pos(), "unterminated string")
		}
		r.advance(1 + (end - pos))
		r.beginCarry(window[pos:end])
		r.subState = stateString
		return false, ErrNeedMoreData
	}
	value := window[pos : end-1]
	r.advance(1 + (end - pos))
	r.finishValue(value, len(value))
	r.setStringKind()
	return true, nil
}

func (r *Reader) resumeString(window []byte, isFinal bool) (bool, error) {
	end, complete, err := r.scanStringBody(window, 0)
	if err != nil {
		r.subState = stateNone
		return false, err
	}
	if !complete {
		if isFinal {
			r.subState = stateNone
			return false, newError(UnexpectedEndOfData, r.pos(), "unterminated string")
		}
		r.advance(end)
		r.beginCarry(window[:end])
		return false, ErrNeedMoreData
	}
	r.advance(end)
	r.finishValue(window[:end-1], end-1)
	r.subState = stateNone
	r.setStringKind()
	return true, nil
}

func (r *Reader) setStringKind() {
	if r.scratchIsProp {
		r.kind = token.PropertyName
	} else {
		r.kind = token.String
	}
	r.prevKind = r.kind
}

// scanStringBody scans window[pos:] for the closing quote, honoring
// backslash escapes and \u hex runs that may themselves have started in a
// previous window (tracked via scratchEscaping/scratchHexLeft). It never
// looks before pos, so it is safe to call on a fresh window each time.
func (r *Reader) scanStringBody(window []byte, pos int) (end int, complete bool, err error) {
	i := pos
	for i < len(window) {
		b := window[i]
		if r.scratchHexLeft > 0 {
			if !rdnshared.IsHexDigit(b) {
				return i, false, newByteError(InvalidHexDigit, r.pos(), b, "invalid hex digit in \\u escape")
			}
			r.scratchHexLeft--
			i++
			continue
		}
		if r.scratchEscaping {
			switch b {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				r.scratchEscaping = false
			case 'u':
				r.scratchEscaping = false
				r.scratchHexLeft = 4
			default:
				return i, false, newByteError(InvalidStringEscape, r.pos(), b, "invalid escape character")
			}
			i++
			continue
		}
		if b == '\\' {
			r.scratchEscaping = true
			r.valueEscaped = true
			i++
			continue
		}
		if b == '"' {
			return i + 1, true, nil
		}
		if b == 0xE2 && i+2 < len(window) && window[i+1] == 0x80 && (window[i+2] == 0xA8 || window[i+2] == 0xA9) {
			return i, false, newError(UnexpectedLineSeparator, r.pos(), "U+2028/U+2029 not allowed unescaped in a string")
		}
		if b < 0x20 {
			return i, false, newByteError(InvalidControlCharacter, r.pos(), b, "invalid control character in string")
		}
		i++
	}
	return i, false, nil
}
