package tokenizer

import "github.com/rdnfmt/rdn/token"

// startBinaryPrefix scans a binary literal: b"<base64>" or x"<hex>". pos
// points at the 'b'/'x' prefix byte itself. The body charset (base64 or
// hex) never contains a literal quote, so the body is simply scanned to
// the next unescaped '"'.
func (r *Reader) startBinaryPrefix(window []byte, pos int, isFinal bool, isHex bool) (bool, error) {
	if pos+1 >= len(window) {
		if !isFinal {
			return false, ErrNeedMoreData
		}
		return false, newError(UnexpectedEndOfData, r.pos(), "unterminated binary literal")
	}
	if window[pos+1] != '"' {
		return false, newByteError(ExpectedStartOfValue, r.pos(), window[pos+1], "expected '\"' after binary literal prefix")
	}
	r.scratchIsHexBin = isHex
	r.valueEscaped = isHex
	return r.scanBinaryBody(window, pos+2, isFinal, 2)
}

func (r *Reader) resumeBinaryBody(window []byte, isFinal bool) (bool, error) {
	return r.scanBinaryBody(window, 0, isFinal, 0)
}

// scanBinaryBody scans for the closing quote and finalizes the RdnBinary
// token. prefixConsumed counts bytes (the "b\"" or "x\"" opener) that must
// be folded into this call's advance but are not part of the value span.
func (r *Reader) scanBinaryBody(window []byte, pos int, isFinal bool, prefixConsumed int) (bool, error) {
	i := pos
	for i < len(window) && window[i] != '"' {
		i++
	}
	if i >= len(window) {
		if isFinal {
			return false, newError(UnexpectedEndOfData, r.pos(), "unterminated binary literal")
		}
		r.advance(prefixConsumed + (i - pos))
		r.beginCarry(window[pos:i])
		r.subState = stateBinaryBody
		return false, ErrNeedMoreData
	}
	r.advance(prefixConsumed + (i - pos) + 1)
	r.finishValue(window[pos:i], i-pos)
	r.subState = stateNone
	r.kind = token.RdnBinary
	r.prevKind = r.kind
	return true, nil
}
