package tokenizer

import "github.com/rdnfmt/rdn/token"

// startRegexPattern scans a regex literal's pattern body. pos points just
// past the opening '/'. A bare '/' is only ever dispatched here from a
// value position (dispatchScalarOrOpen); anywhere else in the grammar a
// lone '/' that isn't a comment opener is rejected by the caller's own
// grammar check before reaching this function.
func (r *Reader) startRegexPattern(window []byte, pos int, isFinal bool) (bool, error) {
	r.scratchEscaping = false
	r.valueEscaped = false
	end, complete, err := r.scanRegexPattern(window, pos)
	if err != nil {
		return false, err
	}
	if !complete {
		if isFinal {
			return false, newError(InvalidRegex, r.pos(), "unterminated regex literal")
		}
		r.advance(1 + (end - pos))
		r.beginCarry(window[pos:end])
		r.subState = stateRegexPattern
		return false, ErrNeedMoreData
	}
	r.advance(1 + (end - pos))
	r.beginCarry(window[pos:end]) // pattern plus its closing '/'
	return r.scanFlagsAndFinish(window, end, isFinal)
}

func (r *Reader) resumeRegexPattern(window []byte, isFinal bool) (bool, error) {
	end, complete, err := r.scanRegexPattern(window, 0)
	if err != nil {
		r.subState = stateNone
		return false, err
	}
	if !complete {
		if isFinal {
			r.subState = stateNone
			return false, newError(InvalidRegex, r.pos(), "unterminated regex literal")
		}
		r.advance(end)
		r.beginCarry(window[:end])
		return false, ErrNeedMoreData
	}
	r.advance(end)
	r.carry = append(r.carry, window[:end]...)
	return r.scanFlagsAndFinish(window, end, isFinal)
}

// scanRegexPattern finds the unescaped '/' that closes the pattern.
func (r *Reader) scanRegexPattern(window []byte, pos int) (end int, complete bool, err error) {
	i := pos
	for i < len(window) {
		b := window[i]
		if r.scratchEscaping {
			r.scratchEscaping = false
			i++
			continue
		}
		if b == '\\' {
			r.scratchEscaping = true
			r.valueEscaped = true
			i++
			continue
		}
		if b == '/' {
			return i + 1, true, nil
		}
		if b == '\n' {
			return i, false, newError(InvalidRegex, r.pos(), "regex pattern cannot contain a literal newline")
		}
		i++
	}
	return i, false, nil
}

// scanFlagsAndFinish consumes the trailing run of ASCII letters (the
// flags) and finalizes the RdnRegExp token. r.carry already holds the
// pattern and its closing '/', and the flags are appended to it, so
// Value() is pattern+"/"+flags: the source span without the opening
// slash, which the writer adds back when it re-emits the literal.
func (r *Reader) scanFlagsAndFinish(window []byte, pos int, isFinal bool) (bool, error) {
	i := pos
	for i < len(window) && window[i] >= 'a' && window[i] <= 'z' {
		i++
	}
	if i >= len(window) && !isFinal {
		r.advance(i - pos)
		r.carry = append(r.carry, window[pos:i]...)
		r.subState = stateRegexFlags
		return false, ErrNeedMoreData
	}
	r.advance(i - pos)
	r.carry = append(r.carry, window[pos:i]...)
	r.hasValueSeq = true
	r.span = r.carry
	r.subState = stateNone
	r.kind = token.RdnRegExp
	r.prevKind = r.kind
	return true, nil
}

func (r *Reader) resumeRegexFlags(window []byte, isFinal bool) (bool, error) {
	return r.scanFlagsAndFinish(window, 0, isFinal)
}
