package tokenizer

import (
	"github.com/rdnfmt/rdn/internal/rdnshared"
	"github.com/rdnfmt/rdn/token"
)

// Read attempts to produce the next token from window. window must start
// at the first byte this Reader has not yet consumed, TotalConsumed()
// bytes into the stream (see the package doc). isFinal
// tells the Reader that no further bytes will ever arrive after window; it
// is what lets a root scalar or a bare trailing number be recognized at
// end of stream instead of waiting for a delimiter that will never come.
//
// Read returns (true, nil) when a token is ready (inspect Kind/Value/etc),
// (false, nil) when the stream is legitimately exhausted (no more tokens,
// ever), and (false, err) when window didn't contain enough bytes to make
// progress (err is ErrNeedMoreData) or the input is malformed (err is a
// *Error). On ErrNeedMoreData the Reader either carries the partial
// token's bytes (they count as consumed) or, when no token was started,
// rewinds to where the call began.
func (r *Reader) Read(window []byte, isFinal bool) (bool, error) {
	if r.done {
		return false, nil
	}
	if r.subState != stateNone {
		return r.resume(window, isFinal)
	}
	if len(r.containers) == 0 && r.rootValuesSeen > 0 && !r.opts.AllowMultipleValues {
		r.done = true
		return false, nil
	}
	r.resetValue() // drop the previous token's carried bytes
	consumed, line, col := r.totalConsumed, r.line, r.col
	var top frame
	if n := len(r.containers); n > 0 {
		top = r.containers[n-1]
	}
	ok, err := r.dispatch(window, 0, isFinal)
	if err == ErrNeedMoreData && r.subState == stateNone {
		r.totalConsumed, r.line, r.col = consumed, line, col
		if n := len(r.containers); n > 0 {
			r.containers[n-1] = top
		}
	}
	return ok, err
}

// dispatch is the fresh (not mid-token) entry point. pos is where to start
// looking within window.
func (r *Reader) dispatch(window []byte, pos int, isFinal bool) (bool, error) {
	for {
		pos = r.skipWhitespace(window, pos)
		if pos >= len(window) {
			if isFinal {
				return r.atEnd()
			}
			return false, ErrNeedMoreData
		}
		if window[pos] == '/' {
			if pos+1 >= len(window) {
				if !isFinal {
					return false, ErrNeedMoreData
				}
			} else {
				switch window[pos+1] {
				case '/':
					r.startToken()
					ok, skipped, newPos, err := r.startLineComment(window, pos, isFinal)
					if skipped {
						pos = newPos
						continue
					}
					return ok, err
				case '*':
					r.startToken()
					ok, skipped, newPos, err := r.startBlockComment(window, pos, isFinal)
					if skipped {
						pos = newPos
						continue
					}
					return ok, err
				}
			}
		}
		break
	}
	r.startToken()
	return r.dispatchValuePosition(window, pos, isFinal)
}

func (r *Reader) atEnd() (bool, error) {
	if len(r.containers) > 0 {
		return false, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: unclosed container")
	}
	if r.rootValuesSeen == 0 {
		return false, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: no value")
	}
	r.done = true
	return false, nil
}

func (r *Reader) skipWhitespace(window []byte, pos int) int {
	for pos < len(window) {
		b := window[pos]
		if !rdnshared.IsWhitespace(b) {
			break
		}
		if b == '\n' {
			r.newline()
		} else {
			r.advance(1)
		}
		pos++
	}
	return pos
}

// dispatchValuePosition decides, given the current container context,
// whether this call is looking at a property name, a map key, a close
// token, a separator that must be silently consumed first, or a value -
// then routes to the byte-level value dispatch once any pending
// separator has been consumed.
func (r *Reader) dispatchValuePosition(window []byte, pos int, isFinal bool) (bool, error) {
	if len(r.containers) == 0 {
		ok, err := r.dispatchScalarOrOpen(window, pos, isFinal, false)
		if (ok && !isStartKind(r.kind)) || r.subState != stateNone {
			r.rootValuesSeen++ // a root container is counted when it closes
		}
		return ok, err
	}
	depth := len(r.containers) - 1
	switch r.containers[depth].kind {
	case token.Object:
		return r.dispatchObject(window, pos, isFinal, depth)
	case token.Map:
		return r.dispatchMap(window, pos, isFinal, depth)
	default: // Array, Set, Tuple
		return r.dispatchListLike(window, pos, isFinal, depth)
	}
}

func (r *Reader) closeByteFor(c token.Container) byte {
	switch c {
	case token.Array:
		return ']'
	case token.Tuple:
		return ')'
	default: // Object, Map, Set
		return '}'
	}
}

// expectItemOrClose implements the shared "have we just started this
// container, or do we need a comma before the next item, or are we at the
// close byte" logic used by every container kind. It consumes any comma
// (and, per AllowTrailingCommas, tolerates one right before close) and
// reports whether the caller should proceed to parse close or an item.
func (r *Reader) expectItemOrClose(window []byte, pos int, depth int, isFinal bool) (newPos int, atClose bool, err error) {
	pos = r.skipWhitespace(window, pos)
	if pos >= len(window) {
		if isFinal {
			return pos, false, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: unclosed container")
		}
		return pos, false, ErrNeedMoreData
	}
	top := &r.containers[depth]
	closeByte := r.closeByteFor(top.kind)
	if top.childCount == 0 {
		if window[pos] == closeByte {
			return pos, true, nil
		}
		return pos, false, nil
	}
	if window[pos] == ',' {
		r.advance(1)
		pos = r.skipWhitespace(window, pos+1)
		if pos >= len(window) {
			if isFinal {
				return pos, false, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: unclosed container")
			}
			return pos, false, ErrNeedMoreData
		}
		if window[pos] == closeByte {
			if !r.opts.AllowTrailingCommas {
				return pos, false, newByteError(TrailingCommaNotAllowed, r.pos(), window[pos], "trailing comma not allowed")
			}
			return pos, true, nil
		}
		return pos, false, nil
	}
	if window[pos] == closeByte {
		return pos, true, nil
	}
	return pos, false, newByteError(ExpectedPropertyOrCloseBrace, r.pos(), window[pos], "expected ',' or close")
}

func (r *Reader) popContainer() token.Kind {
	closed := r.containers[len(r.containers)-1].kind
	r.containers = r.containers[:len(r.containers)-1]
	r.bits.Pop()
	r.advance(1)
	r.kind = token.EndKindFor(closed)
	r.resetValue()
	r.prevKind = r.kind
	if len(r.containers) == 0 {
		r.rootValuesSeen++
	} else {
		parentDepth := len(r.containers) - 1
		r.containers[parentDepth].childCount++
		if r.containers[parentDepth].kind == token.Map {
			// a container key closes with its bit armed, a container value with it cleared
			if r.arrows.expectKey(parentDepth) {
				r.arrows.disarm(parentDepth)
			} else {
				r.arrows.arm(parentDepth)
			}
		}
	}
	return r.kind
}

func (r *Reader) dispatchObject(window []byte, pos int, isFinal bool, depth int) (bool, error) {
	if r.containers[depth].afterPropName {
		var err error
		pos, err = r.consumeByte(window, pos, ':', ExpectedSeparatorAfterPropertyName, isFinal)
		if err != nil {
			return false, err
		}
		r.containers[depth].afterPropName = false
		ok, err := r.dispatchScalarOrOpen(window, pos, isFinal, false)
		if (ok && !isStartKind(r.kind)) || r.subState != stateNone {
			r.containers[depth].childCount++
		}
		return ok, err
	}
	pos, atClose, err := r.expectItemOrClose(window, pos, depth, isFinal)
	if err != nil {
		return false, err
	}
	if atClose {
		r.startToken()
		r.kind = r.popContainer()
		return true, nil
	}
	if window[pos] != '"' {
		return false, newByteError(ExpectedStartOfPropertyName, r.pos(), window[pos], "expected property name")
	}
	r.startToken()
	ok, err := r.startString(window, pos+1, isFinal, true)
	if ok || r.subState != stateNone {
		r.containers[depth].afterPropName = true
	}
	return ok, err
}

func (r *Reader) dispatchMap(window []byte, pos int, isFinal bool, depth int) (bool, error) {
	if !r.arrows.expectKey(depth) {
		var err error
		pos, err = r.consumeArrow(window, pos, isFinal)
		if err != nil {
			return false, err
		}
		ok, err := r.dispatchScalarOrOpen(window, pos, isFinal, false)
		if (ok && !isStartKind(r.kind)) || r.subState != stateNone {
			r.containers[depth].childCount++
			r.arrows.arm(depth)
		}
		return ok, err
	}
	pos, atClose, err := r.expectItemOrClose(window, pos, depth, isFinal)
	if err != nil {
		return false, err
	}
	if atClose {
		r.startToken()
		r.kind = r.popContainer()
		return true, nil
	}
	ok, err := r.dispatchScalarOrOpen(window, pos, isFinal, true)
	if (ok && !isStartKind(r.kind)) || r.subState != stateNone {
		r.arrows.disarm(depth) // a container key is handled by popContainer
	}
	return ok, err
}

func (r *Reader) dispatchListLike(window []byte, pos int, isFinal bool, depth int) (bool, error) {
	pos, atClose, err := r.expectItemOrClose(window, pos, depth, isFinal)
	if err != nil {
		return false, err
	}
	if atClose {
		r.startToken()
		r.kind = r.popContainer()
		return true, nil
	}
	ok, err := r.dispatchScalarOrOpen(window, pos, isFinal, false)
	if (ok && !isStartKind(r.kind)) || r.subState != stateNone {
		r.containers[depth].childCount++
	}
	return ok, err
}

func isStartKind(k token.Kind) bool {
	switch k {
	case token.StartObject, token.StartArray, token.StartSet, token.StartMap, token.StartTuple:
		return true
	default:
		return false
	}
}

// consumeArrow consumes the `=>` separator after a map key.
func (r *Reader) consumeArrow(window []byte, pos int, isFinal bool) (int, error) {
	pos = r.skipWhitespace(window, pos)
	if pos+1 >= len(window) {
		if isFinal {
			return pos, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: expected '=>' after map key")
		}
		return pos, ErrNeedMoreData
	}
	if window[pos] != '=' || window[pos+1] != '>' {
		return pos, newByteError(ExpectedSeparatorAfterPropertyName, r.pos(), window[pos], "expected '=>' after map key")
	}
	r.advance(2)
	return pos + 2, nil
}

func (r *Reader) consumeByte(window []byte, pos int, want byte, onMissing ErrorKind, isFinal bool) (int, error) {
	pos = r.skipWhitespace(window, pos)
	if pos >= len(window) {
		if isFinal {
			return pos, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: expected separator")
		}
		return pos, ErrNeedMoreData
	}
	if window[pos] != want {
		return pos, newByteError(onMissing, r.pos(), window[pos], "expected separator")
	}
	r.advance(1)
	return pos + 1, nil
}

// dispatchScalarOrOpen is the real byte-level dispatch table: the first
// byte of a value (or, when isKey, a map key, which may be any value type
// per the RDN grammar). isKey does not change the dispatch; container
// opens always push.
func (r *Reader) dispatchScalarOrOpen(window []byte, pos int, isFinal bool, isKey bool) (bool, error) {
	pos = r.skipWhitespace(window, pos)
	if pos >= len(window) {
		if isFinal {
			return false, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: expected a value")
		}
		return false, ErrNeedMoreData
	}
	r.startToken()
	b := window[pos]
	switch {
	case b == '{':
		return r.openBrace(window, pos, isFinal)
	case b == '[':
		return r.openContainer(window, pos, token.Array)
	case b == '(':
		return r.openContainer(window, pos, token.Tuple)
	case b == '"':
		return r.startString(window, pos+1, isFinal, false)
	case b == '-' || (b >= '0' && b <= '9'):
		return r.startNumber(window, pos, isFinal)
	case b == 't':
		return r.matchKeyword(window, pos, isFinal, "true", token.True)
	case b == 'f':
		return r.matchKeyword(window, pos, isFinal, "false", token.False)
	case b == 'n':
		return r.matchKeyword(window, pos, isFinal, "null", token.Null)
	case b == 'N':
		return r.matchKeyword(window, pos, isFinal, "NaN", token.Number)
	case b == 'I':
		return r.matchKeyword(window, pos, isFinal, "Infinity", token.Number)
	case b == '@':
		return r.startTemporal(window, pos+1, isFinal)
	case b == '/':
		return r.startRegexPattern(window, pos+1, isFinal)
	case b == 'b' || b == 'x':
		return r.startBinaryPrefix(window, pos, isFinal, b == 'x')
	case b == 'S' || b == 'M':
		return r.startExplicitPrefix(window, pos, isFinal)
	default:
		return false, newByteError(ExpectedStartOfValue, r.pos(), b, "expected start of value")
	}
}

// openBrace disambiguates a bare '{': it is an object if the next
// non-whitespace byte is '"' (a property name) or '}' (the empty object
// `{}`), else a set.
func (r *Reader) openBrace(window []byte, pos int, isFinal bool) (bool, error) {
	i := pos + 1
	for i < len(window) && rdnshared.IsWhitespace(window[i]) {
		i++
	}
	if i >= len(window) && !isFinal {
		return false, ErrNeedMoreData
	}
	kind := token.Set
	if i < len(window) && (window[i] == '"' || window[i] == '}') {
		kind = token.Object
	}
	return r.openContainer(window, pos, kind)
}

func (r *Reader) openContainer(window []byte, pos int, kind token.Container) (bool, error) {
	if len(r.containers) >= r.maxDepth() {
		return false, newError(DepthTooLarge, r.pos(), "maximum nesting depth exceeded")
	}
	r.advance(1)
	r.pushContainer(kind)
	_ = window
	_ = pos
	return true, nil
}

// matchKeyword matches a fixed literal (true/false/null/NaN/Infinity)
// starting at pos. Kind-within-Number distinguishes NaN/Infinity from an
// ordinary Number by the raw span text; callers that need to tell them
// apart inspect Value().
func (r *Reader) matchKeyword(window []byte, pos int, isFinal bool, literal string, kind token.Kind) (bool, error) {
	avail := len(window) - pos
	n := len(literal)
	if avail < n {
		if !isFinal {
			return false, ErrNeedMoreData
		}
		n = avail
	}
	for i := 0; i < n; i++ {
		if window[pos+i] != literal[i] {
			return false, newByteError(ExpectedStartOfValue, r.pos(), window[pos+i], "invalid literal, expected "+literal)
		}
	}
	if n < len(literal) {
		return false, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: expected "+literal)
	}
	if kind == token.Number && literal == "Infinity" && pos > 0 && window[pos-1] == '-' {
		// handled by startNumber instead; unreachable from dispatchScalarOrOpen
	}
	r.advance(n)
	r.kind = kind
	r.finishValue(window[pos:], n)
	r.prevKind = r.kind
	return true, nil
}
