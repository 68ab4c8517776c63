package tokenizer

import (
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/rdnfmt/rdn/token"
)

// startExplicitPrefix handles the two keyword-prefixed container openers:
// S{ / Set{ for an explicit Set, and M{ / Map{ for an explicit Map. pos is
// the index of the leading 'S' or 'M'. Bare `{` (no prefix) is handled
// by openBrace, which opens an Object or a Set.
//
// The keyword itself is bounded the same way the reference scanner bounds
// a bareword identifier: xid.Start/xid.Continue find the run's extent, so
// "Set" isn't mistaken for a prefix of some longer identifier-shaped run
// that happens to start with it.
func (r *Reader) startExplicitPrefix(window []byte, pos int, isFinal bool) (bool, error) {
	end, complete := identifierRunEnd(window, pos)
	if !complete && !isFinal {
		return false, ErrNeedMoreData
	}
	word := string(window[pos:end])

	var kind token.Container
	switch word {
	case "S":
		kind = token.Set
	case "Set":
		kind = token.Set
	case "M":
		kind = token.Map
	case "Map":
		kind = token.Map
	default:
		return false, newByteError(ExpectedStartOfValue, r.pos(), window[pos], "expected Set{ / Map{ / S{ / M{")
	}

	need := end + 1 // keyword plus the '{' that must follow
	if len(window) < need {
		if !isFinal {
			return false, ErrNeedMoreData
		}
		return false, newByteError(ExpectedStartOfValue, r.pos(), window[pos], "expected '{' after "+word)
	}
	if window[end] != '{' {
		return false, newByteError(ExpectedStartOfValue, r.pos(), window[end], "expected '{' after "+word)
	}
	if len(r.containers) >= r.maxDepth() {
		return false, newError(DepthTooLarge, r.pos(), "maximum nesting depth exceeded")
	}
	r.advance(need - pos)
	r.pushContainer(kind)
	return true, nil
}

// identifierRunEnd returns the end offset of the maximal xid identifier
// run starting at pos, and whether the run was bounded by a non-identifier
// byte within window (false means the run reaches len(window) and could
// still continue in a later segment).
func identifierRunEnd(window []byte, pos int) (end int, complete bool) {
	i := pos
	first, size := utf8.DecodeRune(window[i:])
	if !xid.Start(first) {
		return i, true
	}
	i += size
	for i < len(window) {
		r, sz := utf8.DecodeRune(window[i:])
		if !xid.Continue(r) {
			return i, true
		}
		i += sz
	}
	return i, false
}

// pushContainer is the shared tail of opening any container once the
// opener bytes have already been advanced past.
func (r *Reader) pushContainer(kind token.Container) {
	r.bits.Push(kind)
	r.containers = append(r.containers, frame{kind: kind})
	if kind == token.Map {
		r.arrows.arm(len(r.containers) - 1)
	}
	r.kind = token.StartKindFor(kind)
	r.resetValue()
	r.prevKind = r.kind
}
