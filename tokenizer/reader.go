// Package tokenizer implements the resumable, pull-model RDN tokenizer
// (spec §4.1-4.2) described for RDN: a JSON superset adding set, map,
// tuple, temporal, regex, binary, and BigInteger literals.
//
// A Reader consumes successive byte windows. Each window must start at
// the first byte the Reader has not yet consumed (TotalConsumed() bytes
// into the stream), so bytes an earlier call left unconsumed are fed
// again. Bytes of a partial token carried across calls count as
// consumed and need not be kept by the caller. This
// "segment stream" framing is what lets a single Reader equally serve a
// single in-memory buffer (one segment) or a genuinely chunked source
// (many segments, each freed after being fed).
package tokenizer

import (
	"github.com/rdnfmt/rdn/token"
)

// subState names what kind of partial token, if any, a Reader is in the
// middle of resuming. None means the next Read call starts a fresh
// dispatch.
type subState int

const (
	stateNone subState = iota
	stateString
	stateNumber
	stateTemporal
	stateRegexPattern
	stateRegexFlags
	stateBinaryBody
	stateLineComment
	stateBlockComment
)

// frame is one entry in the container stack: which kind of container is
// open, how many direct children have been emitted, and, for an Object,
// whether a property name has been read whose ':' and value are still to
// come.
type frame struct {
	kind          token.Container
	childCount    int
	afterPropName bool // Object only: true right after PropertyName, before ':'
}

// Reader is a single-owner, non-concurrent pull tokenizer.
type Reader struct {
	opts Options

	bits   BitStack
	arrows arrowState

	containers []frame

	kind         token.Kind
	prevKind     token.Kind
	span         []byte
	carry        []byte
	hasValueSeq  bool
	valueEscaped bool // for strings/regex: any backslash seen; for binary: true=hex, false=base64
	reservedKind token.Kind // True/False/Null: which keyword matched

	line, col     int
	tokenLine     int
	tokenCol      int
	tokenOffset   int64
	totalConsumed int64

	subState subState

	// resumable per-substate scratch, valid only while subState != stateNone
	scratchEscaping bool
	scratchHexLeft  int
	scratchHexVal   int
	scratchIsProp   bool
	scratchIsHexBin bool

	commentEmit bool // true: surface the comment being scanned as a token; false: discard it
	prevStar    bool // block-comment scan: previous byte was '*'

	rootValuesSeen int
	done           bool // true once the stream is exhausted (EOF reached at a legal stopping point)
}

// NewReader creates a Reader with the given options.
func NewReader(opts Options) *Reader {
	return &Reader{opts: opts, line: 1, col: 1}
}

// Kind returns the most recently read token's kind.
func (r *Reader) Kind() token.Kind { return r.kind }

// PreviousKind returns the kind of the token read immediately before the
// current one (None before the first token). Used by comment-handling
// recovery logic.
func (r *Reader) PreviousKind() token.Kind { return r.prevKind }

// Value returns the current token's raw payload span. For tokens whose
// hasValueSequence is true the returned slice is an owned copy (the
// stitched range); otherwise it is a sub-slice of the window last passed
// to Read and is only valid until the next Read call.
func (r *Reader) Value() []byte { return r.span }

// ValueIsEscaped reports whether the current token's source contained an
// escape sequence (strings, regex) or, for RdnBinary tokens, whether the
// body is hex (true) rather than base64 (false).
func (r *Reader) ValueIsEscaped() bool { return r.valueEscaped }

// HasValueSequence reports whether Value() is a stitched, owned copy
// (the token's bytes spanned more than one window) rather than a borrow
// into the last window passed to Read.
func (r *Reader) HasValueSequence() bool { return r.hasValueSeq }

// Depth returns the current container nesting depth.
func (r *Reader) Depth() int { return len(r.containers) }

// Line and Col report the 1-based position of the start of the current
// token.
func (r *Reader) Line() int { return r.tokenLine }
func (r *Reader) Col() int  { return r.tokenCol }

// CurrentContainer reports the container kind the reader is positioned
// inside (token.Root if at depth 0).
func (r *Reader) CurrentContainer() token.Container {
	if len(r.containers) == 0 {
		return token.Root
	}
	return r.containers[len(r.containers)-1].kind
}

func (r *Reader) pos() Pos {
	return Pos{Line: r.tokenLine, Col: r.tokenCol}
}

func (r *Reader) resetValue() {
	r.span = nil
	r.carry = nil
	r.hasValueSeq = false
	r.valueEscaped = false
}

// beginCarry stashes bytes consumed from the current window into the
// cross-call accumulator and marks the token as stitched. Called right
// before returning NeedMoreData from inside a sub-grammar scan.
func (r *Reader) beginCarry(consumed []byte) {
	r.carry = append(r.carry, consumed...)
	r.hasValueSeq = true
}

// finishValue finalizes the token payload given how much of the current
// window belongs to it. If the token never had to carry across a
// boundary, the returned span borrows directly from window (fast path,
// zero-copy); otherwise the final window bytes are appended to the carry
// accumulator and that becomes the value.
func (r *Reader) finishValue(window []byte, n int) []byte {
	if !r.hasValueSeq {
		r.span = window[:n]
		return r.span
	}
	r.carry = append(r.carry, window[:n]...)
	r.span = r.carry
	return r.span
}

func (r *Reader) advance(n int) {
	r.col += n
	r.totalConsumed += int64(n)
}

func (r *Reader) newline() {
	r.line++
	r.col = 1
	r.totalConsumed++
}

func (r *Reader) startToken() {
	r.tokenLine, r.tokenCol = r.line, r.col
	r.tokenOffset = r.totalConsumed
}

// TokenOffset returns the byte offset, from the start of the stream, of
// the current token's first byte.
func (r *Reader) TokenOffset() int64 { return r.tokenOffset }

// TotalConsumed returns the number of bytes consumed across all windows
// passed to Read so far.
func (r *Reader) TotalConsumed() int64 { return r.totalConsumed }

func (r *Reader) maxDepth() int { return r.opts.maxDepth() }
