// Package writer implements a forward-only RDN emitter: the write-side
// counterpart of the tokenizer package. A Writer validates call sequences
// against the same container grammar the tokenizer enforces on read (you
// cannot call WriteEndArray while an Object is open) and takes care of
// commas, colons, map arrows, quoting, and optional indentation.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/rdnfmt/rdn/internal/bigint"
	"github.com/rdnfmt/rdn/internal/rdnshared"
	"github.com/rdnfmt/rdn/token"
)

// Options configures a Writer.
type Options struct {
	// Indent, when non-empty, is repeated once per nesting level to
	// pretty-print output; empty means minimized (no insignificant
	// whitespace at all).
	Indent string
	// BinaryAsHex selects x"..." for binary literals instead of the
	// default b"..." base64 form.
	BinaryAsHex bool
}

type containerState struct {
	kind        token.Container
	childCount  int
	expectValue bool // Object: after a WritePropertyName, before the value
	expectKey   bool // Map: true when the next write call is a key
	expectArrow bool // Map: true when the next call must be WriteMapArrow
}

// Writer emits a well-formed RDN document to an underlying io.Writer. It
// is single-owner and not safe for concurrent use, matching the Reader.
type Writer struct {
	out        *bufio.Writer
	opts       Options
	containers []containerState
	wroteRoot  bool
	err        error
}

// New wraps out in a Writer. The caller must call Flush when done; the
// Writer never closes out.
func New(out io.Writer, opts Options) *Writer {
	return &Writer{out: bufio.NewWriter(out), opts: opts}
}

// Err returns the first error encountered by any Write call, if any.
func (w *Writer) Err() error { return w.err }

// Flush pushes buffered bytes to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.out.Flush(); err != nil {
		w.fail(err)
	}
	return w.err
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) depth() int { return len(w.containers) }

// beforeValue writes whatever separator/indentation precedes the next
// written item (comma, newline+indent, or nothing at the very start) and
// validates that a value is actually expected here.
func (w *Writer) beforeValue() error {
	if w.err != nil {
		return w.err
	}
	if w.depth() == 0 {
		if w.wroteRoot {
			return w.structuralError("a root value has already been written")
		}
		return nil
	}
	top := &w.containers[w.depth()-1]
	switch top.kind {
	case token.Object:
		if !top.expectValue {
			return w.structuralError("expected WritePropertyName, not a value")
		}
		// WritePropertyName already wrote the separator and ':'.
	case token.Map:
		if top.expectArrow {
			return w.structuralError("expected WriteMapArrow, not a value")
		}
		if top.expectKey {
			if top.childCount > 0 {
				w.writeByte(',')
			}
			w.writeNewlineIndent(w.depth())
		}
		// value side: the caller's own WriteMapArrow call already emitted
		// the '=>' separator.
	default:
		if top.childCount > 0 {
			w.writeByte(',')
		}
		w.writeNewlineIndent(w.depth())
	}
	return nil
}

func (w *Writer) afterValue() {
	if w.depth() == 0 {
		w.wroteRoot = true
		return
	}
	top := &w.containers[w.depth()-1]
	switch top.kind {
	case token.Object:
		top.expectValue = false
		top.childCount++
	case token.Map:
		if top.expectKey {
			top.expectKey = false
			top.expectArrow = true
		} else {
			top.expectKey = true
			top.childCount++
		}
	default:
		top.childCount++
	}
}

// WriteMapArrow emits the "=>" separator between a map key and its value.
// In indented mode it is surrounded by spaces ("a" => 1); minimized output
// has no spaces ("a"=>1).
func (w *Writer) WriteMapArrow() {
	if w.err != nil {
		return
	}
	if w.depth() == 0 || w.containers[w.depth()-1].kind != token.Map {
		w.structuralError("WriteMapArrow outside a map")
		return
	}
	top := &w.containers[w.depth()-1]
	if !top.expectArrow {
		w.structuralError("WriteMapArrow called out of sequence, expected a map key first")
		return
	}
	top.expectArrow = false
	if w.opts.Indent != "" {
		w.writeByte(' ')
	}
	w.writeString("=>")
	if w.opts.Indent != "" {
		w.writeByte(' ')
	}
}

func (w *Writer) structuralError(msg string) error {
	err := fmt.Errorf("writer: %s", msg)
	w.fail(err)
	return err
}

func (w *Writer) writeByte(b byte) {
	if w.err != nil {
		return
	}
	if err := w.out.WriteByte(b); err != nil {
		w.fail(err)
	}
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.out.WriteString(s); err != nil {
		w.fail(err)
	}
}

// writeNewlineIndent emits a newline and depth levels of indentation, or
// nothing when Indent is empty. Callers use it before every child of a
// container (the first one included) and before the close of a non-empty
// container; it is never used at depth 0 before a root value.
func (w *Writer) writeNewlineIndent(depth int) {
	if w.opts.Indent == "" {
		return
	}
	w.writeByte('\n')
	for i := 0; i < depth; i++ {
		w.writeString(w.opts.Indent)
	}
}

func (w *Writer) openContainer(kind token.Container, open byte) {
	if w.beforeValue() != nil {
		return
	}
	w.writeByte(open)
	w.containers = append(w.containers, containerState{kind: kind, expectKey: kind == token.Map})
}

func (w *Writer) closeContainer(kind token.Container, close byte) {
	if w.err != nil {
		return
	}
	if w.depth() == 0 || w.containers[w.depth()-1].kind != kind {
		w.structuralError("mismatched close: no open " + kind.String())
		return
	}
	top := w.containers[w.depth()-1]
	w.containers = w.containers[:w.depth()-1]
	if top.childCount > 0 {
		w.writeNewlineIndent(w.depth())
	}
	w.writeByte(close)
	w.afterValue()
}

func (w *Writer) WriteStartObject() { w.openContainer(token.Object, '{') }
func (w *Writer) WriteEndObject()   { w.closeContainer(token.Object, '}') }
func (w *Writer) WriteStartArray()  { w.openContainer(token.Array, '[') }
func (w *Writer) WriteEndArray()    { w.closeContainer(token.Array, ']') }
func (w *Writer) WriteStartTuple()  { w.openContainer(token.Tuple, '(') }
func (w *Writer) WriteEndTuple()    { w.closeContainer(token.Tuple, ')') }

func (w *Writer) WriteStartSet() {
	if w.beforeValue() != nil {
		return
	}
	w.writeString("Set{")
	w.containers = append(w.containers, containerState{kind: token.Set})
}
func (w *Writer) WriteEndSet() { w.closeContainer(token.Set, '}') }

func (w *Writer) WriteStartMap() {
	if w.beforeValue() != nil {
		return
	}
	w.writeString("Map{")
	w.containers = append(w.containers, containerState{kind: token.Map, expectKey: true})
}
func (w *Writer) WriteEndMap() { w.closeContainer(token.Map, '}') }

// WritePropertyName writes an object member name. It must be followed by
// exactly one value-writing call.
func (w *Writer) WritePropertyName(name string) {
	if w.err != nil {
		return
	}
	if w.depth() == 0 || w.containers[w.depth()-1].kind != token.Object {
		w.structuralError("WritePropertyName outside an object")
		return
	}
	top := &w.containers[w.depth()-1]
	if top.expectValue {
		w.structuralError("expected a value, not a property name")
		return
	}
	if top.childCount > 0 {
		w.writeByte(',')
	}
	w.writeNewlineIndent(w.depth())
	w.writeQuoted(name)
	w.writeByte(':')
	if w.opts.Indent != "" {
		w.writeByte(' ')
	}
	top.expectValue = true
}

func (w *Writer) WriteString(s string) {
	if w.beforeValue() != nil {
		return
	}
	w.writeQuoted(s)
	w.afterValue()
}

func (w *Writer) WriteBool(v bool) {
	if w.beforeValue() != nil {
		return
	}
	if v {
		w.writeString("true")
	} else {
		w.writeString("false")
	}
	w.afterValue()
}

func (w *Writer) WriteNull() {
	if w.beforeValue() != nil {
		return
	}
	w.writeString("null")
	w.afterValue()
}

// WriteInt64 writes an ordinary Number literal.
func (w *Writer) WriteInt64(v int64) {
	if w.beforeValue() != nil {
		return
	}
	w.writeString(strconv.FormatInt(v, 10))
	w.afterValue()
}

// WriteFloat64 writes a Number literal, using NaN/Infinity/-Infinity for
// the non-finite cases per the grammar's float constants.
func (w *Writer) WriteFloat64(v float64) {
	if w.beforeValue() != nil {
		return
	}
	switch {
	case v != v: // NaN
		w.writeString("NaN")
	case v > maxFloat64():
		w.writeString("Infinity")
	case v < -maxFloat64():
		w.writeString("-Infinity")
	default:
		w.writeString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	w.afterValue()
}

func maxFloat64() float64 { return 1.7976931348623157e+308 }

// WriteNumberLiteral writes a pre-formatted Number/BigInteger literal
// body verbatim (used when copying tokens straight from a Reader).
func (w *Writer) WriteNumberLiteral(literal string) {
	if w.beforeValue() != nil {
		return
	}
	w.writeString(literal)
	w.afterValue()
}

func (w *Writer) WriteBigInt(v *big.Int) {
	if w.beforeValue() != nil {
		return
	}
	w.writeString(bigint.Format(v))
	w.writeByte('n')
	w.afterValue()
}

func (w *Writer) WriteDateTime(literal string) {
	w.writeAtSign(literal)
}
func (w *Writer) WriteTimeOnly(literal string) {
	w.writeAtSign(literal)
}
func (w *Writer) WriteDuration(literal string) {
	w.writeAtSign(literal)
}

func (w *Writer) writeAtSign(body string) {
	if w.beforeValue() != nil {
		return
	}
	w.writeByte('@')
	w.writeString(body)
	w.afterValue()
}

// WriteRegExp writes /pattern/flags. pattern is written as given (the
// caller is responsible for having escaped any unescaped '/').
func (w *Writer) WriteRegExp(pattern, flags string) {
	if w.beforeValue() != nil {
		return
	}
	w.writeByte('/')
	w.writeString(pattern)
	w.writeByte('/')
	w.writeString(flags)
	w.afterValue()
}

// WriteBinary writes b"..." or x"..." depending on Options.BinaryAsHex.
func (w *Writer) WriteBinary(data []byte) {
	if w.beforeValue() != nil {
		return
	}
	if w.opts.BinaryAsHex {
		w.writeByte('x')
	} else {
		w.writeByte('b')
	}
	w.writeByte('"')
	w.writeString(string(rdnshared.EncodeBinary(data, w.opts.BinaryAsHex)))
	w.writeByte('"')
	w.afterValue()
}

// WriteComment emits a `// text` comment at the current position. It does
// not count as a value and is only valid between items, matching how the
// tokenizer's CommentHandling=Allow returns comments interleaved with
// real tokens.
func (w *Writer) WriteComment(text string) {
	if w.err != nil {
		return
	}
	w.writeNewlineIndent(w.depth())
	w.writeString("// ")
	w.writeString(text)
}

// WriteTokenVerbatim re-emits a scalar token exactly as tokenizer.Reader
// produced it: kind selects the wrapper (quotes, @, the regex slashes,
// the binary prefix), and raw is the token's unescaped-from-quotes
// Value() span. It exists so document rewriting and `cat` passthrough
// never have to decode-then-reencode a literal they are just forwarding.
func (w *Writer) WriteTokenVerbatim(kind token.Kind, raw []byte, escaped bool) {
	if kind == token.PropertyName {
		if w.err != nil {
			return
		}
		if w.depth() == 0 || w.containers[w.depth()-1].kind != token.Object {
			w.structuralError("WriteTokenVerbatim(PropertyName) outside an object")
			return
		}
		top := &w.containers[w.depth()-1]
		if top.childCount > 0 {
			w.writeByte(',')
		}
		w.writeNewlineIndent(w.depth())
		w.writeByte('"')
		w.writeString(string(raw))
		w.writeByte('"')
		w.writeByte(':')
		if w.opts.Indent != "" {
			w.writeByte(' ')
		}
		top.expectValue = true
		return
	}
	if w.beforeValue() != nil {
		return
	}
	switch kind {
	case token.String:
		w.writeByte('"')
		w.writeString(string(raw))
		w.writeByte('"')
	case token.Number, token.BigInteger, token.True, token.False, token.Null:
		w.writeString(string(raw))
	case token.RdnDateTime, token.RdnTimeOnly, token.RdnDuration:
		w.writeByte('@')
		w.writeString(string(raw))
	case token.RdnRegExp:
		w.writeByte('/')
		w.writeString(string(raw))
	case token.RdnBinary:
		if escaped {
			w.writeByte('x')
		} else {
			w.writeByte('b')
		}
		w.writeByte('"')
		w.writeString(string(raw))
		w.writeByte('"')
	default:
		w.structuralError("WriteTokenVerbatim: unexpected kind " + kind.String())
		return
	}
	w.afterValue()
}

func (w *Writer) writeQuoted(s string) {
	w.writeByte('"')
	for _, r := range s {
		switch r {
		case '"':
			w.writeString(`\"`)
		case '\\':
			w.writeString(`\\`)
		case '\n':
			w.writeString(`\n`)
		case '\r':
			w.writeString(`\r`)
		case '\t':
			w.writeString(`\t`)
		case '\b':
			w.writeString(`\b`)
		case '\f':
			w.writeString(`\f`)
		default:
			if r < 0x20 {
				w.writeString(fmt.Sprintf(`\u%04x`, r))
			} else {
				w.writeString(string(r))
			}
		}
	}
	w.writeByte('"')
}
