// Package document builds an in-memory, randomly-accessible index over an
// RDN value by driving a tokenizer.Reader over the input and recording
// one DbRow per token, either from a complete in-memory buffer (Build) or
// incrementally off an io.Reader (BuildFromReader). Random access (child
// count, nth child, property lookup) then walks the row table instead of
// re-parsing.
package document

import (
	"fmt"
	"io"

	"github.com/gofrs/uuid"

	"github.com/rdnfmt/rdn/token"
	"github.com/rdnfmt/rdn/tokenizer"
)

// defaultChunkSize is the read size BuildFromReader uses between calls to
// the underlying io.Reader.
const defaultChunkSize = 4096

// DbRow is one entry of the document's flat row table. For a container
// Start* row, EndRow is the index, one past this row's own index plus
// every descendant, of the matching End* row; DirectChildren counts only
// immediate children (the rows a caller sees when iterating this
// container), not the whole subtree.
type DbRow struct {
	Kind           token.Kind
	Offset         int64 // byte offset of the token's first byte in Raw
	Length         int   // byte length of the raw value span (0 for container rows)
	Depth          int
	EndRow         int  // for Start* rows: index of the matching End* row
	DirectChildren int  // for Start* rows: number of immediate children
	HasComplex     bool // for Start* rows: true if any immediate child is itself a container
	BinaryIsHex    bool // for RdnBinary rows: true if x"...", false if b"..."
}

// Document is a parsed RDN value plus its row index. Its id is a random
// v4 UUID stamped at Build time, not derived from the content; callers
// use ID() to correlate a parsed Document across log lines and caches.
type Document struct {
	Raw  []byte
	Rows []DbRow
	id   uuid.UUID
}

// ID returns the Document's build-time correlation UUID.
func (d *Document) ID() uuid.UUID { return d.id }

// docID is overridden in tests that need a deterministic ID.
var docID = func() (uuid.UUID, error) { return uuid.NewV4() }

// Build parses data in a single pass (data must be the entire input) and
// returns its row-indexed Document. The tokenizer still sees every token
// boundary one Read call at a time; only the source buffer is available
// up front. For a genuinely incremental source, use BuildFromReader.
func Build(data []byte, opts tokenizer.Options) (*Document, error) {
	r := tokenizer.NewReader(opts)
	doc := &Document{Raw: data}
	stampID(doc)

	consumed := int64(0)
	next := func() (bool, error) {
		ok, err := r.Read(data[consumed:], true)
		consumed = r.TotalConsumed()
		return ok, err
	}
	if err := buildRows(doc, r, next); err != nil {
		return nil, err
	}
	return doc, nil
}

// BuildFromReader drives the tokenizer's resumable, multi-segment path
// directly off in, reading chunkSize bytes at a time (chunkSize <= 0 uses
// a 4KiB default) instead of requiring the whole input up front the way
// Build does. This is what exercises the tokenizer's segmented-window
// contract (Reader.Read fed the accumulated buffer from TotalConsumed()
// onward, with isFinal only set once the source is exhausted) from a Document-building
// entry point. The resulting Document still holds the fully accumulated
// bytes in Raw, since random access needs the whole buffer in memory even
// though the parse itself never required it all at once.
func BuildFromReader(in io.Reader, opts tokenizer.Options, chunkSize int) (*Document, error) {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	r := tokenizer.NewReader(opts)
	doc := &Document{}
	stampID(doc)

	var buf []byte
	chunk := make([]byte, chunkSize)
	eof := false
	consumed := int64(0)

	next := func() (bool, error) {
		for {
			ok, err := r.Read(buf[consumed:], eof)
			consumed = r.TotalConsumed()
			if err == tokenizer.ErrNeedMoreData {
				n, rerr := in.Read(chunk)
				if n > 0 {
					buf = append(buf, chunk[:n]...)
				}
				if rerr == io.EOF {
					eof = true
				} else if rerr != nil {
					return false, fmt.Errorf("document: reading input: %w", rerr)
				}
				continue
			}
			return ok, err
		}
	}
	if err := buildRows(doc, r, next); err != nil {
		return nil, err
	}
	doc.Raw = buf
	return doc, nil
}

func stampID(doc *Document) {
	if id, err := docID(); err == nil {
		doc.id = id
	}
}

// buildRows drains next (one token per call, exactly like Reader.Read)
// into doc's flat row table, tracking the open-container stack needed to
// back-fill each Start* row's EndRow/DirectChildren/HasComplex once its
// matching End* row is seen.
func buildRows(doc *Document, r *tokenizer.Reader, next func() (bool, error)) error {
	type openFrame struct {
		rowIdx    int
		children  int
		hasComplx bool
	}
	var stack []openFrame

	for {
		ok, err := next()
		if err != nil {
			if tErr, isErr := err.(*tokenizer.Error); isErr {
				return tErr
			}
			return fmt.Errorf("document: %w", err)
		}
		if !ok {
			break
		}
		kind := r.Kind()
		row := DbRow{
			Kind:   kind,
			Offset: r.TokenOffset(),
			Depth:  len(stack),
		}
		row.Length = len(r.Value())
		if kind == token.RdnBinary {
			row.BinaryIsHex = r.ValueIsEscaped()
		}

		switch {
		case isStartKind(kind):
			idx := len(doc.Rows)
			doc.Rows = append(doc.Rows, row)
			if len(stack) > 0 {
				stack[len(stack)-1].hasComplx = true
			}
			stack = append(stack, openFrame{rowIdx: idx})
			continue
		case isEndKind(kind):
			idx := len(doc.Rows)
			doc.Rows = append(doc.Rows, row)
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			doc.Rows[top.rowIdx].EndRow = idx
			doc.Rows[top.rowIdx].DirectChildren = top.children
			doc.Rows[top.rowIdx].HasComplex = top.hasComplx
			if len(stack) > 0 {
				stack[len(stack)-1].children++
			}
			continue
		default:
			doc.Rows = append(doc.Rows, row)
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if kind != token.PropertyName {
					top.children++
				}
			}
		}
	}
	return nil
}

func isStartKind(k token.Kind) bool {
	switch k {
	case token.StartObject, token.StartArray, token.StartSet, token.StartMap, token.StartTuple:
		return true
	default:
		return false
	}
}

func isEndKind(k token.Kind) bool {
	switch k {
	case token.EndObject, token.EndArray, token.EndSet, token.EndMap, token.EndTuple:
		return true
	default:
		return false
	}
}

// RawValue returns the source bytes of row i's Value() span: the token's
// text without its opening wrapper (quote, '@', '/', b" or x", //).
func (d *Document) RawValue(i int) []byte {
	row := d.Rows[i]
	start := row.Offset + valuePrefixLen(row.Kind)
	return d.Raw[start : start+int64(row.Length)]
}

// valuePrefixLen is the number of bytes between a token's first byte and
// the start of its Value() span.
func valuePrefixLen(k token.Kind) int64 {
	switch k {
	case token.String, token.PropertyName, token.RdnDateTime, token.RdnTimeOnly, token.RdnDuration, token.RdnRegExp:
		return 1
	case token.RdnBinary, token.Comment:
		return 2
	default:
		return 0
	}
}

// BinaryIsHex reports whether row i (which must be an RdnBinary row) was
// written x"..." (true) rather than b"..." (false).
func (d *Document) BinaryIsHex(i int) bool {
	return d.Rows[i].BinaryIsHex
}

// Root returns the index of the document's single root row (0), or -1 if
// the document is empty.
func (d *Document) Root() int {
	if len(d.Rows) == 0 {
		return -1
	}
	return 0
}

// NthChild returns the row index of the n-th (0-based) direct child of
// the container starting at row i. i must be a Start* row. For an Object,
// the returned row is the PropertyName row (Rows[idx+1] is its value).
func (d *Document) NthChild(i, n int) (int, error) {
	row := d.Rows[i]
	if !isStartKind(row.Kind) {
		return -1, fmt.Errorf("document: row %d is not a container", i)
	}
	child := i + 1
	count := 0
	for child < row.EndRow {
		if count == n {
			return child, nil
		}
		if d.Rows[child].Kind == token.PropertyName {
			child = d.advanceOne(child + 1)
		} else {
			child = d.advanceOne(child)
		}
		count++
	}
	return -1, fmt.Errorf("document: row %d has no child %d", i, n)
}

// advanceOne returns the row index immediately after the value rooted at
// row i (i itself if i is a scalar, or EndRow+1 if i opens a container).
func (d *Document) advanceOne(i int) int {
	row := d.Rows[i]
	if isStartKind(row.Kind) {
		return row.EndRow + 1
	}
	return i + 1
}

// ChildCount returns the DirectChildren count recorded for a Start* row.
// For Object rows this counts property/value pairs as one child each.
func (d *Document) ChildCount(i int) int {
	return d.Rows[i].DirectChildren
}

// PropertyValue returns the row index of the value associated with
// property name, searching the object starting at row i (which must be a
// StartObject row). Returns -1 if not found. Per the grammar's
// DuplicateProperty check, Build does not itself reject duplicate keys
// (that is caller policy); PropertyValue returns the first match.
func (d *Document) PropertyValue(i int, name string) int {
	row := d.Rows[i]
	if row.Kind != token.StartObject {
		return -1
	}
	child := i + 1
	for child < row.EndRow {
		if d.Rows[child].Kind != token.PropertyName {
			break // malformed row table; objects only ever contain PropertyName items
		}
		if string(d.RawValue(child)) == name {
			return child + 1
		}
		child = d.advanceOne(child + 1)
	}
	return -1
}
