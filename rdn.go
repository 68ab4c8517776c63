// Package rdn is the top-level façade over the tokenizer, document, and
// writer packages: Parse/ParseReader build a random-access Document from
// a complete buffer or an io.Reader, and WriteMinimized/WriteIndented
// re-render one.
package rdn

import (
	"fmt"
	"io"
	"os"

	"github.com/rdnfmt/rdn/document"
	"github.com/rdnfmt/rdn/tokenizer"
	"github.com/rdnfmt/rdn/writer"
)

// Options controls how Parse and ParseReader read a value.
type Options struct {
	CommentHandling     tokenizer.CommentHandling
	AllowTrailingCommas bool
	MaxDepth            int
}

func (o Options) tokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		MaxDepth:            o.MaxDepth,
		CommentHandling:     o.CommentHandling,
		AllowTrailingCommas: o.AllowTrailingCommas,
	}
}

// Parse builds a Document from a complete in-memory buffer. A failure is
// always an *Error.
func Parse(data []byte, opts Options) (*document.Document, error) {
	return parseNamed("", data, opts)
}

func parseNamed(file string, data []byte, opts Options) (*document.Document, error) {
	doc, err := document.Build(data, opts.tokenizerOptions())
	if err != nil {
		if tErr, ok := err.(*tokenizer.Error); ok {
			return nil, fromTokenizerError(file, tErr)
		}
		return nil, err
	}
	return doc, nil
}

// ParseReader reads r in chunks and drives the tokenizer's resumable,
// multi-segment path directly (document.BuildFromReader), rather than
// buffering the whole input before parsing a single time.
func ParseReader(r io.Reader, opts Options) (*document.Document, error) {
	doc, err := document.BuildFromReader(r, opts.tokenizerOptions(), 0)
	if err != nil {
		if tErr, ok := err.(*tokenizer.Error); ok {
			return nil, fromTokenizerError("", tErr)
		}
		return nil, err
	}
	return doc, nil
}

// ParseFile reads path and parses it, stamping any *Error with path so
// multi-file callers (rdn walk) can report failures by source file.
func ParseFile(path string, opts Options) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rdn: reading %s: %w", path, err)
	}
	return parseNamed(path, data, opts)
}

// WriteOptions controls WriteMinimized/WriteIndented output.
type WriteOptions struct {
	Indent      string
	BinaryAsHex bool
}

// WriteMinimized re-emits doc with no insignificant whitespace.
func WriteMinimized(w io.Writer, doc *document.Document, opts WriteOptions) error {
	out := writer.New(w, writer.Options{BinaryAsHex: opts.BinaryAsHex})
	if err := doc.WriteTo(out, doc.Root()); err != nil {
		return err
	}
	return out.Flush()
}

// WriteIndented re-emits doc pretty-printed with the given indent unit
// (e.g. "  " or "\t") per nesting level.
func WriteIndented(w io.Writer, doc *document.Document, opts WriteOptions) error {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	out := writer.New(w, writer.Options{Indent: opts.Indent, BinaryAsHex: opts.BinaryAsHex})
	if err := doc.WriteTo(out, doc.Root()); err != nil {
		return err
	}
	return out.Flush()
}
