package rdn

import (
	"fmt"
	"strings"

	"github.com/rdnfmt/rdn/tokenizer"
)

// ErrorKind re-exports the tokenizer's closed error-kind enumeration so
// callers of this package never need to import tokenizer directly.
type ErrorKind = tokenizer.ErrorKind

// Error is a single syntactic failure, always carrying the position (and,
// once stamped by ParseFile, the source file) it was found at.
type Error struct {
	Kind    ErrorKind
	File    string
	Line    int
	Col     int
	Message string
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Col, e.Kind, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Kind, e.Message)
}

func fromTokenizerError(file string, tErr *tokenizer.Error) *Error {
	return &Error{
		Kind:    tErr.Kind,
		File:    file,
		Line:    tErr.Pos.Line,
		Col:     tErr.Pos.Col,
		Message: tErr.Message,
	}
}

// ParseErrors aggregates every failure collected while parsing a tree of
// files (rdn walk), mirroring the reference tooling's aggregate
// parse-error wrapper.
type ParseErrors []*Error

func (p ParseErrors) Error() string {
	lines := make([]string, len(p))
	for i, e := range p {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
