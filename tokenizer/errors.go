package tokenizer

import (
	"errors"
	"fmt"
)

// ErrNeedMoreData is returned by Read when window did not contain enough
// bytes to make progress on the token in flight. It is not a syntax
// error: the caller should obtain more bytes (the next segment of the
// stream) and call Read again with a window that starts at
// TotalConsumed(), including any bytes the failed call left unconsumed.
var ErrNeedMoreData = errors.New("tokenizer: need more data")

// ErrorKind is the closed set of lexical/syntactic error kinds the
// tokenizer can raise. NeedMoreData is deliberately not part of this
// enumeration: it is not an error, just a request for more bytes.
type ErrorKind int

const (
	_ ErrorKind = iota

	UnexpectedEndOfData
	InvalidByte
	ExpectedStartOfValue
	ExpectedStartOfPropertyName
	ExpectedSeparatorAfterPropertyName
	ExpectedPropertyOrCloseBrace
	MismatchedClose
	DepthTooLarge
	InvalidStringEscape
	InvalidHexDigit
	UnexpectedLineSeparator
	InvalidControlCharacter
	InvalidNumber
	InvalidLeadingZeroInNumber
	InvalidDateTime
	InvalidDuration
	InvalidRegex
	InvalidUtf8
	TrailingCommaNotAllowed
	DuplicateProperty
	WriteValidation
	AlreadyDisposed
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedEndOfData:                "UnexpectedEndOfData",
	InvalidByte:                        "InvalidByte",
	ExpectedStartOfValue:               "ExpectedStartOfValue",
	ExpectedStartOfPropertyName:        "ExpectedStartOfPropertyName",
	ExpectedSeparatorAfterPropertyName: "ExpectedSeparatorAfterPropertyName",
	ExpectedPropertyOrCloseBrace:       "ExpectedPropertyOrCloseBrace",
	MismatchedClose:                    "MismatchedClose",
	DepthTooLarge:                      "DepthTooLarge",
	InvalidStringEscape:                "InvalidStringEscape",
	InvalidHexDigit:                    "InvalidHexDigit",
	UnexpectedLineSeparator:            "UnexpectedLineSeparator",
	InvalidControlCharacter:            "InvalidControlCharacter",
	InvalidNumber:                      "InvalidNumber",
	InvalidLeadingZeroInNumber:         "InvalidLeadingZeroInNumber",
	InvalidDateTime:                    "InvalidDateTime",
	InvalidDuration:                    "InvalidDuration",
	InvalidRegex:                       "InvalidRegex",
	InvalidUtf8:                        "InvalidUtf8",
	TrailingCommaNotAllowed:            "TrailingCommaNotAllowed",
	DuplicateProperty:                  "DuplicateProperty",
	WriteValidation:                    "WriteValidation",
	AlreadyDisposed:                    "AlreadyDisposed",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "UnknownErrorKind"
}

// Error is the error type raised by the tokenizer for malformed input.
// It always carries the position the error was detected at.
type Error struct {
	Kind    ErrorKind
	Pos     Pos
	Byte    byte
	HasByte bool
	Message string
}

func (e Error) Error() string {
	if e.Pos.File != "" || e.Pos.Line != 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, pos Pos, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

func newByteError(kind ErrorKind, pos Pos, b byte, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Byte: b, HasByte: true, Message: message}
}
